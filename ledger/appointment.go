package ledger

import (
	"strings"
	"time"

	"github.com/ariebrainware/clinique/model"
)

// AppointmentRequest carries the fields of a new appointment.
type AppointmentRequest struct {
	IDPatient  string `json:"id_patient" example:"PT001"`
	NomPatient string `json:"nom_patient" example:"Ahmed Benali"`
	IDMedecin  string `json:"id_medecin" example:"1"`
	NomMedecin string `json:"nom_medecin" example:"Dr. Benali"`
	DateRdv    string `json:"date_rdv" example:"2025-01-15"`
	Heure      string `json:"heure" example:"09:30"`
	Motif      string `json:"motif" example:"Consultation générale"`
	Statut     string `json:"statut,omitempty" example:"En attente"`
}

// AppointmentPatch is a partial appointment update; nil fields are left unchanged.
type AppointmentPatch struct {
	DateRdv    *string `json:"date_rdv,omitempty"`
	Heure      *string `json:"heure,omitempty"`
	Motif      *string `json:"motif,omitempty"`
	IDMedecin  *string `json:"id_medecin,omitempty"`
	NomMedecin *string `json:"nom_medecin,omitempty"`
	Statut     *string `json:"statut,omitempty"`
}

func parseSlot(date, hour string, loc *time.Location) (time.Time, error) {
	at, err := time.ParseInLocation(model.DateTimeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(hour), loc)
	if err != nil {
		return time.Time{}, invalid(MsgInvalidDateTime)
	}
	return at, nil
}

// ValidateNewAppointment checks a creation request against now and returns the
// appointment to store. The status defaults to "En attente".
func ValidateNewAppointment(req AppointmentRequest, now time.Time) (model.RendezVous, error) {
	idPatient := strings.TrimSpace(req.IDPatient)
	nomPatient := strings.TrimSpace(req.NomPatient)
	if idPatient == "" || nomPatient == "" {
		return model.RendezVous{}, invalid(MsgPatientRequired)
	}
	if _, err := model.ParsePatientID(idPatient); err != nil {
		return model.RendezVous{}, invalid(MsgPatientRequired)
	}

	at, err := parseSlot(req.DateRdv, req.Heure, now.Location())
	if err != nil {
		return model.RendezVous{}, err
	}
	if at.Before(now) {
		return model.RendezVous{}, invalid(MsgPastDate)
	}

	status := strings.TrimSpace(req.Statut)
	if status == "" {
		status = model.RdvEnAttente
	}
	if !model.IsAppointmentStatus(status) {
		return model.RendezVous{}, invalid(MsgInvalidAppointmentStat)
	}
	if status == model.RdvTermine && at.After(now) {
		return model.RendezVous{}, invalid(MsgFutureTerminated)
	}

	return model.RendezVous{
		IDPatient:  idPatient,
		NomPatient: nomPatient,
		IDMedecin:  strings.TrimSpace(req.IDMedecin),
		NomMedecin: strings.TrimSpace(req.NomMedecin),
		DateRdv:    at.Format(model.DateLayout),
		Heure:      at.Format(model.TimeLayout),
		Motif:      req.Motif,
		Statut:     status,
	}, nil
}

// ApplyAppointmentUpdate merges patch into current. A terminated appointment is
// immutable; a changed date-time may not lie in the past; and an appointment can
// only be marked terminated once its date-time has passed.
func ApplyAppointmentUpdate(current model.RendezVous, patch AppointmentPatch, now time.Time) (model.RendezVous, error) {
	if current.Statut == model.RdvTermine {
		return current, invalid(MsgTerminatedImmutable)
	}

	next := current
	if patch.DateRdv != nil {
		next.DateRdv = strings.TrimSpace(*patch.DateRdv)
	}
	if patch.Heure != nil {
		next.Heure = strings.TrimSpace(*patch.Heure)
	}
	if patch.Motif != nil {
		next.Motif = *patch.Motif
	}
	if patch.IDMedecin != nil {
		next.IDMedecin = strings.TrimSpace(*patch.IDMedecin)
	}
	if patch.NomMedecin != nil {
		next.NomMedecin = strings.TrimSpace(*patch.NomMedecin)
	}
	if patch.Statut != nil {
		next.Statut = strings.TrimSpace(*patch.Statut)
	}
	if !model.IsAppointmentStatus(next.Statut) {
		return current, invalid(MsgInvalidAppointmentStat)
	}

	slotChanged := next.DateRdv != current.DateRdv || next.Heure != current.Heure
	if slotChanged {
		at, err := parseSlot(next.DateRdv, next.Heure, now.Location())
		if err != nil {
			return current, err
		}
		if at.Before(now) {
			return current, invalid(MsgPastDate)
		}
		next.DateRdv = at.Format(model.DateLayout)
		next.Heure = at.Format(model.TimeLayout)
	}

	if next.Statut == model.RdvTermine {
		at, err := parseSlot(next.DateRdv, next.Heure, now.Location())
		if err != nil {
			return current, err
		}
		if at.After(now) {
			return current, invalid(MsgFutureTerminated)
		}
	}

	return next, nil
}
