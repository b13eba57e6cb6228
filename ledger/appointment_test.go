package ledger

import (
	"testing"
	"time"

	"github.com/ariebrainware/clinique/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func assertValidation(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, msg, err.Error())
}

func TestValidateNewAppointment(t *testing.T) {
	base := AppointmentRequest{IDPatient: "PT001", NomPatient: "Ahmed Benali", DateRdv: "2025-06-11", Heure: "09:00"}

	tests := []struct {
		name    string
		mutate  func(r *AppointmentRequest)
		wantMsg string
	}{
		{name: "missing patient id", mutate: func(r *AppointmentRequest) { r.IDPatient = "" }, wantMsg: MsgPatientRequired},
		{name: "missing patient name", mutate: func(r *AppointmentRequest) { r.NomPatient = "  " }, wantMsg: MsgPatientRequired},
		{name: "bad date", mutate: func(r *AppointmentRequest) { r.DateRdv = "11/06/2025" }, wantMsg: MsgInvalidDateTime},
		{name: "bad time", mutate: func(r *AppointmentRequest) { r.Heure = "9h" }, wantMsg: MsgInvalidDateTime},
		{name: "yesterday", mutate: func(r *AppointmentRequest) { r.DateRdv = "2025-06-09" }, wantMsg: MsgPastDate},
		{name: "earlier today", mutate: func(r *AppointmentRequest) { r.DateRdv = "2025-06-10"; r.Heure = "13:59" }, wantMsg: MsgPastDate},
		{name: "unknown status", mutate: func(r *AppointmentRequest) { r.Statut = "Done" }, wantMsg: MsgInvalidAppointmentStat},
		{name: "terminated in the future", mutate: func(r *AppointmentRequest) { r.Statut = model.RdvTermine }, wantMsg: MsgFutureTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := ValidateNewAppointment(req, fixedNow)
			assertValidation(t, err, tt.wantMsg)
		})
	}
}

func TestValidateNewAppointment_DefaultsToEnAttente(t *testing.T) {
	rdv, err := ValidateNewAppointment(AppointmentRequest{
		IDPatient: " PT001 ", NomPatient: "Ahmed Benali", IDMedecin: "1",
		DateRdv: "2025-06-11", Heure: "9:05", Motif: "Contrôle",
	}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, model.RdvEnAttente, rdv.Statut)
	assert.Equal(t, "PT001", rdv.IDPatient)
	assert.Equal(t, "2025-06-11", rdv.DateRdv)
	assert.Equal(t, "09:05", rdv.Heure)
}

func TestValidateNewAppointment_NowIsNotPast(t *testing.T) {
	_, err := ValidateNewAppointment(AppointmentRequest{
		IDPatient: "PT001", NomPatient: "A B", DateRdv: "2025-06-10", Heure: "14:00",
	}, fixedNow)
	assert.NoError(t, err)
}

func TestApplyAppointmentUpdate_TerminatedIsImmutable(t *testing.T) {
	current := model.RendezVous{DateRdv: "2025-06-01", Heure: "10:00", Statut: model.RdvTermine}

	patches := []AppointmentPatch{
		{},
		{Motif: strPtr("autre")},
		{Statut: strPtr(model.RdvEnAttente)},
	}
	for _, p := range patches {
		_, err := ApplyAppointmentUpdate(current, p, fixedNow)
		assertValidation(t, err, MsgTerminatedImmutable)
	}
}

func TestApplyAppointmentUpdate_PastDateOnlyWhenChanged(t *testing.T) {
	current := model.RendezVous{DateRdv: "2025-06-01", Heure: "10:00", Statut: model.RdvConfirme}

	next, err := ApplyAppointmentUpdate(current, AppointmentPatch{
		DateRdv: strPtr("2025-06-01"), Heure: strPtr("10:00"), Motif: strPtr("Suivi"),
	}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Suivi", next.Motif)

	_, err = ApplyAppointmentUpdate(current, AppointmentPatch{Heure: strPtr("11:00")}, fixedNow)
	assertValidation(t, err, MsgPastDate)

	next, err = ApplyAppointmentUpdate(current, AppointmentPatch{DateRdv: strPtr("2025-06-12")}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-12", next.DateRdv)
	assert.Equal(t, "10:00", next.Heure)
}

func TestApplyAppointmentUpdate_Terminate(t *testing.T) {
	past := model.RendezVous{DateRdv: "2025-06-10", Heure: "09:00", Statut: model.RdvEnCours}
	next, err := ApplyAppointmentUpdate(past, AppointmentPatch{Statut: strPtr(model.RdvTermine)}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, model.RdvTermine, next.Statut)

	future := model.RendezVous{DateRdv: "2025-06-11", Heure: "09:00", Statut: model.RdvConfirme}
	_, err = ApplyAppointmentUpdate(future, AppointmentPatch{Statut: strPtr(model.RdvTermine)}, fixedNow)
	assertValidation(t, err, MsgFutureTerminated)

	_, err = ApplyAppointmentUpdate(past, AppointmentPatch{
		DateRdv: strPtr("2025-06-20"), Statut: strPtr(model.RdvTermine),
	}, fixedNow)
	assertValidation(t, err, MsgFutureTerminated)
}

func TestApplyAppointmentUpdate_RejectsUnknownStatusAndBadFormat(t *testing.T) {
	current := model.RendezVous{DateRdv: "2025-06-11", Heure: "09:00", Statut: model.RdvEnAttente}

	_, err := ApplyAppointmentUpdate(current, AppointmentPatch{Statut: strPtr("Fini")}, fixedNow)
	assertValidation(t, err, MsgInvalidAppointmentStat)

	_, err = ApplyAppointmentUpdate(current, AppointmentPatch{Heure: strPtr("25:00")}, fixedNow)
	assertValidation(t, err, MsgInvalidDateTime)
}

func TestApplyAppointmentUpdate_DoesNotMutateCurrent(t *testing.T) {
	current := model.RendezVous{DateRdv: "2025-06-11", Heure: "09:00", Statut: model.RdvEnAttente, Motif: "a"}
	_, err := ApplyAppointmentUpdate(current, AppointmentPatch{Motif: strPtr("b")}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "a", current.Motif)
}
