package enrich

// Appointment is a normalized dashboard appointment.
type Appointment struct {
	Time       string `json:"time" example:"09:00"`
	Patient    string `json:"patient" example:"Ahmed Benali"`
	PatientID  string `json:"patient_id" example:"PT001"`
	DoctorName string `json:"doctor_name" example:"Dr. Benali"`
	Reason     string `json:"reason" example:"Consultation générale"`
	Status     string `json:"status" example:"Confirmé"`
}

// Fallback values of normalized fields.
const (
	UnknownTime      = "??:??"
	UnknownPatient   = "Patient inconnu"
	UnknownPatientID = "INCONNU"
	NoReason         = "-"
	DefaultStatus    = "EN ATTENTE"
)

var (
	timeKeys      = []string{"heure", "time"}
	patientKeys   = []string{"patient", "nom_patient"}
	patientIDKeys = []string{"patient_id", "id_patient", "idPatient", "patientId"}
	doctorIDKeys  = []string{"medecin", "doctor_id", "id_medecin", "doctorId", "id_doctor"}
	reasonKeys    = []string{"motif", "reason"}
	statusKeys    = []string{"statut", "status"}
)

// PatientSource lists the patients used to backfill missing ids. It is called
// lazily, at most once per NormalizeAppointments call.
type PatientSource func() []PatientRef

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// NormalizeAppointment reconciles one raw appointment. patients may be nil.
func NormalizeAppointment(raw map[string]any, doctors []DoctorRef, patients []PatientRef) Appointment {
	patient := firstOf(raw, patientKeys...)
	patientID := firstOf(raw, patientIDKeys...)
	if patientID == "" && patient != "" {
		patientID, _ = MatchPatientID(patient, patients)
	}

	return Appointment{
		Time:       orDefault(firstOf(raw, timeKeys...), UnknownTime),
		Patient:    orDefault(patient, UnknownPatient),
		PatientID:  orDefault(patientID, UnknownPatientID),
		DoctorName: ResolveDoctorName(firstOf(raw, doctorIDKeys...), doctors),
		Reason:     orDefault(firstOf(raw, reasonKeys...), NoReason),
		Status:     orDefault(firstOf(raw, statusKeys...), DefaultStatus),
	}
}

// NormalizeAppointments normalizes every raw appointment, fetching the patient
// list only when some appointment lacks a patient id.
func NormalizeAppointments(raws []map[string]any, doctors []DoctorRef, patients PatientSource) []Appointment {
	var (
		list    []PatientRef
		fetched bool
	)
	out := make([]Appointment, 0, len(raws))
	for _, raw := range raws {
		if !fetched && patients != nil && firstOf(raw, patientIDKeys...) == "" && firstOf(raw, patientKeys...) != "" {
			list = patients()
			fetched = true
		}
		out = append(out, NormalizeAppointment(raw, doctors, list))
	}
	return out
}
