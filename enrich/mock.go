package enrich

import (
	"strconv"

	"github.com/ariebrainware/clinique/model"
)

// MockAppointments is the dashboard dataset used when the rdv service has
// nothing to offer. The keys follow the legacy mock layout.
func MockAppointments() []map[string]any {
	return []map[string]any{
		{
			"heure":      "09:00",
			"patient":    "Ahmed Benali",
			"patient_id": float64(1),
			"medecin":    float64(1),
			"motif":      "Consultation générale",
			"statut":     "Confirmé",
		},
		{
			"heure":      "10:30",
			"patient":    "Fatima Meziane",
			"patient_id": float64(2),
			"medecin":    float64(2),
			"motif":      "Contrôle pédiatrique",
			"statut":     "EN ATTENTE",
		},
	}
}

// MockDoctors returns the default doctors as references.
func MockDoctors() []DoctorRef {
	return DoctorRefs(model.DefaultDoctors())
}

// DoctorRefs converts directory rows into references.
func DoctorRefs(doctors []model.Doctor) []DoctorRef {
	refs := make([]DoctorRef, 0, len(doctors))
	for _, d := range doctors {
		refs = append(refs, DoctorRef{ID: strconv.FormatUint(uint64(d.ID), 10), Name: d.Name})
	}
	return refs
}
