package enrich

import "strings"

// PatientRef is the part of a patient record needed to match names.
type PatientRef struct {
	ID       string
	FullName string
}

// PatientRefsFromRaw reads patient references ("prenom nom") from decoded JSON objects.
func PatientRefsFromRaw(raw []map[string]any) []PatientRef {
	refs := make([]PatientRef, 0, len(raw))
	for _, p := range raw {
		full := strings.TrimSpace(text(p["prenom"]) + " " + text(p["nom"]))
		if full == "" {
			full = text(p["nom_complet"])
		}
		refs = append(refs, PatientRef{ID: text(p["id"]), FullName: full})
	}
	return refs
}

// MatchPatientID finds the id of the patient called name.
//
// Matching policy: a case-insensitive exact match on the full name wins;
// otherwise the first patient, in list order, whose full name contains name
// (case-insensitive) is taken. Homonyms and partial names can therefore
// resolve to the wrong patient; callers must treat the result as a hint.
func MatchPatientID(name string, patients []PatientRef) (string, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return "", false
	}
	for _, p := range patients {
		if p.ID != "" && strings.ToLower(p.FullName) == query {
			return p.ID, true
		}
	}
	for _, p := range patients {
		if p.ID != "" && strings.Contains(strings.ToLower(p.FullName), query) {
			return p.ID, true
		}
	}
	return "", false
}
