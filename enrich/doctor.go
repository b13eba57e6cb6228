package enrich

import (
	"regexp"
	"strings"
)

// DoctorRef is the part of a directory entry needed to resolve names.
type DoctorRef struct {
	ID   string
	Name string
}

var doctorPrefix = regexp.MustCompile(`(?i)^(?:dr(?:\.\s*|\s+))+`)

// CleanDoctorName removes any number of leading "Dr"/"Dr." title prefixes.
// "Dr" only counts as a title when followed by a dot or a space, so names
// such as "Driss" are kept intact.
func CleanDoctorName(name string) string {
	name = strings.TrimSpace(name)
	return strings.TrimSpace(doctorPrefix.ReplaceAllString(name, ""))
}

// DoctorRefsFromRaw reads doctor references from decoded JSON objects, accepting
// both the directory keys (id, name) and the legacy ones (id_medecin, nom_complet).
func DoctorRefsFromRaw(raw []map[string]any) []DoctorRef {
	refs := make([]DoctorRef, 0, len(raw))
	for _, d := range raw {
		refs = append(refs, DoctorRef{
			ID:   firstOf(d, "id", "id_medecin"),
			Name: firstOf(d, "name", "nom_complet"),
		})
	}
	return refs
}

// ResolveDoctorName turns a doctor id into a display name using doctors.
func ResolveDoctorName(id string, doctors []DoctorRef) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "ID Manquant"
	}
	for _, d := range doctors {
		if d.ID != id {
			continue
		}
		if name := CleanDoctorName(d.Name); name != "" {
			return "Dr. " + name
		}
		return "Dr. " + id + " (Nom Vide)"
	}
	if name := CleanDoctorName(id); name != "" {
		return name
	}
	return "Dr. " + id
}
