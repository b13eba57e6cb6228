package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDoctorName(t *testing.T) {
	tests := map[string]string{
		"Benali":            "Benali",
		"Dr. Benali":        "Benali",
		"dr benali":         "benali",
		"DR.Benali":         "Benali",
		"Dr. Dr. Meziane":   "Meziane",
		"  dr.  dr Meziane": "Meziane",
		"Driss Haddad":      "Driss Haddad",
		"":                  "",
		"Dr. ":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, CleanDoctorName(in), "input %q", in)
	}
}

func TestResolveDoctorName(t *testing.T) {
	doctors := []DoctorRef{
		{ID: "1", Name: "Dr. Benali"},
		{ID: "2", Name: "Meziane"},
		{ID: "3", Name: ""},
	}

	assert.Equal(t, "Dr. Benali", ResolveDoctorName("1", doctors))
	assert.Equal(t, "Dr. Meziane", ResolveDoctorName(" 2 ", doctors))
	assert.Equal(t, "Dr. 3 (Nom Vide)", ResolveDoctorName("3", doctors))
	assert.Equal(t, "ID Manquant", ResolveDoctorName("", doctors))
	assert.Equal(t, "Haddad", ResolveDoctorName("Dr. Haddad", doctors))
	assert.Equal(t, "42", ResolveDoctorName("42", nil))
}

func TestDoctorRefsFromRaw(t *testing.T) {
	refs := DoctorRefsFromRaw([]map[string]any{
		{"id": float64(1), "name": "Benali"},
		{"id_medecin": "7", "nom_complet": "Dr. Haddad"},
	})

	assert.Equal(t, []DoctorRef{{ID: "1", Name: "Benali"}, {ID: "7", Name: "Dr. Haddad"}}, refs)
}

func TestMockDoctors(t *testing.T) {
	refs := MockDoctors()
	assert.Equal(t, []DoctorRef{{ID: "1", Name: "Benali"}, {ID: "2", Name: "Meziane"}}, refs)
}
