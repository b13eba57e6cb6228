package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerInfoBasic(t *testing.T) {
	require.NotNil(t, SwaggerInfo)
	assert.NotEmpty(t, SwaggerInfo.Title)
	assert.Contains(t, SwaggerInfo.SwaggerTemplate, "paths")
}

func TestSwaggerDocIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	for _, p := range []string{"/api/rdv", "/api/factures/{id}", "/api/patients/{id}/ordonnances/{ordId}/pdf", "/api/doctors", "/login", "/api/admins"} {
		assert.Contains(t, doc.Paths, p)
	}
	assert.Contains(t, doc.Definitions, "model.Facture")
}
