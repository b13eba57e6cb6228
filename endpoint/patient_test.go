package endpoint

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ariebrainware/clinique/config"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/photo"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formFile struct {
	name string
	body []byte
}

func patientForm() map[string]string {
	return map[string]string{
		"nom":            "Benali",
		"prenom":         "Ahmed",
		"date_naissance": "1985-04-12",
		"sexe":           "M",
		"telephone":      "0550123456",
		"adresse":        "12 rue Didouche Mourad, Alger",
		"groupe_sanguin": "A+",
		"allergies":      "Pénicilline",
	}
}

func sendForm(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, file *formFile) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("photo", file.name)
		require.NoError(t, err)
		_, err = fw.Write(file.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return doRequest(r, method, path, &buf, http.Header{"Content-Type": {mw.FormDataContentType()}})
}

func photoDir(t *testing.T, env *Env) string {
	t.Helper()
	store, ok := env.Photos.(*photo.LocalStore)
	require.True(t, ok)
	return store.Dir
}

func TestCreatePatient_AssignsSequentialIDs(t *testing.T) {
	env := newTestEnv(t, newClock())
	r, _ := setupService(t, config.ServicePatients, env)

	w := sendForm(t, r, http.MethodPost, "/api/patients", patientForm(), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decodeBody[model.Patient](t, w)
	assert.Equal(t, "PT001", first.ID)
	assert.Equal(t, model.DefaultPhoto, first.Photo)
	assert.Equal(t, "Ahmed Benali", first.NomComplet)

	form := patientForm()
	form["nom"] = "Amrani"
	w = sendForm(t, r, http.MethodPost, "/api/patients", form, &formFile{name: "my photo.png", body: []byte("png")})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	second := decodeBody[model.Patient](t, w)
	assert.Equal(t, "PT002", second.ID)
	assert.Equal(t, "PT002_my_photo.png", second.Photo)
	assert.FileExists(t, filepath.Join(photoDir(t, env), second.Photo))
}

func TestCreatePatient_Rejections(t *testing.T) {
	env := newTestEnv(t, newClock())
	r, db := setupService(t, config.ServicePatients, env)

	form := patientForm()
	delete(form, "telephone")
	w := sendForm(t, r, http.MethodPost, "/api/patients", form, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required field: telephone", errorMessage(t, w))

	w = sendForm(t, r, http.MethodPost, "/api/patients", patientForm(), &formFile{name: "script.exe", body: []byte("MZ")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgUnsupportedPhoto, errorMessage(t, w))

	var n int64
	require.NoError(t, db.Model(&model.Patient{}).Count(&n).Error)
	assert.Zero(t, n)

	// Rolled back creations do not burn patient numbers.
	w = sendForm(t, r, http.MethodPost, "/api/patients", patientForm(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "PT001", decodeBody[model.Patient](t, w).ID)
}

func TestCreatePatient_PhotoTooLarge(t *testing.T) {
	env := newTestEnv(t, newClock())
	cfg := *env.Config
	cfg.MaxUploadMB = 1
	env.Config = &cfg
	r, db := setupService(t, config.ServicePatients, env)

	big := bytes.Repeat([]byte("x"), 3<<19)
	w := sendForm(t, r, http.MethodPost, "/api/patients", patientForm(), &formFile{name: "big.jpg", body: big})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgPhotoTooLarge, errorMessage(t, w))

	var n int64
	require.NoError(t, db.Model(&model.Patient{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestPatients_ListSearchAndGet(t *testing.T) {
	r, _ := setupService(t, config.ServicePatients, newTestEnv(t, newClock()))

	for _, nom := range []string{"Zeroual", "Amrani"} {
		form := patientForm()
		form["nom"] = nom
		require.Equal(t, http.StatusCreated, sendForm(t, r, http.MethodPost, "/api/patients", form, nil).Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeBody[[]model.Patient](t, w)
	require.Len(t, all, 2)
	assert.Equal(t, "Amrani", all[0].Nom)

	w = doJSON(t, r, http.MethodGet, "/api/patients?q=zero", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decodeBody[[]model.Patient](t, w)
	require.Len(t, found, 1)
	assert.Equal(t, "PT001", found[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/patients/PT001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody[map[string]any](t, w)
	assert.Equal(t, "Zeroual", detail["nom"])
	assert.Equal(t, []any{}, detail["observations"])
	assert.Equal(t, []any{}, detail["ordonnances"])

	w = doJSON(t, r, http.MethodGet, "/api/patients/PT999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/patients/"+strings.Repeat("9", 51), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePatient_ReplacesPhoto(t *testing.T) {
	env := newTestEnv(t, newClock())
	r, _ := setupService(t, config.ServicePatients, env)
	dir := photoDir(t, env)

	w := sendForm(t, r, http.MethodPost, "/api/patients", patientForm(), &formFile{name: "a.jpg", body: []byte("a")})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.FileExists(t, filepath.Join(dir, "PT001_a.jpg"))

	w = sendForm(t, r, http.MethodPut, "/api/patients/PT001", map[string]string{"telephone": "0660000000"}, &formFile{name: "b.png", body: []byte("b")})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p := decodeBody[model.Patient](t, w)
	assert.Equal(t, "0660000000", p.Telephone)
	assert.Equal(t, "Benali", p.Nom)
	assert.Equal(t, "PT001_b.png", p.Photo)
	assert.FileExists(t, filepath.Join(dir, "PT001_b.png"))
	assert.NoFileExists(t, filepath.Join(dir, "PT001_a.jpg"))

	w = sendForm(t, r, http.MethodPut, "/api/patients/PT404", map[string]string{"nom": "x"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePatient_CascadesAndRemovesPhoto(t *testing.T) {
	env := newTestEnv(t, newClock())
	r, db := setupService(t, config.ServicePatients, env)

	w := sendForm(t, r, http.MethodPost, "/api/patients", patientForm(), &formFile{name: "a.jpg", body: []byte("a")})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/patients/PT001/observations", map[string]any{"texte": "RAS"}).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/patients/PT001/ordonnances", map[string]any{"medicaments": "Doliprane"}).Code)

	w = doJSON(t, r, http.MethodDelete, "/api/patients/PT001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Patient deleted successfully", decodeBody[map[string]any](t, w)["message"])

	_, err := os.Stat(filepath.Join(photoDir(t, env), "PT001_a.jpg"))
	assert.True(t, os.IsNotExist(err))
	var obs, ords int64
	require.NoError(t, db.Model(&model.Observation{}).Count(&obs).Error)
	require.NoError(t, db.Model(&model.Ordonnance{}).Count(&ords).Error)
	assert.Zero(t, obs)
	assert.Zero(t, ords)

	w = doJSON(t, r, http.MethodDelete, "/api/patients/PT001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestObservationsAndOrdonnances(t *testing.T) {
	clock := newClock()
	r, _ := setupService(t, config.ServicePatients, newTestEnv(t, clock))
	require.Equal(t, http.StatusCreated, sendForm(t, r, http.MethodPost, "/api/patients", patientForm(), nil).Code)

	w := doJSON(t, r, http.MethodPost, "/api/patients/PT001/observations", map[string]any{"texte": "Tension normale"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	obs := decodeBody[model.Observation](t, w)
	assert.Equal(t, "2025-01-14", obs.Date)
	assert.Equal(t, "D001", obs.AuteurID)

	w = doJSON(t, r, http.MethodPost, "/api/patients/PT001/observations", map[string]any{"texte": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/patients/PT404/observations", map[string]any{"texte": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	for i, want := range []string{"ORD001", "ORD002"} {
		w = doJSON(t, r, http.MethodPost, "/api/patients/PT001/ordonnances", map[string]any{"medicaments": "Paracétamol 1g\nVitamine C"})
		require.Equal(t, http.StatusCreated, w.Code, "ordonnance %d", i)
		assert.Equal(t, want, decodeBody[model.Ordonnance](t, w).ID)
	}
	w = doJSON(t, r, http.MethodPost, "/api/patients/PT001/ordonnances", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/patients/PT001/ordonnances", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]model.Ordonnance](t, w), 2)
	w = doJSON(t, r, http.MethodGet, "/api/patients/PT404/ordonnances", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/patients/PT001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody[model.PatientDetail](t, w)
	assert.Len(t, detail.Observations, 1)
	assert.Len(t, detail.Ordonnances, 2)
}

func TestOrdonnancePDF(t *testing.T) {
	clock := newClock()
	rdv := newFakeSibling(t, map[string]any{
		"/api/rdv/patient/PT001/last": map[string]any{"nom_medecin": "Dr.Karim Haddad"},
	})
	ep := deadEndpoints()
	ep.RDV = rdv.URL
	r, _ := setupService(t, config.ServicePatients, newTestEnvWithEndpoints(t, clock, ep))
	require.Equal(t, http.StatusCreated, sendForm(t, r, http.MethodPost, "/api/patients", patientForm(), nil).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/patients/PT001/ordonnances", map[string]any{"medicaments": "Paracétamol 1g"}).Code)

	w := doJSON(t, r, http.MethodGet, "/api/patients/PT001/ordonnances/ORD001/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Ordonnance_Benali_ORD001.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
	assert.Contains(t, rdv.requests, "GET /api/rdv/patient/PT001/last")

	w = doJSON(t, r, http.MethodGet, "/api/patients/PT001/ordonnances/ORD999/pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatientLastRdv_FallsBackToNull(t *testing.T) {
	r, _ := setupService(t, config.ServicePatients, newTestEnv(t, newClock()))

	w := doJSON(t, r, http.MethodGet, "/api/patients/PT001/last-rdv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"last_rdv": null}`, w.Body.String())
}
