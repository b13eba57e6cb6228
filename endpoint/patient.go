package endpoint

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ariebrainware/clinique/ledger"
	"github.com/ariebrainware/clinique/logging"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/photo"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgPatientNotFound   = MsgResourceNotFound
	msgUnsupportedPhoto  = "Unsupported photo type"
	msgPhotoTooLarge     = "Photo too large"
	patientNumberWidth   = 3
	defaultMaxUploadMB   = 5
	multipartFieldsSlack = 1 << 20
)

var requiredPatientFields = []string{"nom", "prenom", "date_naissance", "sexe", "telephone", "adresse", "groupe_sanguin"}

// upload is a photo received with a patient form.
type upload struct {
	file   multipart.File
	header *multipart.FileHeader
}

func (u *upload) Close() {
	if u != nil {
		u.file.Close()
	}
}

func (e *Env) maxUploadBytes() int64 {
	mb := defaultMaxUploadMB
	if e.Config != nil && e.Config.MaxUploadMB > 0 {
		mb = e.Config.MaxUploadMB
	}
	return int64(mb) << 20
}

// parsePatientFormOrRespond parses a multipart or url-encoded patient form and
// returns the optional photo.
func (e *Env) parsePatientFormOrRespond(c *gin.Context) (*upload, bool) {
	limit := e.maxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartFieldsSlack)
	if err := c.Request.ParseMultipartForm(limit); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			util.CallUserError(c, util.APIErrorParams{Msg: msgPhotoTooLarge, Err: err})
			return nil, false
		}
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid form data", Err: err})
		return nil, false
	}

	file, header, err := c.Request.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, true
	}
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid form data", Err: err})
		return nil, false
	}
	if header.Filename == "" {
		file.Close()
		return nil, true
	}
	if header.Size > limit {
		file.Close()
		util.CallUserError(c, util.APIErrorParams{Msg: msgPhotoTooLarge, Err: fmt.Errorf("photo is %d bytes", header.Size)})
		return nil, false
	}
	return &upload{file: file, header: header}, true
}

// savePhoto stores up for patient id and returns the stored name.
func (e *Env) savePhoto(c *gin.Context, patientID string, up *upload) (string, error) {
	name, err := photo.ObjectName(patientID, up.header.Filename)
	if err != nil {
		return "", &ledger.ValidationError{Msg: msgUnsupportedPhoto}
	}
	if e.Photos == nil {
		return "", errors.New("photo store not configured")
	}
	if err := e.Photos.Save(c.Request.Context(), name, up.file, up.header.Size); err != nil {
		return "", fmt.Errorf("save photo %s: %w", name, err)
	}
	return name, nil
}

func (e *Env) deletePhoto(c *gin.Context, name string) {
	if name == "" || name == model.DefaultPhoto || e.Photos == nil {
		return
	}
	if err := e.Photos.Delete(c.Request.Context(), name); err != nil {
		logging.L().Warn().Err(err).Str("photo", name).Msg("failed to delete photo")
	}
}

// ListPatients godoc
// @Summary      List patients
// @Description  Optional substring search on nom, prenom, telephone and id; ordered by nom
// @Tags         Patients
// @Produce      json
// @Param        q query string false "Search text"
// @Success      200 {array}  model.Patient
// @Failure      500 {object} util.APIError
// @Router       /api/patients [get]
func (e *Env) ListPatients(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	query := db.Order("nom ASC")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("nom LIKE ? OR prenom LIKE ? OR telephone LIKE ? OR id LIKE ?", like, like, like, like)
	}
	patients := []model.Patient{}
	if err := query.Find(&patients).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve patients", Err: err})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func loadPatient(db *gorm.DB, id model.PatientID) (model.Patient, error) {
	var p model.Patient
	err := db.Where("id = ?", id.String()).First(&p).Error
	return p, err
}

// GetPatient godoc
// @Summary      Get a patient
// @Description  The patient with its observations and prescriptions
// @Tags         Patients
// @Produce      json
// @Param        id path string true "Patient id"
// @Success      200 {object} model.PatientDetail
// @Failure      404 {object} util.APIError
// @Router       /api/patients/{id} [get]
func (e *Env) GetPatient(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var p model.Patient
	err := db.Preload("Observations", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("Ordonnances", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Where("id = ?", id.String()).
		First(&p).Error
	if err != nil {
		respondError(c, err, msgPatientNotFound, "Failed to retrieve patient")
		return
	}
	detail := model.PatientDetail{Patient: p, Observations: p.Observations, Ordonnances: p.Ordonnances}
	if detail.Observations == nil {
		detail.Observations = []model.Observation{}
	}
	if detail.Ordonnances == nil {
		detail.Ordonnances = []model.Ordonnance{}
	}
	c.JSON(http.StatusOK, detail)
}

// CreatePatient godoc
// @Summary      Create a patient
// @Description  Multipart form with an optional photo; the id is allocated as PTnnn
// @Tags         Patients
// @Accept       multipart/form-data
// @Produce      json
// @Param        nom            formData string true  "Last name"
// @Param        prenom         formData string true  "First name"
// @Param        date_naissance formData string true  "Birth date (YYYY-MM-DD)"
// @Param        sexe           formData string true  "Sex"
// @Param        telephone      formData string true  "Phone"
// @Param        email          formData string false "Email"
// @Param        adresse        formData string true  "Address"
// @Param        groupe_sanguin formData string true  "Blood group"
// @Param        allergies      formData string false "Allergies"
// @Param        maladies       formData string false "Diseases"
// @Param        photo          formData file   false "Photo"
// @Success      201 {object} model.Patient
// @Failure      400 {object} util.APIError
// @Failure      500 {object} util.APIError
// @Router       /api/patients [post]
func (e *Env) CreatePatient(c *gin.Context) {
	up, ok := e.parsePatientFormOrRespond(c)
	if !ok {
		return
	}
	defer up.Close()

	for _, field := range requiredPatientFields {
		if strings.TrimSpace(c.PostForm(field)) == "" {
			util.CallUserError(c, util.APIErrorParams{Msg: "Missing required field: " + field, Err: fmt.Errorf("%s is empty", field)})
			return
		}
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	p := model.Patient{
		Nom:           strings.TrimSpace(c.PostForm("nom")),
		Prenom:        strings.TrimSpace(c.PostForm("prenom")),
		DateNaissance: strings.TrimSpace(c.PostForm("date_naissance")),
		Sexe:          strings.TrimSpace(c.PostForm("sexe")),
		Telephone:     strings.TrimSpace(c.PostForm("telephone")),
		Email:         strings.TrimSpace(c.PostForm("email")),
		Adresse:       strings.TrimSpace(c.PostForm("adresse")),
		GroupeSanguin: strings.TrimSpace(c.PostForm("groupe_sanguin")),
		Allergies:     c.PostForm("allergies"),
		Maladies:      c.PostForm("maladies"),
		Photo:         model.DefaultPhoto,
	}

	var saved string
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := model.NextCode(tx, model.PatientPrefix, patientNumberWidth)
		if err != nil {
			return err
		}
		p.ID = id
		if up != nil {
			name, err := e.savePhoto(c, id, up)
			if err != nil {
				return err
			}
			saved = name
			p.Photo = name
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		e.deletePhoto(c, saved)
		respondError(c, err, msgPatientNotFound, "Failed to create patient")
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Patient created", Data: p})
}

// UpdatePatient godoc
// @Summary      Update a patient
// @Description  Partial update from a multipart form; a new photo replaces the stored one
// @Tags         Patients
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path     string true  "Patient id"
// @Param        photo formData file   false "Photo"
// @Success      200 {object} model.Patient
// @Failure      400 {object} util.APIError
// @Failure      404 {object} util.APIError
// @Router       /api/patients/{id} [put]
func (e *Env) UpdatePatient(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	up, ok := e.parsePatientFormOrRespond(c)
	if !ok {
		return
	}
	defer up.Close()
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	p, err := loadPatient(db, id)
	if err != nil {
		respondError(c, err, msgPatientNotFound, "Failed to retrieve patient")
		return
	}

	fields := map[string]*string{
		"nom":            &p.Nom,
		"prenom":         &p.Prenom,
		"date_naissance": &p.DateNaissance,
		"sexe":           &p.Sexe,
		"telephone":      &p.Telephone,
		"email":          &p.Email,
		"adresse":        &p.Adresse,
		"groupe_sanguin": &p.GroupeSanguin,
		"allergies":      &p.Allergies,
		"maladies":       &p.Maladies,
	}
	for name, dst := range fields {
		if v, ok := c.GetPostForm(name); ok {
			*dst = v
		}
	}

	oldPhoto := p.Photo
	var saved string
	if up != nil {
		saved, err = e.savePhoto(c, p.ID, up)
		if err != nil {
			respondError(c, err, msgPatientNotFound, "Failed to save photo")
			return
		}
		p.Photo = saved
	}
	if err := db.Save(&p).Error; err != nil {
		if saved != oldPhoto {
			e.deletePhoto(c, saved)
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update patient", Err: err})
		return
	}
	if saved != "" && saved != oldPhoto {
		e.deletePhoto(c, oldPhoto)
	}
	c.JSON(http.StatusOK, p)
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Deletes the patient, its observations, prescriptions and photo
// @Tags         Patients
// @Produce      json
// @Param        id path string true "Patient id"
// @Success      200 {object} util.MessageResponse
// @Failure      404 {object} util.APIError
// @Router       /api/patients/{id} [delete]
func (e *Env) DeletePatient(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var p model.Patient
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = loadPatient(tx, id); err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", p.ID).Delete(&model.Observation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", p.ID).Delete(&model.Ordonnance{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", p.ID).Delete(&model.Patient{}).Error
	})
	if err != nil {
		respondError(c, err, msgPatientNotFound, "Failed to delete patient")
		return
	}
	e.deletePhoto(c, p.Photo)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patient deleted successfully"})
}

// PatientLastRdv godoc
// @Summary      Last appointment of a patient
// @Description  Proxied from the rdv service; {"last_rdv": null} when unknown or unavailable
// @Tags         Patients
// @Produce      json
// @Param        id path string true "Patient id"
// @Success      200 {object} map[string]interface{}
// @Router       /api/patients/{id}/last-rdv [get]
func (e *Env) PatientLastRdv(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	last := e.Remote.LastAppointment(c.Request.Context(), id.String())
	if last == nil {
		c.JSON(http.StatusOK, lastRdvNone{})
		return
	}
	c.JSON(http.StatusOK, last)
}
