package endpoint

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/ariebrainware/clinique/document"
	"github.com/ariebrainware/clinique/enrich"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ordonnanceNumberWidth = 3

var errEmptyField = errors.New("required field is blank")

// defaultAuthor signs observations posted without an author.
const defaultAuthor = "D001"

type observationRequest struct {
	Texte    string `json:"texte" binding:"required" example:"Tension normale"`
	AuteurID string `json:"auteur_id" example:"D001"`
}

type ordonnanceRequest struct {
	Medicaments string `json:"medicaments" binding:"required" example:"Paracétamol 1g, 3 fois par jour"`
}

// AddObservation godoc
// @Summary      Add an observation
// @Description  Appends a note dated today to the patient
// @Tags         Patients
// @Accept       json
// @Produce      json
// @Param        id      path string             true "Patient id"
// @Param        request body observationRequest true "Observation"
// @Success      201 {object} model.Observation
// @Failure      400 {object} util.APIError
// @Failure      404 {object} util.APIError
// @Router       /api/patients/{id}/observations [post]
func (e *Env) AddObservation(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	p, err := loadPatient(db, id)
	if err != nil {
		respondError(c, err, msgPatientNotFound, "Failed to retrieve patient")
		return
	}
	var req observationRequest
	if !bindJSONOrRespond(c, &req, "Observation text is required") {
		return
	}
	if strings.TrimSpace(req.Texte) == "" {
		util.CallUserError(c, util.APIErrorParams{Msg: "Observation text is required", Err: errEmptyField})
		return
	}

	obs := model.Observation{
		Date:      e.now().Format(model.DateLayout),
		Texte:     req.Texte,
		AuteurID:  req.AuteurID,
		PatientID: p.ID,
	}
	if strings.TrimSpace(obs.AuteurID) == "" {
		obs.AuteurID = defaultAuthor
	}
	if err := db.Create(&obs).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to add observation", Err: err})
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Observation created", Data: obs})
}

// AddOrdonnance godoc
// @Summary      Add a prescription
// @Description  One medication per line; the id is allocated as ORDnnn
// @Tags         Patients
// @Accept       json
// @Produce      json
// @Param        id      path string            true "Patient id"
// @Param        request body ordonnanceRequest true "Prescription"
// @Success      201 {object} model.Ordonnance
// @Failure      400 {object} util.APIError
// @Failure      404 {object} util.APIError
// @Router       /api/patients/{id}/ordonnances [post]
func (e *Env) AddOrdonnance(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	p, err := loadPatient(db, id)
	if err != nil {
		respondError(c, err, msgPatientNotFound, "Failed to retrieve patient")
		return
	}
	var req ordonnanceRequest
	if !bindJSONOrRespond(c, &req, "Medications are required") {
		return
	}
	if strings.TrimSpace(req.Medicaments) == "" {
		util.CallUserError(c, util.APIErrorParams{Msg: "Medications are required", Err: errEmptyField})
		return
	}

	ord := model.Ordonnance{
		Date:        e.now().Format(model.DateLayout),
		Medicaments: req.Medicaments,
		PatientID:   p.ID,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		code, err := model.NextCode(tx, model.OrdonnancePrefix, ordonnanceNumberWidth)
		if err != nil {
			return err
		}
		ord.ID = code
		return tx.Create(&ord).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to add prescription", Err: err})
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Prescription created", Data: ord})
}

// ListOrdonnances godoc
// @Summary      Prescriptions of a patient
// @Tags         Patients
// @Produce      json
// @Param        id path string true "Patient id"
// @Success      200 {array}  model.Ordonnance
// @Failure      404 {object} util.APIError
// @Router       /api/patients/{id}/ordonnances [get]
func (e *Env) ListOrdonnances(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	if _, err := loadPatient(db, id); err != nil {
		respondError(c, err, msgPatientNotFound, "Failed to retrieve patient")
		return
	}
	ords := []model.Ordonnance{}
	if err := db.Where("patient_id = ?", id.String()).Order("id ASC").Find(&ords).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve prescriptions", Err: err})
		return
	}
	c.JSON(http.StatusOK, ords)
}

// OrdonnancePDF godoc
// @Summary      Printable prescription
// @Description  A4 PDF naming the doctor of the patient's last appointment
// @Tags         Patients
// @Produce      application/pdf
// @Param        id    path string true "Patient id"
// @Param        ordId path string true "Prescription id"
// @Success      200 {file}   binary
// @Failure      404 {object} util.APIError
// @Router       /api/patients/{id}/ordonnances/{ordId}/pdf [get]
func (e *Env) OrdonnancePDF(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	p, err := loadPatient(db, id)
	if err != nil {
		respondError(c, err, msgPatientNotFound, "Failed to retrieve patient")
		return
	}
	var ord model.Ordonnance
	err = db.Where("id = ? AND patient_id = ?", c.Param("ordId"), p.ID).First(&ord).Error
	if err != nil {
		respondError(c, err, msgPatientNotFound, "Failed to retrieve prescription")
		return
	}

	doc := document.Ordonnance{
		PatientName: p.FullName(),
		Date:        ord.Date,
		Doctor:      e.prescriber(c, p.ID),
		Medications: ord.MedicationLines(),
	}
	doc.Age, doc.HasAge = p.Age(e.now())

	var buf bytes.Buffer
	if err := document.OrdonnancePDF(&buf, doc); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to render prescription", Err: err})
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+document.Filename(p.Nom, ord.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// prescriber names the doctor of the patient's last appointment.
func (e *Env) prescriber(c *gin.Context, patientID string) string {
	last := e.Remote.LastAppointment(c.Request.Context(), patientID)
	if name, _ := last["nom_medecin"].(string); name != "" {
		if clean := enrich.CleanDoctorName(name); clean != "" {
			return "Dr. " + clean
		}
	}
	return document.DefaultDoctor
}
