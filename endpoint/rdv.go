package endpoint

import (
	"errors"
	"net/http"

	"github.com/ariebrainware/clinique/ledger"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgAppointmentNotFound = MsgResourceNotFound

// lastRdvNone is the body of /last when the patient has no appointment.
type lastRdvNone struct {
	LastRdv *model.RendezVous `json:"last_rdv"`
}

// ListRdv godoc
// @Summary      List appointments
// @Description  Every appointment, most recent date first
// @Tags         RendezVous
// @Produce      json
// @Success      200 {array}  model.RendezVous
// @Failure      500 {object} util.APIError
// @Router       /api/rdv [get]
func (e *Env) ListRdv(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	rdvs := []model.RendezVous{}
	if err := db.Order("date_rdv DESC").Order("heure DESC").Find(&rdvs).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve appointments", Err: err})
		return
	}
	c.JSON(http.StatusOK, rdvs)
}

// GetRdv godoc
// @Summary      Get an appointment
// @Tags         RendezVous
// @Produce      json
// @Param        id path int true "Appointment id"
// @Success      200 {object} model.RendezVous
// @Failure      404 {object} util.APIError
// @Router       /api/rdv/{id} [get]
func (e *Env) GetRdv(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgAppointmentNotFound)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var rdv model.RendezVous
	if err := db.First(&rdv, id).Error; err != nil {
		respondError(c, err, msgAppointmentNotFound, "Failed to retrieve appointment")
		return
	}
	c.JSON(http.StatusOK, rdv)
}

// CreateRdv godoc
// @Summary      Create an appointment
// @Description  The date-time may not lie in the past; the status defaults to "En attente"
// @Tags         RendezVous
// @Accept       json
// @Produce      json
// @Param        request body ledger.AppointmentRequest true "Appointment"
// @Success      201 {object} model.RendezVous
// @Failure      400 {object} util.APIError
// @Failure      500 {object} util.APIError
// @Router       /api/rdv [post]
func (e *Env) CreateRdv(c *gin.Context) {
	var req ledger.AppointmentRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}
	rdv, err := ledger.ValidateNewAppointment(req, e.now())
	if err != nil {
		respondError(c, err, msgAppointmentNotFound, "Failed to create appointment")
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	if err := db.Create(&rdv).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create appointment", Err: err})
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Appointment created", Data: rdv})
}

// UpdateRdv godoc
// @Summary      Update an appointment
// @Description  Terminated appointments are immutable; only past appointments can be terminated
// @Tags         RendezVous
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment id"
// @Param        request body ledger.AppointmentPatch true "Fields to change"
// @Success      200 {object} model.RendezVous
// @Failure      400 {object} util.APIError
// @Failure      404 {object} util.APIError
// @Router       /api/rdv/{id} [put]
func (e *Env) UpdateRdv(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgAppointmentNotFound)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var patch ledger.AppointmentPatch
	if !bindJSONOrRespond(c, &patch, "Invalid request body") {
		return
	}

	var updated model.RendezVous
	err := db.Transaction(func(tx *gorm.DB) error {
		var current model.RendezVous
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		next, err := ledger.ApplyAppointmentUpdate(current, patch, e.now())
		if err != nil {
			return err
		}
		if err := tx.Save(&next).Error; err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		respondError(c, err, msgAppointmentNotFound, "Failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRdv godoc
// @Summary      Delete an appointment
// @Tags         RendezVous
// @Produce      json
// @Param        id path int true "Appointment id"
// @Success      200 {object} util.MessageResponse
// @Failure      404 {object} util.APIError
// @Router       /api/rdv/{id} [delete]
func (e *Env) DeleteRdv(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgAppointmentNotFound)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	res := db.Delete(&model.RendezVous{}, id)
	if res.Error != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete appointment", Err: res.Error})
		return
	}
	if res.RowsAffected == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: msgAppointmentNotFound, Err: gorm.ErrRecordNotFound})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Appointment deleted successfully"})
}

// TodayRdv godoc
// @Summary      Today's appointments
// @Description  Appointments dated today, ordered by time
// @Tags         RendezVous
// @Produce      json
// @Success      200 {array} model.RendezVous
// @Router       /api/rdv/today [get]
func (e *Env) TodayRdv(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	today := e.now().Format(model.DateLayout)
	rdvs := []model.RendezVous{}
	if err := db.Where("date_rdv = ?", today).Order("heure ASC").Find(&rdvs).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve appointments", Err: err})
		return
	}
	c.JSON(http.StatusOK, rdvs)
}

// LastRdv godoc
// @Summary      Last appointment of a patient
// @Description  Returns {"last_rdv": null} when the patient has none
// @Tags         RendezVous
// @Produce      json
// @Param        id path string true "Patient id"
// @Success      200 {object} model.RendezVous
// @Router       /api/rdv/patient/{id}/last [get]
func (e *Env) LastRdv(c *gin.Context) {
	patientID, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var rdv model.RendezVous
	err := db.Where("id_patient = ?", patientID.String()).
		Order("date_rdv DESC").Order("heure DESC").
		First(&rdv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, lastRdvNone{})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve appointment", Err: err})
		return
	}
	c.JSON(http.StatusOK, rdv)
}
