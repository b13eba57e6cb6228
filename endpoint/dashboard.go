package endpoint

import (
	"fmt"
	"net/http"

	"github.com/ariebrainware/clinique/enrich"
	"github.com/ariebrainware/clinique/logging"
	"github.com/ariebrainware/clinique/middleware"
	"github.com/ariebrainware/clinique/model"
	"github.com/gin-gonic/gin"
)

// patientOverview is the doctor-side aggregate of one patient.
type patientOverview struct {
	Patient     any              `json:"patient"`
	LastRdv     map[string]any   `json:"last_rdv"`
	Ordonnances []map[string]any `json:"ordonnances"`
}

// unknownPatient stands in for a patient the patients service could not return.
type unknownPatient struct {
	Patient string `json:"patient" example:"Patient ID PT001 Inconnu"`
	ID      string `json:"id" example:"PT001"`
}

// directory returns the local doctors as references, or the default doctors
// when the directory is empty or unreadable.
func directory(c *gin.Context) []enrich.DoctorRef {
	db := middleware.GetDB(c)
	if db == nil {
		return enrich.MockDoctors()
	}
	var doctors []model.Doctor
	if err := db.Find(&doctors).Error; err != nil {
		logging.L().Warn().Err(err).Msg("doctors directory unavailable, using defaults")
		return enrich.MockDoctors()
	}
	if len(doctors) == 0 {
		return enrich.MockDoctors()
	}
	return enrich.DoctorRefs(doctors)
}

// Appointments godoc
// @Summary      Today's dashboard appointments
// @Description  Appointments of the rdv service (or the demo set) with doctor names resolved and patient ids backfilled
// @Tags         Dashboard
// @Produce      json
// @Success      200 {array} enrich.Appointment
// @Router       /api/appointments [get]
func (e *Env) Appointments(c *gin.Context) {
	ctx := c.Request.Context()
	raws := e.Remote.TodayAppointments(ctx)
	if len(raws) == 0 {
		raws = enrich.MockAppointments()
	}
	patients := func() []enrich.PatientRef {
		return enrich.PatientRefsFromRaw(e.Remote.Patients(ctx))
	}
	c.JSON(http.StatusOK, enrich.NormalizeAppointments(raws, directory(c), patients))
}

// PatientOverview godoc
// @Summary      Patient overview
// @Description  Patient record, last appointment and prescriptions gathered from the sibling services
// @Tags         Dashboard
// @Produce      json
// @Param        id path string true "Patient id"
// @Success      200 {object} patientOverview
// @Failure      400 {object} util.APIError
// @Router       /api/patient/{id} [get]
func (e *Env) PatientOverview(c *gin.Context) {
	id, ok := patientIDOrRespond(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	out := patientOverview{
		Patient:     unknownPatient{Patient: fmt.Sprintf("Patient ID %s Inconnu", id), ID: id.String()},
		LastRdv:     map[string]any{},
		Ordonnances: e.Remote.PatientOrdonnances(ctx, id.String()),
	}
	if p := e.Remote.Patient(ctx, id.String()); p != nil {
		out.Patient = p
	}
	if last := e.Remote.LastAppointment(ctx, id.String()); last != nil {
		out.LastRdv = last
	}
	c.JSON(http.StatusOK, out)
}
