package endpoint

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgDoctorNotFound         = "Médecin non trouvé"
	msgDoctorNotFoundOnDelete = "Erreur: Médecin non trouvé"
	defaultDoctorName         = "Nouveau Docteur"
)

var errDoctorEmailTaken = errors.New("doctor email already in use")

// doctorView is a directory entry as listed by GET /api/doctors.
type doctorView struct {
	ID            uint    `json:"id" example:"1"`
	Name          string  `json:"name" example:"Benali"`
	NomComplet    string  `json:"nom_complet" example:"Benali"`
	Speciality    string  `json:"speciality" example:"Médecine Générale"`
	Status        string  `json:"status" example:"Disponible"`
	Patients      int     `json:"patients" example:"45"`
	PatientsTotal int     `json:"patients_total" example:"45"`
	Email         *string `json:"email,omitempty" example:"benali@clinique.dz"`
}

func newDoctorView(d model.Doctor) doctorView {
	status := d.Status
	if status == "" {
		status = model.DoctorUnknown
	}
	return doctorView{
		ID:            d.ID,
		Name:          d.Name,
		NomComplet:    d.Name,
		Speciality:    d.Speciality,
		Status:        status,
		Patients:      d.Patients,
		PatientsTotal: d.Patients,
		Email:         d.Email,
	}
}

// doctorRequest accepts ids and patient counts as JSON numbers or digit strings.
type doctorRequest struct {
	ID         any     `json:"id" swaggertype:"integer" example:"3"`
	Name       string  `json:"name" example:"Haddad"`
	Speciality string  `json:"speciality" example:"Cardiologie"`
	Status     string  `json:"status" example:"Disponible"`
	Patients   any     `json:"patients" swaggertype:"integer" example:"0"`
	Email      *string `json:"email" example:"haddad@clinique.dz"`
}

type doctorCreatedResponse struct {
	Message string       `json:"message" example:"Doctor added successfully"`
	Doctor  model.Doctor `json:"doctor"`
}

// flexibleUint reads a positive integer given as a JSON number or a digit string.
func flexibleUint(v any) (uint, bool) {
	switch n := v.(type) {
	case float64:
		if n > 0 && n == math.Trunc(n) && n <= math.MaxUint32 {
			return uint(n), true
		}
	case string:
		s := strings.TrimSpace(n)
		if s == "" || strings.Trim(s, "0123456789") != "" {
			return 0, false
		}
		id, err := strconv.ParseUint(s, 10, 32)
		if err == nil && id > 0 {
			return uint(id), true
		}
	}
	return 0, false
}

// toDoctor applies the directory defaults to a request.
func (r doctorRequest) toDoctor() model.Doctor {
	d := model.Doctor{
		Name:       strings.TrimSpace(r.Name),
		Speciality: strings.TrimSpace(r.Speciality),
		Status:     strings.TrimSpace(r.Status),
	}
	if d.Speciality == "" {
		d.Speciality = model.DoctorUnknown
	}
	if d.Status == "" {
		d.Status = model.DoctorDisponible
	}
	if n, ok := flexibleUint(r.Patients); ok {
		d.Patients = int(n)
	}
	if r.Email != nil {
		if email := strings.TrimSpace(*r.Email); email != "" {
			d.Email = &email
		}
	}
	return d
}

// upsertDoctor replaces the doctor with d.ID, creating it when missing. A zero
// id allocates the next one.
func upsertDoctor(db *gorm.DB, d *model.Doctor) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if d.Email != nil {
			var n int64
			if err := tx.Model(&model.Doctor{}).Where("email = ? AND id <> ?", *d.Email, d.ID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return errDoctorEmailTaken
			}
		}
		if d.ID == 0 {
			return tx.Create(d).Error
		}
		var current model.Doctor
		err := tx.First(&current, d.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(d).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&current).
			Select("name", "speciality", "status", "patients", "email").
			Updates(d).Error
	})
}

func respondDoctorWriteError(c *gin.Context, err error, msg string) {
	if errors.Is(err, errDoctorEmailTaken) {
		util.CallUserError(c, util.APIErrorParams{Msg: "Email already in use", Err: err})
		return
	}
	util.CallServerError(c, util.APIErrorParams{Msg: msg, Err: err})
}

// ListDoctors godoc
// @Summary      List doctors
// @Tags         Doctors
// @Produce      json
// @Success      200 {array}  doctorView
// @Failure      500 {object} util.APIError
// @Router       /api/doctors [get]
func (e *Env) ListDoctors(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var doctors []model.Doctor
	if err := db.Order("id ASC").Find(&doctors).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve doctors", Err: err})
		return
	}
	views := make([]doctorView, 0, len(doctors))
	for _, d := range doctors {
		views = append(views, newDoctorView(d))
	}
	c.JSON(http.StatusOK, views)
}

// GetDoctor godoc
// @Summary      Get a doctor
// @Tags         Doctors
// @Produce      json
// @Param        id path int true "Doctor id"
// @Success      200 {object} model.Doctor
// @Failure      404 {object} util.APIError
// @Router       /api/doctors/{id} [get]
func (e *Env) GetDoctor(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgDoctorNotFound)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var d model.Doctor
	if err := db.First(&d, id).Error; err != nil {
		respondError(c, err, msgDoctorNotFound, "Failed to retrieve doctor")
		return
	}
	c.JSON(http.StatusOK, d)
}

// CreateDoctor godoc
// @Summary      Add a doctor
// @Description  An explicit numeric id replaces the doctor with that id
// @Tags         Doctors
// @Accept       json
// @Produce      json
// @Param        request body doctorRequest true "Doctor"
// @Success      200 {object} doctorCreatedResponse
// @Failure      400 {object} util.APIError
// @Failure      500 {object} util.APIError
// @Router       /api/doctors [post]
func (e *Env) CreateDoctor(c *gin.Context) {
	var req doctorRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		util.CallUserError(c, util.APIErrorParams{Msg: "Name is required", Err: errEmptyField})
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	d := req.toDoctor()
	if id, ok := flexibleUint(req.ID); ok {
		d.ID = id
	}
	if err := upsertDoctor(db, &d); err != nil {
		respondDoctorWriteError(c, err, "Failed to add doctor")
		return
	}
	c.JSON(http.StatusOK, doctorCreatedResponse{Message: "Doctor added successfully", Doctor: d})
}

// UpdateDoctor godoc
// @Summary      Replace a doctor
// @Description  Creates the doctor when the id is unknown
// @Tags         Doctors
// @Accept       json
// @Produce      json
// @Param        id      path int           true "Doctor id"
// @Param        request body doctorRequest true "Doctor"
// @Success      200 {object} util.MessageResponse
// @Failure      400 {object} util.APIError
// @Router       /api/doctors/{id} [put]
func (e *Env) UpdateDoctor(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgDoctorNotFound)
	if !ok {
		return
	}
	var req doctorRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	d := req.toDoctor()
	d.ID = id
	if d.Name == "" {
		var current model.Doctor
		if err := db.First(&current, id).Error; err == nil {
			d.Name = current.Name
		} else {
			d.Name = defaultDoctorName
		}
	}
	if err := upsertDoctor(db, &d); err != nil {
		respondDoctorWriteError(c, err, "Failed to update doctor")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor updated successfully"})
}

// DeleteDoctor godoc
// @Summary      Delete a doctor
// @Tags         Doctors
// @Produce      json
// @Param        id path int true "Doctor id"
// @Success      200 {object} util.MessageResponse
// @Failure      404 {object} util.APIError
// @Router       /api/doctors/{id} [delete]
func (e *Env) DeleteDoctor(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgDoctorNotFoundOnDelete)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	res := db.Delete(&model.Doctor{}, id)
	if res.Error != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete doctor", Err: res.Error})
		return
	}
	if res.RowsAffected == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: msgDoctorNotFoundOnDelete, Err: gorm.ErrRecordNotFound})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: fmt.Sprintf("Médecin %d supprimé.", id)})
}
