package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ariebrainware/clinique/middleware"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgAdminNotFound = "Administrateur non trouvé"

// successResponse is the body of the admin write endpoints.
type successResponse struct {
	Success bool `json:"success" example:"true"`
}

// AdminView is a staff account as listed by GET /api/admins.
type AdminView struct {
	ID    uint   `json:"id" example:"1"`
	Nom   string `json:"nom" example:"Moh Imad"`
	Email string `json:"email" example:"moh@gmail.com"`
	Role  string `json:"role" example:"Directeur"`
}

type addAdminRequest struct {
	Nom      string `json:"nom" binding:"required" example:"Moh"`
	Email    string `json:"email" binding:"required" example:"moh@gmail.com"`
	Password string `json:"password" binding:"required" example:"dirc1"`
	Role     string `json:"role" binding:"required" example:"Directeur"`
}

type updateAdminRequest struct {
	ID       uint    `json:"id" binding:"required" example:"1"`
	Nom      *string `json:"nom" example:"Moh"`
	Email    *string `json:"email" example:"moh@gmail.com"`
	Password *string `json:"password" example:"new-secret"`
	Role     *string `json:"role" example:"Secrétaire"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required" example:"moh@gmail.com"`
	NewPassword string `json:"new_password" binding:"required" example:"new-secret"`
}

type countResponse struct {
	Count int64 `json:"count" example:"3"`
}

func adminDisplayName(u model.StaffUser) string {
	if name := strings.TrimSpace(u.Nom + " " + u.Prenom); name != "" {
		return name
	}
	return "Non défini"
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse{Success: true})
}

func validRoleOrRespond(c *gin.Context, role string) bool {
	if !model.IsStaffRole(role) {
		util.CallUserError(c, util.APIErrorParams{Msg: "Rôle invalide", Err: fmt.Errorf("role %q", role)})
		return false
	}
	return true
}

// ListAdmins godoc
// @Summary      List staff accounts
// @Description  Directors and secretaries; password hashes are never returned
// @Tags         Admins
// @Produce      json
// @Success      200 {array}  AdminView
// @Failure      500 {object} util.APIError
// @Router       /api/admins [get]
func (e *Env) ListAdmins(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var users []model.StaffUser
	err := db.Where("role IN ?", []string{model.RoleDirecteur, model.RoleSecretaire}).Order("id ASC").Find(&users).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve admins", Err: err})
		return
	}
	views := make([]AdminView, 0, len(users))
	for _, u := range users {
		views = append(views, AdminView{ID: u.ID, Nom: adminDisplayName(u), Email: u.Email, Role: u.Role})
	}
	c.JSON(http.StatusOK, views)
}

// AddAdmin godoc
// @Summary      Add a staff account
// @Tags         Admins
// @Accept       json
// @Produce      json
// @Param        request body addAdminRequest true "Account"
// @Success      200 {object} successResponse
// @Failure      400 {object} util.APIError
// @Router       /api/admins/add [post]
func (e *Env) AddAdmin(c *gin.Context) {
	var req addAdminRequest
	if !bindJSONOrRespond(c, &req, "No data provided") {
		return
	}
	if !validRoleOrRespond(c, req.Role) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	email := strings.TrimSpace(req.Email)
	taken, err := emailInUse(db, email)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	if taken {
		util.CallUserError(c, util.APIErrorParams{Msg: msgEmailTaken, Err: fmt.Errorf("email %s already in use", email)})
		return
	}
	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to hash password", Err: err})
		return
	}
	user := model.StaffUser{Nom: strings.TrimSpace(req.Nom), Email: email, Password: hashed, Role: req.Role}
	if err := db.Create(&user).Error; err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Failed to create admin", Err: err})
		return
	}
	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventAdminCreated,
		AccountID: util.AccountKey(model.AccountStaff, user.ID),
		Email:     user.Email,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   "Staff account created with role " + user.Role,
	})
	respondSuccess(c)
}

// UpdateAdmin godoc
// @Summary      Update a staff account
// @Description  Absent fields are kept; a new password is hashed and closes the account's sessions
// @Tags         Admins
// @Accept       json
// @Produce      json
// @Param        request body updateAdminRequest true "Changes"
// @Success      200 {object} successResponse
// @Failure      400 {object} util.APIError
// @Failure      404 {object} util.APIError
// @Router       /api/admins/update [post]
func (e *Env) UpdateAdmin(c *gin.Context) {
	var req updateAdminRequest
	if !bindJSONOrRespond(c, &req, "Invalid data") {
		return
	}
	if req.Role != nil && !validRoleOrRespond(c, *req.Role) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var user model.StaffUser
	if err := db.First(&user, req.ID).Error; err != nil {
		respondError(c, err, msgAdminNotFound, "Failed to retrieve admin")
		return
	}

	if req.Nom != nil {
		user.Nom = strings.TrimSpace(*req.Nom)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != user.Email {
			taken, err := emailInUse(db, email)
			if err != nil {
				util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
				return
			}
			if taken {
				util.CallUserError(c, util.APIErrorParams{Msg: msgEmailTaken, Err: fmt.Errorf("email %s already in use", email)})
				return
			}
			user.Email = email
		}
	}
	passwordChanged := req.Password != nil && *req.Password != ""
	if passwordChanged {
		hashed, err := util.HashPassword(*req.Password)
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to hash password", Err: err})
			return
		}
		user.Password = hashed
	}
	if err := db.Save(&user).Error; err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Failed to update admin", Err: err})
		return
	}
	if passwordChanged {
		if err := closeSessions(c, db, model.AccountStaff, user.ID); err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to close sessions", Err: err})
			return
		}
	}
	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventAdminUpdated,
		AccountID: util.AccountKey(model.AccountStaff, user.ID),
		Email:     user.Email,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   "Staff account updated",
	})
	respondSuccess(c)
}

// DeleteAdmin godoc
// @Summary      Delete a staff account
// @Tags         Admins
// @Produce      json
// @Param        id path int true "Account id"
// @Success      200 {object} successResponse
// @Failure      404 {object} util.APIError
// @Router       /api/admins/delete/{id} [delete]
func (e *Env) DeleteAdmin(c *gin.Context) {
	id, ok := uintParamOrRespond(c, "id", msgAdminNotFound)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	if err := db.Unscoped().Delete(&model.StaffUser{}, id).Error; err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Failed to delete admin", Err: err})
		return
	}
	if err := closeSessions(c, db, model.AccountStaff, id); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to close sessions", Err: err})
		return
	}
	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventAdminDeleted,
		AccountID: util.AccountKey(model.AccountStaff, id),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   "Staff account deleted",
	})
	respondSuccess(c)
}

// closeSessions deletes the stored and cached sessions of an account.
func closeSessions(c *gin.Context, db *gorm.DB, kind string, id uint) error {
	if err := db.Where("account_kind = ? AND account_id = ?", kind, id).Delete(&model.Session{}).Error; err != nil {
		return err
	}
	return util.InvalidateAccountSessions(c.Request.Context(), util.AccountKey(kind, id))
}

// ResetPassword godoc
// @Summary      Reset a password
// @Description  Looks the email up in the staff accounts, then the doctor accounts, and closes that account's sessions
// @Tags         Admins
// @Accept       json
// @Produce      json
// @Param        request body resetPasswordRequest true "Email and new password"
// @Success      200 {object} successResponse
// @Failure      400 {object} util.APIError
// @Failure      404 {object} util.APIError
// @Router       /api/reset-password [post]
func (e *Env) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !bindJSONOrRespond(c, &req, "Données invalides") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	hashed, err := util.HashPassword(req.NewPassword)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to hash password", Err: err})
		return
	}
	email := strings.TrimSpace(req.Email)

	kind, id, err := resetAccountPassword(db, email, hashed)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Email non trouvé", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to reset password", Err: err})
		return
	}
	if err := closeSessions(c, db, kind, id); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to close sessions", Err: err})
		return
	}

	key := util.AccountKey(kind, id)
	c.Set(middleware.AccountKey, key)
	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventPasswordReset,
		AccountID: key,
		Email:     email,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   "Password reset",
	})
	respondSuccess(c)
}

// resetAccountPassword stores hashed for the staff account with email, or
// failing that the doctor account. It returns gorm.ErrRecordNotFound when
// neither exists.
func resetAccountPassword(db *gorm.DB, email, hashed string) (kind string, id uint, err error) {
	var staff model.StaffUser
	err = db.Where("email = ?", email).First(&staff).Error
	if err == nil {
		return model.AccountStaff, staff.ID, db.Model(&staff).Update("password", hashed).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", 0, err
	}
	var doc model.DoctorAccount
	if err := db.Where("email = ?", email).First(&doc).Error; err != nil {
		return "", 0, err
	}
	return model.AccountDoctor, doc.ID, db.Model(&doc).Update("password", hashed).Error
}

// DoctorsCount godoc
// @Summary      Number of doctor accounts
// @Tags         Admins
// @Produce      json
// @Success      200 {object} countResponse
// @Router       /api/doctors-count [get]
func (e *Env) DoctorsCount(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var n int64
	if err := db.Model(&model.DoctorAccount{}).Count(&n).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to count doctors", Err: err})
		return
	}
	c.JSON(http.StatusOK, countResponse{Count: n})
}

// RdvStats godoc
// @Summary      Revenue statistics
// @Description  Proxied from the rdv service; zeroed current-year statistics when unavailable
// @Tags         Proxy
// @Produce      json
// @Success      200 {object} ledger.YearStats
// @Router       /api/rdv/stats [get]
func (e *Env) RdvStats(c *gin.Context) {
	c.JSON(http.StatusOK, e.Remote.RevenueStats(c.Request.Context(), e.now()))
}

// RdvStatsHistory godoc
// @Summary      Revenue history
// @Description  Proxied from the rdv service; empty when unavailable
// @Tags         Proxy
// @Produce      json
// @Success      200 {array} ledger.YearHistory
// @Router       /api/rdv/stats/historique [get]
func (e *Env) RdvStatsHistory(c *gin.Context) {
	c.JSON(http.StatusOK, e.Remote.RevenueHistory(c.Request.Context()))
}

// RdvToday godoc
// @Summary      Today's appointments
// @Description  Proxied from the rdv service; empty when unavailable
// @Tags         Proxy
// @Produce      json
// @Success      200 {array} model.RendezVous
// @Router       /api/rdv/rdv_today [get]
func (e *Env) RdvToday(c *gin.Context) {
	today := e.Remote.TodayAppointments(c.Request.Context())
	if today == nil {
		today = []map[string]any{}
	}
	c.JSON(http.StatusOK, today)
}
