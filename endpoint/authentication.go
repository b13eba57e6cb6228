package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ariebrainware/clinique/middleware"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/remote"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// SessionCookie carries the session token of browser clients.
	SessionCookie = "session_token"
	// SessionHeader carries the session token of API clients.
	SessionHeader = "session-token"

	defaultSessionTTL  = time.Hour
	doctorsFrontendURL = "http://localhost:3000"
)

const (
	msgInvalidCredentials = "Identifiants invalides."
	msgEmailTaken         = "Cet email est déjà utilisé."
)

var errInvalidCredentials = errors.New("invalid credentials")

var dashboardByRole = map[string]string{
	model.RoleDirecteur:  "/directeur/dashboard",
	model.RoleSecretaire: "/secretaire/dashboard",
	model.RoleDocteur:    doctorsFrontendURL,
}

// AccountView is the public part of a logged-in account.
type AccountView struct {
	ID     uint   `json:"id" example:"1"`
	Nom    string `json:"nom" example:"Moh"`
	Prenom string `json:"prenom" example:"Imad"`
	Email  string `json:"email" example:"moh@gmail.com"`
	Role   string `json:"role" example:"Directeur"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message  string      `json:"message" example:"Connecté avec succès !"`
	Role     string      `json:"role" example:"Directeur"`
	User     AccountView `json:"user"`
	Token    string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Redirect string      `json:"redirect" example:"/directeur/dashboard"`
}

// account is a staff user or a doctor account matched by a login.
type account struct {
	Kind string
	AccountView
}

func (a account) key() string {
	return util.AccountKey(a.Kind, a.ID)
}

type clientInfo struct {
	IP    string
	Agent string
}

type loginContext struct {
	C     *gin.Context
	DB    *gorm.DB
	Email string
	CI    clientInfo
}

func (e *Env) sessionTTL() time.Duration {
	if e.Config != nil && e.Config.SessionTTL > 0 {
		return e.Config.SessionTTL
	}
	return defaultSessionTTL
}

func (e *Env) secureCookies() bool {
	return e.Config != nil && e.Config.AppEnv == "production"
}

// Login godoc
// @Summary      Login or doctor signup
// @Description  form_type=login authenticates staff, then doctor accounts. form_type=signup registers a doctor.
// @Tags         Authentication
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        form_type  formData string true  "login or signup"
// @Param        email      formData string true  "Email"
// @Param        password   formData string true  "Password"
// @Param        nom        formData string false "Last name (signup)"
// @Param        prenom     formData string false "First name (signup)"
// @Param        telephone  formData string false "Phone (signup)"
// @Param        specialite formData string false "Speciality (signup)"
// @Success      200 {object} LoginResponse
// @Success      201 {object} util.MessageResponse
// @Failure      400 {object} util.APIError
// @Failure      429 {object} util.APIError
// @Failure      500 {object} util.APIError
// @Router       /login [post]
func (e *Env) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if email == "" || password == "" {
		util.CallUserError(c, util.APIErrorParams{Msg: "Email et mot de passe requis.", Err: errEmptyField})
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	ctx := loginContext{C: c, DB: db, Email: email, CI: clientInfo{IP: c.ClientIP(), Agent: c.Request.UserAgent()}}

	switch c.PostForm("form_type") {
	case "login":
		e.login(ctx, password)
	case "signup":
		e.signup(ctx, password)
	default:
		util.CallUserError(c, util.APIErrorParams{Msg: "Type de formulaire invalide.", Err: fmt.Errorf("form_type %q", c.PostForm("form_type"))})
	}
}

func (e *Env) login(ctx loginContext, password string) {
	acc, err := findAccount(ctx.DB, ctx.Email, password)
	if errors.Is(err, errInvalidCredentials) {
		util.LogLoginFailure(ctx.Email, ctx.CI.IP, ctx.CI.Agent, "invalid credentials")
		util.CallUserError(ctx.C, util.APIErrorParams{Msg: msgInvalidCredentials, Err: err})
		return
	}
	if err != nil {
		util.LogLoginFailure(ctx.Email, ctx.CI.IP, ctx.CI.Agent, "database error")
		util.CallServerError(ctx.C, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	now := e.now()
	expires := now.Add(e.sessionTTL())
	token, err := createJWTToken(acc, now, expires)
	if err != nil {
		util.LogLoginFailure(ctx.Email, ctx.CI.IP, ctx.CI.Agent, "token generation failed")
		util.CallServerError(ctx.C, util.APIErrorParams{Msg: "Could not generate token", Err: err})
		return
	}
	session := model.Session{
		SessionToken: token,
		AccountKind:  acc.Kind,
		AccountID:    acc.ID,
		Email:        acc.Email,
		Role:         acc.Role,
		ClientIP:     ctx.CI.IP,
		UserAgent:    ctx.CI.Agent,
		ExpiresAt:    expires,
	}
	if err := ctx.DB.Create(&session).Error; err != nil {
		util.LogLoginFailure(ctx.Email, ctx.CI.IP, ctx.CI.Agent, "session creation failed")
		util.CallServerError(ctx.C, util.APIErrorParams{Msg: "Failed to record session", Err: err})
		return
	}

	reqCtx := ctx.C.Request.Context()
	if err := util.StoreSession(reqCtx, token, acc.key(), e.sessionTTL()); err != nil {
		util.LogSecurityEvent(util.SecurityEvent{EventType: util.EventLoginSuccess, AccountID: acc.key(), Email: acc.Email, IP: ctx.CI.IP, Message: fmt.Sprintf("Failed to cache session: %v", err)})
	}
	_ = middleware.ResetRateLimit(reqCtx, ctx.CI.IP, ctx.C.Request.URL.Path)

	ctx.C.Set(middleware.AccountKey, acc.key())
	ctx.C.SetSameSite(http.SameSiteLaxMode)
	ctx.C.SetCookie(SessionCookie, token, int(e.sessionTTL().Seconds()), "/", "", e.secureCookies(), true)
	util.LogLoginSuccess(acc.key(), acc.Email, ctx.CI.IP, ctx.CI.Agent)

	message := "Connecté avec succès !"
	if acc.Kind == model.AccountDoctor {
		message = fmt.Sprintf("Bienvenue Dr. %s !", acc.Prenom)
	}
	ctx.C.JSON(http.StatusOK, LoginResponse{
		Message:  message,
		Role:     acc.Role,
		User:     acc.AccountView,
		Token:    token,
		Redirect: dashboardByRole[acc.Role],
	})
}

// findAccount probes the staff table, then the doctor table. The first
// account whose password matches wins.
func findAccount(db *gorm.DB, email, password string) (account, error) {
	var staff model.StaffUser
	err := db.Where("email = ?", email).First(&staff).Error
	switch {
	case err == nil && util.VerifyPassword(staff.Password, password):
		return account{Kind: model.AccountStaff, AccountView: AccountView{ID: staff.ID, Nom: staff.Nom, Prenom: staff.Prenom, Email: staff.Email, Role: staff.Role}}, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return account{}, err
	}

	var doc model.DoctorAccount
	err = db.Where("email = ?", email).First(&doc).Error
	switch {
	case err == nil && util.VerifyPassword(doc.Password, password):
		return account{Kind: model.AccountDoctor, AccountView: AccountView{ID: doc.ID, Nom: doc.Nom, Prenom: doc.Prenom, Email: doc.Email, Role: model.RoleDocteur}}, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return account{}, err
	}
	return account{}, errInvalidCredentials
}

func createJWTToken(acc account, issued, expires time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   acc.key(),
		"email": acc.Email,
		"role":  acc.Role,
		"iat":   issued.Unix(),
		"exp":   expires.Unix(),
		"jti":   uuid.NewString(),
	})
	return token.SignedString(util.GetJWTSecretByte())
}

func emailInUse(db *gorm.DB, email string) (bool, error) {
	var n int64
	if err := db.Model(&model.StaffUser{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := db.Model(&model.DoctorAccount{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (e *Env) signup(ctx loginContext, password string) {
	c := ctx.C
	nom := strings.TrimSpace(c.PostForm("nom"))
	prenom := strings.TrimSpace(c.PostForm("prenom"))
	specialite := strings.TrimSpace(c.PostForm("specialite"))
	if nom == "" || prenom == "" {
		util.CallUserError(c, util.APIErrorParams{Msg: "Nom et prénom requis.", Err: errEmptyField})
		return
	}

	taken, err := emailInUse(ctx.DB, ctx.Email)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	if taken {
		logSignupFailure(ctx, "email already in use")
		util.CallUserError(c, util.APIErrorParams{Msg: msgEmailTaken, Err: fmt.Errorf("email %s already in use", ctx.Email)})
		return
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to hash password", Err: err})
		return
	}

	reg := remote.DoctorRegistration{
		Name:       nom + " " + prenom,
		Speciality: specialite,
		Status:     model.DoctorDisponible,
		Email:      ctx.Email,
	}
	if err := e.Remote.RegisterDoctor(c.Request.Context(), reg); err != nil {
		logSignupFailure(ctx, "doctors service rejected registration")
		util.CallServerError(c, util.APIErrorParams{Msg: "Erreur lors de la création du compte", Err: err})
		return
	}

	doc := model.DoctorAccount{
		Nom:        nom,
		Prenom:     prenom,
		Telephone:  strings.TrimSpace(c.PostForm("telephone")),
		Email:      ctx.Email,
		Specialite: specialite,
		Password:   hashed,
	}
	if err := ctx.DB.Create(&doc).Error; err != nil {
		logSignupFailure(ctx, "account creation failed")
		util.CallServerError(c, util.APIErrorParams{Msg: "Erreur lors de la création du compte", Err: err})
		return
	}

	key := util.AccountKey(model.AccountDoctor, doc.ID)
	c.Set(middleware.AccountKey, key)
	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventSignupSuccess,
		AccountID: key,
		Email:     doc.Email,
		IP:        ctx.CI.IP,
		UserAgent: ctx.CI.Agent,
		Message:   "Doctor account created",
	})
	util.CallCreated(c, util.APISuccessParams{Msg: "Compte médecin créé avec succès !"})
}

func logSignupFailure(ctx loginContext, reason string) {
	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventSignupFailure,
		Email:     ctx.Email,
		IP:        ctx.CI.IP,
		UserAgent: ctx.CI.Agent,
		Message:   "Signup failed: " + reason,
	})
}

// sessionToken reads the token from the session-token header, then the cookie.
func sessionToken(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader(SessionHeader)); t != "" {
		return t
	}
	t, _ := c.Cookie(SessionCookie)
	return t
}

// Logout godoc
// @Summary      Logout
// @Description  Deletes the session named by the session-token header or cookie and clears the cookie
// @Tags         Authentication
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} util.MessageResponse
// @Failure      401 {object} util.APIError
// @Router       /logout [get]
func (e *Env) Logout(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Session token not provided", Err: fmt.Errorf("session token not provided")})
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var session model.Session
	err := db.Where("session_token = ?", token).First(&session).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	if err == nil {
		key := util.AccountKey(session.AccountKind, session.AccountID)
		if err := db.Delete(&session).Error; err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete session", Err: err})
			return
		}
		if err := util.RemoveSession(c.Request.Context(), key, token); err != nil {
			util.LogSecurityEvent(util.SecurityEvent{EventType: util.EventLogout, AccountID: key, IP: c.ClientIP(), Message: fmt.Sprintf("Failed to drop cached session: %v", err)})
		}
		c.Set(middleware.AccountKey, key)
		util.LogLogout(key, session.Email, c.ClientIP(), c.Request.UserAgent())
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", e.secureCookies(), true)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Déconnexion réussie."})
}

// sessionClaims is the body of a valid token check.
type sessionClaims struct {
	Account   string    `json:"account" example:"staff:1"`
	Email     string    `json:"email" example:"moh@gmail.com"`
	Role      string    `json:"role" example:"Directeur"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ValidateToken godoc
// @Summary      Validate session token
// @Description  Checks the token signature and that its session is still open
// @Tags         Authentication
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} sessionClaims
// @Failure      401 {object} util.APIError
// @Router       /token/validate [get]
func (e *Env) ValidateToken(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Invalid session token", Err: fmt.Errorf("session token not provided")})
		return
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return util.GetJWTSecretByte(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(e.now))
	if err != nil {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Invalid session token", Err: err})
		return
	}

	if key, ok, err := util.SessionAccount(c.Request.Context(), token); err == nil && ok {
		sub, _ := claims.GetSubject()
		if key != sub {
			util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Invalid session token", Err: fmt.Errorf("cached session belongs to %s", key)})
			return
		}
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var session model.Session
	err = db.Where("session_token = ? AND expires_at > ?", token, e.now()).First(&session).Error
	if err != nil {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Session not found", Err: err})
		return
	}
	c.JSON(http.StatusOK, sessionClaims{
		Account:   util.AccountKey(session.AccountKind, session.AccountID),
		Email:     session.Email,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}
