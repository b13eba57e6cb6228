package endpoint

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ariebrainware/clinique/config"
	"github.com/ariebrainware/clinique/middleware"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupAuth builds the auth service with seeded staff, a miniredis session
// cache and security events persisted to the service database.
func setupAuth(t *testing.T, env *Env) (*gin.Engine, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	r, db := setupService(t, config.ServiceAuth, env)
	require.NoError(t, model.SeedStaffUsers(db, util.HashPassword))

	mr := miniredis.RunT(t)
	config.SetRedisClientForTest(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	util.SetSecurityLoggerDB(db)
	t.Cleanup(func() {
		config.ResetRedisClientForTest()
		util.SetSecurityLoggerDB(nil)
	})
	return r, db, mr
}

func postForm(r http.Handler, path string, form url.Values, header http.Header) *httptest.ResponseRecorder {
	h := http.Header{"Content-Type": {"application/x-www-form-urlencoded"}}
	for k, vs := range header {
		h[k] = vs
	}
	return doRequest(r, http.MethodPost, path, strings.NewReader(form.Encode()), h)
}

func loginForm(email, password string) url.Values {
	return url.Values{"form_type": {"login"}, "email": {email}, "password": {password}}
}

func login(t *testing.T, r http.Handler, email, password string) LoginResponse {
	t.Helper()
	w := postForm(r, "/login", loginForm(email, password), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody[LoginResponse](t, w)
}

func sessionHeader(token string) http.Header {
	return http.Header{SessionHeader: {token}}
}

func TestLogin_StaffAccount(t *testing.T) {
	r, db, mr := setupAuth(t, newTestEnv(t, newClock()))

	w := postForm(r, "/login", loginForm("moh@gmail.com", "dirc1"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[LoginResponse](t, w)
	assert.Equal(t, "Connecté avec succès !", resp.Message)
	assert.Equal(t, model.RoleDirecteur, resp.Role)
	assert.Equal(t, "/directeur/dashboard", resp.Redirect)
	assert.Equal(t, "moh@gmail.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, resp.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var session model.Session
	require.NoError(t, db.Where("session_token = ?", resp.Token).First(&session).Error)
	assert.Equal(t, model.AccountStaff, session.AccountKind)

	cached, err := mr.Get("session:" + resp.Token)
	require.NoError(t, err)
	assert.Equal(t, util.AccountKey(model.AccountStaff, session.AccountID), cached)

	var events int64
	require.NoError(t, db.Model(&model.SecurityLog{}).Where("event_type = ?", string(util.EventLoginSuccess)).Count(&events).Error)
	assert.Equal(t, int64(1), events)
}

func TestLogin_Rejections(t *testing.T) {
	r, db, _ := setupAuth(t, newTestEnv(t, newClock()))

	w := postForm(r, "/login", loginForm("moh@gmail.com", "wrong"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidCredentials, errorMessage(t, w))

	w = postForm(r, "/login", loginForm("nobody@gmail.com", "dirc1"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgInvalidCredentials, errorMessage(t, w))

	w = postForm(r, "/login", url.Values{"form_type": {"login"}, "email": {"moh@gmail.com"}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email et mot de passe requis.", errorMessage(t, w))

	w = postForm(r, "/login", url.Values{"form_type": {"reset"}, "email": {"moh@gmail.com"}, "password": {"x"}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Type de formulaire invalide.", errorMessage(t, w))

	var failures int64
	require.NoError(t, db.Model(&model.SecurityLog{}).Where("event_type = ?", string(util.EventLoginFailure)).Count(&failures).Error)
	assert.Equal(t, int64(2), failures)
}

func TestLogin_RateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	config.SetRedisClientForTest(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(config.ResetRedisClientForTest)

	r, _ := setupServiceWith(t, newTestEnv(t, newClock()), RouterOptions{
		Service:        config.ServiceAuth,
		LoginRateLimit: middleware.RateLimitConfig{Limit: 2, Window: time.Minute},
	})

	for i := 0; i < 2; i++ {
		w := postForm(r, "/login", loginForm("moh@gmail.com", "wrong"), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	w := postForm(r, "/login", loginForm("moh@gmail.com", "wrong"), nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSignup_CreatesDoctorAccount(t *testing.T) {
	doctors := newFakeSibling(t, map[string]any{"POST /api/doctors": http.StatusOK})
	ep := deadEndpoints()
	ep.Doctors = doctors.URL
	r, db, _ := setupAuth(t, newTestEnvWithEndpoints(t, newClock(), ep))

	form := url.Values{
		"form_type":  {"signup"},
		"email":      {"haddad@clinique.dz"},
		"password":   {"s3cret"},
		"nom":        {"Haddad"},
		"prenom":     {"Karim"},
		"specialite": {"Cardiologie"},
	}
	w := postForm(r, "/login", form, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Compte médecin créé avec succès !", decodeBody[map[string]any](t, w)["message"])
	assert.Equal(t, []string{"POST /api/doctors"}, doctors.requests)

	var doc model.DoctorAccount
	require.NoError(t, db.Where("email = ?", "haddad@clinique.dz").First(&doc).Error)
	assert.NotEqual(t, "s3cret", doc.Password)

	resp := login(t, r, "haddad@clinique.dz", "s3cret")
	assert.Equal(t, "Bienvenue Dr. Karim !", resp.Message)
	assert.Equal(t, model.RoleDocteur, resp.Role)
	assert.Equal(t, doctorsFrontendURL, resp.Redirect)

	w = postForm(r, "/login", form, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgEmailTaken, errorMessage(t, w))

	form.Set("email", "moh@gmail.com")
	w = postForm(r, "/login", form, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "staff emails are taken too")

	form.Set("email", "new@clinique.dz")
	form.Del("prenom")
	w = postForm(r, "/login", form, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Nom et prénom requis.", errorMessage(t, w))
}

func TestSignup_FailsWhenDirectoryUnavailable(t *testing.T) {
	r, db, _ := setupAuth(t, newTestEnv(t, newClock()))

	form := url.Values{
		"form_type": {"signup"},
		"email":     {"haddad@clinique.dz"},
		"password":  {"s3cret"},
		"nom":       {"Haddad"},
		"prenom":    {"Karim"},
	}
	w := postForm(r, "/login", form, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Erreur lors de la création du compte", errorMessage(t, w))

	var n int64
	require.NoError(t, db.Model(&model.DoctorAccount{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestLogoutAndValidateToken(t *testing.T) {
	clock := newClock()
	r, db, mr := setupAuth(t, newTestEnv(t, clock))
	resp := login(t, r, "hoda@gmail.com", "sec1")

	w := doRequest(r, http.MethodGet, "/token/validate", nil, sessionHeader(resp.Token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	claims := decodeBody[sessionClaims](t, w)
	assert.Equal(t, "hoda@gmail.com", claims.Email)
	assert.Equal(t, model.RoleSecretaire, claims.Role)

	w = doRequest(r, http.MethodGet, "/token/validate", nil, sessionHeader("not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/logout", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/logout", nil, http.Header{"Cookie": {SessionCookie + "=" + resp.Token}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Déconnexion réussie.", decodeBody[map[string]any](t, w)["message"])
	assert.False(t, mr.Exists("session:"+resp.Token))

	var n int64
	require.NoError(t, db.Model(&model.Session{}).Where("session_token = ?", resp.Token).Count(&n).Error)
	assert.Zero(t, n)

	w = doRequest(r, http.MethodGet, "/token/validate", nil, sessionHeader(resp.Token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_Expired(t *testing.T) {
	clock := newClock()
	r, _, _ := setupAuth(t, newTestEnv(t, clock))
	resp := login(t, r, "moh@gmail.com", "dirc1")

	clock.advance(2 * time.Hour)
	w := doRequest(r, http.MethodGet, "/token/validate", nil, sessionHeader(resp.Token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmins_CRUD(t *testing.T) {
	r, db, _ := setupAuth(t, newTestEnv(t, newClock()))

	w := doJSON(t, r, http.MethodGet, "/api/admins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	admins := decodeBody[[]map[string]any](t, w)
	require.Len(t, admins, 2)
	assert.Equal(t, "Moh Imad", admins[0]["nom"])
	assert.NotContains(t, admins[0], "password")

	w = doJSON(t, r, http.MethodPost, "/api/admins/add", map[string]any{"nom": "Sara", "email": "sara@gmail.com", "password": "pw", "role": "Stagiaire"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rôle invalide", errorMessage(t, w))

	w = doJSON(t, r, http.MethodPost, "/api/admins/add", map[string]any{"nom": "Sara", "email": "sara@gmail.com", "password": "pw", "role": model.RoleSecretaire})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/admins/add", map[string]any{"nom": "Sara", "email": "sara@gmail.com", "password": "pw", "role": model.RoleSecretaire})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgEmailTaken, errorMessage(t, w))

	var sara model.StaffUser
	require.NoError(t, db.Where("email = ?", "sara@gmail.com").First(&sara).Error)
	resp := login(t, r, "sara@gmail.com", "pw")

	w = doJSON(t, r, http.MethodPost, "/api/admins/update", map[string]any{"id": sara.ID, "password": "pw2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doRequest(r, http.MethodGet, "/token/validate", nil, sessionHeader(resp.Token))
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a password change closes sessions")
	login(t, r, "sara@gmail.com", "pw2")

	w = doJSON(t, r, http.MethodPost, "/api/admins/update", map[string]any{"id": 999, "nom": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admins/delete/"+uintString(sara.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/admins/add", map[string]any{"nom": "Sara", "email": "sara@gmail.com", "password": "pw", "role": model.RoleSecretaire})
	assert.Equal(t, http.StatusOK, w.Code, "a deleted email can be reused")
}

func TestResetPassword(t *testing.T) {
	r, _, _ := setupAuth(t, newTestEnv(t, newClock()))
	resp := login(t, r, "moh@gmail.com", "dirc1")

	w := doJSON(t, r, http.MethodPost, "/api/reset-password", map[string]any{"email": "ghost@gmail.com", "new_password": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Email non trouvé", errorMessage(t, w))

	w = doJSON(t, r, http.MethodPost, "/api/reset-password", map[string]any{"email": "moh@gmail.com", "new_password": "fresh"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(r, http.MethodGet, "/token/validate", nil, sessionHeader(resp.Token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = postForm(r, "/login", loginForm("moh@gmail.com", "dirc1"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	login(t, r, "moh@gmail.com", "fresh")
}

func TestDoctorsCountAndProxies(t *testing.T) {
	r, db, _ := setupAuth(t, newTestEnv(t, newClock()))
	require.NoError(t, db.Create(&model.DoctorAccount{Nom: "A", Prenom: "B", Email: "a@b.c", Password: "x"}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/doctors-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 1}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/rdv/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"revenu_total": 0, "annee_courante": 2025, "revenus_mensuels": [0,0,0,0,0,0,0,0,0,0,0,0], "total_factures": 0}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/rdv/stats/historique", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/rdv/rdv_today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", errorMessage(t, w))
}

func TestProxies_ForwardRdvService(t *testing.T) {
	rdv := newFakeSibling(t, map[string]any{
		"/api/stats":            map[string]any{"revenu_total": 1000, "annee_courante": 2025, "revenus_mensuels": []float64{1000}, "total_factures": 1},
		"/api/stats/historique": []map[string]any{{"annee": 2025, "total": 1000, "mensuel": []float64{1000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}}},
		"/api/rdv/today":        []map[string]any{{"id_rdv": 1, "heure": "09:00"}},
	})
	ep := deadEndpoints()
	ep.RDV = rdv.URL
	r, _, _ := setupAuth(t, newTestEnvWithEndpoints(t, newClock(), ep))

	w := doJSON(t, r, http.MethodGet, "/api/rdv/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody[map[string]any](t, w)
	assert.Equal(t, 1000.0, stats["revenu_total"])
	assert.Len(t, stats["revenus_mensuels"], 12, "monthly series is padded")

	w = doJSON(t, r, http.MethodGet, "/api/rdv/stats/historique", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, w), 1)

	w = doJSON(t, r, http.MethodGet, "/api/rdv/rdv_today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id_rdv": 1, "heure": "09:00"}]`, w.Body.String())
}

func TestEndpointCallsAreAudited(t *testing.T) {
	r, db, _ := setupAuth(t, newTestEnv(t, newClock()))

	doJSON(t, r, http.MethodGet, "/api/doctors-count", nil)

	var entry model.SecurityLog
	require.NoError(t, db.Where("event_type = ?", string(util.EventEndpointCall)).Last(&entry).Error)
	assert.Contains(t, entry.Message, "GET /api/doctors-count -> 200")
}
