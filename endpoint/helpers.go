package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ariebrainware/clinique/config"
	"github.com/ariebrainware/clinique/ledger"
	"github.com/ariebrainware/clinique/middleware"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/photo"
	"github.com/ariebrainware/clinique/remote"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MsgResourceNotFound answers unknown ids and routes.
const MsgResourceNotFound = "Resource not found"

// Env carries what handlers need besides the request database.
type Env struct {
	Config *config.Config
	Remote *remote.Client
	Photos photo.Store
	// Now defaults to time.Now.
	Now func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database connection not available", Err: fmt.Errorf("db is nil")})
		return nil, false
	}
	return db, true
}

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

// respondError maps err to the error taxonomy: validation 400, unknown id 404,
// anything else 500.
func respondError(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	var ve *ledger.ValidationError
	switch {
	case errors.As(err, &ve):
		util.CallUserError(c, util.APIErrorParams{Msg: ve.Msg, Err: err})
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: notFoundMsg, Err: err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: serverMsg, Err: err})
	}
}

// uintParamOrRespond reads a numeric path parameter. Non-numeric ids cannot
// name a row and answer 404 with notFoundMsg.
func uintParamOrRespond(c *gin.Context, name, notFoundMsg string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: notFoundMsg, Err: fmt.Errorf("invalid %s %q", name, raw)})
		return 0, false
	}
	return uint(id), true
}

func patientIDOrRespond(c *gin.Context, name string) (model.PatientID, bool) {
	id, err := model.ParsePatientID(c.Param(name))
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid patient id", Err: err})
		return "", false
	}
	return id, true
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	util.CallErrorNotFound(c, util.APIErrorParams{Msg: MsgResourceNotFound, Err: fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path)})
}

type healthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service,omitempty" example:"auth-service"`
	Error   string `json:"error,omitempty"`
}

// Health godoc
// @Summary      Health check
// @Description  Reports whether the service can reach its database
// @Tags         System
// @Produce      json
// @Success      200 {object} healthResponse
// @Failure      500 {object} healthResponse
// @Router       /health [get]
func Health(service string) gin.HandlerFunc {
	name := service + "-service"
	return func(c *gin.Context) {
		db := middleware.GetDB(c)
		if db == nil {
			c.JSON(http.StatusInternalServerError, healthResponse{Status: "unhealthy", Error: "database not configured"})
			return
		}
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, healthResponse{Status: "unhealthy", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, healthResponse{Status: "healthy", Service: name})
	}
}
