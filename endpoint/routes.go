package endpoint

import (
	"fmt"
	"strings"

	"github.com/ariebrainware/clinique/config"
	"github.com/ariebrainware/clinique/metrics"
	"github.com/ariebrainware/clinique/middleware"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// RouterOptions configures the engine of one service.
type RouterOptions struct {
	Service string
	DB      *gorm.DB
	Logger  zerolog.Logger
	Metrics *metrics.Metrics
	// LoginRateLimit throttles POST /login on the auth service.
	LoginRateLimit middleware.RateLimitConfig
}

// NewRouter builds the gin engine of opts.Service with the shared middleware
// chain, /health, /metrics and the swagger UI.
func NewRouter(env *Env, opts RouterOptions) (*gin.Engine, error) {
	var origins []string
	if env.Config != nil {
		origins = env.Config.CORSOrigins
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.Metrics(opts.Metrics),
		middleware.CORSMiddleware(origins),
		middleware.DatabaseMiddleware(opts.DB),
	)

	r.GET("/health", Health(opts.Service))
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.NoRoute(NotFound)

	switch opts.Service {
	case config.ServiceRDV:
		env.rdvRoutes(r)
	case config.ServicePatients:
		env.patientRoutes(r)
	case config.ServiceDoctors:
		env.doctorRoutes(r)
	case config.ServiceAuth:
		env.authRoutes(r, opts.LoginRateLimit)
	default:
		return nil, fmt.Errorf("unknown service %q", opts.Service)
	}
	r.GET("/api/config", env.ServiceConfig(opts.Service))
	return r, nil
}

func (e *Env) rdvRoutes(r *gin.Engine) {
	rdv := r.Group("/api/rdv")
	{
		rdv.GET("", e.ListRdv)
		rdv.POST("", e.CreateRdv)
		rdv.GET("/today", e.TodayRdv)
		rdv.GET("/patient/:id/last", e.LastRdv)
		rdv.GET("/:id", e.GetRdv)
		rdv.PUT("/:id", e.UpdateRdv)
		rdv.DELETE("/:id", e.DeleteRdv)
	}
	r.GET("/api/rdv_today", e.TodayRdv)
	r.GET("/api/last_rdv/:id", e.LastRdv)

	factures := r.Group("/api/factures")
	{
		factures.GET("", e.ListFactures)
		factures.POST("", e.CreateFacture)
		factures.GET("/patient/:id", e.PatientFactures)
		factures.GET("/:id", e.GetFacture)
		factures.PUT("/:id", e.UpdateFacture)
		factures.DELETE("/:id", e.DeleteFacture)
	}

	r.GET("/api/stats", e.Stats)
	r.GET("/api/stats/historique", e.StatsHistory)
}

func (e *Env) patientRoutes(r *gin.Engine) {
	patients := r.Group("/api/patients")
	{
		patients.GET("", e.ListPatients)
		patients.POST("", e.CreatePatient)
		patients.GET("/:id", e.GetPatient)
		patients.PUT("/:id", e.UpdatePatient)
		patients.DELETE("/:id", e.DeletePatient)
		patients.POST("/:id/observations", e.AddObservation)
		patients.GET("/:id/ordonnances", e.ListOrdonnances)
		patients.POST("/:id/ordonnances", e.AddOrdonnance)
		patients.GET("/:id/ordonnances/:ordId/pdf", e.OrdonnancePDF)
		patients.GET("/:id/last-rdv", e.PatientLastRdv)
	}
}

func (e *Env) doctorRoutes(r *gin.Engine) {
	doctors := r.Group("/api/doctors")
	{
		doctors.GET("", e.ListDoctors)
		doctors.POST("", e.CreateDoctor)
		doctors.GET("/:id", e.GetDoctor)
		doctors.PUT("/:id", e.UpdateDoctor)
		doctors.DELETE("/:id", e.DeleteDoctor)
	}
	r.GET("/api/appointments", e.Appointments)
	r.GET("/api/patient/:id", e.PatientOverview)
}

func (e *Env) authRoutes(r *gin.Engine, limit middleware.RateLimitConfig) {
	r.Use(middleware.EndpointCallLogger())
	r.NoRoute(authNotFound)

	r.POST("/login", middleware.RateLimiter(limit), e.Login)
	r.GET("/logout", e.Logout)
	r.GET("/token/validate", e.ValidateToken)

	api := r.Group("/api")
	{
		api.GET("/admins", e.ListAdmins)
		api.POST("/admins/add", e.AddAdmin)
		api.POST("/admins/update", e.UpdateAdmin)
		api.DELETE("/admins/delete/:id", e.DeleteAdmin)
		api.POST("/reset-password", e.ResetPassword)
		api.GET("/doctors-count", e.DoctorsCount)

		api.GET("/rdv/stats", e.RdvStats)
		api.GET("/rdv/stats/historique", e.RdvStatsHistory)
		api.GET("/rdv/rdv_today", e.RdvToday)
	}
}

// authNotFound answers unknown /api/ paths of the gateway with "Endpoint not found".
func authNotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Endpoint not found", Err: fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path)})
		return
	}
	NotFound(c)
}
