package endpoint

import (
	"net/http"

	"github.com/ariebrainware/clinique/config"
	"github.com/gin-gonic/gin"
)

// siblingURLs lists the base URLs of the other services.
type siblingURLs struct {
	Auth     string `json:"auth_url,omitempty" example:"http://127.0.0.1:5009"`
	Patients string `json:"patients_url,omitempty" example:"http://127.0.0.1:5001"`
	Doctors  string `json:"doctors_url,omitempty" example:"http://127.0.0.1:5000"`
	RDV      string `json:"rdv_url,omitempty" example:"http://127.0.0.1:5005"`
}

func siblingsOf(service string, ep config.Endpoints) siblingURLs {
	s := siblingURLs{Auth: ep.Auth, Patients: ep.Patients, Doctors: ep.Doctors, RDV: ep.RDV}
	switch service {
	case config.ServiceRDV:
		s.RDV = ""
	case config.ServiceDoctors:
		s.Doctors = ""
	case config.ServicePatients:
		s.Patients = ""
		s.Auth = ""
	case config.ServiceAuth:
		s.Auth = ""
	}
	return s
}

// ServiceConfig godoc
// @Summary      Sibling service URLs
// @Description  Base URLs the frontends use to reach the other services
// @Tags         System
// @Produce      json
// @Success      200 {object} siblingURLs
// @Router       /api/config [get]
func (e *Env) ServiceConfig(service string) gin.HandlerFunc {
	var ep config.Endpoints
	if e.Config != nil {
		ep = e.Config.Endpoints
	}
	body := siblingsOf(service, ep)
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}
