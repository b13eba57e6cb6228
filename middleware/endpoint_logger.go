package middleware

import (
	"fmt"
	"time"

	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
)

// AccountKey is the context key under which handlers record the account
// ("staff:1", "doctor:3") a request acted as.
const AccountKey = "account_key"

// EndpointCallLogger records every request of the auth service as a security
// event. util.SetSecurityLoggerDB must have been called for the events to be
// persisted.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()

		details := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"raw_path":    c.Request.URL.Path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  GetRequestID(c),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			details["query"] = q
		}

		util.LogSecurityEvent(util.SecurityEvent{
			EventType: util.EventEndpointCall,
			AccountID: c.GetString(AccountKey),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Message:   fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status),
			Details:   details,
		})
	}
}
