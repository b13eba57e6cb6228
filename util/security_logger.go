package util

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/ariebrainware/clinique/logging"
	"github.com/ariebrainware/clinique/model"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SecurityEventType represents different types of security events
type SecurityEventType string

const (
	EventLoginSuccess      SecurityEventType = "LOGIN_SUCCESS"
	EventLoginFailure      SecurityEventType = "LOGIN_FAILURE"
	EventSignupSuccess     SecurityEventType = "SIGNUP_SUCCESS"
	EventSignupFailure     SecurityEventType = "SIGNUP_FAILURE"
	EventLogout            SecurityEventType = "LOGOUT"
	EventPasswordReset     SecurityEventType = "PASSWORD_RESET"
	EventAdminCreated      SecurityEventType = "ADMIN_CREATED"
	EventAdminUpdated      SecurityEventType = "ADMIN_UPDATED"
	EventAdminDeleted      SecurityEventType = "ADMIN_DELETED"
	EventRateLimitExceeded SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventEndpointCall      SecurityEventType = "ENDPOINT_CALL"
)

// SecurityEvent represents a security event to be logged
type SecurityEvent struct {
	EventType SecurityEventType
	AccountID string
	Email     string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var (
	securityMu     sync.RWMutex
	securityDB     *gorm.DB
	securityLogger *zerolog.Logger
)

// SetSecurityLoggerDB sets the database security events are persisted to.
// Events are only logged when no database is set.
func SetSecurityLoggerDB(db *gorm.DB) {
	securityMu.Lock()
	defer securityMu.Unlock()
	securityDB = db
}

// SetSecurityLoggerForTest routes security log lines to l; nil restores the process logger.
func SetSecurityLoggerForTest(l *zerolog.Logger) {
	securityMu.Lock()
	defer securityMu.Unlock()
	securityLogger = l
}

func securitySinks() (*gorm.DB, *zerolog.Logger) {
	securityMu.RLock()
	defer securityMu.RUnlock()
	l := securityLogger
	if l == nil {
		l = logging.L()
	}
	return securityDB, l
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(value)
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogSecurityEvent logs a security event and persists it when a database is set.
// Persistence is best-effort: failures are logged and never returned.
func LogSecurityEvent(event SecurityEvent) {
	db, l := securitySinks()

	l.Info().
		Str("component", "security").
		Str("event", string(event.EventType)).
		Str("account_id", sanitizeLogValue(event.AccountID)).
		Str("email", sanitizeLogValue(event.Email)).
		Str("ip", sanitizeLogValue(event.IP)).
		Str("user_agent", sanitizeLogValue(event.UserAgent)).
		Int("details", len(event.Details)).
		Msg(sanitizeLogValue(event.Message))

	if db == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	entry := model.SecurityLog{
		EventType: string(event.EventType),
		AccountID: sanitizeLogValue(event.AccountID),
		Email:     sanitizeLogValue(event.Email),
		IP:        sanitizeLogValue(event.IP),
		Location:  sanitizeLogValue(GetIPLocation(event.IP).String()),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := db.Create(&entry).Error; err != nil {
		l.Error().Err(err).Str("event", string(event.EventType)).Msg("failed to persist security event")
	}
}

// LogLoginSuccess logs a successful login event
func LogLoginSuccess(accountID, email, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginSuccess,
		AccountID: accountID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged in successfully",
	})
}

// LogLoginFailure logs a failed login attempt
func LogLoginFailure(email, ip, userAgent, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginFailure,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "Login failed: " + reason,
	})
}

// LogLogout logs a logout event
func LogLogout(accountID, email, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLogout,
		AccountID: accountID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged out",
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   "Rate limit exceeded for endpoint: " + endpoint,
	})
}
