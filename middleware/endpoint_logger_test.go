package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestEndpointCallLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	util.SetSecurityLoggerForTest(&l)

	db, err := gorm.Open(sqlite.Open("file:endpoint_logger?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SecurityLog{}))
	util.SetSecurityLoggerDB(db)
	t.Cleanup(func() {
		util.SetSecurityLoggerForTest(nil)
		util.SetSecurityLoggerDB(nil)
	})

	setGinTestMode()
	r := gin.New()
	r.Use(RequestID(), EndpointCallLogger())
	r.GET("/api/admins", func(c *gin.Context) {
		c.Set(AccountKey, "staff:1")
		c.JSON(http.StatusOK, []string{})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admins?foo=bar", nil)
	req.RemoteAddr = "192.168.1.100:1234"
	req.Header.Set("User-Agent", "TestAgent/1.0")
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	out := buf.String()
	assert.Contains(t, out, "ENDPOINT_CALL")
	assert.Contains(t, out, "GET /api/admins -> 200")
	assert.Contains(t, out, "192.168.1.100")
	assert.Contains(t, out, "TestAgent/1.0")

	var entry model.SecurityLog
	require.NoError(t, db.Where("event_type = ?", "ENDPOINT_CALL").First(&entry).Error)
	assert.Equal(t, "staff:1", entry.AccountID)
	assert.Contains(t, string(entry.Details), `"query":"foo=bar"`)
	assert.Contains(t, string(entry.Details), `"path":"/api/admins"`)
}
