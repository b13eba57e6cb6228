package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runHandler(t *testing.T, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name   string
		call   func(*gin.Context, APIErrorParams)
		status int
	}{
		{"user error", CallUserError, http.StatusBadRequest},
		{"not found", CallErrorNotFound, http.StatusNotFound},
		{"server error", CallServerError, http.StatusInternalServerError},
		{"unauthorized", CallUserNotAuthorized, http.StatusUnauthorized},
		{"too many", CallTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runHandler(t, func(c *gin.Context) {
				tt.call(c, APIErrorParams{Msg: "Boom", Err: errors.New("internal detail")})
			})
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"error":"Boom"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "internal detail")
		})
	}
}

func TestErrorResponse_NilErr(t *testing.T) {
	w := runHandler(t, func(c *gin.Context) {
		CallUserError(c, APIErrorParams{Msg: "Name is required"})
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Name is required"}`, w.Body.String())
}

func TestSuccessResponses(t *testing.T) {
	w := runHandler(t, func(c *gin.Context) {
		CallSuccessOK(c, APISuccessParams{Msg: "Invoice deleted successfully"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Invoice deleted successfully"}`, w.Body.String())

	w = runHandler(t, func(c *gin.Context) {
		CallCreated(c, APISuccessParams{Data: gin.H{"id_rdv": 1}})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id_rdv":1}`, w.Body.String())

	w = runHandler(t, func(c *gin.Context) {
		CallSuccessOK(c, APISuccessParams{Data: []string{}})
	})
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"  Ahmed Benali":      "Ahmed Benali",
		"Ahmed  Benali  ":     "Ahmed Benali",
		"\tFatima \n Meziane": "Fatima Meziane",
		"":                    "",
		"   ":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeName(in))
	}
}
