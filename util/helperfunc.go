package util

import (
	"net/http"
	"strings"

	"github.com/ariebrainware/clinique/logging"
	"github.com/gin-gonic/gin"
)

// APIError is the body of every error response.
type APIError struct {
	Error string `json:"error" example:"Patient information required"`
}

// MessageResponse is the body of responses that carry only a status message.
type MessageResponse struct {
	Message string `json:"message" example:"Appointment deleted successfully"`
}

type APIErrorParams struct {
	Msg string
	Err error
}

type APISuccessParams struct {
	Msg  string
	Data interface{}
}

func abortWithError(c *gin.Context, status int, params APIErrorParams) {
	evt := logging.L().Warn()
	if status >= http.StatusInternalServerError {
		evt = logging.L().Error()
	}
	if params.Err != nil {
		evt = evt.Err(params.Err)
	}
	evt.Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Int("status", status).
		Msg(params.Msg)

	c.AbortWithStatusJSON(status, APIError{Error: params.Msg})
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	abortWithError(c, http.StatusNotFound, params)
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	abortWithError(c, http.StatusBadRequest, params)
}

// CallServerError is for return API response server error. The underlying
// error is logged and never sent to the client.
func CallServerError(c *gin.Context, params APIErrorParams) {
	abortWithError(c, http.StatusInternalServerError, params)
}

// CallUserNotAuthorized is for return API response with status code 401
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	abortWithError(c, http.StatusUnauthorized, params)
}

// CallTooManyRequests is for return API response with status code 429
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	abortWithError(c, http.StatusTooManyRequests, params)
}

func success(c *gin.Context, status int, params APISuccessParams) {
	if params.Data != nil {
		c.JSON(status, params.Data)
		return
	}
	c.JSON(status, MessageResponse{Message: params.Msg})
}

// CallSuccessOK answers 200 with Data, or with {"message": Msg} when Data is nil.
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	success(c, http.StatusOK, params)
}

// CallCreated answers 201 with Data, or with {"message": Msg} when Data is nil.
func CallCreated(c *gin.Context, params APISuccessParams) {
	success(c, http.StatusCreated, params)
}

// NormalizeName normalizes a name by trimming leading/trailing whitespace
// and collapsing multiple internal spaces into single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
