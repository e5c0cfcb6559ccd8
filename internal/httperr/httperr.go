package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From maps a domain error to its HTTP status. Anything that is not a
// DomainError is treated as an internal failure.
func From(c *gin.Context, err error, message string) {
	switch {
	case IsKind(err, KindNotFound):
		NotFound(c, Code(err), message)
	case IsKind(err, KindForbidden):
		Forbidden(c, Code(err), message)
	case IsKind(err, KindValidation):
		BadRequest(c, Code(err), message)
	default:
		Internal(c, "internal_error", message)
	}
}
