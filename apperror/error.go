package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an HTTP-facing error with a stable code.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{HTTPStatus: e.HTTPStatus, Code: e.Code, Message: e.Message, Internal: err}
}

func (e *Error) WithMessage(message string) *Error {
	return &Error{HTTPStatus: e.HTTPStatus, Code: e.Code, Message: message, Internal: e.Internal}
}

func New(status int, code, message string) *Error {
	return &Error{HTTPStatus: status, Code: code, Message: message}
}

var (
	ErrBadRequest      = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrUnauthorized    = New(http.StatusUnauthorized, "unauthorized", "Authentication required")
	ErrForbidden       = New(http.StatusForbidden, "forbidden", "Permission denied")
	ErrTooManyRequests = New(http.StatusTooManyRequests, "rate_limited", "Too many requests, try again later.")
	ErrBadGateway      = New(http.StatusBadGateway, "bad_gateway", "The backend could not be reached")
	ErrInternal        = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// Body is the JSON shape every error response uses.
func Body(err error) (int, gin.H) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = ErrInternal
	}
	return appErr.HTTPStatus, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	}
}

// Abort stops the gin chain with err rendered as JSON.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	status, body := Body(err)
	c.AbortWithStatusJSON(status, body)
}
