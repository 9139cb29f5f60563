package apperror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	assert.Equal(t, "forbidden: Permission denied", ErrForbidden.Error())

	inner := errors.New("dial tcp: refused")
	wrapped := ErrBadGateway.WithInternal(inner)
	assert.Equal(t, "bad_gateway: The backend could not be reached (dial tcp: refused)", wrapped.Error())
	assert.ErrorIs(t, wrapped, inner)
	assert.Nil(t, ErrBadGateway.Internal)
}

func TestBody(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", ErrTooManyRequests, http.StatusTooManyRequests, "rate_limited"},
		{"custom message", ErrBadRequest.WithMessage("missing field"), http.StatusBadRequest, "bad_request"},
		{"wrapped app error", errors.Join(errors.New("ctx"), ErrForbidden), http.StatusForbidden, "forbidden"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Body(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body["error"].(gin.H)["code"])
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, ErrBadRequest.WithMessage("missing field"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"code":"bad_request","message":"missing field"}}`, w.Body.String())
}
