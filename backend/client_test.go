package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceinvoice/landing/models"
)

func TestSubmitContact(t *testing.T) {
	var hits atomic.Int32
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submit-contact", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"message":"Got it!"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", 5*time.Second, nil)
	resp, err := c.SubmitContact(context.Background(), models.ContactSubmission{
		Name: "A", Email: "a@b.com", Subject: "Hi", Message: "Test",
	})
	require.NoError(t, err)

	assert.Equal(t, "Got it!", resp.Message)
	assert.Empty(t, resp.Error)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, map[string]string{"name": "A", "email": "a@b.com", "subject": "Hi", "message": "Test"}, got)
}

func TestSubmitContactResponses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantResp *models.ContactResponse
		wantErr  string
		decode   bool
	}{
		{"error field on 200", http.StatusOK, `{"error":"Invalid email"}`, &models.ContactResponse{Error: "Invalid email"}, "", false},
		{"error field on 400", http.StatusBadRequest, `{"error":"name, email and message required"}`, &models.ContactResponse{Error: "name, email and message required"}, "", false},
		{"no message", http.StatusOK, `{"ok":true}`, &models.ContactResponse{OK: true}, "", false},
		{"html body", http.StatusOK, `<html>oops</html>`, nil, "", true},
		{"bare 500", http.StatusInternalServerError, `{}`, nil, "backend returned 500", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := New(srv.URL, time.Second, nil).SubmitContact(context.Background(), models.ContactSubmission{})
			switch {
			case tt.decode:
				assert.ErrorIs(t, err, ErrDecode)
			case tt.wantErr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantResp, resp)
			}
		})
	}
}

func TestSubmitContactTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, 50*time.Millisecond, nil).SubmitContact(context.Background(), models.ContactSubmission{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDecode))
}

func TestProtected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/protected", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Missing Authorization header"}`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"You are authenticated","user_id":"user_1"}`))
	}))
	defer srv.Close()
	c := New(srv.URL, time.Second, nil)

	resp, err := c.Protected(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "You are authenticated", resp.Message)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, "user_1", *resp.UserID)

	_, err = c.Protected(context.Background(), "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Missing Authorization header", apiErr.Message)

	_, err = c.Protected(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingToken)
}
