package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceinvoice/landing/models"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	submission = models.ContactSubmission{}
	backendURL = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func backendReplying(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submit-contact", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

var messageFlags = []string{"--name", "A", "--email", "a@b.com", "--subject", "Hi", "--message", "Test"}

func TestSubmitCommandSucceeds(t *testing.T) {
	url := backendReplying(t, http.StatusOK, `{"ok":true}`)

	out, err := runCLI(t, append([]string{"submit", "--backend-url", url}, messageFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "succeeded: Thank you for your message! We will respond shortly.")
}

func TestSubmitCommandFails(t *testing.T) {
	url := backendReplying(t, http.StatusBadRequest, `{"error":"Invalid email"}`)

	out, err := runCLI(t, append([]string{"submit", "--backend-url", url}, messageFlags...)...)
	assert.ErrorIs(t, err, errSubmitFailed)
	assert.Contains(t, out, "failed: Invalid email")
}

func TestSubmitCommandRequiresFields(t *testing.T) {
	_, err := runCLI(t, "submit", "--backend-url", "http://127.0.0.1:1", "--name", "A")
	assert.EqualError(t, err, "name and email fields are required")
}
