package validators

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceinvoice/landing/models"
)

func TestValidateContactForm(t *testing.T) {
	sub, err := ValidateContactForm(url.Values{
		"name":    {"A"},
		"email":   {"a@b.com"},
		"subject": {"Hi"},
		"message": {"Test"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactSubmission{Name: "A", Email: "a@b.com", Subject: "Hi", Message: "Test"}, sub)
}

func TestValidateContactFormAllowsEmpty(t *testing.T) {
	sub, err := ValidateContactForm(url.Values{"name": {""}, "email": {""}, "subject": {""}, "message": {""}})
	require.NoError(t, err)
	assert.Equal(t, models.ContactSubmission{}, sub)
}

func TestValidateContactFormMissing(t *testing.T) {
	_, err := ValidateContactForm(url.Values{"name": {"A"}, "email": {"a@b.com"}})
	assert.EqualError(t, err, "missing form fields: subject, message")
}

func TestCheckContactSubmission(t *testing.T) {
	tests := []struct {
		name    string
		sub     models.ContactSubmission
		wantErr string
	}{
		{"complete", models.ContactSubmission{Name: "A", Email: "a@b.com", Subject: "Hi", Message: "Test"}, ""},
		{"no email", models.ContactSubmission{Name: "A", Subject: "Hi", Message: "Test"}, "name and email fields are required"},
		{"no message", models.ContactSubmission{Name: "A", Email: "a@b.com", Subject: "Hi"}, "subject and message fields are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckContactSubmission(tt.sub)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
