package validators

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/voiceinvoice/landing/models"
)

var contactFields = []string{"name", "email", "subject", "message"}

// ValidateContactForm builds a submission from posted form values. Every field must
// be present; empty values are accepted since the browser enforces "required".
func ValidateContactForm(form url.Values) (models.ContactSubmission, error) {
	var missing []string
	for _, f := range contactFields {
		if _, ok := form[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return models.ContactSubmission{}, fmt.Errorf("missing form fields: %s", strings.Join(missing, ", "))
	}

	return models.ContactSubmission{
		Name:    form.Get("name"),
		Email:   form.Get("email"),
		Subject: form.Get("subject"),
		Message: form.Get("message"),
	}, nil
}

// CheckContactSubmission rejects blank fields for callers without a browser form.
func CheckContactSubmission(sub models.ContactSubmission) error {
	if sub.Name == "" || sub.Email == "" {
		return errors.New("name and email fields are required")
	}
	if sub.Subject == "" || sub.Message == "" {
		return errors.New("subject and message fields are required")
	}
	return nil
}
