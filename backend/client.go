// Package backend is the client for the VoiceInvoice API that receives contact
// messages and answers session-protected requests.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/models"
)

var (
	ErrDecode       = errors.New("backend: response is not valid JSON")
	ErrMissingToken = errors.New("backend: missing session token")
)

// APIError is an error body returned by the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	http *resty.Client
	log  *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c, log: log.Named("backend")}
}

// SubmitContact posts a submission to /submit-contact. The body is decoded whatever
// the status, so an {"error": ...} reply comes back as a response, not an error.
func (c *Client) SubmitContact(ctx context.Context, sub models.ContactSubmission) (*models.ContactResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sub).
		Post("/submit-contact")
	if err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}

	var out models.ContactResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	c.log.Debug("submit-contact answered", zap.Int("status", resp.StatusCode()), zap.Bool("error", out.Error != ""))

	if resp.IsError() && out.Error == "" {
		return nil, fmt.Errorf("backend returned %s", resp.Status())
	}
	return &out, nil
}

// Protected calls /protected with the visitor's session token.
func (c *Client) Protected(ctx context.Context, token string) (*models.ProtectedResponse, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/protected")
	if err != nil {
		return nil, fmt.Errorf("protected: %w", err)
	}

	var out models.ProtectedResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &APIError{Status: resp.StatusCode(), Message: out.Error}
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	}
	return &out, nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w (status %d): %v", ErrDecode, resp.StatusCode(), err)
	}
	return nil
}
