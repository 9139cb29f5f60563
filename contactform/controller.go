package contactform

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/models"
)

var (
	ErrNotArmed   = errors.New("contactform: submit handler is not armed")
	ErrNotSettled = errors.New("contactform: no settled submission to reset")
)

// Submitter delivers a submission to the backend.
type Submitter interface {
	SubmitContact(ctx context.Context, sub models.ContactSubmission) (*models.ContactResponse, error)
}

// Controller owns one contact form: Idle -> Submitting -> Succeeded|Failed, and back
// to Idle only through Reset. The submit handler is armed exactly while the state is
// Idle, so a second Submit before the first settles never reaches the backend.
type Controller struct {
	tmpl      FormTemplate
	original  string
	submitter Submitter
	log       *zap.Logger

	mu      sync.Mutex
	state   State
	message string
	markup  string
}

func NewController(tmpl FormTemplate, submitter Submitter, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	original := renderString(tmpl.Form(false))
	return &Controller{
		tmpl:      tmpl,
		original:  original,
		submitter: submitter,
		log:       log.Named("contactform"),
		state:     Idle,
		markup:    original,
	}
}

// Submit fires the one-shot handler. It blocks until the backend answers and returns
// the settled view; a failed delivery is a Failed view, not an error. The only error
// is ErrNotArmed, returned without contacting the backend.
func (c *Controller) Submit(ctx context.Context, sub models.ContactSubmission) (View, error) {
	c.mu.Lock()
	if c.state != Idle {
		v := c.viewLocked()
		c.mu.Unlock()
		c.log.Debug("submit ignored", zap.Stringer("state", v.State))
		return v, ErrNotArmed
	}
	c.state = Submitting
	c.message = ""
	c.markup = renderString(c.tmpl.Form(true))
	c.mu.Unlock()

	resp, err := c.submitter.SubmitContact(ctx, sub)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err != nil:
		c.log.Warn("contact submission failed", zap.Error(err))
		c.failLocked(err.Error())
	case resp == nil:
		c.failLocked("")
	case resp.Error != "":
		c.log.Info("contact submission rejected", zap.String("reason", resp.Error))
		c.failLocked(resp.Error)
	default:
		c.state = Succeeded
		c.message = orDefault(resp.Message, DefaultSuccessMessage)
		c.markup = renderString(c.tmpl.SuccessPanel(c.message))
		c.log.Info("contact submission accepted")
	}
	return c.viewLocked(), nil
}

func (c *Controller) failLocked(msg string) {
	c.state = Failed
	c.message = orDefault(msg, DefaultErrorMessage)
	c.markup = renderString(c.tmpl.ErrorPanel(c.message))
}

// Reset is the "send another" / "try again" action: it restores the original form
// markup and rearms the handler.
func (c *Controller) Reset() (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Settled() {
		return c.viewLocked(), ErrNotSettled
	}
	c.state = Idle
	c.message = ""
	c.markup = c.original
	return c.viewLocked(), nil
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Markup returns what the form container currently shows.
func (c *Controller) Markup() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.markup
}

// Original returns the form markup captured at construction.
func (c *Controller) Original() string {
	return c.original
}

func (c *Controller) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Idle
}

func (c *Controller) viewLocked() View {
	return View{State: c.state, Message: c.message}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
