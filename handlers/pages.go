package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/voiceinvoice/landing/apperror"
	"github.com/voiceinvoice/landing/backend"
	"github.com/voiceinvoice/landing/components"
	"github.com/voiceinvoice/landing/config"
	"github.com/voiceinvoice/landing/contactform"
	"github.com/voiceinvoice/landing/metrics"
	"github.com/voiceinvoice/landing/middleware"
	"github.com/voiceinvoice/landing/models"
	"github.com/voiceinvoice/landing/validators"
)

// Protector calls the backend's session-protected endpoint.
type Protector interface {
	Protected(ctx context.Context, token string) (*models.ProtectedResponse, error)
}

type Handlers struct {
	cfg       *config.Config
	tmpl      contactform.FormTemplate
	protector Protector
	log       *zap.Logger
}

func New(cfg *config.Config, tmpl contactform.FormTemplate, protector Protector, log *zap.Logger) *Handlers {
	return &Handlers{cfg: cfg, tmpl: tmpl, protector: protector, log: log.Named("handlers")}
}

func (h *Handlers) page(c *gin.Context, status int, title string, content ...g.Node) {
	node := components.Layout(components.PageConfig{
		Title:          title,
		SiteName:       h.cfg.SiteName,
		ActivePath:     c.Request.URL.Path,
		InvoiceToolURL: h.cfg.InvoiceToolURL(),
	}, content...)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		h.log.Error("render page", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
}

func (h *Handlers) LandingPage(c *gin.Context) {
	metrics.PageViews.WithLabelValues("landing").Inc()
	h.page(c, http.StatusOK, "", components.Hero(), components.Features(), components.CTA())
}

func (h *Handlers) PricingPage(c *gin.Context) {
	metrics.PageViews.WithLabelValues("pricing").Inc()
	h.page(c, http.StatusOK, "Pricing - "+h.cfg.SiteName, components.Pricing(components.Plans))
}

func (h *Handlers) ContactPage(c *gin.Context) {
	metrics.PageViews.WithLabelValues("contact").Inc()
	sess := middleware.CurrentSession(c)
	h.page(c, http.StatusOK, "Contact - "+h.cfg.SiteName, components.ContactSection(h.tmpl.ContainerID, sess.Controller.Markup()))
}

// ContactPanel returns only the form container markup.
func (h *Handlers) ContactPanel(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.Header("X-Contact-State", sess.Controller.View().State.String())
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(sess.Controller.Markup()))
}

func (h *Handlers) SubmitContact(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := c.Request.ParseForm(); err != nil {
		apperror.Abort(c, apperror.ErrBadRequest.WithInternal(err))
		return
	}
	sub, err := validators.ValidateContactForm(c.Request.PostForm)
	if err != nil {
		apperror.Abort(c, apperror.ErrBadRequest.WithMessage(err.Error()))
		return
	}

	// The submission outlives a visitor navigating away; the backend client's
	// timeout bounds it.
	ctx := context.WithoutCancel(c.Request.Context())

	metrics.ContactInFlight.Inc()
	v, err := sess.Controller.Submit(ctx, sub)
	metrics.ContactInFlight.Dec()

	outcome := v.State.String()
	if errors.Is(err, contactform.ErrNotArmed) {
		outcome = "ignored"
	}
	metrics.ContactSubmissions.WithLabelValues(outcome).Inc()
	h.log.Debug("contact submit", zap.String("session", sess.ID), zap.String("outcome", outcome))

	c.Redirect(http.StatusSeeOther, "/contact#contact")
}

func (h *Handlers) ResetContact(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if _, err := sess.Controller.Reset(); err != nil {
		h.log.Debug("contact reset ignored", zap.String("session", sess.ID), zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/contact#contact")
}

func (h *Handlers) AccountPage(c *gin.Context) {
	metrics.PageViews.WithLabelValues("account").Inc()
	token, _ := c.Cookie(h.cfg.AuthCookie)
	if token == "" {
		h.page(c, http.StatusUnauthorized, "Account - "+h.cfg.SiteName, components.AccountPanel(components.AccountState{}, h.cfg.InvoiceToolURL()))
		return
	}

	state := components.AccountState{SignedIn: true}
	status := http.StatusOK
	resp, err := h.protector.Protected(c.Request.Context(), token)
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		state.Error = apiErr.Message
		status = apiErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
	case err != nil:
		h.log.Warn("protected call failed", zap.Error(err))
		state.Error = "We could not reach the server. Please try again later."
		status = http.StatusBadGateway
	default:
		state.Message = resp.Message
		if resp.UserID != nil {
			state.UserID = *resp.UserID
		}
	}
	h.page(c, status, "Account - "+h.cfg.SiteName, components.AccountPanel(state, h.cfg.InvoiceToolURL()))
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
}
