package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/config"
	"github.com/voiceinvoice/landing/middleware"
	"github.com/voiceinvoice/landing/operations"
)

func NewRouter(cfg *config.Config, h *Handlers, sessions *operations.Sessions, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.DomainWhitelistMiddleware(cfg.AllowedHosts, log))

	router.GET("/", h.LandingPage)
	router.GET("/pricing", h.PricingPage)
	router.GET("/account", h.AccountPage)
	router.GET("/health", Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	contact := router.Group("/contact", middleware.SessionMiddleware(sessions, cfg.SessionCookie, cfg.SessionTTL))
	contact.GET("", h.ContactPage)
	contact.GET("/panel", h.ContactPanel)
	contact.POST("", middleware.RateLimitMiddleware(cfg.ContactRateLimit, log), h.SubmitContact)
	contact.POST("/reset", h.ResetContact)

	return router
}
