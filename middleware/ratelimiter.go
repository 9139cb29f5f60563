package middleware

import (
	"time"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/apperror"
	"github.com/voiceinvoice/landing/metrics"
)

// RateLimitMiddleware allows maxRequests per minute per client IP.
func RateLimitMiddleware(maxRequests float64, log *zap.Logger) gin.HandlerFunc {
	perSecond := maxRequests / 60.0
	lmt := tollbooth.NewLimiter(perSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Minute})

	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})

	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			metrics.RateLimited.Inc()
			log.Warn("rate limited", zap.String("ip", c.ClientIP()), zap.String("path", c.Request.URL.Path))
			apperror.Abort(c, apperror.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
