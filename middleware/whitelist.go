package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/apperror"
)

// DomainWhitelistMiddleware rejects requests whose Host is not listed. An entry
// matches the full Host or the Host without its port. An empty list allows all.
func DomainWhitelistMiddleware(allowedDomains []string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(allowedDomains) == 0 {
			c.Next()
			return
		}

		host := c.Request.Host
		hostname := host
		if h, _, err := net.SplitHostPort(host); err == nil {
			hostname = h
		}

		allowed := false
		for _, domain := range allowedDomains {
			if strings.EqualFold(domain, host) || strings.EqualFold(domain, hostname) {
				allowed = true
				break
			}
		}

		if !allowed {
			log.Warn("host not allowed", zap.String("host", host))
			apperror.Abort(c, apperror.ErrForbidden)
			return
		}

		c.Next()
	}
}
