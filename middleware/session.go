package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voiceinvoice/landing/apperror"
	"github.com/voiceinvoice/landing/operations"
)

const sessionKey = "contact_session"

// SessionMiddleware attaches the visitor's session, creating one when the cookie is
// missing or stale, and refreshes the cookie.
func SessionMiddleware(sessions *operations.Sessions, cookie string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookie)
		sess, err := sessions.Acquire(id)
		if err != nil {
			apperror.Abort(c, apperror.ErrInternal.WithInternal(err))
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookie, sess.ID, int(ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session set by SessionMiddleware.
func CurrentSession(c *gin.Context) *operations.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*operations.Session)
	return sess
}
