package session

import (
	"github.com/gin-gonic/gin"
	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
	"github.com/poolpass/pool-booking-gateway/internal/pkg/response"
)

// Manager carries the cookie settings for the browser session.
type Manager struct {
	CookieName string
	TTLDays    int
}

// Issue stores the portal session token in the browser cookie.
func (m Manager) Issue(c *gin.Context, token string) {
	Set(c, m.CookieName, token, m.TTLDays)
}

// Clear expires the browser session cookie.
func (m Manager) Clear(c *gin.Context) {
	Delete(c, m.CookieName)
}

// Extract is a gin middleware that reads the session cookie (when present)
// and stores the token in the request context for later handlers.
// It never rejects a request; guards decide what absence means.
func (m Manager) Extract() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := Get(c, m.CookieName); ok {
			c.Set(contextTokenKey, token)
		}
		c.Next()
	}
}

// Required is a gin middleware for API routes that must carry a session.
// It MUST be used after Extract.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Token(c) == "" {
			response.AbortError(c, apperror.ErrAuthRequired)
			return
		}
		c.Next()
	}
}
