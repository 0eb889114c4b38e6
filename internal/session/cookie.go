package session

import (
	"github.com/gin-gonic/gin"
)

const hoursPerDay = 24

// Set writes a site-wide cookie expiring ttlDays from now.
// The value is treated as opaque; callers own any encoding.
func Set(c *gin.Context, name, value string, ttlDays int) {
	maxAge := ttlDays * hoursPerDay * 60 * 60
	c.SetCookie(name, value, maxAge, "/", "", false, true)
}

// Get returns the named cookie's value. The second return value reports
// whether a non-empty cookie was present; expired or deleted cookies are
// simply absent from the request.
func Get(c *gin.Context, name string) (string, bool) {
	value, err := c.Cookie(name)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// Delete forces immediate expiry of the named cookie.
func Delete(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}
