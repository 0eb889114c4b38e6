package session

import "github.com/gin-gonic/gin"

const contextTokenKey = "sessionToken"

// Token returns the session token extracted by the middleware, or empty string.
func Token(c *gin.Context) string {
	if v, ok := c.Get(contextTokenKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
