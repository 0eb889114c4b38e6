package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the auth and current-user endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/user", h.Current)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
}
