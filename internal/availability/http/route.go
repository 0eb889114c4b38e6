package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the availability endpoint. Session required.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, sessionRequired gin.HandlerFunc) {
	g.POST("/availability", sessionRequired, h.Check)
}
