package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the pool catalog endpoints.
// They work with or without a session; the portal simply shows the public
// catalog to anonymous visitors.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/pools", h.List)
	g.GET("/pool/:id", h.Get)
	g.GET("/pool/:id/image", h.Image)
}
