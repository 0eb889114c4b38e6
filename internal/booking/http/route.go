package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the dashboard and receipt endpoints. Session required.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, sessionRequired gin.HandlerFunc) {
	g.GET("/bookings", sessionRequired, h.List)
	g.GET("/receipt/:id", sessionRequired, h.Receipt)
	g.HEAD("/receipt/:id", sessionRequired, h.Receipt)
}
