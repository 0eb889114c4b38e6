package web

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the server-rendered pages.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Home)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/pool/:id", h.PoolDetail)
	r.GET("/search", h.Search)
	r.GET("/dashboard", h.Dashboard)
	r.POST("/theme", h.ToggleTheme)
	r.GET("/static/pool-placeholder.svg", Placeholder)
}
