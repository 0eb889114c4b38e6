package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/account"
	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
	"github.com/poolpass/pool-booking-gateway/internal/pkg/response"
	"github.com/poolpass/pool-booking-gateway/internal/session"
)

type Handler struct {
	service  account.Service
	sessions session.Manager
	log      *zap.Logger
}

func NewHandler(service account.Service, sessions session.Manager, log *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		log:      log,
	}
}

// Current answers the auth probe every page runs on load.
func (h *Handler) Current(c *gin.Context) {
	token := session.Token(c)
	if token == "" {
		response.Error(c, apperror.ErrAuthRequired)
		return
	}

	u, err := h.service.CurrentUser(c.Request.Context(), token)
	if err != nil {
		h.log.Info("auth probe rejected", zap.Error(err))
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(u))
}

// Login forwards credentials to the portal and, on success, issues the
// session cookie carrying the portal's token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, account.ErrMissingCredentials)
		return
	}

	token, u, err := h.service.Login(c.Request.Context(), req.EmailOrAadhar, req.Password)
	if err != nil {
		h.log.Warn("login failed", zap.Error(err))
		response.Error(c, err)
		return
	}

	h.sessions.Issue(c, token)

	resp := LoginResponse{Success: true}
	if u != nil {
		resp.Name = u.Name
	}
	c.JSON(http.StatusOK, resp)
}

// Logout expires the session cookie. The portal session itself is left to
// age out; the opaque token is simply forgotten.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, LogoutResponse{Success: true})
}
