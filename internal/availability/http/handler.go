package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/availability"
	"github.com/poolpass/pool-booking-gateway/internal/pkg/response"
	"github.com/poolpass/pool-booking-gateway/internal/session"
)

type Handler struct {
	service availability.Service
	log     *zap.Logger
}

func NewHandler(service availability.Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Check answers the availability query for a (pool, date) pair.
func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, availability.ErrInvalidInput)
		return
	}

	result, err := h.service.Check(c.Request.Context(), session.Token(c), req.PoolID, req.BookingDate)
	if err != nil {
		h.log.Warn("availability check failed",
			zap.Int("pool_id", req.PoolID),
			zap.String("booking_date", req.BookingDate),
			zap.Error(err))
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCheckResponse(result))
}
