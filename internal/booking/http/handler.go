package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/booking"
	"github.com/poolpass/pool-booking-gateway/internal/pkg/response"
	"github.com/poolpass/pool-booking-gateway/internal/session"
)

type Handler struct {
	service booking.Service
	log     *zap.Logger
}

func NewHandler(service booking.Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// List returns one page of the member's bookings with pagination and the
// filter options the portal currently offers.
func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Detail: "invalid query parameters"})
		return
	}

	filter := booking.Filter{
		Page:      req.Page,
		Status:    req.Status,
		SortField: req.SortField,
		SortOrder: req.SortOrder,
	}

	page, err := h.service.List(c.Request.Context(), session.Token(c), filter)
	if err != nil {
		h.log.Warn("booking list failed",
			zap.Int("page", req.Page),
			zap.String("status", req.Status),
			zap.Error(err))
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewListResponse(page))
}

// Receipt streams the receipt PDF. Registered for both GET and HEAD so
// clients can probe availability before embedding the document.
func (h *Handler) Receipt(c *gin.Context) {
	receiptID := c.Param("id")

	r, err := h.service.Receipt(c.Request.Context(), session.Token(c), receiptID)
	if err != nil {
		h.log.Warn("receipt fetch failed", zap.String("receipt_id", receiptID), zap.Error(err))
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", r.ID))
	c.Header("Content-Length", strconv.Itoa(len(r.Content)))

	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}

	c.Data(http.StatusOK, "application/pdf", r.Content)
}
