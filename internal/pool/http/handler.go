package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/response"
	"github.com/poolpass/pool-booking-gateway/internal/pool"
	"github.com/poolpass/pool-booking-gateway/internal/session"
)

type Handler struct {
	service pool.Service
	log     *zap.Logger
}

func NewHandler(service pool.Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// List returns every bookable pool on the portal's landing page.
func (h *Handler) List(c *gin.Context) {
	pools, err := h.service.List(c.Request.Context(), session.Token(c))
	if err != nil {
		h.log.Warn("pool list failed", zap.Error(err))
		response.Error(c, err)
		return
	}

	items := make([]PoolResponse, 0, len(pools))
	for i := range pools {
		items = append(items, NewPoolResponse(&pools[i]))
	}

	c.JSON(http.StatusOK, items)
}

// Get returns a single pool's detail, including the embedded map URL when
// the portal provides one.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, pool.ErrInvalidID)
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), session.Token(c), id)
	if err != nil {
		h.log.Warn("pool detail failed", zap.Int("id", id), zap.Error(err))
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPoolResponse(p))
}

// Image streams a resized JPEG of the pool photo.
func (h *Handler) Image(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, pool.ErrInvalidID)
		return
	}

	var req ThumbnailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pool.ErrInvalidID)
		return
	}

	thumb, err := h.service.Thumbnail(c.Request.Context(), session.Token(c), id, req.Width, req.Height)
	if err != nil {
		h.log.Warn("pool thumbnail failed", zap.Int("id", id), zap.Error(err))
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "image/jpeg")
	c.Header("Cache-Control", "public, max-age=3600")
	c.Status(http.StatusOK)
	io.Copy(c.Writer, thumb)
}
