package pool

import (
	"net/http"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "pool not found")
	ErrInvalidID        = apperror.New(http.StatusBadRequest, "invalid pool id")
	ErrImageUnavailable = apperror.New(http.StatusNotFound, "pool image not available")
)

// Pool is a bookable swimming pool as the portal presents it.
type Pool struct {
	ID           int
	Name         string
	Description  string
	Address      string
	ImageURL     string
	GoogleMapURL string
}
