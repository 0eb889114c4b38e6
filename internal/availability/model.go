package availability

import (
	"net/http"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

var (
	ErrInvalidInput = apperror.New(http.StatusBadRequest, "pool_id and booking_date are required")
	ErrInvalidDate  = apperror.New(http.StatusBadRequest, "booking date must be today or later")
)

// Batch is one bookable time slot for a (pool, date) query.
type Batch struct {
	TimeSlot       string
	Date           string
	Time           string
	Amount         int
	AvailableSlots int
	IsAvailable    bool
}

// Result is the outcome of an availability query. Message carries the
// portal's own "nothing to show" text when it renders one instead of cards.
type Result struct {
	Batches []Batch
	Message string
}
