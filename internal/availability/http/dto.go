package http

import (
	"github.com/poolpass/pool-booking-gateway/internal/availability"
)

// CheckRequest is the form-encoded availability query.
type CheckRequest struct {
	PoolID      int    `form:"pool_id" binding:"required"`
	BookingDate string `form:"booking_date" binding:"required"`
}

// BatchResponse is the shape of one time slot in API responses.
type BatchResponse struct {
	TimeSlot       string `json:"time_slot"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Amount         int    `json:"amount"`
	AvailableSlots int    `json:"available_slots"`
	IsAvailable    bool   `json:"is_available"`
}

// CheckResponse wraps the batches plus the portal's notice, when any.
type CheckResponse struct {
	Batches []BatchResponse `json:"batches"`
	Message string          `json:"message"`
}

// NewCheckResponse converts the domain result to its API shape.
func NewCheckResponse(r *availability.Result) CheckResponse {
	batches := make([]BatchResponse, 0, len(r.Batches))
	for _, b := range r.Batches {
		batches = append(batches, BatchResponse{
			TimeSlot:       b.TimeSlot,
			Date:           b.Date,
			Time:           b.Time,
			Amount:         b.Amount,
			AvailableSlots: b.AvailableSlots,
			IsAvailable:    b.IsAvailable,
		})
	}
	return CheckResponse{
		Batches: batches,
		Message: r.Message,
	}
}
