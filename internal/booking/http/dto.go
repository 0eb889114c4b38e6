package http

import (
	"github.com/poolpass/pool-booking-gateway/internal/booking"
)

// ListRequest defines query parameters for the dashboard fetch.
type ListRequest struct {
	Page      int    `form:"page,default=1"`
	Status    string `form:"status"`
	SortField string `form:"sortField"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=ASC DESC asc desc"`
}

// BookingResponse is the shape of one booking row in API responses.
type BookingResponse struct {
	BookingNumber string  `json:"booking_number"`
	PoolName      string  `json:"pool_name"`
	Batch         string  `json:"batch"`
	BookingDate   string  `json:"booking_date"`
	Amount        string  `json:"amount"`
	PaymentStatus string  `json:"payment_status"`
	BookingStatus string  `json:"booking_status"`
	ReceiptID     *string `json:"receipt_id"`
}

// NewBookingResponse converts domain booking.Booking to its API shape.
func NewBookingResponse(b *booking.Booking) BookingResponse {
	var receiptID *string
	if b.ReceiptID != "" {
		id := b.ReceiptID
		receiptID = &id
	}
	return BookingResponse{
		BookingNumber: b.BookingNumber,
		PoolName:      b.PoolName,
		Batch:         b.Batch,
		BookingDate:   b.BookingDate,
		Amount:        b.Amount,
		PaymentStatus: b.PaymentStatus,
		BookingStatus: b.BookingStatus,
		ReceiptID:     receiptID,
	}
}

// PaginationResponse is the dashboard's page cursor.
type PaginationResponse struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// StatusOptionResponse is one entry of the status filter dropdown.
type StatusOptionResponse struct {
	Value    string `json:"value"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

// FiltersResponse wraps the filter controls the dashboard offers.
type FiltersResponse struct {
	StatusOptions []StatusOptionResponse `json:"status_options"`
}

// ListResponse is the standard dashboard page payload.
type ListResponse struct {
	Bookings   []BookingResponse  `json:"bookings"`
	Pagination PaginationResponse `json:"pagination"`
	Filters    FiltersResponse    `json:"filters"`
}

// NewListResponse converts a domain page to its API shape.
func NewListResponse(p *booking.Page) ListResponse {
	bookings := make([]BookingResponse, 0, len(p.Bookings))
	for i := range p.Bookings {
		bookings = append(bookings, NewBookingResponse(&p.Bookings[i]))
	}

	options := make([]StatusOptionResponse, 0, len(p.StatusOptions))
	for _, o := range p.StatusOptions {
		options = append(options, StatusOptionResponse{
			Value:    o.Value,
			Text:     o.Text,
			Selected: o.Selected,
		})
	}

	return ListResponse{
		Bookings: bookings,
		Pagination: PaginationResponse{
			CurrentPage: p.Pagination.CurrentPage,
			TotalPages:  p.Pagination.TotalPages,
		},
		Filters: FiltersResponse{StatusOptions: options},
	}
}
