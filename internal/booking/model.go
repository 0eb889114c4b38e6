package booking

import (
	"net/http"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

var (
	ErrInvalidReceiptID   = apperror.New(http.StatusBadRequest, "invalid receipt id")
	ErrReceiptUnavailable = apperror.New(http.StatusBadRequest, "Receipt not available or not in PDF format")
)

// Booking is one row of the member's dashboard as the portal renders it.
// Amount stays a string: the portal formats it with currency markers.
type Booking struct {
	BookingNumber string
	PoolName      string
	Batch         string
	BookingDate   string
	Amount        string
	PaymentStatus string
	BookingStatus string
	ReceiptID     string // empty when the portal offers no receipt
}

// Pagination is the cursor the dashboard exposes.
type Pagination struct {
	CurrentPage int
	TotalPages  int
}

// StatusOption is one entry of the dashboard's status filter dropdown.
type StatusOption struct {
	Value    string
	Text     string
	Selected bool
}

// Filter drives a dashboard fetch.
type Filter struct {
	Page      int
	Status    string
	SortField string
	SortOrder string
}

// Page is the parsed result of one dashboard fetch.
type Page struct {
	Bookings      []Booking
	Pagination    Pagination
	StatusOptions []StatusOption
}

// Receipt is a fetched receipt document.
type Receipt struct {
	ID      string
	Content []byte
}
