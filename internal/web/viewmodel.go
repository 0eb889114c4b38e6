package web

import (
	"fmt"
	"time"

	"github.com/poolpass/pool-booking-gateway/internal/availability"
	"github.com/poolpass/pool-booking-gateway/internal/booking"
	"github.com/poolpass/pool-booking-gateway/internal/pool"
)

// PlaceholderImage is shown for pools whose photo the portal doesn't serve.
const PlaceholderImage = "/static/pool-placeholder.svg"

// Badge pairs a label with its bootstrap background class.
type Badge struct {
	Label string
	Class string
}

// BookingStatusBadge maps a booking status to its badge color.
func BookingStatusBadge(status string) Badge {
	switch status {
	case "Completed":
		return Badge{Label: status, Class: "bg-success"}
	case "Pending":
		return Badge{Label: status, Class: "bg-warning"}
	case "Cancelled":
		return Badge{Label: status, Class: "bg-danger"}
	default:
		return Badge{Label: status, Class: "bg-info"}
	}
}

// PaymentBadge maps a payment status to its badge color. An absent status
// renders as a neutral "Not Paid".
func PaymentBadge(status string) Badge {
	switch status {
	case "Paid":
		return Badge{Label: status, Class: "bg-success"}
	case "":
		return Badge{Label: "Not Paid", Class: "bg-secondary"}
	default:
		return Badge{Label: status, Class: "bg-danger"}
	}
}

// PageControl is one pagination button.
type PageControl struct {
	Page     int
	Label    string
	Active   bool
	Disabled bool
}

// PaginationView is the whole pagination strip. Hidden when a single page
// holds everything.
type PaginationView struct {
	Hidden   bool
	Previous PageControl
	Pages    []PageControl
	Next     PageControl
}

// NewPaginationView builds the pagination strip for the given cursor.
// Previous is disabled on the first page, Next on the last, and exactly one
// numbered control exists per page.
func NewPaginationView(current, total int) PaginationView {
	if total <= 1 {
		return PaginationView{Hidden: true}
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	v := PaginationView{
		Previous: PageControl{Page: current - 1, Label: "«", Disabled: current == 1},
		Next:     PageControl{Page: current + 1, Label: "»", Disabled: current == total},
	}
	for i := 1; i <= total; i++ {
		v.Pages = append(v.Pages, PageControl{
			Page:   i,
			Label:  fmt.Sprintf("%d", i),
			Active: i == current,
		})
	}
	return v
}

// BookingRow is one dashboard table row, fully shaped for rendering.
type BookingRow struct {
	BookingNumber string
	PoolName      string
	Batch         string
	BookingDate   string
	Amount        string
	Payment       Badge
	Status        Badge
	HasReceipt    bool
	ReceiptID     string
	ReceiptURL    string
}

// NewBookingRows shapes dashboard rows out of domain bookings.
func NewBookingRows(bookings []booking.Booking) []BookingRow {
	rows := make([]BookingRow, 0, len(bookings))
	for _, b := range bookings {
		row := BookingRow{
			BookingNumber: b.BookingNumber,
			PoolName:      b.PoolName,
			Batch:         b.Batch,
			BookingDate:   b.BookingDate,
			Amount:        b.Amount,
			Payment:       PaymentBadge(b.PaymentStatus),
			Status:        BookingStatusBadge(b.BookingStatus),
		}
		if b.ReceiptID != "" {
			row.HasReceipt = true
			row.ReceiptID = b.ReceiptID
			row.ReceiptURL = "/api/receipt/" + b.ReceiptID
		}
		rows = append(rows, row)
	}
	return rows
}

// SlotCard is one availability result card.
type SlotCard struct {
	TimeSlot       string
	Date           string
	Time           string
	Amount         int
	AvailableSlots int
	Available      bool
	Badge          Badge
	// CanBook is true only for an available slot seen by a logged-in member.
	CanBook bool
}

// NewSlotCards shapes availability batches into result cards.
func NewSlotCards(batches []availability.Batch, authenticated bool) []SlotCard {
	cards := make([]SlotCard, 0, len(batches))
	for _, b := range batches {
		card := SlotCard{
			TimeSlot:       b.TimeSlot,
			Date:           b.Date,
			Time:           b.Time,
			Amount:         b.Amount,
			AvailableSlots: b.AvailableSlots,
			Available:      b.IsAvailable,
			CanBook:        b.IsAvailable && authenticated,
		}
		if b.IsAvailable {
			card.Badge = Badge{Label: "Available", Class: "bg-success"}
		} else {
			card.Badge = Badge{Label: "Fully Booked", Class: "bg-danger"}
		}
		cards = append(cards, card)
	}
	return cards
}

// PoolCard is one catalog card.
type PoolCard struct {
	ID       int
	Name     string
	Address  string
	ImageURL string
}

// NewPoolCards shapes catalog cards, substituting the placeholder for pools
// without a photo.
func NewPoolCards(pools []pool.Pool) []PoolCard {
	cards := make([]PoolCard, 0, len(pools))
	for _, p := range pools {
		imageURL := p.ImageURL
		if imageURL == "" {
			imageURL = PlaceholderImage
		} else {
			// Serve the resized proxy copy rather than hot-linking the portal.
			imageURL = fmt.Sprintf("/api/pool/%d/image", p.ID)
		}
		cards = append(cards, PoolCard{
			ID:       p.ID,
			Name:     p.Name,
			Address:  p.Address,
			ImageURL: imageURL,
		})
	}
	return cards
}

// FormatDisplayDate renders a wire date ("2006-01-02") the way result
// headings show it ("January 2, 2006"). Unparseable input is returned as-is.
func FormatDisplayDate(wire string) string {
	t, err := time.Parse(availability.DateFormat, wire)
	if err != nil {
		return wire
	}
	return t.Format("January 2, 2006")
}
