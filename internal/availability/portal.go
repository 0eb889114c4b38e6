package availability

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/poolpass/pool-booking-gateway/internal/upstream"
)

// Portal is the slice of the legacy portal this module depends on.
type Portal interface {
	// Check submits the availability form and parses the slot cards the
	// portal renders in reply.
	Check(ctx context.Context, token string, poolID int, bookingDate string) (*Result, error)
}

type htmlPortal struct {
	client *upstream.Client
}

// NewHTMLPortal builds a Portal that scrapes the legacy portal's pages.
func NewHTMLPortal(client *upstream.Client) Portal {
	return &htmlPortal{client: client}
}

func (p *htmlPortal) Check(ctx context.Context, token string, poolID int, bookingDate string) (*Result, error) {
	form := url.Values{}
	form.Set("pool_id", strconv.Itoa(poolID))
	form.Set("booking_date", bookingDate)

	resp, err := p.client.PostForm(ctx, "/index.php/availability", token, form)
	if err != nil {
		return nil, err
	}

	doc, err := resp.Document()
	if err != nil {
		return nil, err
	}

	// The portal renders a red notice instead of cards when there is
	// nothing bookable that day.
	if notice := strings.TrimSpace(doc.Find(".text-danger").First().Text()); notice != "" {
		return &Result{Batches: []Batch{}, Message: notice}, nil
	}

	result := &Result{Batches: []Batch{}}
	doc.Find(".card").Each(func(_ int, card *goquery.Selection) {
		result.Batches = append(result.Batches, parseBatchCard(card))
	})

	return result, nil
}

// parseBatchCard pulls the slot fields out of one availability card. The
// card body is a single run of text with labelled segments:
// "Date: ... Time: ... Amount: ... Available Slots: ...".
func parseBatchCard(card *goquery.Selection) Batch {
	text := strings.TrimSpace(card.Find(".card-text").First().Text())

	return Batch{
		TimeSlot:       strings.TrimSpace(card.Find(".card-title").First().Text()),
		Date:           segment(text, "Date:", "Time:"),
		Time:           segment(text, "Time:", "Amount:"),
		Amount:         atoiOrZero(segment(text, "Amount:", "Available Slots:")),
		AvailableSlots: atoiOrZero(segment(text, "Available Slots:", "")),
		IsAvailable:    card.Find("button[disabled]").Length() == 0,
	}
}

// segment returns the trimmed text between the first occurrence of from and
// the following occurrence of until. An empty until means "to end of text".
func segment(text, from, until string) string {
	i := strings.Index(text, from)
	if i < 0 {
		return ""
	}
	rest := text[i+len(from):]
	if until != "" {
		if j := strings.Index(rest, until); j >= 0 {
			rest = rest[:j]
		}
	}
	return strings.TrimSpace(rest)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
