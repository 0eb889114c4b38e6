package booking

import (
	"bytes"
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/poolpass/pool-booking-gateway/internal/upstream"
)

// Portal is the slice of the legacy portal this module depends on.
type Portal interface {
	// List scrapes one page of the member's dashboard.
	List(ctx context.Context, token string, filter Filter) (*Page, error)

	// FetchReceipt downloads a receipt PDF.
	FetchReceipt(ctx context.Context, token, receiptID string) (*Receipt, error)
}

type htmlPortal struct {
	client *upstream.Client
}

// NewHTMLPortal builds a Portal that scrapes the legacy portal's pages.
func NewHTMLPortal(client *upstream.Client) Portal {
	return &htmlPortal{client: client}
}

func (p *htmlPortal) List(ctx context.Context, token string, filter Filter) (*Page, error) {
	path := "/index.php/user/dashboard"

	params := url.Values{}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.SortField != "" {
		params.Set("sortField", filter.SortField)
	}
	if filter.SortOrder != "" {
		params.Set("sortOrder", filter.SortOrder)
	}
	if filter.Page > 1 {
		params.Set("page", strconv.Itoa(filter.Page))
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := p.client.Get(ctx, path, token)
	if err != nil {
		return nil, err
	}

	doc, err := resp.Document()
	if err != nil {
		return nil, err
	}

	page := &Page{
		Bookings:      []Booking{},
		Pagination:    Pagination{CurrentPage: filter.Page, TotalPages: 1},
		StatusOptions: parseStatusOptions(doc),
	}

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		if b, ok := parseBookingRow(row); ok {
			page.Bookings = append(page.Bookings, b)
		}
	})

	// Total pages follow from the page-link count the portal renders.
	if links := doc.Find(".pagination li a"); links.Length() > 0 {
		page.Pagination.TotalPages = links.Length()
	}

	return page, nil
}

func parseBookingRow(row *goquery.Selection) (Booking, bool) {
	cells := row.Find("td")
	if cells.Length() < 8 {
		return Booking{}, false
	}

	cell := func(i int) string {
		return strings.TrimSpace(cells.Eq(i).Text())
	}
	badge := func(i int) string {
		return strings.TrimSpace(cells.Eq(i).Find(".badge").First().Text())
	}

	var receiptID string
	if href, ok := cells.Eq(7).Find("a[href*='downloadReceipt']").First().Attr("href"); ok {
		parts := strings.Split(strings.TrimRight(href, "/"), "/")
		receiptID = parts[len(parts)-1]
	}

	return Booking{
		BookingNumber: cell(0),
		PoolName:      cell(1),
		Batch:         cell(2),
		BookingDate:   cell(3),
		Amount:        cell(4),
		PaymentStatus: badge(5),
		BookingStatus: badge(6),
		ReceiptID:     receiptID,
	}, true
}

func parseStatusOptions(doc *goquery.Document) []StatusOption {
	options := []StatusOption{}
	doc.Find("select[name='status'] option").Each(func(_ int, opt *goquery.Selection) {
		value, _ := opt.Attr("value")
		_, selected := opt.Attr("selected")
		options = append(options, StatusOption{
			Value:    value,
			Text:     strings.TrimSpace(opt.Text()),
			Selected: selected,
		})
	})
	return options
}

func (p *htmlPortal) FetchReceipt(ctx context.Context, token, receiptID string) (*Receipt, error) {
	resp, err := p.client.GetRaw(ctx, "/payment/downloadReceipt/"+url.PathEscape(receiptID), token)
	if err != nil {
		return nil, err
	}

	isPDF := strings.Contains(resp.Header.Get("Content-Type"), "application/pdf") ||
		bytes.HasPrefix(resp.Body, []byte("%PDF"))
	if resp.StatusCode != 200 || !isPDF {
		return nil, ErrReceiptUnavailable
	}

	return &Receipt{ID: receiptID, Content: resp.Body}, nil
}
