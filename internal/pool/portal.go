package pool

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/poolpass/pool-booking-gateway/internal/upstream"
)

// Portal is the slice of the legacy portal this module depends on.
type Portal interface {
	// List scrapes the landing page for pool cards.
	List(ctx context.Context, token string) ([]Pool, error)

	// Get scrapes a single pool's detail page.
	Get(ctx context.Context, token string, id int) (*Pool, error)

	// FetchImage downloads the pool's photo as served by the portal.
	FetchImage(ctx context.Context, token string, id int) ([]byte, error)
}

type htmlPortal struct {
	client *upstream.Client
}

// NewHTMLPortal builds a Portal that scrapes the legacy portal's pages.
func NewHTMLPortal(client *upstream.Client) Portal {
	return &htmlPortal{client: client}
}

func (p *htmlPortal) List(ctx context.Context, token string) ([]Pool, error) {
	resp, err := p.client.Get(ctx, "/index.php/", token)
	if err != nil {
		return nil, err
	}

	doc, err := resp.Document()
	if err != nil {
		return nil, err
	}

	var pools []Pool
	doc.Find(".card").Each(func(_ int, card *goquery.Selection) {
		href, _ := card.Find("a[href*='/pool/']").First().Attr("href")
		if href == "" {
			return
		}
		parts := strings.Split(strings.TrimRight(href, "/"), "/")
		id, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return
		}

		description := strings.TrimSpace(card.Find(".card-text").First().Text())
		imageURL, _ := card.Find("img").First().Attr("src")

		pools = append(pools, Pool{
			ID:          id,
			Name:        strings.TrimSpace(card.Find(".card-title").First().Text()),
			Description: description,
			Address:     description,
			ImageURL:    p.client.AbsoluteURL(imageURL),
		})
	})

	return pools, nil
}

func (p *htmlPortal) Get(ctx context.Context, token string, id int) (*Pool, error) {
	resp, err := p.client.Get(ctx, fmt.Sprintf("/index.php/pool/%d", id), token)
	if err != nil {
		return nil, err
	}

	doc, err := resp.Document()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(doc.Find(".pool-title").First().Text())
	if name == "" {
		return nil, ErrNotFound
	}

	imageURL, _ := doc.Find(".carousel-item img").First().Attr("src")
	mapURL, _ := doc.Find("iframe").First().Attr("src")

	return &Pool{
		ID:           id,
		Name:         name,
		Address:      strings.TrimSpace(doc.Find("p").First().Text()),
		ImageURL:     p.client.AbsoluteURL(imageURL),
		GoogleMapURL: mapURL,
	}, nil
}

func (p *htmlPortal) FetchImage(ctx context.Context, token string, id int) ([]byte, error) {
	pool, err := p.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if pool.ImageURL == "" {
		return nil, ErrImageUnavailable
	}

	// Only proxy photos hosted on the portal itself.
	path := strings.TrimPrefix(pool.ImageURL, p.client.BaseURL())
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, ErrImageUnavailable
	}

	resp, err := p.client.GetRaw(ctx, path, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 || len(resp.Body) == 0 {
		return nil, ErrImageUnavailable
	}

	return resp.Body, nil
}
