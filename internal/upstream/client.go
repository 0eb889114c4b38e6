package upstream

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

// The legacy portal rejects requests without a browser-looking user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// SessionCookieName is the cookie the legacy portal keys its sessions on.
const SessionCookieName = "ci_session"

// Response is a fully-read upstream reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	cookies    []*http.Cookie
}

// Cookie returns the value of a Set-Cookie header by name, or empty string.
func (r *Response) Cookie(name string) string {
	for _, c := range r.cookies {
		if c.Name == name && c.Value != "" {
			return c.Value
		}
	}
	return ""
}

// Document parses the response body as HTML.
func (r *Response) Document() (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusBadGateway, "failed to parse upstream page")
	}
	return doc, nil
}

// Client issues HTTP requests against the legacy booking portal.
// It is the single place that attaches the portal session cookie, so every
// feature talks to the portal through the same credential handling.
type Client struct {
	baseURL  string
	follow   *http.Client
	noFollow *http.Client
	log      *zap.Logger
}

// NewClient creates a portal client with the given base URL and request timeout.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		follow:  &http.Client{Timeout: timeout},
		noFollow: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}
}

// Get fetches a portal page, following redirects.
// Non-success statuses are returned as upstream errors.
func (c *Client) Get(ctx context.Context, path, token string) (*Response, error) {
	resp, err := c.do(ctx, c.follow, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		err := apperror.Upstream(resp.StatusCode)
		c.log.Warn("upstream GET failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, err
	}
	return resp, nil
}

// GetRaw fetches a portal resource without status checking; callers inspect
// the status themselves. Used for binary resources such as receipts and photos.
func (c *Client) GetRaw(ctx context.Context, path, token string) (*Response, error) {
	return c.do(ctx, c.follow, http.MethodGet, path, token, nil)
}

// PostForm submits a form-encoded POST, following redirects.
// Non-success statuses are returned as upstream errors.
func (c *Client) PostForm(ctx context.Context, path, token string, form url.Values) (*Response, error) {
	resp, err := c.do(ctx, c.follow, http.MethodPost, path, token, form)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		err := apperror.Upstream(resp.StatusCode)
		c.log.Warn("upstream POST failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, err
	}
	return resp, nil
}

// PostFormNoRedirect submits a form-encoded POST without following redirects.
// The login flow needs to see the portal's 302 and its Set-Cookie headers.
func (c *Client) PostFormNoRedirect(ctx context.Context, path, token string, form url.Values) (*Response, error) {
	return c.do(ctx, c.noFollow, http.MethodPost, path, token, form)
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path, token string, form url.Values) (*Response, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "failed to build upstream request")
	}

	req.Header.Set("User-Agent", userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}

	resp, err := hc.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, apperror.Network(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("upstream body read failed",
			zap.String("path", path),
			zap.Error(err))
		return nil, apperror.Network(err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
		cookies:    resp.Cookies(),
	}, nil
}

// BaseURL exposes the portal base, used to absolutize scraped asset links.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AbsoluteURL resolves a scraped link against the portal base when it is not
// already absolute.
func (c *Client) AbsoluteURL(link string) string {
	if link == "" || strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return c.baseURL + "/" + strings.TrimLeft(link, "/")
}
