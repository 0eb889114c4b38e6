package account

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
	"github.com/poolpass/pool-booking-gateway/internal/upstream"
)

// Portal is the slice of the legacy portal this module depends on.
type Portal interface {
	// CurrentUser resolves a session token to the logged-in member,
	// or apperror.ErrAuthRequired when the portal no longer accepts it.
	CurrentUser(ctx context.Context, token string) (*User, error)

	// Login authenticates against the portal and returns the session token
	// the portal issued, plus the member it belongs to when the portal
	// reveals it during verification.
	Login(ctx context.Context, emailOrAadhar, password string) (string, *User, error)
}

type htmlPortal struct {
	client *upstream.Client
}

// NewHTMLPortal builds a Portal that scrapes the legacy portal's pages.
func NewHTMLPortal(client *upstream.Client) Portal {
	return &htmlPortal{client: client}
}

func (p *htmlPortal) CurrentUser(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, apperror.ErrAuthRequired
	}

	resp, err := p.client.Get(ctx, "/index.php/", token)
	if err != nil {
		return nil, err
	}

	doc, err := resp.Document()
	if err != nil {
		return nil, err
	}

	// The landing page shows the member name only for a live session.
	name := strings.TrimSpace(doc.Find(".nm-title").First().Text())
	if name == "" {
		return nil, apperror.ErrAuthRequired
	}

	return &User{
		Name:     name,
		Identity: strings.TrimSpace(doc.Find(".nm-email").First().Text()),
	}, nil
}

func (p *htmlPortal) Login(ctx context.Context, emailOrAadhar, password string) (string, *User, error) {
	// The portal hands out a pre-auth session on the login page; the
	// authenticate POST must carry it.
	loginPage, err := p.client.Get(ctx, "/index.php/user/login", "")
	if err != nil {
		return "", nil, err
	}
	initial := loginPage.Cookie(upstream.SessionCookieName)

	form := url.Values{}
	form.Set("email_or_aadhar", emailOrAadhar)
	form.Set("password", password)

	resp, err := p.client.PostFormNoRedirect(ctx, "/index.php/user/authenticate", initial, form)
	if err != nil {
		return "", nil, err
	}

	// A redirect with a fresh session cookie means the credentials were accepted.
	if resp.StatusCode == http.StatusFound {
		if token := resp.Cookie(upstream.SessionCookieName); token != "" {
			return token, nil, nil
		}
	}

	// Some portal deployments answer 200 and rotate the session silently.
	// Verify by probing the landing page with whatever session we hold now.
	candidate := resp.Cookie(upstream.SessionCookieName)
	if candidate == "" {
		candidate = initial
	}

	user, err := p.CurrentUser(ctx, candidate)
	if err == nil {
		return candidate, user, nil
	}

	return "", nil, ErrInvalidCredentials
}
