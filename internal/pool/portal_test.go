package pool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/upstream"
)

const landingHTML = `<!DOCTYPE html>
<html><body>
<div class="card">
  <img src="/assets/uploads/pool1.jpg" class="card-img-top">
  <div class="card-body">
    <h5 class="card-title">Nehru Swimming Pool</h5>
    <p class="card-text">Sector 12, Pimpri</p>
    <a href="/index.php/pool/1" class="btn btn-primary">View Details</a>
  </div>
</div>
<div class="card">
  <div class="card-body">
    <h5 class="card-title">Olympic Pool</h5>
    <p class="card-text">Chinchwad</p>
    <a href="/index.php/pool/2/" class="btn btn-primary">View Details</a>
  </div>
</div>
<div class="card">
  <div class="card-body">
    <h5 class="card-title">Not a pool card</h5>
    <a href="/index.php/contact">Contact</a>
  </div>
</div>
</body></html>`

const detailHTML = `<!DOCTYPE html>
<html><body>
<h2 class="pool-title">Nehru Swimming Pool</h2>
<p>Sector 12, Pimpri, Pune 411018</p>
<div class="carousel-item active"><img src="/assets/uploads/pool1.jpg"></div>
<div class="carousel-item"><img src="/assets/uploads/pool1b.jpg"></div>
<iframe src="https://www.google.com/maps/embed?pb=!1m18"></iframe>
</body></html>`

func newTestPortal(t *testing.T, handler http.HandlerFunc) (Portal, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := upstream.NewClient(server.URL, 5*time.Second, zap.NewNop())
	return NewHTMLPortal(client), server.URL
}

func TestPortalList(t *testing.T) {
	portal, baseURL := newTestPortal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/index.php/", r.URL.Path)
		w.Write([]byte(landingHTML))
	})

	pools, err := portal.List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, pools, 2, "cards without a pool link are skipped")

	assert.Equal(t, 1, pools[0].ID)
	assert.Equal(t, "Nehru Swimming Pool", pools[0].Name)
	assert.Equal(t, "Sector 12, Pimpri", pools[0].Address)
	assert.Equal(t, baseURL+"/assets/uploads/pool1.jpg", pools[0].ImageURL)

	assert.Equal(t, 2, pools[1].ID, "trailing slash in the link is tolerated")
	assert.Empty(t, pools[1].ImageURL)
}

func TestPortalGet(t *testing.T) {
	portal, baseURL := newTestPortal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/index.php/pool/1", r.URL.Path)
		w.Write([]byte(detailHTML))
	})

	p, err := portal.Get(context.Background(), "tok", 1)
	require.NoError(t, err)

	assert.Equal(t, "Nehru Swimming Pool", p.Name)
	assert.Equal(t, "Sector 12, Pimpri, Pune 411018", p.Address)
	assert.Equal(t, baseURL+"/assets/uploads/pool1.jpg", p.ImageURL, "first carousel image wins")
	assert.Contains(t, p.GoogleMapURL, "google.com/maps/embed")
}

func TestPortalGetUnknownPool(t *testing.T) {
	portal, _ := newTestPortal(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>Page not found</p></body></html>`))
	})

	_, err := portal.Get(context.Background(), "tok", 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortalFetchImage(t *testing.T) {
	photo := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	portal, _ := newTestPortal(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/index.php/pool/1":
			w.Write([]byte(detailHTML))
		case "/assets/uploads/pool1.jpg":
			w.Write(photo)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	data, err := portal.FetchImage(context.Background(), "tok", 1)
	require.NoError(t, err)
	assert.Equal(t, photo, data)
}

func TestPortalFetchImageRejectsForeignHosts(t *testing.T) {
	portal, _ := newTestPortal(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<h2 class="pool-title">Hotlinked Pool</h2>
<div class="carousel-item"><img src="https://elsewhere.example/p.jpg"></div>
</body></html>`))
	})

	_, err := portal.FetchImage(context.Background(), "tok", 1)
	assert.ErrorIs(t, err, ErrImageUnavailable)
}
