package tests

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePage(t *testing.T) {
	t.Run("Anonymous visitor sees the catalog and a login link", func(t *testing.T) {
		w := executeRequest("GET", "/", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "Nehru Swimming Pool")
		assert.Contains(t, body, "Olympic Pool")
		assert.Contains(t, body, "Login")
		assert.NotContains(t, body, testName)
	})

	t.Run("Member sees their name in the navbar", func(t *testing.T) {
		w := executeRequest("GET", "/", nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testName)
	})
}

func TestWebLogin(t *testing.T) {
	t.Run("Success redirects home with the cookie", func(t *testing.T) {
		form := url.Values{}
		form.Set("email_or_aadhar", testEmail)
		form.Set("password", testPassword)

		w := executeRequest("POST", "/login", form, "")
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		cookie := responseCookie(w, sessionCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, memberToken, cookie.Value)
	})

	t.Run("Failure re-renders the page with the error inline", func(t *testing.T) {
		form := url.Values{}
		form.Set("email_or_aadhar", testEmail)
		form.Set("password", "wrong")

		w := executeRequest("POST", "/login", form, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		assert.Nil(t, responseCookie(w, sessionCookieName))
	})
}

func TestDashboardPage(t *testing.T) {
	t.Run("Anonymous visitor is sent home", func(t *testing.T) {
		w := executeRequest("GET", "/dashboard", nil, "")
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("Member sees the booking table with badges", func(t *testing.T) {
		w := executeRequest("GET", "/dashboard", nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "BK-1001")
		assert.Contains(t, body, "bg-success")
		assert.Contains(t, body, "Not Paid")
		assert.Contains(t, body, "/api/receipt/77")
		assert.Contains(t, body, `class="pagination`, "three portal pages must render the strip")
	})
}

func TestSearchPage(t *testing.T) {
	t.Run("Bare form renders without results", func(t *testing.T) {
		w := executeRequest("GET", "/search", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Check Availability")
	})

	t.Run("Anonymous submission prompts login without touching the portal", func(t *testing.T) {
		before := portal.AvailabilityCalls()

		w := executeRequest("GET", "/search?pool_id=1&booking_date="+tomorrow(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "login")

		assert.Equal(t, before, portal.AvailabilityCalls())
	})

	t.Run("Member submission shows the batches", func(t *testing.T) {
		w := executeRequest("GET", "/search?pool_id=1&booking_date="+tomorrow(), nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "Morning Batch")
		assert.Contains(t, body, "Book Now")
		assert.Contains(t, body, "Fully Booked")
	})
}

func TestPoolDetailPage(t *testing.T) {
	t.Run("Known pool renders with the map", func(t *testing.T) {
		w := executeRequest("GET", "/pool/1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "Nehru Swimming Pool")
		assert.Contains(t, body, "google.com/maps/embed")
	})

	t.Run("Unknown pool falls back to the catalog", func(t *testing.T) {
		w := executeRequest("GET", "/pool/999", nil, "")
		require.Equal(t, http.StatusSeeOther, w.Code)
	})
}

func TestThemeToggle(t *testing.T) {
	t.Run("Explicit choice is persisted", func(t *testing.T) {
		form := url.Values{}
		form.Set("theme", "dark")

		w := executeRequest("POST", "/theme", form, "")
		require.Equal(t, http.StatusSeeOther, w.Code)

		cookie := responseCookie(w, "theme")
		require.NotNil(t, cookie)
		assert.Equal(t, "dark", cookie.Value)
		assert.Equal(t, 365*24*60*60, cookie.MaxAge)
	})

	t.Run("No saved preference flips to dark", func(t *testing.T) {
		w := executeRequest("POST", "/theme", url.Values{}, "")
		require.Equal(t, http.StatusSeeOther, w.Code)

		cookie := responseCookie(w, "theme")
		require.NotNil(t, cookie)
		assert.Equal(t, "dark", cookie.Value)
	})

	t.Run("Saved preference renders on the page", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

		w := newRecorderFor(req)
		assert.Contains(t, w.Body.String(), `data-bs-theme="dark"`)
	})
}
