package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestCookieRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Set(c, "pool_session", "abc123", 7)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "pool_session", cookies[0].Name)
	assert.Equal(t, "abc123", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 7*24*60*60, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCookieGet(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

		value, ok := Get(c, "theme")
		assert.True(t, ok)
		assert.Equal(t, "dark", value)
	})

	t.Run("Absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		_, ok := Get(c, "theme")
		assert.False(t, ok)
	})

	t.Run("Empty value counts as absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: "theme", Value: ""})

		_, ok := Get(c, "theme")
		assert.False(t, ok)
	})
}

func TestCookieDelete(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Delete(c, "pool_session")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestManagerExtract(t *testing.T) {
	manager := Manager{CookieName: "pool_session", TTLDays: 7}

	r := gin.New()
	r.Use(manager.Extract())
	r.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, Token(c))
	})

	t.Run("Cookie lands in the request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: "pool_session", Value: "tok-1"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "tok-1", w.Body.String())
	})

	t.Run("No cookie means empty token, not rejection", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestRequired(t *testing.T) {
	manager := Manager{CookieName: "pool_session", TTLDays: 7}

	r := gin.New()
	r.Use(manager.Extract())
	r.GET("/guarded", Required(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("Missing session is rejected with 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Not authenticated", body["detail"])
	})

	t.Run("Session passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: "pool_session", Value: "tok-1"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
