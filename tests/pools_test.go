package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	poolHttp "github.com/poolpass/pool-booking-gateway/internal/pool/http"
)

func TestPoolList(t *testing.T) {
	w := executeRequest("GET", "/api/pools", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var pools []poolHttp.PoolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pools))
	require.Len(t, pools, 2)

	assert.Equal(t, 1, pools[0].ID)
	assert.Equal(t, "Nehru Swimming Pool", pools[0].Name)
	assert.Equal(t, "Sector 12, Pimpri", pools[0].Address)
	assert.NotEmpty(t, pools[0].ImageURL)

	assert.Equal(t, 2, pools[1].ID)
	assert.Empty(t, pools[1].ImageURL)
}

func TestPoolDetail(t *testing.T) {
	t.Run("Known pool", func(t *testing.T) {
		w := executeRequest("GET", "/api/pool/1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var p poolHttp.PoolResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, "Nehru Swimming Pool", p.Name)
		assert.Contains(t, p.GoogleMapURL, "google.com/maps/embed")
	})

	t.Run("Unknown pool returns 404", func(t *testing.T) {
		w := executeRequest("GET", "/api/pool/999", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Non-numeric id returns 400", func(t *testing.T) {
		w := executeRequest("GET", "/api/pool/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPoolImage(t *testing.T) {
	t.Run("Photo is proxied as JPEG", func(t *testing.T) {
		w := executeRequest("GET", "/api/pool/1/image", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte{0xFF, 0xD8}), "body should be a JPEG")
	})

	t.Run("Pool without a photo returns 404", func(t *testing.T) {
		w := executeRequest("GET", "/api/pool/2/image", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
