package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hero-api/internal/cache"
	"github.com/MKhiriev/hero-api/models"
)

// tickingClock advances by one second on every call.
func tickingClock() func() time.Time {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestCached_ReplaysFirstResponse(t *testing.T) {
	router, _, h := newTestRouter(t)
	h.now = tickingClock()
	router = h.Init()

	first := serve(router, http.MethodGet, "/cached", "", "")
	second := serve(router, http.MethodGet, "/cached", "", "")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.Empty(t, first.Header().Get(cache.HeaderCache))
	assert.Equal(t, "HIT", second.Header().Get(cache.HeaderCache))

	resp := decodeResponse[string](t, second)
	assert.Equal(t, models.MsgDataGot, resp.Message)
	assert.Equal(t, "2026-03-01T12:00:01Z", resp.Data)
}

func TestNoCached_RecomputesEveryTime(t *testing.T) {
	router, _, h := newTestRouter(t)
	h.now = tickingClock()
	router = h.Init()

	first := serve(router, http.MethodGet, "/no_cached", "", "")
	second := serve(router, http.MethodGet, "/no_cached", "", "")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.NotEqual(t, first.Body.Bytes(), second.Body.Bytes())
	assert.Equal(t, "2026-03-01T12:00:02Z", decodeResponse[string](t, second).Data)
}

func TestCached_QueryDoesNotSplitEntries(t *testing.T) {
	router, _, h := newTestRouter(t)
	h.now = tickingClock()
	router = h.Init()

	plain := serve(router, http.MethodGet, "/cached", "", "")
	withQuery := serve(router, http.MethodGet, "/cached?junk=2", "", "")

	assert.Equal(t, plain.Body.Bytes(), withQuery.Body.Bytes())
	assert.Equal(t, "HIT", withQuery.Header().Get(cache.HeaderCache))
}
