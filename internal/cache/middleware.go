package cache

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/hero-api/internal/logger"
)

// HeaderCache is set to "HIT" on responses replayed from the store.
const HeaderCache = "X-Cache"

// Cached is CachedBy keyed on method, path and query.
func Cached(store Store, ttl time.Duration, next http.Handler) http.Handler {
	return CachedBy(store, ttl, Key, next)
}

// CachedBy serves the stored response for keyFn(r) when present.
// Otherwise next runs and its response is stored for ttl when the status is 2xx.
// Store failures are logged and treated as a miss.
func CachedBy(store Store, ttl time.Duration, keyFn KeyFunc, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)
		key := keyFn(r)

		entry, err := store.Get(ctx, key)
		switch {
		case err == nil:
			CacheHits.Inc()
			if entry.ContentType != "" {
				w.Header().Set("Content-Type", entry.ContentType)
			}
			w.Header().Set(HeaderCache, "HIT")
			w.WriteHeader(entry.Status)
			_, _ = w.Write(entry.Body)
			return
		case !errors.Is(err, ErrCacheMiss):
			CacheErrors.WithLabelValues("get").Inc()
			log.Err(err).Str("func", "cache.Cached").Str("key", key).Msg("cache get failed")
		}
		CacheMisses.Inc()

		capture := &responseCapture{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(capture, r)

		if capture.status < 200 || capture.status >= 300 {
			return
		}

		entry = Entry{
			Status:      capture.status,
			ContentType: w.Header().Get("Content-Type"),
			Body:        capture.body.Bytes(),
		}
		if err = store.Set(ctx, key, entry, ttl); err != nil {
			CacheErrors.WithLabelValues("set").Inc()
			log.Err(err).Str("func", "cache.Cached").Str("key", key).Msg("cache set failed")
		}
	})
}

// responseCapture writes through to the client and keeps a copy of the body.
type responseCapture struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (c *responseCapture) WriteHeader(status int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	c.status = status
	c.ResponseWriter.WriteHeader(status)
}

func (c *responseCapture) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	c.body.Write(p)
	return c.ResponseWriter.Write(p)
}

func (c *responseCapture) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}
