package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hero-api/internal/cache"
	"github.com/MKhiriev/hero-api/internal/config"
	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/service"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so no service is dereferenced at construction time.
func newTestServices() *service.Services {
	return &service.Services{}
}

// TestNewHandlers_HTTP verifies that a configured HTTPAddress initialises the
// HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(newTestServices(), cache.NewMemoryStore(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that without an HTTPAddress NewHandlers
// returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), cache.NewMemoryStore(), config.StructuredConfig{}, newTestLogger())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_NoCacheStore verifies that a missing cache store is rejected.
func TestNewHandlers_NoCacheStore(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(newTestServices(), nil, cfg, newTestLogger())

	require.ErrorIs(t, err, errNoCacheStore)
	assert.Nil(t, h)
}
