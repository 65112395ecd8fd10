package handler

import (
	"github.com/MKhiriev/hero-api/internal/cache"
	"github.com/MKhiriev/hero-api/internal/config"
	"github.com/MKhiriev/hero-api/internal/handler/http"
	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cacheStore cache.Store, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if cacheStore == nil {
		return nil, errNoCacheStore
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cacheStore, cfg, logger),
	}, nil
}
