package http

import (
	"time"

	"github.com/MKhiriev/hero-api/internal/cache"
	"github.com/MKhiriev/hero-api/internal/config"
	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/service"
)

type Handler struct {
	services *service.Services

	cache    cache.Store
	cacheTTL time.Duration

	requestTimeout time.Duration

	// now is the clock used by the timestamp endpoints.
	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cacheStore cache.Store, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cache:          cacheStore,
		cacheTTL:       cfg.Storage.Cache.Expire,
		requestTimeout: cfg.Server.RequestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
