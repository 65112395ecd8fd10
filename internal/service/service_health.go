package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hero-api/internal/store"
)

type healthService struct {
	checker store.HealthChecker
}

func NewHealthService(checker store.HealthChecker) HealthService {
	return &healthService{checker: checker}
}

func (h *healthService) Ping(ctx context.Context) error {
	if err := h.checker.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
