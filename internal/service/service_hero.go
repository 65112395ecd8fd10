package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/store"
	"github.com/MKhiriev/hero-api/models"
)

type heroService struct {
	heroRepository store.HeroRepository

	logger *logger.Logger
}

func NewHeroService(heroRepository store.HeroRepository, logger *logger.Logger) HeroService {
	return &heroService{
		heroRepository: heroRepository,
		logger:         logger,
	}
}

func (h *heroService) List(ctx context.Context, params models.Params) (models.Page[models.HeroWithTeam], error) {
	if err := params.Validate(); err != nil {
		return models.Page[models.HeroWithTeam]{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	page, err := h.heroRepository.GetMultiPaginated(ctx, params, nil)
	if err != nil {
		return models.Page[models.HeroWithTeam]{}, err
	}
	return models.MapPage(page, models.Hero.WithTeam), nil
}

func (h *heroService) ListByCreatedAt(ctx context.Context, params models.Params, order models.Order) (models.Page[models.HeroWithTeam], error) {
	if err := params.Validate(); err != nil {
		return models.Page[models.HeroWithTeam]{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if _, err := models.ParseOrder(string(order)); err != nil {
		return models.Page[models.HeroWithTeam]{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	query := store.OrderByCreatedAt(h.heroRepository.Select(), store.HeroesTable, order)

	page, err := h.heroRepository.GetMultiPaginated(ctx, params, &query)
	if err != nil {
		return models.Page[models.HeroWithTeam]{}, err
	}
	return models.MapPage(page, models.Hero.WithTeam), nil
}

func (h *heroService) Get(ctx context.Context, id uuid.UUID) (models.Hero, error) {
	hero, err := h.heroRepository.Get(ctx, id)
	if err != nil {
		return models.Hero{}, err
	}
	if hero == nil {
		return models.Hero{}, ErrHeroNotFound
	}
	return *hero, nil
}

func (h *heroService) Create(ctx context.Context, in models.HeroCreate, createdBy models.User) (models.Hero, error) {
	hero, err := h.heroRepository.Create(ctx, in, createdBy.ID)
	if err != nil {
		return models.Hero{}, mapReferenceError(err)
	}

	logger.FromContext(ctx).Info().
		Str("hero_id", hero.ID.String()).
		Str("created_by_id", createdBy.ID.String()).
		Msg("hero created")
	return hero, nil
}

func (h *heroService) Update(ctx context.Context, id uuid.UUID, patch models.HeroUpdate) (models.Hero, error) {
	current, err := h.Get(ctx, id)
	if err != nil {
		return models.Hero{}, err
	}

	updated, err := h.heroRepository.Update(ctx, patch, current)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Hero{}, ErrHeroNotFound
		}
		return models.Hero{}, mapReferenceError(err)
	}
	return updated, nil
}

func (h *heroService) Delete(ctx context.Context, id uuid.UUID) (models.Hero, error) {
	removed, err := h.heroRepository.Remove(ctx, id)
	if err != nil {
		return models.Hero{}, err
	}
	if removed == nil {
		return models.Hero{}, ErrHeroNotFound
	}

	logger.FromContext(ctx).Info().Str("hero_id", id.String()).Msg("hero deleted")
	return *removed, nil
}

// mapReferenceError turns a dangling team_id into ErrUnknownTeam.
func mapReferenceError(err error) error {
	if errors.Is(err, store.ErrInvalidReference) {
		return fmt.Errorf("%w: %w", ErrUnknownTeam, err)
	}
	return err
}
