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

type teamService struct {
	teamRepository store.TeamRepository

	logger *logger.Logger
}

func NewTeamService(teamRepository store.TeamRepository, logger *logger.Logger) TeamService {
	return &teamService{
		teamRepository: teamRepository,
		logger:         logger,
	}
}

func (t *teamService) List(ctx context.Context, params models.Params) (models.Page[models.Team], error) {
	if err := params.Validate(); err != nil {
		return models.Page[models.Team]{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return t.teamRepository.GetMultiPaginated(ctx, params, nil)
}

func (t *teamService) Get(ctx context.Context, id uuid.UUID) (models.Team, error) {
	team, err := t.teamRepository.Get(ctx, id)
	if err != nil {
		return models.Team{}, err
	}
	if team == nil {
		return models.Team{}, ErrTeamNotFound
	}
	return *team, nil
}

func (t *teamService) Create(ctx context.Context, in models.TeamCreate, createdBy models.User) (models.Team, error) {
	team, err := t.teamRepository.Create(ctx, in, createdBy.ID)
	if err != nil {
		return models.Team{}, mapUniqueError(err)
	}
	return team, nil
}

func (t *teamService) Update(ctx context.Context, id uuid.UUID, patch models.TeamUpdate) (models.Team, error) {
	current, err := t.Get(ctx, id)
	if err != nil {
		return models.Team{}, err
	}

	updated, err := t.teamRepository.Update(ctx, patch, current)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Team{}, ErrTeamNotFound
		}
		return models.Team{}, mapUniqueError(err)
	}
	return updated, nil
}

func mapUniqueError(err error) error {
	if errors.Is(err, store.ErrAlreadyExists) {
		return fmt.Errorf("%w: %w", ErrTeamNameTaken, err)
	}
	return err
}
