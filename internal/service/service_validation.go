package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/internal/validators"
	"github.com/MKhiriev/hero-api/models"
)

type HeroValidationService struct {
	inner     HeroService
	validator validators.Validator
}

func NewHeroValidationService() HeroServiceWrapper {
	return &HeroValidationService{
		validator: validators.NewHeroValidator(),
	}
}

func (v *HeroValidationService) List(ctx context.Context, params models.Params) (models.Page[models.HeroWithTeam], error) {
	return v.inner.List(ctx, params)
}

func (v *HeroValidationService) ListByCreatedAt(ctx context.Context, params models.Params, order models.Order) (models.Page[models.HeroWithTeam], error) {
	return v.inner.ListByCreatedAt(ctx, params, order)
}

func (v *HeroValidationService) Get(ctx context.Context, id uuid.UUID) (models.Hero, error) {
	return v.inner.Get(ctx, id)
}

func (v *HeroValidationService) Create(ctx context.Context, hero models.HeroCreate, createdBy models.User) (models.Hero, error) {
	if err := v.validator.Validate(ctx, hero); err != nil {
		return models.Hero{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Create(ctx, hero, createdBy)
}

func (v *HeroValidationService) Update(ctx context.Context, id uuid.UUID, patch models.HeroUpdate) (models.Hero, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Hero{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Update(ctx, id, patch)
}

func (v *HeroValidationService) Delete(ctx context.Context, id uuid.UUID) (models.Hero, error) {
	return v.inner.Delete(ctx, id)
}

func (v *HeroValidationService) Wrap(inner HeroService) HeroService {
	v.inner = inner
	return v
}

type TeamValidationService struct {
	inner     TeamService
	validator validators.Validator
}

func NewTeamValidationService() TeamServiceWrapper {
	return &TeamValidationService{
		validator: validators.NewTeamValidator(),
	}
}

func (v *TeamValidationService) List(ctx context.Context, params models.Params) (models.Page[models.Team], error) {
	return v.inner.List(ctx, params)
}

func (v *TeamValidationService) Get(ctx context.Context, id uuid.UUID) (models.Team, error) {
	return v.inner.Get(ctx, id)
}

func (v *TeamValidationService) Create(ctx context.Context, team models.TeamCreate, createdBy models.User) (models.Team, error) {
	if err := v.validator.Validate(ctx, team); err != nil {
		return models.Team{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Create(ctx, team, createdBy)
}

func (v *TeamValidationService) Update(ctx context.Context, id uuid.UUID, patch models.TeamUpdate) (models.Team, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Team{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Update(ctx, id, patch)
}

func (v *TeamValidationService) Wrap(inner TeamService) TeamService {
	v.inner = inner
	return v
}

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string, roles ...models.Role) (models.User, error) {
	return v.inner.Authenticate(ctx, tokenString, roles...)
}

func (v *AuthValidationService) EnsureSuperuser(ctx context.Context, email, password string) (models.User, error) {
	if err := v.validator.Validate(ctx, models.Credentials{Email: email, Password: password}); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.EnsureSuperuser(ctx, email, password)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
