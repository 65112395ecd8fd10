package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=HeroServiceWrapper,TeamServiceWrapper,AuthServiceWrapper

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/models"
)

type HeroService interface {
	List(ctx context.Context, params models.Params) (models.Page[models.HeroWithTeam], error)
	ListByCreatedAt(ctx context.Context, params models.Params, order models.Order) (models.Page[models.HeroWithTeam], error)

	// Get returns the hero with its team joined, or ErrHeroNotFound.
	Get(ctx context.Context, id uuid.UUID) (models.Hero, error)

	Create(ctx context.Context, hero models.HeroCreate, createdBy models.User) (models.Hero, error)
	Update(ctx context.Context, id uuid.UUID, patch models.HeroUpdate) (models.Hero, error)

	// Delete removes the hero and returns it as it was before removal.
	Delete(ctx context.Context, id uuid.UUID) (models.Hero, error)
}

type TeamService interface {
	List(ctx context.Context, params models.Params) (models.Page[models.Team], error)
	Get(ctx context.Context, id uuid.UUID) (models.Team, error)
	Create(ctx context.Context, team models.TeamCreate, createdBy models.User) (models.Team, error)
	Update(ctx context.Context, id uuid.UUID, patch models.TeamUpdate) (models.Team, error)
}

type AuthService interface {
	// Login checks the credentials and issues a signed access token.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Authenticate resolves the active user behind tokenString. When roles are
	// given the user must hold at least one of them.
	Authenticate(ctx context.Context, tokenString string, roles ...models.Role) (models.User, error)

	// EnsureSuperuser creates an active admin with the given credentials
	// unless a user with that email already exists.
	EnsureSuperuser(ctx context.Context, email, password string) (models.User, error)
}

// HealthService reports whether the backing database is reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HeroServiceWrapper defines middleware composition for HeroService.
// Implementations wrap an existing HeroService to add behavior such as
// logging or validating.
type HeroServiceWrapper interface {
	Wrap(HeroService) HeroService
}

// TeamServiceWrapper defines middleware composition for TeamService.
type TeamServiceWrapper interface {
	Wrap(TeamService) TeamService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
