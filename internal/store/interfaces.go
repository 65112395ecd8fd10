package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/models"
)

// Repository is the generic data-access facade shared by every entity.
//
// T is the stored entity, C its create payload and P its patch payload.
type Repository[T, C, P any] interface {
	// Get returns the entity with id, or nil and no error when it is absent.
	Get(ctx context.Context, id uuid.UUID) (*T, error)

	// GetMultiPaginated returns one page of entities. A nil query selects
	// everything ordered by id; otherwise the query's own ordering is kept.
	GetMultiPaginated(ctx context.Context, params models.Params, query *sq.SelectBuilder) (models.Page[T], error)

	// Create inserts a new entity owned by createdByID and returns it as
	// stored.
	Create(ctx context.Context, in C, createdByID uuid.UUID) (T, error)

	// Update applies the present fields of patch onto current and returns the
	// stored result.
	Update(ctx context.Context, patch P, current T) (T, error)

	// Remove deletes the entity and returns it as it was before deletion, or
	// nil when it did not exist.
	Remove(ctx context.Context, id uuid.UUID) (*T, error)

	// Select returns the base selection of the entity, suitable for
	// refinement (ordering, filtering) before passing to GetMultiPaginated.
	Select() sq.SelectBuilder
}

type (
	HeroRepository = Repository[models.Hero, models.HeroCreate, models.HeroUpdate]
	TeamRepository = Repository[models.Team, models.TeamCreate, models.TeamUpdate]
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
