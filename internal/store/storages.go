package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hero-api/internal/config"
	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/utils"
)

// Storages bundles every repository backed by one database connection.
type Storages struct {
	HeroRepository HeroRepository
	TeamRepository TeamRepository
	UserRepository UserRepository
	HealthChecker  HealthChecker

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already migrated
// connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		HeroRepository: newCRUDRepository(db, heroTable(), ids, log),
		TeamRepository: newCRUDRepository(db, teamTable(), ids, log),
		UserRepository: NewUserRepository(db, ids, log),
		HealthChecker:  db,
		db:             db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
