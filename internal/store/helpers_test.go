package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hero-api/internal/config"
	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

// testClock hands out strictly increasing timestamps one second apart,
// unless frozen.
type testClock struct {
	mu     sync.Mutex
	now    time.Time
	frozen bool
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.frozen {
		c.now = c.now.Add(time.Second)
	}
	return c.now
}

func (c *testClock) Freeze(frozen bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = frozen
}

type testStore struct {
	db      *DB
	clock   *testClock
	heroes  HeroRepository
	teams   TeamRepository
	users   UserRepository
	ownerID uuid.UUID
}

// newTestStore opens a migrated in-memory SQLite database with one user
// that owns every created row.
func newTestStore(t *testing.T) *testStore {
	t.Helper()

	ctx := context.Background()
	log := logger.Nop()

	db, err := NewConnect(ctx, config.DB{DSN: "sqlite://file::memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	clock := newTestClock()
	db.now = clock.Now

	storages := NewStoragesFromDB(db, log)

	owner, err := storages.UserRepository.CreateUser(ctx, models.User{
		Email:          "owner@example.com",
		HashedPassword: "hash",
		IsActive:       true,
		Roles:          []models.Role{models.RoleAdmin},
	})
	require.NoError(t, err)

	return &testStore{
		db:      db,
		clock:   clock,
		heroes:  storages.HeroRepository,
		teams:   storages.TeamRepository,
		users:   storages.UserRepository,
		ownerID: owner.ID,
	}
}

func (s *testStore) createHero(t *testing.T, name string) models.Hero {
	t.Helper()
	hero, err := s.heroes.Create(context.Background(), models.HeroCreate{Name: name, SecretName: name + " secret"}, s.ownerID)
	require.NoError(t, err)
	return hero
}

func intPtr(v int) *int { return &v }

// fixedIDs returns a generator producing ids in the given order.
func fixedIDs(ids ...uuid.UUID) idGenerator {
	return &sliceIDs{ids: ids}
}

type sliceIDs struct {
	ids []uuid.UUID
}

func (s *sliceIDs) Generate() uuid.UUID {
	if len(s.ids) == 0 {
		return utils.NewUUIDGenerator().Generate()
	}
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}
