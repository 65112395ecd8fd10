package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// table describes how one entity maps onto its SQL table. crudRepository
// is generic over it.
type table[T, C, P any] struct {
	// name is the SQL table name; its "id" column is the primary key.
	name string

	// selectBase returns the columns (and joins) scanned by scan.
	selectBase func(b sq.StatementBuilderType) sq.SelectBuilder

	// scan reads one row produced by selectBase.
	scan func(row scanner) (T, error)

	// build creates a new entity from its create payload.
	build func(in C, id, createdByID uuid.UUID, now time.Time) T

	// apply merges a patch onto the current entity and bumps updated_at.
	apply func(patch P, current T, now time.Time) T

	// values returns the writable columns of an entity.
	values func(item T) map[string]any

	// id returns the primary key of an entity.
	id func(item T) uuid.UUID
}

func (t table[T, C, P]) column(name string) string {
	return t.name + "." + name
}
