package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/models"
)

// idGenerator issues primary keys for new rows.
type idGenerator interface {
	Generate() uuid.UUID
}

// crudRepository implements [Repository] for any entity described by a
// [table]. Every write runs in its own transaction and re-reads the row, so
// the same statements work on PostgreSQL and SQLite.
type crudRepository[T, C, P any] struct {
	*DB
	table  table[T, C, P]
	ids    idGenerator
	logger *logger.Logger
}

func newCRUDRepository[T, C, P any](db *DB, t table[T, C, P], ids idGenerator, log *logger.Logger) *crudRepository[T, C, P] {
	log.Debug().Str("table", t.name).Msg("creating crud repository")
	return &crudRepository[T, C, P]{
		DB:     db,
		table:  t,
		ids:    ids,
		logger: log,
	}
}

func (r *crudRepository[T, C, P]) Select() sq.SelectBuilder {
	return r.table.selectBase(r.builder)
}

func (r *crudRepository[T, C, P]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.get(ctx, r.DB, id)
}

func (r *crudRepository[T, C, P]) get(ctx context.Context, q querier, id uuid.UUID) (*T, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Select().Where(sq.Eq{r.table.column("id"): id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "crudRepository.Get").Str("table", r.table.name).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := r.table.scan(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "crudRepository.Get").Str("table", r.table.name).Stringer("id", id).Msg("failed to scan row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &item, nil
}

func (r *crudRepository[T, C, P]) GetMultiPaginated(ctx context.Context, params models.Params, query *sq.SelectBuilder) (models.Page[T], error) {
	log := logger.FromContext(ctx)

	base := r.Select().OrderBy(r.table.column("id"))
	if query != nil {
		base = *query
	}

	countQuery, countArgs, err := r.builder.Select("COUNT(*)").FromSelect(base, "page_source").ToSql()
	if err != nil {
		log.Err(err).Str("func", "crudRepository.GetMultiPaginated").Str("table", r.table.name).Msg("failed to build count query")
		return models.Page[T]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "crudRepository.GetMultiPaginated").Str("table", r.table.name).Msg("failed to count rows")
		return models.Page[T]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	pageQuery, pageArgs, err := base.Limit(params.Limit()).Offset(params.Offset()).ToSql()
	if err != nil {
		log.Err(err).Str("func", "crudRepository.GetMultiPaginated").Str("table", r.table.name).Msg("failed to build page query")
		return models.Page[T]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		log.Err(err).Str("func", "crudRepository.GetMultiPaginated").Str("table", r.table.name).Msg("failed to execute page query")
		return models.Page[T]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, params.Size)
	for rows.Next() {
		item, err := r.table.scan(rows)
		if err != nil {
			log.Err(err).Str("func", "crudRepository.GetMultiPaginated").Str("table", r.table.name).Msg("failed to scan row")
			return models.Page[T]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "crudRepository.GetMultiPaginated").Str("table", r.table.name).Msg("rows iteration error")
		return models.Page[T]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.NewPage(items, total, params), nil
}

func (r *crudRepository[T, C, P]) Create(ctx context.Context, in C, createdByID uuid.UUID) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	item := r.table.build(in, r.ids.Generate(), createdByID, r.timestamp())
	id := r.table.id(item)

	query, args, err := r.builder.Insert(r.table.name).SetMap(r.table.values(item)).ToSql()
	if err != nil {
		log.Err(err).Str("func", "crudRepository.Create").Str("table", r.table.name).Msg("failed to build query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created *T
	err = r.inTx(ctx, "crudRepository.Create", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "crudRepository.Create").Str("table", r.table.name).Msg("failed to insert row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.mapError(err))
		}

		created, err = r.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if created == nil {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return zero, err
	}

	log.Debug().Str("func", "crudRepository.Create").Str("table", r.table.name).Stringer("id", id).Msg("row created")
	return *created, nil
}

func (r *crudRepository[T, C, P]) Update(ctx context.Context, patch P, current T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	item := r.table.apply(patch, current, r.timestamp())
	id := r.table.id(item)

	values := r.table.values(item)
	delete(values, "id")
	delete(values, "created_at")
	delete(values, "created_by_id")

	query, args, err := r.builder.Update(r.table.name).SetMap(values).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "crudRepository.Update").Str("table", r.table.name).Msg("failed to build query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated *T
	err = r.inTx(ctx, "crudRepository.Update", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "crudRepository.Update").Str("table", r.table.name).Stringer("id", id).Msg("failed to update row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.mapError(err))
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrNotFound
		}

		updated, err = r.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return zero, err
	}

	return *updated, nil
}

func (r *crudRepository[T, C, P]) Remove(ctx context.Context, id uuid.UUID) (*T, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Delete(r.table.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "crudRepository.Remove").Str("table", r.table.name).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var removed *T
	err = r.inTx(ctx, "crudRepository.Remove", func(tx *sql.Tx) error {
		removed, err = r.get(ctx, tx, id)
		if err != nil || removed == nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "crudRepository.Remove").Str("table", r.table.name).Stringer("id", id).Msg("failed to delete row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.mapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// inTx runs fn inside a transaction that is committed when fn succeeds and
// rolled back otherwise.
func (r *crudRepository[T, C, P]) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
