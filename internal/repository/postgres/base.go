package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DIX2580/salon-website/internal/repository"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db *sqlx.DB
}

func NewBaseRepository(db *sqlx.DB) BaseRepository {
	return BaseRepository{db: db}
}

// getOne runs a single-row query, mapping no rows to repository.ErrNotFound.
func (r *BaseRepository) getOne(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	err := r.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

// deleteByID removes one row from table and reports ErrNotFound when none matched.
func (r *BaseRepository) deleteByID(ctx context.Context, table, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), uid)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a uuid", repository.ErrInvalidID, id)
	}
	return uid, nil
}

// now matches the microsecond precision of timestamptz so a created record
// reads back unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
