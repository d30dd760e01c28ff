package repository

import (
	"context"
	"fmt"

	"rebrickable/lookup/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PartRepository interface {
	SavePart(ctx context.Context, partNum string, part domain.Part) error
}

type partRepository struct {
	db *pgxpool.Pool
}

func NewPartRepository(db *pgxpool.Pool) PartRepository {
	return &partRepository{
		db: db,
	}
}

func (r *partRepository) SavePart(ctx context.Context, partNum string, part domain.Part) error {
	query := `
	INSERT INTO part_lookups (part_num, data, fetched_at)
	VALUES ($1, $2, now())
	ON CONFLICT (part_num)
	DO UPDATE SET data = $2, fetched_at = now()`
	_, err := r.db.Exec(ctx, query, partNum, part)
	if err != nil {
		return fmt.Errorf("failed to save part %s: %w", partNum, err)
	}

	return nil
}

// EnsureSchema creates the lookup table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	query := `
	CREATE TABLE IF NOT EXISTS part_lookups (
		part_num   text        PRIMARY KEY,
		data       jsonb       NOT NULL,
		fetched_at timestamptz NOT NULL DEFAULT now()
	)`
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure part_lookups table: %w", err)
	}
	return nil
}
