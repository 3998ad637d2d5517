// Package repository persists admin-supplied ZIP price-per-sqft overrides.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Get returns the override for a ZIP, if one exists.
func (r *Repository) Get(ctx context.Context, zip string) (float64, bool, error) {
	var rate float64
	err := r.pool.QueryRow(ctx, `
		SELECT price_per_sqft FROM zip_overrides WHERE zip = $1
	`, zip).Scan(&rate)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rate, true, nil
}

// Upsert writes the override for a ZIP, replacing any existing value.
func (r *Repository) Upsert(ctx context.Context, zip string, pricePerSqft float64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO zip_overrides (zip, price_per_sqft)
		VALUES ($1, $2)
		ON CONFLICT (zip) DO UPDATE SET price_per_sqft = EXCLUDED.price_per_sqft, updated_at = now()
	`, zip, pricePerSqft)
	return err
}

// List returns all overrides keyed by ZIP.
func (r *Repository) List(ctx context.Context) (map[string]float64, error) {
	rows, err := r.pool.Query(ctx, `SELECT zip, price_per_sqft FROM zip_overrides`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make(map[string]float64)
	for rows.Next() {
		var zip string
		var rate float64
		if err := rows.Scan(&zip, &rate); err != nil {
			return nil, err
		}
		overrides[zip] = rate
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return overrides, nil
}
