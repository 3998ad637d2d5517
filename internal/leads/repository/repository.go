// Package repository persists captured leads.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Lead struct {
	ID           uuid.UUID
	Role         string
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Address      *string
	ZipCode      *string
	Beds         *int
	Baths        *float64
	Sqft         *int
	PriceMin     *int64
	PriceMax     *int64
	Timeline     *string
	Tags         *string
	Stage        string
	ConsentSMS   bool
	ConsentEmail bool
	Score        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListFilter narrows the lead listing. Nil fields match everything; Query is
// a case-insensitive substring match across the lead's text fields.
type ListFilter struct {
	Query *string
	Role  *string
	Stage *string
}

const leadColumns = `id, role, first_name, last_name, email, phone, address, zip_code,
	beds, baths, sqft, price_min, price_max, timeline, tags, stage,
	consent_sms, consent_email, score, created_at, updated_at`

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.Role, &lead.FirstName, &lead.LastName, &lead.Email, &lead.Phone,
		&lead.Address, &lead.ZipCode, &lead.Beds, &lead.Baths, &lead.Sqft,
		&lead.PriceMin, &lead.PriceMax, &lead.Timeline, &lead.Tags, &lead.Stage,
		&lead.ConsentSMS, &lead.ConsentEmail, &lead.Score, &lead.CreatedAt, &lead.UpdatedAt,
	)
	return lead, err
}

// Create inserts the lead and returns the stored row.
func (r *Repository) Create(ctx context.Context, lead Lead) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			role, first_name, last_name, email, phone, address, zip_code,
			beds, baths, sqft, price_min, price_max, timeline, tags, stage,
			consent_sms, consent_email, score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+leadColumns,
		lead.Role, lead.FirstName, lead.LastName, lead.Email, lead.Phone, lead.Address, lead.ZipCode,
		lead.Beds, lead.Baths, lead.Sqft, lead.PriceMin, lead.PriceMax, lead.Timeline, lead.Tags, lead.Stage,
		lead.ConsentSMS, lead.ConsentEmail, lead.Score,
	)

	created, err := scanLead(row)
	if err != nil {
		return Lead{}, err
	}
	return created, nil
}

// GetByID fetches a single lead.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)

	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

// Update rewrites every mutable column of the lead and bumps updated_at.
func (r *Repository) Update(ctx context.Context, lead Lead) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE leads SET
			role = $2, first_name = $3, last_name = $4, email = $5, phone = $6,
			address = $7, zip_code = $8, beds = $9, baths = $10, sqft = $11,
			price_min = $12, price_max = $13, timeline = $14, tags = $15, stage = $16,
			consent_sms = $17, consent_email = $18, score = $19, updated_at = now()
		WHERE id = $1
		RETURNING `+leadColumns,
		lead.ID,
		lead.Role, lead.FirstName, lead.LastName, lead.Email, lead.Phone,
		lead.Address, lead.ZipCode, lead.Beds, lead.Baths, lead.Sqft,
		lead.PriceMin, lead.PriceMax, lead.Timeline, lead.Tags, lead.Stage,
		lead.ConsentSMS, lead.ConsentEmail, lead.Score,
	)

	updated, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, err
	}
	return updated, nil
}

// List returns leads matching the filter, hottest first (score, then recency).
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Lead, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.Role != nil && *filter.Role != "" {
		args = append(args, *filter.Role)
		where = append(where, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.Stage != nil && *filter.Stage != "" {
		args = append(args, *filter.Stage)
		where = append(where, fmt.Sprintf("stage = $%d", len(args)))
	}
	if filter.Query != nil && strings.TrimSpace(*filter.Query) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.Query)+"%")
		where = append(where, fmt.Sprintf(`concat_ws(' ',
			first_name, last_name, email, phone, address, zip_code, tags, role, stage
		) ILIKE $%d`, len(args)))
	}

	query := `SELECT ` + leadColumns + ` FROM leads`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY score DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return leads, nil
}
