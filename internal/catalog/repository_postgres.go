package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List all services
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Service, error) {
	query := `
		SELECT
			id,
			name,
			category,
			icon,
			description,
			national_average,
			price_range_min,
			price_range_max,
			created_at
		FROM services
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanServices(rows)
}

// --------------------------------------------------
// Get a single service
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	query := `
		SELECT
			id,
			name,
			category,
			icon,
			description,
			national_average,
			price_range_min,
			price_range_max,
			created_at
		FROM services
		WHERE id = $1
	`

	var svc Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Category,
		&svc.Icon,
		&svc.Description,
		&svc.NationalAverage,
		&svc.PriceRange.Min,
		&svc.PriceRange.Max,
		&svc.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

// --------------------------------------------------
// List services in a category
// --------------------------------------------------
func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]Service, error) {
	query := `
		SELECT
			id,
			name,
			category,
			icon,
			description,
			national_average,
			price_range_min,
			price_range_max,
			created_at
		FROM services
		WHERE category = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanServices(rows)
}

func scanServices(rows pgx.Rows) ([]Service, error) {
	var services []Service

	for rows.Next() {
		var svc Service
		if err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Category,
			&svc.Icon,
			&svc.Description,
			&svc.NationalAverage,
			&svc.PriceRange.Min,
			&svc.PriceRange.Max,
			&svc.CreatedAt,
		); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	return services, rows.Err()
}
