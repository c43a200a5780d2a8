package pricing

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clf899/how-much/internal/location"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Record one user submission
// --------------------------------------------------
func (r *PostgresRepository) Submit(ctx context.Context, obs *PriceObservation) error {
	query := `
		INSERT INTO price_submissions (
			service_id,
			price,
			location_zip,
			location_city,
			location_state,
			location_region,
			description,
			receipt_url,
			service_date,
			source
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	var createdAt time.Time
	return r.db.QueryRow(
		ctx,
		query,
		obs.ServiceID,
		obs.Price,
		obs.Location.ZipCode,
		obs.Location.City,
		obs.Location.State,
		obs.Location.Region,
		nullIfEmpty(obs.Description),
		nullIfEmpty(obs.Receipt),
		obs.Date,
		nullIfEmpty(obs.Source),
	).Scan(&obs.ID, &createdAt)
}

// --------------------------------------------------
// Persist a batch of scraped observations
// --------------------------------------------------
func (r *PostgresRepository) SubmitBatch(ctx context.Context, obs []PriceObservation) error {
	if len(obs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO price_submissions (
			service_id,
			price,
			location_zip,
			location_city,
			location_state,
			location_region,
			description,
			service_date,
			source
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, o := range obs {
		batch.Queue(
			query,
			o.ServiceID,
			o.Price,
			o.Location.ZipCode,
			o.Location.City,
			o.Location.State,
			o.Location.Region,
			nullIfEmpty(o.Description),
			o.Date,
			nullIfEmpty(o.Source),
		)
	}

	return r.db.SendBatch(ctx, batch).Close()
}

// --------------------------------------------------
// Query observations for a service + location
// --------------------------------------------------
func (r *PostgresRepository) ListByServiceAndLocation(
	ctx context.Context,
	serviceID string,
	locationQuery string,
) ([]PriceObservation, error) {

	query := `
		SELECT
			id,
			service_id,
			price,
			COALESCE(location_zip, ''),
			COALESCE(location_city, ''),
			COALESCE(location_state, ''),
			COALESCE(location_region, ''),
			COALESCE(description, ''),
			COALESCE(receipt_url, ''),
			COALESCE(service_date, created_at),
			COALESCE(source, '')
		FROM price_submissions
		WHERE
			service_id = $1
			AND (
				location_zip = $2
				OR location_city ILIKE '%' || $2 || '%'
			)
		ORDER BY created_at DESC
		LIMIT 500
	`

	rows, err := r.db.Query(ctx, query, serviceID, locationQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []PriceObservation

	for rows.Next() {
		var obs PriceObservation
		var loc location.Location
		if err := rows.Scan(
			&obs.ID,
			&obs.ServiceID,
			&obs.Price,
			&loc.ZipCode,
			&loc.City,
			&loc.State,
			&loc.Region,
			&obs.Description,
			&obs.Receipt,
			&obs.Date,
			&obs.Source,
		); err != nil {
			return nil, err
		}
		obs.Location = loc
		observations = append(observations, obs)
	}

	return observations, rows.Err()
}

// --------------------------------------------------
// Data source statistics
// --------------------------------------------------
func (r *PostgresRepository) Stats(ctx context.Context) (*SourceStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE source = $1),
			COALESCE(MAX(created_at), NOW())
		FROM price_submissions
	`

	var stats SourceStats
	err := r.db.QueryRow(ctx, query, SourceWebScraper).Scan(
		&stats.TotalSubmissions,
		&stats.ScrapedData,
		&stats.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	stats.UserSubmissions = stats.TotalSubmissions - stats.ScrapedData
	return &stats, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
