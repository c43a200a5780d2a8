package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/clf899/how-much/internal/catalog"
)

// Connect opens the Postgres pool and prepares the schema. Callers
// treat an error here as "run on sample data", not a fatal condition.
func Connect(ctx context.Context, databaseURL string, logger *zap.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to PostgreSQL")

	if err := initSchema(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates or updates the database schema and seeds the
// service catalog. Safe to run on every startup.
func initSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	// -------------------------------
	// SERVICE CATALOG
	// -------------------------------
	servicesSQL := `
		CREATE TABLE IF NOT EXISTS services (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			icon VARCHAR(16) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			national_average NUMERIC NOT NULL,
			price_range_min NUMERIC NOT NULL,
			price_range_max NUMERIC NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, servicesSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRICE SUBMISSIONS
	// -------------------------------
	submissionsSQL := `
		CREATE TABLE IF NOT EXISTS price_submissions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			service_id VARCHAR(100) NOT NULL REFERENCES services(id),
			price NUMERIC NOT NULL CHECK (price > 0),
			location_zip VARCHAR(20),
			location_city VARCHAR(255),
			location_state VARCHAR(10),
			location_region VARCHAR(50),
			description TEXT,
			service_date TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, submissionsSQL); err != nil {
		return err
	}

	// Columns added after the original launch.
	alterSQL := `
		ALTER TABLE price_submissions
		ADD COLUMN IF NOT EXISTS source VARCHAR(50);

		ALTER TABLE price_submissions
		ADD COLUMN IF NOT EXISTS receipt_url VARCHAR(500);
	`
	if _, err := pool.Exec(ctx, alterSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_price_submissions_service
		ON price_submissions (service_id, created_at DESC)
	`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return err
	}

	if err := seedCatalog(ctx, pool); err != nil {
		return err
	}

	logger.Info("schema initialized")
	return nil
}

// seedCatalog inserts the built-in service catalog, skipping rows that
// already exist so operator edits survive restarts.
func seedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		INSERT INTO services (
			id, name, category, icon, description,
			national_average, price_range_min, price_range_max
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`

	for _, svc := range catalog.SampleServices() {
		_, err := pool.Exec(ctx, query,
			svc.ID,
			svc.Name,
			svc.Category,
			svc.Icon,
			svc.Description,
			svc.NationalAverage,
			svc.PriceRange.Min,
			svc.PriceRange.Max,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
