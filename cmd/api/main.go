package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/clf899/how-much/internal/catalog"
	"github.com/clf899/how-much/internal/config"
	"github.com/clf899/how-much/internal/db"
	"github.com/clf899/how-much/internal/pricing"
	"github.com/clf899/how-much/internal/router"
	"github.com/clf899/how-much/internal/scraper"
	"github.com/clf899/how-much/internal/storage"
)

func main() {
	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.LoadFromEnv()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// ───────────────────────── DB ─────────────────────────
	// No DATABASE_URL (or a dead one) is not fatal: the app serves
	// the built-in sample data instead.
	var catalogRepo catalog.Repository
	var priceRepo pricing.Repository

	if cfg.HasDatabase() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		pool, err := db.Connect(ctx, cfg.DatabaseURL, logger)
		cancel()

		if err != nil {
			logger.Warn("database unavailable, running on sample data", zap.Error(err))
		} else {
			defer pool.Close()
			catalogRepo = catalog.NewPostgresRepository(pool)
			priceRepo = pricing.NewPostgresRepository(pool)
		}
	} else {
		logger.Info("DATABASE_URL not set, running on sample data")
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var receipts pricing.ReceiptStore
	if cfg.HasStorage() {
		r2, err := storage.NewR2Client(context.Background(), storage.Config{
			Endpoint:      cfg.R2Endpoint,
			AccessKey:     cfg.R2AccessKey,
			SecretKey:     cfg.R2SecretKey,
			Bucket:        cfg.R2BucketName,
			PublicBaseURL: cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Warn("receipt storage init failed, uploads disabled", zap.Error(err))
		} else {
			receipts = r2
		}
	} else {
		logger.Info("receipt storage not configured, uploads disabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	serviceCatalog := catalog.NewCatalog(catalogRepo, logger)

	marketplaces := scraper.New(scraper.Config{
		RateLimit: cfg.ScrapeRateLimit,
		Timeout:   cfg.ScrapeTimeout,
	}, logger)

	priceService := pricing.NewService(
		priceRepo,
		serviceCatalog,
		marketplaces,
		cfg.ScrapeCacheTTL,
		logger,
	)

	// ───────────────────────── ROUTES ─────────────────────────
	if cfg.AdminAPIKey == "" {
		logger.Warn("ADMIN_API_KEY not set, admin routes disabled")
	}

	r := router.New(router.Deps{
		Catalog:     catalog.NewHandler(serviceCatalog),
		Pricing:     pricing.NewHandler(priceService, receipts, logger),
		AdminAPIKey: cfg.AdminAPIKey,
		Logger:      logger,
	})

	// ───────────────────────── START ─────────────────────────
	logger.Info("API running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
