package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	AdminAPIKey string

	ScrapeRateLimit float64 // requests per second per scraper
	ScrapeTimeout   time.Duration
	ScrapeCacheTTL  time.Duration

	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2BucketName    string
	R2PublicBaseURL string
}

// LoadFromEnv loads configuration from environment variables.
// DATABASE_URL is optional: when empty the app runs on static
// sample data instead of Postgres.
func LoadFromEnv() *Config {
	rate, err := strconv.ParseFloat(getEnv("SCRAPE_RATE_LIMIT", "2"), 64)
	if err != nil || rate <= 0 {
		rate = 2
	}

	timeoutSec, err := strconv.Atoi(getEnv("SCRAPE_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 30
	}

	ttlMin, err := strconv.Atoi(getEnv("SCRAPE_CACHE_TTL_MINUTES", "60"))
	if err != nil || ttlMin <= 0 {
		ttlMin = 60
	}

	return &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		ScrapeRateLimit: rate,
		ScrapeTimeout:   time.Duration(timeoutSec) * time.Second,
		ScrapeCacheTTL:  time.Duration(ttlMin) * time.Minute,

		R2Endpoint:      os.Getenv("R2_ENDPOINT"),
		R2AccessKey:     os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:     os.Getenv("R2_SECRET_KEY"),
		R2BucketName:    os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),
	}
}

// HasDatabase reports whether a live persistence backend is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasStorage reports whether receipt-image storage is configured.
func (c *Config) HasStorage() bool {
	return c.R2Endpoint != "" && c.R2AccessKey != "" && c.R2SecretKey != "" && c.R2BucketName != ""
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
