package scraper

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/clf899/how-much/internal/pricing"
)

// Config controls request pacing against marketplace sites.
type Config struct {
	RateLimit float64 // requests per second
	UserAgent string
	Timeout   time.Duration
}

func DefaultConfig() Config {
	return Config{
		RateLimit: 2,
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		Timeout:   30 * time.Second,
	}
}

// Scraper fetches crowd-visible price figures from home-services
// marketplaces. Each instance throttles its own requests.
type Scraper struct {
	client *resty.Client
	cfg    Config
	logger *zap.Logger

	mu          sync.Mutex
	lastRequest time.Time
}

func New(cfg Config, logger *zap.Logger) *Scraper {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultConfig().RateLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Scraper{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// throttle delays until the minimum inter-request interval has elapsed
// since the previous call on this instance.
func (s *Scraper) throttle(ctx context.Context) error {
	minInterval := time.Duration(float64(time.Second) / s.cfg.RateLimit)

	s.mu.Lock()
	wait := minInterval - time.Since(s.lastRequest)
	if wait < 0 {
		wait = 0
	}
	s.lastRequest = time.Now().Add(wait)
	s.mu.Unlock()

	if wait == 0 {
		return nil
	}

	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type sourceFunc struct {
	name  string
	fetch func(ctx context.Context, serviceID, locationQuery string) ([]pricing.PriceObservation, error)
}

// ScrapeAll queries every marketplace source concurrently and pools
// the results. A source that fails or times out contributes nothing;
// the run only errors when the caller's context is gone.
func (s *Scraper) ScrapeAll(ctx context.Context, serviceID, locationQuery string) ([]pricing.PriceObservation, error) {
	sources := []sourceFunc{
		{"thumbtack", s.scrapeThumbtack},
		{"homeadvisor", s.scrapeHomeAdvisor},
		{"angi", s.scrapeAngi},
	}

	results := make([][]pricing.PriceObservation, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src sourceFunc) {
			defer wg.Done()

			observations, err := src.fetch(ctx, serviceID, locationQuery)
			if err != nil {
				s.logger.Warn("marketplace source failed",
					zap.String("source", src.name),
					zap.String("service_id", serviceID),
					zap.Error(err),
				)
				return
			}
			results[i] = observations
		}(i, src)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var combined []pricing.PriceObservation
	for _, r := range results {
		combined = append(combined, r...)
	}

	s.logger.Info("scrape run finished",
		zap.String("service_id", serviceID),
		zap.String("location", locationQuery),
		zap.Int("observations", len(combined)),
	)

	return combined, nil
}
