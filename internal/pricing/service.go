package pricing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/clf899/how-much/internal/catalog"
	"github.com/clf899/how-much/internal/core"
	"github.com/clf899/how-much/internal/location"
)

// ObservationScraper yields price observations scraped from marketplace
// cost-guide pages.
type ObservationScraper interface {
	ScrapeAll(ctx context.Context, serviceID, locationQuery string) ([]PriceObservation, error)
}

// ServiceCatalog resolves service ids to their catalog entries.
type ServiceCatalog interface {
	GetService(ctx context.Context, id string) *catalog.Service
}

const persistTimeout = 30 * time.Second

// Service assembles price observations from up to three sources
// (scraped pages, sample data, persisted submissions) and derives
// summaries from the pooled result.
type Service struct {
	store   Repository // nil when no database is configured
	sample  *MemoryRepository
	catalog ServiceCatalog
	scraper ObservationScraper // nil disables scraping

	// scraped results per "serviceID|location", 1h staleness window
	cache *expirable.LRU[string, []PriceObservation]

	logger *zap.Logger
}

func NewService(
	store Repository,
	catalogSvc ServiceCatalog,
	scraper ObservationScraper,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:   store,
		sample:  NewMemoryRepository(SampleObservations()),
		catalog: catalogSvc,
		scraper: scraper,
		cache:   expirable.NewLRU[string, []PriceObservation](512, nil, cacheTTL),
		logger:  logger,
	}
}

// SubmitRequest is a user-entered price data point.
type SubmitRequest struct {
	ServiceID   string  `json:"serviceId"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"` // "zip, city, state" free text
	Description string  `json:"description"`
	ServiceDate string  `json:"serviceDate"` // YYYY-MM-DD
	Receipt     string  `json:"-"`
}

// SubmitPrice records a new observation. In fallback mode the
// submission lands in the in-memory pool so it still shows up in
// subsequent queries.
func (s *Service) SubmitPrice(ctx context.Context, req SubmitRequest) (*PriceObservation, error) {
	if req.ServiceID == "" {
		return nil, errors.New("serviceId is required")
	}
	if req.Price <= 0 {
		return nil, errors.New("price must be positive")
	}

	date := time.Now()
	if req.ServiceDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ServiceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid serviceDate: %w", err)
		}
		date = parsed
	}

	obs := &PriceObservation{
		ServiceID:   req.ServiceID,
		Location:    location.Parse(req.Location),
		Price:       req.Price,
		Date:        date,
		Description: req.Description,
		Receipt:     req.Receipt,
	}

	repo := Repository(s.sample)
	if s.store != nil {
		repo = s.store
	}

	if err := repo.Submit(ctx, obs); err != nil {
		s.logger.Error("price submission failed",
			zap.String("service_id", req.ServiceID),
			zap.Error(err),
		)
		return nil, err
	}

	return obs, nil
}

// GetObservations returns the persisted pool for a service+location,
// falling back to sample data when the store is missing or down.
func (s *Service) GetObservations(ctx context.Context, serviceID, locationQuery string) []PriceObservation {
	var primary func(context.Context) ([]PriceObservation, error)
	if s.store != nil {
		primary = func(ctx context.Context) ([]PriceObservation, error) {
			return s.store.ListByServiceAndLocation(ctx, serviceID, locationQuery)
		}
	}

	return core.WithFallback(ctx, s.logger, "pricing.observations", primary, func() []PriceObservation {
		obs, _ := s.sample.ListByServiceAndLocation(ctx, serviceID, locationQuery)
		return obs
	})
}

// GetSummary derives a summary from the persisted pool. Returns nil
// when there is no usable data for the query.
func (s *Service) GetSummary(ctx context.Context, serviceID, locationQuery string) *PriceSummary {
	observations := s.GetObservations(ctx, serviceID, locationQuery)
	return Summarize(observations, serviceID, s.nationalAverage(ctx, serviceID), time.Now())
}

// GetComprehensivePricing pools scraped, sample, and persisted
// observations for one query. The three sources are fetched
// concurrently; a failed source contributes an empty list rather than
// aborting the rest. Fresh scrape results are persisted best-effort in
// the background, tagged with the scraper source marker.
func (s *Service) GetComprehensivePricing(
	ctx context.Context,
	serviceID string,
	locationQuery string,
) *ComprehensivePricing {

	var scraped, local, database []PriceObservation
	var fromCache bool

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		scraped, fromCache = s.scrapedObservations(ctx, serviceID, locationQuery)
	}()

	go func() {
		defer wg.Done()
		local, _ = s.sample.ListByServiceAndLocation(ctx, serviceID, locationQuery)
	}()

	go func() {
		defer wg.Done()
		if s.store == nil {
			return
		}
		obs, err := s.store.ListByServiceAndLocation(ctx, serviceID, locationQuery)
		if err != nil {
			s.logger.Warn("database source failed, continuing without it",
				zap.String("service_id", serviceID),
				zap.Error(err),
			)
			return
		}
		database = obs
	}()

	wg.Wait()

	// Fire-and-forget: the summary below never waits on this write.
	if len(scraped) > 0 && !fromCache && s.store != nil {
		go s.persistScraped(scraped)
	}

	combined := make([]PriceObservation, 0, len(scraped)+len(local)+len(database))
	combined = append(combined, scraped...)
	combined = append(combined, local...)
	combined = append(combined, database...)

	return &ComprehensivePricing{
		ScrapedData:  emptyIfNil(scraped),
		LocalData:    emptyIfNil(local),
		DatabaseData: emptyIfNil(database),
		CombinedData: combined,
		Summary:      Summarize(combined, serviceID, s.nationalAverage(ctx, serviceID), time.Now()),
	}
}

// ScrapeResult reports the outcome of an on-demand scrape run.
type ScrapeResult struct {
	Success   bool   `json:"success"`
	DataCount int    `json:"dataCount"`
	Message   string `json:"message"`
}

// ScrapeAndSave runs the scraper for one service+location and persists
// whatever it finds. Unlike the comprehensive path this waits for the
// write, so the admin caller sees the real outcome.
func (s *Service) ScrapeAndSave(ctx context.Context, serviceID, locationQuery string) *ScrapeResult {
	if s.scraper == nil {
		return &ScrapeResult{Message: "scraping is not enabled"}
	}

	scraped, err := s.scraper.ScrapeAll(ctx, serviceID, locationQuery)
	if err != nil {
		s.logger.Warn("scrape run failed",
			zap.String("service_id", serviceID),
			zap.Error(err),
		)
		return &ScrapeResult{Message: "scraping failed"}
	}
	if len(scraped) == 0 {
		return &ScrapeResult{Message: "no pricing data found from web scraping"}
	}

	s.cache.Add(cacheKey(serviceID, locationQuery), scraped)

	if s.store != nil {
		tagged := tagScraped(scraped)
		if err := s.store.SubmitBatch(ctx, tagged); err != nil {
			s.logger.Error("failed to save scraped prices", zap.Error(err))
			return &ScrapeResult{
				DataCount: len(scraped),
				Message:   fmt.Sprintf("scraped %d prices but saving failed", len(scraped)),
			}
		}
	}

	return &ScrapeResult{
		Success:   true,
		DataCount: len(scraped),
		Message:   fmt.Sprintf("successfully scraped %d prices", len(scraped)),
	}
}

// Stats reports where the persisted observations came from.
func (s *Service) Stats(ctx context.Context) *SourceStats {
	var primary func(context.Context) (*SourceStats, error)
	if s.store != nil {
		primary = s.store.Stats
	}

	return core.WithFallback(ctx, s.logger, "pricing.stats", primary, func() *SourceStats {
		stats, _ := s.sample.Stats(ctx)
		return stats
	})
}

// scrapedObservations consults the staleness-checked cache before
// hitting the scraper. Reports whether the result came from cache so
// the caller can skip re-persisting it.
func (s *Service) scrapedObservations(ctx context.Context, serviceID, locationQuery string) ([]PriceObservation, bool) {
	if s.scraper == nil {
		return nil, false
	}

	key := cacheKey(serviceID, locationQuery)
	if cached, ok := s.cache.Get(key); ok {
		return cached, true
	}

	scraped, err := s.scraper.ScrapeAll(ctx, serviceID, locationQuery)
	if err != nil {
		s.logger.Warn("scrape source failed, continuing without it",
			zap.String("service_id", serviceID),
			zap.String("location", locationQuery),
			zap.Error(err),
		)
		return nil, false
	}

	s.cache.Add(key, scraped)
	return scraped, false
}

func (s *Service) persistScraped(scraped []PriceObservation) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	tagged := tagScraped(scraped)
	if err := s.store.SubmitBatch(ctx, tagged); err != nil {
		s.logger.Warn("best-effort persist of scraped prices failed", zap.Error(err))
		return
	}

	s.logger.Info("saved scraped prices", zap.Int("count", len(tagged)))
}

func (s *Service) nationalAverage(ctx context.Context, serviceID string) float64 {
	if svc := s.catalog.GetService(ctx, serviceID); svc != nil {
		return svc.NationalAverage
	}
	return 0
}

func tagScraped(scraped []PriceObservation) []PriceObservation {
	tagged := make([]PriceObservation, len(scraped))
	copy(tagged, scraped)
	for i := range tagged {
		tagged[i].Source = SourceWebScraper
	}
	return tagged
}

func cacheKey(serviceID, locationQuery string) string {
	return serviceID + "|" + locationQuery
}

func emptyIfNil(obs []PriceObservation) []PriceObservation {
	if obs == nil {
		return []PriceObservation{}
	}
	return obs
}
