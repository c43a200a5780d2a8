package pricing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clf899/how-much/internal/catalog"
	"github.com/clf899/how-much/internal/location"
)

// stubScraper returns a fixed pool and counts invocations.
type stubScraper struct {
	mu    sync.Mutex
	calls int
	pool  []PriceObservation
	err   error
}

func (s *stubScraper) ScrapeAll(_ context.Context, serviceID, _ string) ([]PriceObservation, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	out := make([]PriceObservation, len(s.pool))
	copy(out, s.pool)
	for i := range out {
		out[i].ServiceID = serviceID
	}
	return out, nil
}

func (s *stubScraper) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// failingStore errors on reads but records batch writes.
type failingStore struct {
	mu      sync.Mutex
	batches [][]PriceObservation
	saved   chan struct{}
}

func newFailingStore() *failingStore {
	return &failingStore{saved: make(chan struct{}, 8)}
}

func (f *failingStore) Submit(context.Context, *PriceObservation) error {
	return errors.New("connection refused")
}

func (f *failingStore) SubmitBatch(_ context.Context, obs []PriceObservation) error {
	f.mu.Lock()
	f.batches = append(f.batches, obs)
	f.mu.Unlock()
	f.saved <- struct{}{}
	return nil
}

func (f *failingStore) ListByServiceAndLocation(context.Context, string, string) ([]PriceObservation, error) {
	return nil, errors.New("connection refused")
}

func (f *failingStore) Stats(context.Context) (*SourceStats, error) {
	return nil, errors.New("connection refused")
}

func testCatalog() ServiceCatalog {
	return catalog.NewCatalog(nil, zap.NewNop())
}

func scrapedPool() []PriceObservation {
	loc := location.Location{ZipCode: "10001", City: "New York", State: "NY", Region: "Northeast"}
	return []PriceObservation{
		{Location: loc, Price: 280, Date: time.Now()},
		{Location: loc, Price: 310, Date: time.Now()},
	}
}

func TestGetSummaryFromSampleData(t *testing.T) {
	svc := NewService(nil, testCatalog(), nil, time.Hour, zap.NewNop())

	summary := svc.GetSummary(context.Background(), "junk-removal", "10001")
	require.NotNil(t, summary)
	require.Equal(t, "junk-removal", summary.ServiceID)
	require.Equal(t, float64(250), summary.NationalAverage)
	require.Greater(t, summary.DataPoints, 0)
}

func TestGetSummaryNoData(t *testing.T) {
	svc := NewService(nil, testCatalog(), nil, time.Hour, zap.NewNop())

	summary := svc.GetSummary(context.Background(), "pest-control", "99999")
	require.Nil(t, summary, "unknown zip should yield the no-data sentinel")
}

func TestSubmitThenQuery(t *testing.T) {
	svc := NewService(nil, testCatalog(), nil, time.Hour, zap.NewNop())
	ctx := context.Background()

	obs, err := svc.SubmitPrice(ctx, SubmitRequest{
		ServiceID:   "lawn-mowing",
		Price:       60,
		Location:    "90210, Beverly Hills, CA",
		ServiceDate: "2024-01-12",
	})
	require.NoError(t, err)
	require.Equal(t, "West", obs.Location.Region)

	for _, query := range []string{"90210", "Beverly"} {
		pool := svc.GetObservations(ctx, "lawn-mowing", query)

		found := false
		for _, o := range pool {
			if o.ID == obs.ID {
				found = true
			}
		}
		require.True(t, found, "submitted observation missing for query %q", query)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(nil, testCatalog(), nil, time.Hour, zap.NewNop())
	ctx := context.Background()

	_, err := svc.SubmitPrice(ctx, SubmitRequest{Price: 60, Location: "10001"})
	require.Error(t, err)

	_, err = svc.SubmitPrice(ctx, SubmitRequest{ServiceID: "lawn-mowing", Price: 0, Location: "10001"})
	require.Error(t, err)

	_, err = svc.SubmitPrice(ctx, SubmitRequest{ServiceID: "lawn-mowing", Price: 60, ServiceDate: "not-a-date"})
	require.Error(t, err)
}

func TestComprehensiveToleratesFailedSources(t *testing.T) {
	scraper := &stubScraper{err: errors.New("timeout")}
	store := newFailingStore()
	svc := NewService(store, testCatalog(), scraper, time.Hour, zap.NewNop())

	result := svc.GetComprehensivePricing(context.Background(), "junk-removal", "10001")

	require.Empty(t, result.ScrapedData)
	require.Empty(t, result.DatabaseData)
	require.NotEmpty(t, result.LocalData, "sample source should survive the others failing")
	require.NotNil(t, result.Summary, "summary should come from the surviving source")
	require.Equal(t, len(result.LocalData), len(result.CombinedData))
}

func TestComprehensiveCachesScrapes(t *testing.T) {
	scraper := &stubScraper{pool: scrapedPool()}
	svc := NewService(nil, testCatalog(), scraper, time.Hour, zap.NewNop())
	ctx := context.Background()

	first := svc.GetComprehensivePricing(ctx, "junk-removal", "10001")
	second := svc.GetComprehensivePricing(ctx, "junk-removal", "10001")

	require.Equal(t, 1, scraper.callCount(), "second call should hit the cache")
	require.Equal(t, len(first.ScrapedData), len(second.ScrapedData))

	// A different query key misses the cache.
	svc.GetComprehensivePricing(ctx, "junk-removal", "60601")
	require.Equal(t, 2, scraper.callCount())
}

func TestComprehensivePersistsScrapedBestEffort(t *testing.T) {
	scraper := &stubScraper{pool: scrapedPool()}
	store := newFailingStore()
	svc := NewService(store, testCatalog(), scraper, time.Hour, zap.NewNop())

	result := svc.GetComprehensivePricing(context.Background(), "junk-removal", "10001")
	require.Len(t, result.ScrapedData, 2)

	select {
	case <-store.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("scraped observations were never persisted")
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.batches, 1)
	for _, o := range store.batches[0] {
		require.Equal(t, SourceWebScraper, o.Source)
	}
}

func TestScrapeAndSave(t *testing.T) {
	scraper := &stubScraper{pool: scrapedPool()}
	store := newFailingStore()
	svc := NewService(store, testCatalog(), scraper, time.Hour, zap.NewNop())

	result := svc.ScrapeAndSave(context.Background(), "junk-removal", "10001")
	require.True(t, result.Success)
	require.Equal(t, 2, result.DataCount)

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.batches, 1)
}

func TestScrapeAndSaveNoResults(t *testing.T) {
	scraper := &stubScraper{}
	svc := NewService(nil, testCatalog(), scraper, time.Hour, zap.NewNop())

	result := svc.ScrapeAndSave(context.Background(), "junk-removal", "10001")
	require.False(t, result.Success)
	require.Zero(t, result.DataCount)
}

func TestStatsFallsBackToSample(t *testing.T) {
	svc := NewService(newFailingStore(), testCatalog(), nil, time.Hour, zap.NewNop())

	stats := svc.Stats(context.Background())
	require.NotNil(t, stats)
	require.Equal(t, len(SampleObservations()), stats.TotalSubmissions)
}
