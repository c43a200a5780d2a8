package pricing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository holds observations in memory. It backs the fallback
// path (pre-seeded with sample data) and doubles as a test fixture.
type MemoryRepository struct {
	mu           sync.RWMutex
	observations []PriceObservation
}

func NewMemoryRepository(seed []PriceObservation) *MemoryRepository {
	observations := make([]PriceObservation, len(seed))
	copy(observations, seed)
	return &MemoryRepository{observations: observations}
}

func (r *MemoryRepository) Submit(_ context.Context, obs *PriceObservation) error {
	if obs.ID == "" {
		obs.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = append(r.observations, *obs)
	return nil
}

func (r *MemoryRepository) SubmitBatch(ctx context.Context, obs []PriceObservation) error {
	for i := range obs {
		if err := r.Submit(ctx, &obs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryRepository) ListByServiceAndLocation(
	_ context.Context,
	serviceID string,
	locationQuery string,
) ([]PriceObservation, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []PriceObservation
	for _, obs := range r.observations {
		if obs.ServiceID == serviceID && obs.Location.MatchesQuery(locationQuery) {
			matched = append(matched, obs)
		}
	}

	return matched, nil
}

func (r *MemoryRepository) Stats(_ context.Context) (*SourceStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := SourceStats{TotalSubmissions: len(r.observations)}
	for _, obs := range r.observations {
		if obs.Source == SourceWebScraper {
			stats.ScrapedData++
		}
		if obs.Date.After(stats.LastUpdated) {
			stats.LastUpdated = obs.Date
		}
	}
	stats.UserSubmissions = stats.TotalSubmissions - stats.ScrapedData

	if stats.LastUpdated.IsZero() {
		stats.LastUpdated = time.Now()
	}

	return &stats, nil
}
