package pricing

import "context"

type Repository interface {
	Submit(ctx context.Context, obs *PriceObservation) error

	// SubmitBatch persists scraped observations in one round trip.
	SubmitBatch(ctx context.Context, obs []PriceObservation) error

	// ListByServiceAndLocation applies the loose location rule:
	// exact zip match or case-insensitive city substring.
	ListByServiceAndLocation(ctx context.Context, serviceID, locationQuery string) ([]PriceObservation, error)

	Stats(ctx context.Context) (*SourceStats, error)
}
