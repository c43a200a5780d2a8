package pricing

import (
	"time"

	"github.com/clf899/how-much/internal/location"
)

// SourceWebScraper tags observations persisted from marketplace scrapes,
// distinguishing them from user submissions.
const SourceWebScraper = "web_scraper"

// PriceObservation is one recorded or inferred price for a service at a
// place and time. Observations are never mutated; duplicates are valid
// and simply widen the pool.
type PriceObservation struct {
	ID          string            `json:"id"`
	ServiceID   string            `json:"serviceId"`
	Location    location.Location `json:"location"`
	Price       float64           `json:"price"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description,omitempty"`
	Receipt     string            `json:"receipt,omitempty"`
	Source      string            `json:"source,omitempty"`
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// PriceRange is the min/max spread of a pool of observations.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceSummary is the aggregate view of one service+location query.
// It is derived on demand and never persisted.
type PriceSummary struct {
	ServiceID          string            `json:"serviceId"`
	Location           location.Location `json:"location"`
	NationalAverage    float64           `json:"nationalAverage"`
	LocalAverage       float64           `json:"localAverage"`
	PriceRange         PriceRange        `json:"priceRange"`
	DataPoints         int               `json:"dataPoints"`
	Trend              Trend             `json:"trend"`
	YearOverYearChange float64           `json:"yearOverYearChange"`
}

// SourceStats summarizes where the persisted observations came from.
type SourceStats struct {
	TotalSubmissions int       `json:"totalSubmissions"`
	ScrapedData      int       `json:"scrapedData"`
	UserSubmissions  int       `json:"userSubmissions"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// ComprehensivePricing is the merged multi-source view: per-source
// observation lists, their concatenation, and the derived summary
// (nil when the combined pool has no usable prices).
type ComprehensivePricing struct {
	ScrapedData  []PriceObservation `json:"scrapedData"`
	LocalData    []PriceObservation `json:"localData"`
	DatabaseData []PriceObservation `json:"databaseData"`
	CombinedData []PriceObservation `json:"combinedData"`
	Summary      *PriceSummary      `json:"summary"`
}
