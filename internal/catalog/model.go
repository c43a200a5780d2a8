package catalog

import "time"

// PriceRange is the typical national cost band for a service.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Service is one home-service category from the catalog.
// Catalog rows are seeded once and read-only afterwards.
type Service struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Icon            string     `json:"icon"`
	Description     string     `json:"description"`
	NationalAverage float64    `json:"nationalAverage"`
	PriceRange      PriceRange `json:"priceRange"`
	CreatedAt       time.Time  `json:"-"`
}

// Category groups services for the browse page.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Services []Service `json:"services"`
}
