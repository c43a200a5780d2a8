package catalog

// SampleServices is the built-in catalog used when no database is
// configured, and the seed data for a fresh database.
func SampleServices() []Service {
	return []Service{
		{
			ID:              "junk-removal",
			Name:            "Junk Removal",
			Category:        "cleaning",
			Icon:            "🗑️",
			Description:     "Professional junk removal and disposal services",
			NationalAverage: 250,
			PriceRange:      PriceRange{Min: 150, Max: 400},
		},
		{
			ID:              "lawn-mowing",
			Name:            "Lawn Mowing",
			Category:        "landscaping",
			Icon:            "🌱",
			Description:     "Regular lawn maintenance and grass cutting",
			NationalAverage: 45,
			PriceRange:      PriceRange{Min: 25, Max: 75},
		},
		{
			ID:              "house-cleaning",
			Name:            "House Cleaning",
			Category:        "cleaning",
			Icon:            "🧹",
			Description:     "Professional house cleaning services",
			NationalAverage: 150,
			PriceRange:      PriceRange{Min: 100, Max: 250},
		},
		{
			ID:              "pest-control",
			Name:            "Pest Control",
			Category:        "maintenance",
			Icon:            "🐜",
			Description:     "Pest control and extermination services",
			NationalAverage: 200,
			PriceRange:      PriceRange{Min: 150, Max: 300},
		},
		{
			ID:              "snow-removal",
			Name:            "Snow Removal",
			Category:        "seasonal",
			Icon:            "❄️",
			Description:     "Snow plowing and removal services",
			NationalAverage: 75,
			PriceRange:      PriceRange{Min: 50, Max: 120},
		},
		{
			ID:              "plumbing",
			Name:            "Plumbing",
			Category:        "maintenance",
			Icon:            "🚰",
			Description:     "Plumbing repair and installation services",
			NationalAverage: 300,
			PriceRange:      PriceRange{Min: 200, Max: 500},
		},
		{
			ID:              "handyman",
			Name:            "Handyman",
			Category:        "maintenance",
			Icon:            "🛠️",
			Description:     "General handyman and repair services",
			NationalAverage: 100,
			PriceRange:      PriceRange{Min: 60, Max: 150},
		},
		{
			ID:              "window-cleaning",
			Name:            "Window Cleaning",
			Category:        "cleaning",
			Icon:            "🪟",
			Description:     "Professional window cleaning services",
			NationalAverage: 120,
			PriceRange:      PriceRange{Min: 80, Max: 200},
		},
	}
}

// categoryNames is the fixed set of browse categories, in display order.
var categoryNames = []struct {
	ID   string
	Name string
}{
	{"cleaning", "Cleaning Services"},
	{"landscaping", "Landscaping"},
	{"maintenance", "Maintenance"},
	{"seasonal", "Seasonal Services"},
}
