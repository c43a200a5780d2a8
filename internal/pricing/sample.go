package pricing

import (
	"time"

	"github.com/clf899/how-much/internal/location"
)

// SampleObservations is the built-in price pool used when no database
// is configured. Dates are relative so the data stays plausible.
func SampleObservations() []PriceObservation {
	newYork := location.Location{ZipCode: "10001", City: "New York", State: "NY", Region: "Northeast"}
	beverlyHills := location.Location{ZipCode: "90210", City: "Beverly Hills", State: "CA", Region: "West"}
	chicago := location.Location{ZipCode: "60601", City: "Chicago", State: "IL", Region: "Midwest"}
	austin := location.Location{ZipCode: "73301", City: "Austin", State: "TX", Region: "South"}

	return []PriceObservation{
		{ID: "sample-1", ServiceID: "junk-removal", Location: newYork, Price: 300, Date: daysAgo(12), Description: "Two-bedroom apartment cleanout"},
		{ID: "sample-2", ServiceID: "junk-removal", Location: newYork, Price: 250, Date: daysAgo(48), Description: "Old furniture pickup"},
		{ID: "sample-3", ServiceID: "junk-removal", Location: newYork, Price: 320, Date: daysAgo(5), Description: "Basement junk haul"},
		{ID: "sample-4", ServiceID: "junk-removal", Location: chicago, Price: 220, Date: daysAgo(20), Description: "Garage cleanout"},

		{ID: "sample-5", ServiceID: "lawn-mowing", Location: beverlyHills, Price: 60, Date: daysAgo(7), Description: "Weekly mow, half-acre lot"},
		{ID: "sample-6", ServiceID: "lawn-mowing", Location: beverlyHills, Price: 55, Date: daysAgo(40), Description: "Front and back yard"},
		{ID: "sample-7", ServiceID: "lawn-mowing", Location: austin, Price: 40, Date: daysAgo(15), Description: "Biweekly service"},

		{ID: "sample-8", ServiceID: "house-cleaning", Location: chicago, Price: 140, Date: daysAgo(10), Description: "Deep clean, 3BR"},
		{ID: "sample-9", ServiceID: "house-cleaning", Location: chicago, Price: 160, Date: daysAgo(55), Description: "Move-out clean"},
		{ID: "sample-10", ServiceID: "house-cleaning", Location: newYork, Price: 180, Date: daysAgo(25), Description: "Standard clean, 2BR"},

		{ID: "sample-11", ServiceID: "plumbing", Location: newYork, Price: 350, Date: daysAgo(18), Description: "Kitchen sink replacement"},
		{ID: "sample-12", ServiceID: "plumbing", Location: beverlyHills, Price: 420, Date: daysAgo(60), Description: "Water heater repair"},

		{ID: "sample-13", ServiceID: "handyman", Location: austin, Price: 90, Date: daysAgo(9), Description: "Shelf mounting and drywall patch"},
		{ID: "sample-14", ServiceID: "handyman", Location: chicago, Price: 110, Date: daysAgo(35), Description: "Door and lock repairs"},

		{ID: "sample-15", ServiceID: "window-cleaning", Location: beverlyHills, Price: 130, Date: daysAgo(14), Description: "Two-story exterior windows"},
	}
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}
