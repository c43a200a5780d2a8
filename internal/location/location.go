package location

import "strings"

// Location describes where a service was performed.
type Location struct {
	ZipCode string `json:"zipCode"`
	City    string `json:"city"`
	State   string `json:"state"`
	Region  string `json:"region"`
}

// Coarse geographic buckets keyed by two-letter state code.
var stateRegions = map[string]string{
	"NY": "Northeast", "MA": "Northeast", "PA": "Northeast", "NJ": "Northeast",
	"CA": "West", "WA": "West", "OR": "West", "NV": "West",
	"TX": "South",
	"FL": "Southeast", "GA": "Southeast", "NC": "Southeast",
	"IL": "Midwest", "MI": "Midwest", "OH": "Midwest", "WI": "Midwest",
}

// RegionForState maps a state code to its region bucket.
// Unmapped codes fall into "Other".
func RegionForState(state string) string {
	if region, ok := stateRegions[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return region
	}
	return "Other"
}

// Parse splits a free-text "zip, city, state" string into a Location.
// Missing parts are left empty; the region is derived from the state.
func Parse(s string) Location {
	parts := strings.Split(s, ", ")

	loc := Location{}
	if len(parts) > 0 {
		loc.ZipCode = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		loc.City = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		loc.State = strings.TrimSpace(parts[2])
	}
	loc.Region = RegionForState(loc.State)

	return loc
}

// MatchesQuery reports whether this location matches a user-entered
// search string: exact zip match, or case-insensitive substring match
// on the city. The substring rule is intentionally permissive ("ork"
// matches "New York") because the UI search box depends on it.
func (l Location) MatchesQuery(query string) bool {
	if query == "" {
		return false
	}
	if l.ZipCode == query {
		return true
	}
	return strings.Contains(
		strings.ToLower(l.City),
		strings.ToLower(query),
	)
}
