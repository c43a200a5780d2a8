package location

import "testing"

func TestRegionForState(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{"NY", "Northeast"},
		{"ny", "Northeast"},
		{"CA", "West"},
		{"TX", "South"},
		{"FL", "Southeast"},
		{"IL", "Midwest"},
		{"AK", "Other"},
		{"", "Other"},
		{" ca ", "West"},
	}

	for _, tt := range tests {
		if got := RegionForState(tt.state); got != tt.want {
			t.Errorf("RegionForState(%q) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	loc := Parse("90210, Beverly Hills, CA")
	if loc.ZipCode != "90210" || loc.City != "Beverly Hills" || loc.State != "CA" {
		t.Errorf("unexpected parse result: %+v", loc)
	}
	if loc.Region != "West" {
		t.Errorf("region = %q, want West", loc.Region)
	}

	partial := Parse("10001")
	if partial.ZipCode != "10001" || partial.City != "" || partial.Region != "Other" {
		t.Errorf("unexpected partial parse: %+v", partial)
	}
}

func TestMatchesQuery(t *testing.T) {
	newYork := Location{ZipCode: "10001", City: "New York", State: "NY", Region: "Northeast"}

	t.Run("exact zip", func(t *testing.T) {
		if !newYork.MatchesQuery("10001") {
			t.Error("zip should match itself")
		}
		if newYork.MatchesQuery("10002") {
			t.Error("different zip should not match")
		}
	})

	t.Run("city substring, case-insensitive", func(t *testing.T) {
		for _, q := range []string{"new york", "New", "york", "ork"} {
			if !newYork.MatchesQuery(q) {
				t.Errorf("query %q should match New York", q)
			}
		}
	})

	t.Run("no match", func(t *testing.T) {
		if newYork.MatchesQuery("Chicago") {
			t.Error("Chicago should not match New York")
		}
		if newYork.MatchesQuery("") {
			t.Error("empty query should not match")
		}
	})
}
