package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPrices(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{
			name: "single price",
			text: "Average cost: $250",
			want: []float64{250},
		},
		{
			name: "thousands separator and cents",
			text: "from $1,200.50 to $3,400",
			want: []float64{1200.50, 3400},
		},
		{
			name: "below plausibility floor",
			text: "only $5 per visit",
			want: nil,
		},
		{
			name: "above plausibility ceiling",
			text: "a $999,999 remodel",
			want: nil,
		},
		{
			name: "no dollar figures",
			text: "call us for a quote",
			want: nil,
		},
		{
			name: "mixed noise",
			text: "Rated 4.8 (231 reviews). Jobs from $85, typically $150.",
			want: []float64{85, 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, extractPrices(tt.text))
		})
	}
}

func TestExtractRange(t *testing.T) {
	min, max, ok := extractRange("Most homeowners pay between $150 - $400 for this.")
	require.True(t, ok)
	require.Equal(t, float64(150), min)
	require.Equal(t, float64(400), max)

	_, _, ok = extractRange("around $250 total")
	require.False(t, ok)

	// Inverted bands are garbage, not a range.
	_, _, ok = extractRange("$400 - $150")
	require.False(t, ok)
}

func TestCostGuideSlug(t *testing.T) {
	require.Equal(t, "lawn-care", costGuideSlug("lawn-mowing"))
	require.Equal(t, "junk-removal", costGuideSlug("junk-removal"))
	// Unknown services pass through untouched.
	require.Equal(t, "gutter-cleaning", costGuideSlug("gutter-cleaning"))
}
