package scraper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestThrottleEnforcesInterval(t *testing.T) {
	s := New(Config{RateLimit: 10}, zap.NewNop()) // 100ms between requests
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, s.throttle(ctx))
	require.NoError(t, s.throttle(ctx))
	require.NoError(t, s.throttle(ctx))
	elapsed := time.Since(start)

	if elapsed < 180*time.Millisecond {
		t.Errorf("three calls completed in %v, expected at least ~200ms of spacing", elapsed)
	}
}

func TestThrottleRespectsCancellation(t *testing.T) {
	s := New(Config{RateLimit: 0.1}, zap.NewNop()) // 10s between requests

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.throttle(ctx))

	cancel()
	err := s.throttle(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestObservationsFromSelectors(t *testing.T) {
	page := `
		<html><body>
			<div class="price">$250</div>
			<span data-testid="price">From $85 to $150</span>
			<div class="cost-range">$1 million views</div>
			<p>unrelated text</p>
		</body></html>
	`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	s := New(DefaultConfig(), zap.NewNop())
	observations := s.observationsFromSelectors(doc, "junk-removal", "10001, New York, NY", "Thumbtack")

	var prices []float64
	for _, obs := range observations {
		require.Equal(t, "junk-removal", obs.ServiceID)
		require.Equal(t, "10001", obs.Location.ZipCode)
		require.Contains(t, obs.Description, "Thumbtack")
		prices = append(prices, obs.Price)
	}

	require.ElementsMatch(t, []float64{250, 85, 150}, prices)
}
