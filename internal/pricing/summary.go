package pricing

import (
	"math"
	"time"
)

// recentWindow splits a pool into "recent" and "older" buckets for the
// trend calculation.
const recentWindow = 30 * 24 * time.Hour

// Trend classification thresholds, in percent.
const (
	trendUpThreshold   = 5
	trendDownThreshold = -5
)

// Summarize turns an unordered pool of observations into a PriceSummary.
//
// Observations with a non-positive price are discarded first (malformed
// scrape extractions produce these). Returns nil when nothing usable is
// left — the "no data available" case, not an error.
//
// LocalAverage is the arithmetic mean rounded to the nearest whole
// dollar; that policy applies to every caller. The trend buckets the
// pool by date: observations within the last 30 days of `now` are
// "recent", the rest "older". YearOverYearChange is the percent change
// of the recent mean over the older mean, zero whenever the older
// bucket is empty or averages to zero, so single-observation and
// all-recent pools always read as stable.
//
// Pure function of its inputs; merging and persistence of sources is
// the caller's job.
func Summarize(
	observations []PriceObservation,
	serviceID string,
	nationalAverage float64,
	now time.Time,
) *PriceSummary {
	filtered := make([]PriceObservation, 0, len(observations))
	for _, obs := range observations {
		if obs.Price > 0 {
			filtered = append(filtered, obs)
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	min := filtered[0].Price
	max := filtered[0].Price
	sum := 0.0
	for _, obs := range filtered {
		sum += obs.Price
		if obs.Price < min {
			min = obs.Price
		}
		if obs.Price > max {
			max = obs.Price
		}
	}
	mean := sum / float64(len(filtered))

	change := yearOverYearChange(filtered, now)

	trend := TrendStable
	switch {
	case change > trendUpThreshold:
		trend = TrendUp
	case change < trendDownThreshold:
		trend = TrendDown
	}

	return &PriceSummary{
		ServiceID:          serviceID,
		Location:           filtered[0].Location,
		NationalAverage:    nationalAverage,
		LocalAverage:       math.Round(mean),
		PriceRange:         PriceRange{Min: min, Max: max},
		DataPoints:         len(filtered),
		Trend:              trend,
		YearOverYearChange: math.Round(change*10) / 10,
	}
}

func yearOverYearChange(pool []PriceObservation, now time.Time) float64 {
	cutoff := now.Add(-recentWindow)

	var recentSum, olderSum float64
	var recentN, olderN int

	for _, obs := range pool {
		if obs.Date.After(cutoff) {
			recentSum += obs.Price
			recentN++
		} else {
			olderSum += obs.Price
			olderN++
		}
	}

	if recentN == 0 || olderN == 0 {
		return 0
	}

	olderMean := olderSum / float64(olderN)
	if olderMean == 0 {
		return 0
	}

	recentMean := recentSum / float64(recentN)
	return (recentMean - olderMean) / olderMean * 100
}
