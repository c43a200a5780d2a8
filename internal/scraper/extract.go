package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// Bounds on a believable single-job price. Marketplace pages are full
// of phone numbers, years, and review counts that match a bare number
// pattern, so anything outside this band is discarded.
const (
	minPlausiblePrice = 10
	maxPlausiblePrice = 50000
)

var (
	priceRe = regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	rangeRe = regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*-\s*\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
)

// extractPrices pulls every plausible dollar amount out of a blob of
// page text.
func extractPrices(text string) []float64 {
	matches := priceRe.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}

	var prices []float64
	for _, m := range matches {
		price := parseAmount(m[1])
		if plausible(price) {
			prices = append(prices, price)
		}
	}

	return prices
}

// extractRange parses a "$150 - $400" style cost band.
func extractRange(text string) (min, max float64, ok bool) {
	m := rangeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}

	min = parseAmount(m[1])
	max = parseAmount(m[2])
	if !plausible(min) || !plausible(max) || min > max {
		return 0, 0, false
	}

	return min, max, true
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func plausible(price float64) bool {
	return price >= minPlausiblePrice && price < maxPlausiblePrice
}

// Cost-guide URL slugs differ from our catalog ids for a few services.
var costGuideSlugs = map[string]string{
	"junk-removal":    "junk-removal",
	"lawn-mowing":     "lawn-care",
	"house-cleaning":  "house-cleaning",
	"pest-control":    "pest-control",
	"snow-removal":    "snow-removal",
	"plumbing":        "plumbing",
	"handyman":        "handyman",
	"window-cleaning": "window-cleaning",
}

func costGuideSlug(serviceID string) string {
	if slug, ok := costGuideSlugs[serviceID]; ok {
		return slug
	}
	return serviceID
}
