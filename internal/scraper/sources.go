package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/clf899/how-much/internal/location"
	"github.com/clf899/how-much/internal/pricing"
)

// Selectors that tend to wrap price figures on marketplace pages.
// Loose on purpose: extraction filters out the noise afterwards.
const priceSelectors = `[data-testid="price"], .price, .cost, .cost-range, [class*="price"], [class*="cost"]`

// --------------------------------------------------
// Thumbtack search results
// --------------------------------------------------
func (s *Scraper) scrapeThumbtack(ctx context.Context, serviceID, locationQuery string) ([]pricing.PriceObservation, error) {
	pageURL := fmt.Sprintf(
		"https://www.thumbtack.com/search/%s/%s",
		url.PathEscape(serviceID),
		url.PathEscape(locationQuery),
	)

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return s.observationsFromSelectors(doc, serviceID, locationQuery, "Thumbtack"), nil
}

// --------------------------------------------------
// HomeAdvisor cost guide
// --------------------------------------------------
// Cost guides are national, so the range band is mined as well as the
// element text: the guide's "$X - $Y" headline carries most of the
// signal on these pages.
func (s *Scraper) scrapeHomeAdvisor(ctx context.Context, serviceID, locationQuery string) ([]pricing.PriceObservation, error) {
	pageURL := fmt.Sprintf(
		"https://www.homeadvisor.com/cost/%s/",
		url.PathEscape(costGuideSlug(serviceID)),
	)

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	observations := s.observationsFromSelectors(doc, serviceID, locationQuery, "HomeAdvisor")

	// Range band from any element mentioning a spread.
	doc.Find(`[class*="range"], [class*="between"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		min, max, ok := extractRange(sel.Text())
		if !ok {
			return true
		}

		loc := location.Parse(locationQuery)
		today := today()
		observations = append(observations,
			pricing.PriceObservation{
				ServiceID:   serviceID,
				Location:    loc,
				Price:       min,
				Date:        today,
				Description: fmt.Sprintf("%s service - minimum cost from HomeAdvisor", serviceID),
			},
			pricing.PriceObservation{
				ServiceID:   serviceID,
				Location:    loc,
				Price:       max,
				Date:        today,
				Description: fmt.Sprintf("%s service - maximum cost from HomeAdvisor", serviceID),
			},
		)
		return false
	})

	return observations, nil
}

// --------------------------------------------------
// Angi company listings
// --------------------------------------------------
func (s *Scraper) scrapeAngi(ctx context.Context, serviceID, locationQuery string) ([]pricing.PriceObservation, error) {
	pageURL := fmt.Sprintf(
		"https://www.angi.com/companylist/us/%s/%s.htm",
		url.PathEscape(locationQuery),
		url.PathEscape(serviceID),
	)

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return s.observationsFromSelectors(doc, serviceID, locationQuery, "Angi"), nil
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, err
	}

	res, err := s.client.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, res.StatusCode())
	}

	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}

// observationsFromSelectors walks the price-ish elements and converts
// every plausible dollar figure into an observation dated today. A page
// with no matches yields zero observations, not an error.
func (s *Scraper) observationsFromSelectors(
	doc *goquery.Document,
	serviceID string,
	locationQuery string,
	sourceName string,
) []pricing.PriceObservation {

	loc := location.Parse(locationQuery)
	date := today()
	description := fmt.Sprintf("%s service from %s", serviceID, sourceName)

	var observations []pricing.PriceObservation
	doc.Find(priceSelectors).Each(func(_ int, sel *goquery.Selection) {
		for _, price := range extractPrices(strings.TrimSpace(sel.Text())) {
			observations = append(observations, pricing.PriceObservation{
				ServiceID:   serviceID,
				Location:    loc,
				Price:       price,
				Date:        date,
				Description: description,
			})
		}
	})

	return observations
}

func today() time.Time {
	return time.Now().Truncate(24 * time.Hour)
}
