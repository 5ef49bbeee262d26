package catalog

import (
	"fmt"
	"math"

	"woz/internal/domain"
	"woz/internal/infrastructure/random"
)

const (
	minPriceProvider = 20000
	maxPriceProvider = 900000
	minMarkupCents   = 120
	maxMarkupCents   = 260
	minRatingTenths  = 30
	maxRatingTenths  = 50
	minReviews       = 400
	maxReviews       = 5000
	minDroppers      = 20
	maxDroppers      = 1200
	verifiedChance   = 0.75
)

// Generate builds count products with sequential ids starting at 1.
// Negative counts produce an empty catalog. An invalid vocabulary is an
// error whenever at least one product is requested.
func Generate(count int, vocab Vocabulary, rng random.Source) ([]domain.Product, error) {
	if count < 0 {
		count = 0
	}
	if count > 0 {
		if err := vocab.Validate(); err != nil {
			return nil, fmt.Errorf("generating catalog: %w", err)
		}
	}

	products := make([]domain.Product, 0, count)
	for id := 1; id <= count; id++ {
		provider := random.Pick(rng, vocab.Providers)
		priceProvider := random.Between(rng, minPriceProvider, maxPriceProvider)
		markup := float64(random.Between(rng, minMarkupCents, maxMarkupCents)) / 100

		dir := 1
		if random.Chance(rng, 0.5) {
			dir = -1
		}

		products = append(products, domain.Product{
			ID:               id,
			Title:            fmt.Sprintf("%s %s %d", random.Pick(rng, vocab.Adjectives), random.Pick(rng, vocab.Nouns), id),
			Provider:         provider.Name,
			ProviderVerified: random.Chance(rng, verifiedChance),
			ProviderCountry:  provider.Country,
			PriceProvider:    priceProvider,
			PriceSuggested:   SuggestedPrice(priceProvider, markup),
			Rating:           float64(random.Between(rng, minRatingTenths, maxRatingTenths)) / 10,
			Reviews:          random.Between(rng, minReviews, maxReviews),
			Droppers:         random.Between(rng, minDroppers, maxDroppers),
			DroppersDir:      dir,
		})
	}
	return products, nil
}

// SuggestedPrice applies markup and rounds to the nearest thousand.
func SuggestedPrice(priceProvider int, markup float64) int {
	return int(math.Round(float64(priceProvider)*markup/1000)) * 1000
}
