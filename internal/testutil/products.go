package testutil

import (
	"fmt"

	"woz/internal/domain"
)

// Products builds n deterministic products with ids 1..n. Prices grow with
// the id and countries alternate starting with nacional.
func Products(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for id := 1; id <= n; id++ {
		country := domain.CountryNational
		provider := "LocalShop"
		if id%2 == 0 {
			country = domain.CountryInternational
			provider = "Amazon"
		}
		products = append(products, domain.Product{
			ID:               id,
			Title:            fmt.Sprintf("Compacto Alforja %d", id),
			Provider:         provider,
			ProviderVerified: id%3 != 0,
			ProviderCountry:  country,
			PriceProvider:    id * 10000,
			PriceSuggested:   id * 15000,
			Rating:           3.0 + float64(id%21)/10,
			Reviews:          400 + id,
			Droppers:         20 + id,
			DroppersDir:      1,
		})
	}
	return products
}

// IDs returns the ids of products in order.
func IDs(products []domain.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
