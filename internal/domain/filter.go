package domain

import "strings"

// All disables the predicate it is assigned to.
const All = "all"

type SortMode string

const (
	SortRelevance  SortMode = "relevance"
	SortPriceLow   SortMode = "price_low"
	SortPriceHigh  SortMode = "price_high"
	SortRatingHigh SortMode = "rating_high"
)

func (s SortMode) Valid() bool {
	switch s {
	case SortRelevance, SortPriceLow, SortPriceHigh, SortRatingHigh:
		return true
	}
	return false
}

// FilterState is a complete snapshot of the catalog controls. Country and
// Provider hold All when unset; MinRating is nil when unset.
type FilterState struct {
	Search    string
	Sort      SortMode
	Country   string
	Provider  string
	MinRating *float64
}

func DefaultFilterState() FilterState {
	return FilterState{
		Sort:     SortRelevance,
		Country:  All,
		Provider: All,
	}
}

func (f FilterState) Matches(p Product, loweredQuery string) bool {
	if loweredQuery != "" && !strings.Contains(strings.ToLower(p.Title), loweredQuery) {
		return false
	}
	if f.Country != "" && f.Country != All && string(p.ProviderCountry) != f.Country {
		return false
	}
	if f.Provider != "" && f.Provider != All && p.Provider != f.Provider {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	return true
}
