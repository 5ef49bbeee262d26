package render

import (
	"fmt"
	"math"
	"strconv"

	"woz/internal/domain"
	"woz/internal/infrastructure/random"
)

const (
	maxStars = 5
	minSold  = 200
	maxSold  = 15000
)

// DroppersSource supplies the live droppers count for a product.
type DroppersSource interface {
	Droppers(id int) (int, bool)
}

type CardBuilder struct {
	layout   Layout
	rng      random.Source
	droppers DroppersSource
}

// NewCardBuilder returns a builder filling the slots of layout. A nil layout
// means every slot; droppers may be nil, in which case the product's own
// count is shown.
func NewCardBuilder(layout Layout, rng random.Source, droppers DroppersSource) *CardBuilder {
	if layout == nil {
		layout = FullLayout()
	}
	return &CardBuilder{layout: layout, rng: rng, droppers: droppers}
}

func (b *CardBuilder) Build(p domain.Product) Card {
	card := Card{ID: p.ID}
	l := b.layout

	if l.Has(SlotTitle) {
		card.Title = p.Title
	}
	if l.Has(SlotProvider) {
		card.Provider = p.Provider
	}
	if l.Has(SlotVerified) {
		verified := p.ProviderVerified
		card.Verified = &verified
	}
	if l.Has(SlotPriceProvider) {
		card.PriceProvider = FormatGs(p.PriceProvider)
	}
	if l.Has(SlotPriceSuggested) {
		card.PriceSuggested = FormatGs(p.PriceSuggested)
	}
	if l.Has(SlotReviews) {
		card.Reviews = fmt.Sprintf("%d reseñas", p.Reviews)
	}
	if l.Has(SlotStars) {
		stars := StarsFor(p.Rating)
		card.Stars = &stars
	}
	if l.Has(SlotDroppers) {
		d := p.Droppers
		if b.droppers != nil {
			if live, ok := b.droppers.Droppers(p.ID); ok {
				d = live
			}
		}
		card.Droppers = &d
	}
	if l.Has(SlotSold) && b.rng != nil {
		card.Sold = fmt.Sprintf("Este producto se ha vendido %d veces", random.Between(b.rng, minSold, maxSold))
	}
	if l.Has(SlotProfitability) {
		prof := ProfitabilityFor(p)
		card.Profitability = &prof
	}

	return card
}

func StarsFor(rating float64) Stars {
	full := int(math.Floor(rating))
	full = max(0, min(full, maxStars))
	return Stars{
		Full:  full,
		Empty: maxStars - full,
		Label: strconv.FormatFloat(rating, 'f', 1, 64),
	}
}

func ProfitabilityFor(p domain.Product) Profitability {
	if p.HighProfitability() {
		return Profitability{Label: "Alta rentabilidad", Class: "high"}
	}
	return Profitability{Label: "Rentabilidad regular", Class: "regular"}
}
