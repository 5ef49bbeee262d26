package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woz/internal/domain"
	"woz/internal/infrastructure/random"
)

type fixedDroppers map[int]int

func (f fixedDroppers) Droppers(id int) (int, bool) {
	d, ok := f[id]
	return d, ok
}

func sampleProduct() domain.Product {
	return domain.Product{
		ID:               12,
		Title:            "Premium Asiento gel 12",
		Provider:         "LocalShop",
		ProviderVerified: true,
		ProviderCountry:  domain.CountryNational,
		PriceProvider:    100000,
		PriceSuggested:   250000,
		Rating:           4.3,
		Reviews:          812,
		Droppers:         75,
		DroppersDir:      1,
	}
}

func TestCardBuilder_FullLayout(t *testing.T) {
	b := NewCardBuilder(nil, random.New(1), nil)

	card := b.Build(sampleProduct())

	assert.Equal(t, 12, card.ID)
	assert.Equal(t, "Premium Asiento gel 12", card.Title)
	assert.Equal(t, "LocalShop", card.Provider)
	require.NotNil(t, card.Verified)
	assert.True(t, *card.Verified)
	assert.Equal(t, "Gs. 100.000", card.PriceProvider)
	assert.Equal(t, "Gs. 250.000", card.PriceSuggested)
	assert.Equal(t, "812 reseñas", card.Reviews)
	require.NotNil(t, card.Stars)
	assert.Equal(t, Stars{Full: 4, Empty: 1, Label: "4.3"}, *card.Stars)
	require.NotNil(t, card.Droppers)
	assert.Equal(t, 75, *card.Droppers)
	assert.Regexp(t, `^Este producto se ha vendido \d+ veces$`, card.Sold)
	require.NotNil(t, card.Profitability)
	assert.Equal(t, "high", card.Profitability.Class)
}

func TestCardBuilder_MissingSlotsAreSkipped(t *testing.T) {
	b := NewCardBuilder(NewLayout(SlotTitle, SlotDroppers), random.New(1), nil)

	card := b.Build(sampleProduct())

	assert.Equal(t, "Premium Asiento gel 12", card.Title)
	assert.NotNil(t, card.Droppers)
	assert.Empty(t, card.Provider)
	assert.Nil(t, card.Verified)
	assert.Empty(t, card.PriceSuggested)
	assert.Nil(t, card.Stars)
	assert.Empty(t, card.Sold)
	assert.Nil(t, card.Profitability)
}

func TestCardBuilder_UsesLiveDroppers(t *testing.T) {
	b := NewCardBuilder(nil, random.New(1), fixedDroppers{12: 90})

	card := b.Build(sampleProduct())

	require.NotNil(t, card.Droppers)
	assert.Equal(t, 90, *card.Droppers)
}

func TestCardBuilder_SoldWithinRange(t *testing.T) {
	b := NewCardBuilder(NewLayout(SlotSold), random.New(77), nil)

	for i := 0; i < 200; i++ {
		var sold int
		_, err := fmt.Sscanf(b.Build(sampleProduct()).Sold, "Este producto se ha vendido %d veces", &sold)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sold, minSold)
		assert.LessOrEqual(t, sold, maxSold)
	}
}

func TestStarsFor(t *testing.T) {
	assert.Equal(t, Stars{Full: 3, Empty: 2, Label: "3.0"}, StarsFor(3.0))
	assert.Equal(t, Stars{Full: 4, Empty: 1, Label: "4.9"}, StarsFor(4.9))
	assert.Equal(t, Stars{Full: 5, Empty: 0, Label: "5.0"}, StarsFor(5.0))
}

func TestProfitabilityFor(t *testing.T) {
	p := sampleProduct()
	p.PriceSuggested = 180000

	assert.Equal(t, Profitability{Label: "Rentabilidad regular", Class: "regular"}, ProfitabilityFor(p))
}

func TestParseLayout_IgnoresUnknown(t *testing.T) {
	l := ParseLayout([]string{"title", "sparkles", "stars"})

	assert.True(t, l.Has(SlotTitle))
	assert.True(t, l.Has(SlotStars))
	assert.Len(t, l, 2)
}
