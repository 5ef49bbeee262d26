package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woz/internal/domain"
	"woz/internal/infrastructure/random"
)

func TestGenerate_SequentialUniqueIDs(t *testing.T) {
	for _, n := range []int{0, 1, 45, 500} {
		products, err := Generate(n, DefaultVocabulary(), random.New(11))
		require.NoError(t, err)

		require.Len(t, products, n)
		for i, p := range products {
			assert.Equal(t, i+1, p.ID)
		}
	}
}

func TestGenerate_NegativeCountIsEmpty(t *testing.T) {
	products, err := Generate(-3, DefaultVocabulary(), random.New(1))
	require.NoError(t, err)

	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGenerate_DerivedFields(t *testing.T) {
	vocab := DefaultVocabulary()
	countries := make(map[string]domain.Country)
	for _, p := range vocab.Providers {
		countries[p.Name] = p.Country
	}

	products, err := Generate(500, vocab, random.New(2024))
	require.NoError(t, err)
	for _, p := range products {
		assert.Zero(t, p.PriceSuggested%1000, "suggested price must be a multiple of 1000")
		assert.GreaterOrEqual(t, p.PriceSuggested, 0)
		assert.GreaterOrEqual(t, p.PriceProvider, minPriceProvider)
		assert.LessOrEqual(t, p.PriceProvider, maxPriceProvider)

		tenths := p.Rating * 10
		assert.InDelta(t, float64(int(tenths+0.5)), tenths, 1e-9, "rating must have one decimal")
		assert.GreaterOrEqual(t, p.Rating, 3.0)
		assert.LessOrEqual(t, p.Rating, 5.0)

		assert.Equal(t, countries[p.Provider], p.ProviderCountry)
		assert.Contains(t, []int{-1, 1}, p.DroppersDir)
		assert.GreaterOrEqual(t, p.Droppers, minDroppers)
		assert.LessOrEqual(t, p.Droppers, maxDroppers)
	}
}

func TestGenerate_TitleCarriesID(t *testing.T) {
	products, err := Generate(3, DefaultVocabulary(), random.New(5))
	require.NoError(t, err)

	assert.Regexp(t, ` 1$`, products[0].Title)
	assert.Regexp(t, ` 3$`, products[2].Title)
}

func TestGenerate_InvalidVocabulary(t *testing.T) {
	empty := Vocabulary{}

	products, err := Generate(5, empty, random.New(1))
	require.Error(t, err)
	assert.Nil(t, products)

	products, err = Generate(0, empty, random.New(1))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSuggestedPrice(t *testing.T) {
	assert.Equal(t, 121000, SuggestedPrice(100000, 1.21))
	assert.Equal(t, 24000, SuggestedPrice(20000, 1.20))
	assert.Equal(t, 2340000, SuggestedPrice(900000, 2.60))
	assert.Equal(t, 25000, SuggestedPrice(20650, 1.20))
}

func TestVocabulary_Validate(t *testing.T) {
	require.NoError(t, DefaultVocabulary().Validate())

	empty := DefaultVocabulary()
	empty.Nouns = nil
	assert.Error(t, empty.Validate())

	badCountry := DefaultVocabulary()
	badCountry.Providers = []domain.Provider{{Name: "X", Country: "lunar"}}
	assert.Error(t, badCountry.Validate())

	dup := DefaultVocabulary()
	dup.Providers = append(dup.Providers, dup.Providers[0])
	assert.Error(t, dup.Validate())
}
