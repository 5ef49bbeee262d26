package domain

type Country string

const (
	CountryNational      Country = "nacional"
	CountryInternational Country = "internacional"
)

func (c Country) Valid() bool {
	return c == CountryNational || c == CountryInternational
}

type Provider struct {
	Name    string  `yaml:"name"`
	Country Country `yaml:"country"`
}

// Product is immutable after generation except for Droppers and DroppersDir,
// which are owned by the catalog store and mutated under its lock.
type Product struct {
	ID               int
	Title            string
	Provider         string
	ProviderVerified bool
	ProviderCountry  Country
	PriceProvider    int
	PriceSuggested   int
	Rating           float64
	Reviews          int
	Droppers         int
	DroppersDir      int
}

const highProfitabilityRatio = 1.8

// HighProfitability reports whether the suggested price is well above cost.
func (p Product) HighProfitability() bool {
	return float64(p.PriceSuggested) > float64(p.PriceProvider)*highProfitabilityRatio
}

// Step moves Droppers by delta in the current direction, floored at zero.
func (p *Product) Step(delta int) {
	p.Droppers += delta * p.DroppersDir
	if p.Droppers < 0 {
		p.Droppers = 0
	}
}

func (p *Product) FlipDirection() {
	p.DroppersDir = -p.DroppersDir
}
