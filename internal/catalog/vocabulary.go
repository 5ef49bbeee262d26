package catalog

import (
	"fmt"

	"woz/internal/domain"
)

// Vocabulary holds the word lists and the provider table titles and
// providers are drawn from.
type Vocabulary struct {
	Adjectives []string          `yaml:"adjectives"`
	Nouns      []string          `yaml:"nouns"`
	Providers  []domain.Provider `yaml:"providers"`
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Adjectives: []string{
			"Compacto", "Ligero", "Premium", "Plegable", "Moderno", "Urban", "Pro",
			"Deluxe", "Económico", "Ergonómico", "Seguro", "Infantil", "Multiuso", "Resistente",
		},
		Nouns: []string{
			"Carrito para bebé", "Silla de bebe", "Casco urbano", "Luces LED para bici",
			"Candado de cable", "Mochila porta-niños", "Alforja", "Soporte celular para bici",
			"Guardabarros", "Portaequipaje", "Timbrillo eléctrico", "Manubrio plegable",
			"Asiento gel", "Bomba portátil", "Guantes urbanos", "Lentes fotocromáticos",
			"Portabotellas", "Cubierta antipinchazos", "Cesta para bici", "Pantalón reflectante",
		},
		Providers: []domain.Provider{
			{Name: "Amazon", Country: domain.CountryInternational},
			{Name: "AliExpress", Country: domain.CountryInternational},
			{Name: "eBay", Country: domain.CountryInternational},
			{Name: "Mercado Libre", Country: domain.CountryNational},
			{Name: "Tiendas del Barrio", Country: domain.CountryNational},
			{Name: "Baby Store Corp.", Country: domain.CountryNational},
			{Name: "Tienda tu Espacio", Country: domain.CountryNational},
			{Name: "NYC Services.", Country: domain.CountryInternational},
			{Name: "LocalShop", Country: domain.CountryNational},
			{Name: "GlobalTrade", Country: domain.CountryInternational},
		},
	}
}

// Validate checks the vocabulary can feed the generator. A provider name
// may appear only once so its country stays unambiguous.
func (v Vocabulary) Validate() error {
	if len(v.Adjectives) == 0 {
		return fmt.Errorf("vocabulary has no adjectives")
	}
	if len(v.Nouns) == 0 {
		return fmt.Errorf("vocabulary has no nouns")
	}
	if len(v.Providers) == 0 {
		return fmt.Errorf("vocabulary has no providers")
	}

	seen := make(map[string]struct{}, len(v.Providers))
	for i, p := range v.Providers {
		if p.Name == "" {
			return fmt.Errorf("provider %d has no name", i)
		}
		if !p.Country.Valid() {
			return fmt.Errorf("provider %q has invalid country %q", p.Name, p.Country)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("provider %q listed more than once", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
