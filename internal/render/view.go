package render

// View is the render target. Implementations own the presentation; the
// pipeline only appends cards and toggles the two indicators.
type View interface {
	RenderItem(card Card) error
	ClearList()
	SetLoadingVisible(visible bool)
	SetNoResultsVisible(visible bool)
	// UpdateDroppers refreshes the droppers count of a rendered card; cards
	// not currently rendered are ignored.
	UpdateDroppers(id, droppers int)
}

type Stars struct {
	Full  int    `json:"full"`
	Empty int    `json:"empty"`
	Label string `json:"label"`
}

type Profitability struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// Card is the display-ready record for one product. Fields whose slot is
// absent from the layout stay empty and are omitted.
type Card struct {
	ID             int            `json:"id"`
	Title          string         `json:"title,omitempty"`
	Provider       string         `json:"provider,omitempty"`
	Verified       *bool          `json:"verified,omitempty"`
	PriceProvider  string         `json:"priceProvider,omitempty"`
	PriceSuggested string         `json:"priceSuggested,omitempty"`
	Reviews        string         `json:"reviews,omitempty"`
	Stars          *Stars         `json:"stars,omitempty"`
	Droppers       *int           `json:"droppers,omitempty"`
	Sold           string         `json:"sold,omitempty"`
	Profitability  *Profitability `json:"profitability,omitempty"`
}

type Slot string

const (
	SlotTitle          Slot = "title"
	SlotProvider       Slot = "provider-name"
	SlotVerified       Slot = "verified"
	SlotPriceProvider  Slot = "price-provider"
	SlotPriceSuggested Slot = "price-suggested"
	SlotReviews        Slot = "reviews"
	SlotStars          Slot = "stars"
	SlotDroppers       Slot = "droppers-count"
	SlotSold           Slot = "sold-count"
	SlotProfitability  Slot = "profitability"
)

var allSlots = []Slot{
	SlotTitle, SlotProvider, SlotVerified, SlotPriceProvider, SlotPriceSuggested,
	SlotReviews, SlotStars, SlotDroppers, SlotSold, SlotProfitability,
}

// Layout is the set of slots an item template provides.
type Layout map[Slot]bool

func FullLayout() Layout {
	return NewLayout(allSlots...)
}

func NewLayout(slots ...Slot) Layout {
	l := make(Layout, len(slots))
	for _, s := range slots {
		l[s] = true
	}
	return l
}

// ParseLayout builds a layout from slot names, ignoring unknown names.
func ParseLayout(names []string) Layout {
	known := NewLayout(allSlots...)
	l := make(Layout, len(names))
	for _, n := range names {
		if s := Slot(n); known[s] {
			l[s] = true
		}
	}
	return l
}

func (l Layout) Has(s Slot) bool {
	return l[s]
}
