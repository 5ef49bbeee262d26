package render

import (
	"slices"
	"sync"
)

// ViewState is what a client currently sees.
type ViewState struct {
	Cards     []Card `json:"cards"`
	Loading   bool   `json:"loading"`
	NoResults bool   `json:"noResults"`
}

// SnapshotView keeps rendered cards in memory. It is safe for concurrent
// use since the animator updates droppers outside of the render cycle.
type SnapshotView struct {
	mu        sync.RWMutex
	cards     []Card
	index     map[int]int
	loading   bool
	noResults bool
}

func NewSnapshotView() *SnapshotView {
	return &SnapshotView{index: make(map[int]int)}
}

func (v *SnapshotView) RenderItem(card Card) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.index[card.ID] = len(v.cards)
	v.cards = append(v.cards, card)
	return nil
}

func (v *SnapshotView) ClearList() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cards = nil
	v.index = make(map[int]int)
}

func (v *SnapshotView) SetLoadingVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = visible
}

func (v *SnapshotView) SetNoResultsVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.noResults = visible
}

func (v *SnapshotView) UpdateDroppers(id, droppers int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	i, ok := v.index[id]
	if !ok || v.cards[i].Droppers == nil {
		return
	}
	d := droppers
	v.cards[i].Droppers = &d
}

func (v *SnapshotView) State() ViewState {
	v.mu.RLock()
	defer v.mu.RUnlock()

	cards := slices.Clone(v.cards)
	if cards == nil {
		cards = []Card{}
	}
	return ViewState{
		Cards:     cards,
		Loading:   v.loading,
		NoResults: v.noResults,
	}
}
