package animator

import (
	"sync"

	"woz/internal/domain"
	"woz/internal/infrastructure/random"
)

// DefaultRegions are the starting counts shown per country code.
var DefaultRegions = []domain.RegionCount{
	{Code: "py", Count: 12350},
	{Code: "ar", Count: 105098},
	{Code: "br", Count: 89420},
	{Code: "cl", Count: 42880},
	{Code: "uy", Count: 15230},
	{Code: "pe", Count: 67110},
	{Code: "co", Count: 78900},
}

// Regions random-walks a counter per region, each floored at zero.
type Regions struct {
	mu      sync.Mutex
	rng     random.Source
	maxStep int
	counts  []domain.RegionCount
}

func NewRegions(initial []domain.RegionCount, maxStep int, rng random.Source) *Regions {
	counts := make([]domain.RegionCount, len(initial))
	for i, r := range initial {
		counts[i] = domain.RegionCount{Code: r.Code, Count: max(r.Count, 0), Trend: domain.TrendSteady}
	}
	return &Regions{rng: rng, maxStep: maxStep, counts: counts}
}

// Step moves every region by a delta in [-maxStep, maxStep] and returns the
// new values.
func (r *Regions) Step() []domain.RegionCount {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.counts {
		before := r.counts[i].Count
		after := max(0, before+random.Between(r.rng, -r.maxStep, r.maxStep))
		r.counts[i].Count = after
		r.counts[i].Trend = domain.TrendOf(before, after)
	}
	return r.snapshotLocked()
}

func (r *Regions) Snapshot() []domain.RegionCount {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Regions) snapshotLocked() []domain.RegionCount {
	out := make([]domain.RegionCount, len(r.counts))
	copy(out, r.counts)
	return out
}
