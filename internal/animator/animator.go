// Package animator runs the decorative counters: per-product droppers, the
// global droppers total and the per-region counters. Each runs on its own
// timer and none feeds back into filtering.
package animator

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"woz/internal/catalog"
	"woz/internal/domain"
	"woz/internal/infrastructure/random"
	"woz/internal/scheduler"
)

type Config struct {
	ProductInterval   time.Duration
	AggregateInterval time.Duration
	RegionInterval    time.Duration
	MaxProductStep    int
	FlipProbability   float64
	AggregateMaxStep  int
	AggregateStart    int
	RegionMaxStep     int
}

func DefaultConfig() Config {
	return Config{
		ProductInterval:   2500 * time.Millisecond,
		AggregateInterval: time.Second,
		RegionInterval:    time.Second,
		MaxProductStep:    8,
		FlipProbability:   0.02,
		AggregateMaxStep:  25,
		AggregateStart:    34305,
		RegionMaxStep:     3,
	}
}

type Stats struct {
	Aggregate int                  `json:"aggregate"`
	Target    int                  `json:"target"`
	Trend     domain.Trend         `json:"trend"`
	Regions   []domain.RegionCount `json:"regions"`
}

type Animator struct {
	store   *catalog.Store
	rng     random.Source
	display Display
	cfg     Config
	logger  *zap.Logger

	mu      sync.Mutex
	current int
	target  int
	trend   domain.Trend

	regions *Regions
	group   *scheduler.Group
}

// New prepares an animator over store. The displayed total starts at
// cfg.AggregateStart and converges toward the real droppers sum.
func New(store *catalog.Store, rng random.Source, display Display, cfg Config, logger *zap.Logger) *Animator {
	if display == nil {
		display = MultiDisplay{}
	}
	a := &Animator{
		store:   store,
		rng:     rng,
		display: display,
		cfg:     cfg,
		logger:  logger,
		current: max(cfg.AggregateStart, 0),
		target:  store.TotalDroppers(),
		trend:   domain.TrendSteady,
		regions: NewRegions(DefaultRegions, cfg.RegionMaxStep, rng),
		group:   scheduler.NewGroup(logger),
	}

	a.group.Every("product-droppers", cfg.ProductInterval, func(context.Context) { a.StepProducts() })
	a.group.Every("aggregate-droppers", cfg.AggregateInterval, func(context.Context) { a.StepAggregate() })
	a.group.Every("region-counters", cfg.RegionInterval, func(context.Context) { a.StepRegions() })
	return a
}

func (a *Animator) Start(ctx context.Context) {
	a.group.Start(ctx)
	a.logger.Info("animator started",
		zap.Int("products", a.store.Len()),
		zap.Int("aggregateStart", a.cfg.AggregateStart),
	)
}

// Stop cancels every timer and waits for running ticks.
func (a *Animator) Stop() {
	a.group.Stop()
	a.logger.Info("animator stopped")
}

// StepProducts random-walks every product's droppers and recomputes the
// aggregate target from the new sum.
func (a *Animator) StepProducts() {
	var updates []DroppersUpdate
	total := a.store.Walk(func(p *domain.Product) {
		before := p.Droppers
		p.Step(random.Between(a.rng, 0, a.cfg.MaxProductStep))
		if random.Chance(a.rng, a.cfg.FlipProbability) {
			p.FlipDirection()
		}
		if p.Droppers != before {
			updates = append(updates, DroppersUpdate{ID: p.ID, Droppers: p.Droppers})
		}
	})

	a.mu.Lock()
	a.target = total
	a.mu.Unlock()

	if len(updates) > 0 {
		a.display.Droppers(updates)
	}
}

// StepAggregate moves the displayed total toward the target by a random
// step in [1, AggregateMaxStep], never past the target.
func (a *Animator) StepAggregate() (int, domain.Trend) {
	a.mu.Lock()
	before := a.current
	if a.current != a.target {
		gap := a.target - a.current
		step := min(abs(gap), random.Between(a.rng, 1, max(a.cfg.AggregateMaxStep, 1)))
		if gap < 0 {
			step = -step
		}
		a.current = max(a.current+step, 0)
	}
	a.trend = domain.TrendOf(before, a.current)
	current, trend := a.current, a.trend
	a.mu.Unlock()

	if current != before {
		a.display.Aggregate(current, trend)
	}
	return current, trend
}

func (a *Animator) StepRegions() {
	for _, r := range a.regions.Step() {
		a.display.Region(r)
	}
}

func (a *Animator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Stats{
		Aggregate: a.current,
		Target:    a.target,
		Trend:     a.trend,
		Regions:   a.regions.Snapshot(),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
