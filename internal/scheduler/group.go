// Package scheduler runs the cancellable timers of the service: fixed
// interval tasks and debounced calls.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type task struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
}

// Group owns a set of periodic tasks, each on its own ticker. Tasks are
// registered with Every before Start; Stop cancels all of them and waits.
type Group struct {
	logger *zap.Logger

	mu      sync.Mutex
	tasks   []task
	cancel  context.CancelFunc
	eg      *errgroup.Group
	stopped bool
}

func NewGroup(logger *zap.Logger) *Group {
	return &Group{logger: logger}
}

// Every registers fn to run once per interval. Non-positive intervals are
// ignored.
func (g *Group) Every(name string, interval time.Duration, fn func(ctx context.Context)) {
	if interval <= 0 {
		g.logger.Warn("ignoring task with non-positive interval", zap.String("task", name))
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks = append(g.tasks, task{name: name, interval: interval, fn: fn})
}

// Start launches every registered task. Calling Start twice, or after Stop,
// does nothing.
func (g *Group) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil || g.stopped {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	g.cancel = cancel
	g.eg = eg

	for _, t := range g.tasks {
		eg.Go(func() error {
			g.run(ctx, t)
			return nil
		})
	}
	g.logger.Debug("scheduler started", zap.Int("tasks", len(g.tasks)))
}

func (g *Group) run(ctx context.Context, t task) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fn(ctx)
		}
	}
}

// Stop cancels all tasks and waits for in-flight ticks to return.
func (g *Group) Stop() {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		return
	}
	g.stopped = true
	cancel, eg := g.cancel, g.eg
	g.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	_ = eg.Wait()
	g.logger.Debug("scheduler stopped")
}
