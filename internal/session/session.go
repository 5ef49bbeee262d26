// Package session holds per-client browse state: the controls, the Visible
// Set and the rendered view, kept consistent by re-filtering on every
// control change.
package session

import (
	"context"
	"errors"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"woz/internal/animator"
	"woz/internal/controls"
	"woz/internal/domain"
	"woz/internal/infrastructure/random"
	"woz/internal/product"
	"woz/internal/render"
)

var ErrMissingService = errors.New("product service is required")

// Options configure every session a Manager creates.
type Options struct {
	Service         product.Service
	Template        *template.Template
	Layout          render.Layout
	Droppers        render.DroppersSource
	Rng             random.Source
	PageSize        int
	ScrollProximity int
	SearchDebounce  time.Duration
	// Controls lists the controls the client has; empty means all.
	Controls     []string
	ApplyTimeout time.Duration
}

type Session struct {
	id        string
	service   product.Service
	view      *render.HTMLView
	panel     *controls.Panel
	proximity int
	timeout   time.Duration
	logger    *zap.Logger

	mu         sync.Mutex
	pipeline   *render.Pipeline
	state      domain.FilterState
	lastActive time.Time
	// issued numbers every controls read; applied is the newest one whose
	// result reached the view.
	issued  uint64
	applied uint64
}

// Snapshot is a consistent read of a session.
type Snapshot struct {
	ID       string
	Controls domain.FilterState
	Total    int
	Cursor   int
	View     render.ViewState
}

// New builds a session without rendering anything. A missing service or
// item template is an initialisation error.
func New(opts Options, logger *zap.Logger) (*Session, error) {
	if opts.Service == nil {
		return nil, ErrMissingService
	}
	view, err := render.NewHTMLView(opts.Template)
	if err != nil {
		return nil, err
	}
	if opts.ApplyTimeout <= 0 {
		opts.ApplyTimeout = 5 * time.Second
	}

	id := uuid.New().String()
	s := &Session{
		id:         id,
		service:    opts.Service,
		view:       view,
		proximity:  opts.ScrollProximity,
		timeout:    opts.ApplyTimeout,
		logger:     logger.With(zap.String("sessionId", id)),
		state:      domain.DefaultFilterState(),
		lastActive: time.Now(),
	}
	builder := render.NewCardBuilder(opts.Layout, opts.Rng, opts.Droppers)
	s.pipeline = render.NewPipeline(view, builder, opts.PageSize, s.logger)
	s.panel = controls.NewPanel(s.applyAsync, opts.SearchDebounce, opts.Controls...)
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Apply snapshots the controls, filters the catalog and resets the rendered
// list to the first page of the new Visible Set. When runs overlap, a run
// that read the controls before a later one has already been applied is
// discarded.
func (s *Session) Apply(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	state := s.panel.State()
	s.mu.Unlock()

	visible, err := s.service.Filter(ctx, state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		s.logger.Debug("discarding stale filter result", zap.Uint64("seq", seq), zap.Uint64("applied", s.applied))
		return nil
	}
	s.applied = seq
	s.state = state
	rendered := s.pipeline.Reset(visible)
	s.lastActive = time.Now()
	s.logger.Debug("applied filters",
		zap.String("search", state.Search),
		zap.String("sort", string(state.Sort)),
		zap.Int("visible", len(visible)),
		zap.Int("rendered", rendered),
	)
	return nil
}

func (s *Session) applyAsync() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.Apply(ctx); err != nil {
		s.logger.Error("applying filters failed", zap.Error(err))
	}
}

// SetControl changes one control. Search is debounced; every other control
// re-filters before returning. Absent controls report false.
func (s *Session) SetControl(name, value string) bool {
	return s.panel.Set(name, value)
}

// SetControls changes several controls and re-filters at most once. See
// controls.Panel.SetMany.
func (s *Session) SetControls(values map[string]string) int {
	return s.panel.SetMany(values)
}

func (s *Session) ClearControls() {
	s.panel.Clear()
}

// Scroll renders the next page when distance is within the scroll
// proximity and reports how many items were added.
func (s *Session) Scroll(distance int) (rendered, cursor int, hasMore bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = time.Now()
	if render.NearBottom(distance, s.proximity) {
		rendered, _ = s.pipeline.Next()
	}
	return rendered, s.pipeline.Cursor(), s.pipeline.HasMore()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:       s.id,
		Controls: s.state,
		Total:    s.pipeline.Len(),
		Cursor:   s.pipeline.Cursor(),
		View:     s.view.State(),
	}
}

func (s *Session) WriteHTML(w io.Writer) error {
	return s.view.WriteHTML(w)
}

// UpdateDroppers refreshes rendered cards; unrendered products are skipped.
func (s *Session) UpdateDroppers(updates []animator.DroppersUpdate) {
	for _, u := range updates {
		s.view.UpdateDroppers(u.ID, u.Droppers)
	}
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Close drops any pending debounced search.
func (s *Session) Close() {
	s.panel.Close()
}
