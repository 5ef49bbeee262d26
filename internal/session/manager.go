package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"woz/internal/animator"
	"woz/internal/domain"
	apperrors "woz/internal/errors"
)

// Manager owns the live sessions and forwards droppers updates to their
// views. It implements animator.Display.
type Manager struct {
	opts   Options
	limit  int
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a manager allowing at most limit sessions; zero or
// less means unbounded.
func NewManager(opts Options, limit int, logger *zap.Logger) *Manager {
	return &Manager{
		opts:     opts,
		limit:    limit,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Create opens a session and renders its first page with default controls.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	m.mu.RLock()
	full := m.limit > 0 && len(m.sessions) >= m.limit
	m.mu.RUnlock()
	if full {
		return nil, apperrors.NewConflictError("too many open sessions")
	}

	s, err := New(m.opts, m.logger)
	if err != nil {
		m.logger.Error("creating session failed", zap.Error(err))
		return nil, apperrors.NewInternalError("creating session", err)
	}
	if err := s.Apply(ctx); err != nil {
		s.Close()
		return nil, apperrors.NewInternalError("rendering session", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.limit > 0 && len(m.sessions) >= m.limit {
		s.Close()
		return nil, apperrors.NewConflictError("too many open sessions")
	}
	m.sessions[s.ID()] = s

	m.logger.Info("session created", zap.String("sessionId", s.ID()), zap.Int("sessions", len(m.sessions)))
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("session " + id + " not found")
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return apperrors.NewNotFoundError("session " + id + " not found")
	}
	s.Close()
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than idle and returns how many
// were removed.
func (m *Manager) Sweep(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-idle)

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		m.logger.Info("expired idle sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (m *Manager) Droppers(updates []animator.DroppersUpdate) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.sessions {
		s.UpdateDroppers(updates)
	}
}

// Aggregate is not shown on session views.
func (m *Manager) Aggregate(int, domain.Trend) {}

// Region is not shown on session views.
func (m *Manager) Region(domain.RegionCount) {}
