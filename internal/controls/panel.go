package controls

import (
	"sync"
	"time"

	"woz/internal/domain"
	"woz/internal/scheduler"
)

const DefaultSearchDebounce = 200 * time.Millisecond

// Panel is the in-process state of the catalog controls. Changing any
// control re-runs apply; search edits are debounced so apply does not run
// on every keystroke. Controls not listed as present read as absent.
type Panel struct {
	mu      sync.Mutex
	present map[string]bool
	values  map[string]string

	apply    func()
	debounce *scheduler.Debouncer
}

// NewPanel creates a panel exposing the given controls (all when none are
// given) that calls apply after every change.
func NewPanel(apply func(), searchDebounce time.Duration, present ...string) *Panel {
	if len(present) == 0 {
		present = Names
	}
	if searchDebounce <= 0 {
		searchDebounce = DefaultSearchDebounce
	}

	p := &Panel{
		present: make(map[string]bool, len(present)),
		values:  make(map[string]string, len(present)),
		apply:   apply,
	}
	for _, name := range present {
		p.present[name] = true
	}
	p.resetLocked()
	p.debounce = scheduler.NewDebouncer(searchDebounce, apply)
	return p
}

func defaultValue(name string) string {
	switch name {
	case Search:
		return ""
	case Sort:
		return string(domain.SortRelevance)
	default:
		return domain.All
	}
}

func (p *Panel) resetLocked() {
	for name := range p.present {
		p.values[name] = defaultValue(name)
	}
}

func (p *Panel) Lookup(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.present[name] {
		return "", false
	}
	return p.values[name], true
}

// Has reports whether the control exists on this panel.
func (p *Panel) Has(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.present[name]
}

// State snapshots the panel.
func (p *Panel) State() domain.FilterState {
	return Snapshot(p)
}

// Set changes a non-search control and applies immediately. Setting an
// absent control is ignored and reports false.
func (p *Panel) Set(name, value string) bool {
	if name == Search {
		return p.SetSearch(value)
	}

	p.mu.Lock()
	if !p.present[name] {
		p.mu.Unlock()
		return false
	}
	p.values[name] = value
	p.mu.Unlock()

	p.apply()
	return true
}

// SetSearch records the search text and schedules a debounced apply.
func (p *Panel) SetSearch(value string) bool {
	p.mu.Lock()
	if !p.present[Search] {
		p.mu.Unlock()
		return false
	}
	p.values[Search] = value
	p.mu.Unlock()

	p.debounce.Trigger()
	return true
}

// SetMany changes several controls and applies once. When only search
// changes the apply is debounced; any other control applies immediately,
// including the new search text. Absent controls are skipped. It returns
// how many controls were set.
func (p *Panel) SetMany(values map[string]string) int {
	set, immediate := 0, false

	p.mu.Lock()
	for name, value := range values {
		if !p.present[name] {
			continue
		}
		p.values[name] = value
		set++
		if name != Search {
			immediate = true
		}
	}
	p.mu.Unlock()

	switch {
	case immediate:
		p.debounce.Cancel()
		p.apply()
	case set > 0:
		p.debounce.Trigger()
	}
	return set
}

// Clear resets every control to its default, drops any pending search and
// applies immediately.
func (p *Panel) Clear() {
	p.debounce.Cancel()

	p.mu.Lock()
	p.resetLocked()
	p.mu.Unlock()

	p.apply()
}

// Close cancels a pending debounced search.
func (p *Panel) Close() {
	p.debounce.Stop()
}
