// Package controls turns externally owned control values into a complete
// FilterState. It holds no catalog logic beyond value extraction.
package controls

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"woz/internal/domain"
)

// Control names shared by every adapter.
const (
	Search   = "search"
	Sort     = "sort"
	Country  = "country"
	Provider = "provider"
	Rating   = "rating"
)

// Names lists every control in a stable order.
var Names = []string{Search, Sort, Country, Provider, Rating}

// Reader exposes the current value of a control. ok is false when the
// control does not exist.
type Reader interface {
	Lookup(name string) (value string, ok bool)
}

type Values map[string]string

func (v Values) Lookup(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// Query adapts URL query parameters. Only the first value of each key counts.
type Query url.Values

func (q Query) Lookup(name string) (string, bool) {
	values, ok := q[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Snapshot reads every control and returns a defaulted FilterState. Absent
// controls and malformed values fall back to their defaults.
func Snapshot(r Reader) domain.FilterState {
	st := domain.DefaultFilterState()
	if r == nil {
		return st
	}

	if v, ok := r.Lookup(Search); ok {
		st.Search = strings.TrimSpace(v)
	}
	if v, ok := r.Lookup(Sort); ok {
		if mode := domain.SortMode(strings.TrimSpace(v)); mode.Valid() {
			st.Sort = mode
		}
	}
	if v, ok := r.Lookup(Country); ok {
		if c := domain.Country(strings.TrimSpace(v)); c.Valid() {
			st.Country = string(c)
		}
	}
	if v, ok := r.Lookup(Provider); ok {
		if v = strings.TrimSpace(v); v != "" {
			st.Provider = v
		}
	}
	if v, ok := r.Lookup(Rating); ok {
		st.MinRating = parseRating(v)
	}

	return st
}

func parseRating(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" || v == domain.All {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
