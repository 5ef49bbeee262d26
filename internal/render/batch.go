package render

import "woz/internal/domain"

const (
	DefaultPageSize        = 20
	DefaultScrollProximity = 600
)

// Batch slices the next page of visible starting at cursor. An empty page
// means the set is exhausted; the returned cursor never exceeds len(visible).
func Batch(visible []domain.Product, cursor, pageSize int) ([]domain.Product, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(visible) {
		return nil, len(visible)
	}

	end := min(cursor+pageSize, len(visible))
	return visible[cursor:end], end
}

// NearBottom reports whether a scroll position distance pixels above the
// bottom of the content is close enough to request another page.
func NearBottom(distance, proximity int) bool {
	if proximity <= 0 {
		proximity = DefaultScrollProximity
	}
	return distance <= proximity
}
