package animator

import "woz/internal/domain"

type DroppersUpdate struct {
	ID       int `json:"id"`
	Droppers int `json:"droppers"`
}

// Display receives the animated values. Calls come from the animator's
// timers and must not block for long.
type Display interface {
	Droppers(updates []DroppersUpdate)
	Aggregate(total int, trend domain.Trend)
	Region(region domain.RegionCount)
}

// MultiDisplay fans every update out to each display in order.
type MultiDisplay []Display

func (m MultiDisplay) Droppers(updates []DroppersUpdate) {
	for _, d := range m {
		d.Droppers(updates)
	}
}

func (m MultiDisplay) Aggregate(total int, trend domain.Trend) {
	for _, d := range m {
		d.Aggregate(total, trend)
	}
}

func (m MultiDisplay) Region(region domain.RegionCount) {
	for _, d := range m {
		d.Region(region)
	}
}
