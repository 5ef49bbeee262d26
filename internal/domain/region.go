package domain

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendSteady Trend = "steady"
)

func TrendOf(before, after int) Trend {
	switch {
	case after > before:
		return TrendUp
	case after < before:
		return TrendDown
	default:
		return TrendSteady
	}
}

type RegionCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
	Trend Trend  `json:"trend"`
}
