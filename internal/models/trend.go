package models

// TrendEntry is one scored metric.
type TrendEntry struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// TrendResult holds the improving and declining metrics over the recent window.
type TrendResult struct {
	TrendUp   []TrendEntry `json:"trend_up"`
	TrendDown []TrendEntry `json:"trend_down"`
}
