// Package position maps player positions to the stat families and metric
// sets used by trends, game logs and percentiles.
package position

import (
	"sort"
	"strings"

	"github.com/vytor/gridstats/internal/trend"
)

// Stat kinds as they appear in the weekly and percentile endpoint names.
const (
	KindPassing   = "passing"
	KindRushing   = "rushing"
	KindReceiving = "receiving"
	KindBlocking  = "blocking"
	KindDefense   = "defense"
)

// Profile describes how a position is analysed. ReceivingDepth marks
// positions with a season depth-of-target breakdown.
type Profile struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	StatKind       string          `json:"stat_kind"`
	PercentileKind string          `json:"percentile_kind"`
	TrendMetrics   trend.MetricSet `json:"trend_metrics"`
	Columns        trend.MetricSet `json:"columns"`
	CompactColumns trend.MetricSet `json:"compact_columns"`
	ReceivingDepth bool            `json:"receiving_depth"`
}

// ColumnsFor returns the game log columns for the given layout.
func (p Profile) ColumnsFor(compact bool) trend.MetricSet {
	if compact && len(p.CompactColumns) > 0 {
		return p.CompactColumns
	}
	return p.Columns
}

var aliases = map[string]string{
	"HB":   "RB",
	"FB":   "RB",
	"OT":   "OL",
	"OG":   "OL",
	"T":    "OL",
	"G":    "OL",
	"C":    "OL",
	"EDGE": "DL",
	"DE":   "DL",
	"DT":   "DL",
	"NT":   "DL",
	"ILB":  "LB",
	"OLB":  "LB",
	"MLB":  "LB",
	"DB":   "CB",
	"FS":   "S",
	"SS":   "S",
}

// Lookup returns the profile for a position code or one of its aliases.
func Lookup(code string) (Profile, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := aliases[code]; ok {
		code = canonical
	}
	p, ok := profiles[code]
	return p, ok
}

// All returns every profile ordered by code.
func All() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
