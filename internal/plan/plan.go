// Package plan decides which dashboard features a subscription plan unlocks.
package plan

import "strings"

type Plan string

const (
	Free    Plan = "free"
	Pro     Plan = "pro"
	Premium Plan = "premium"
)

type Feature string

const (
	FeatureGameLog     Feature = "game_log"
	FeatureDepthZones  Feature = "depth_zones"
	FeatureTrends      Feature = "trends"
	FeaturePercentiles Feature = "percentiles"
)

var paidFeatures = map[Feature]bool{
	FeatureTrends:      true,
	FeaturePercentiles: true,
}

// Parse normalizes a plan name. Unknown names are treated as Free.
func Parse(s string) Plan {
	switch p := Plan(strings.ToLower(strings.TrimSpace(s))); p {
	case Pro, Premium:
		return p
	default:
		return Free
	}
}

// Paid reports whether p is a paying plan.
func (p Plan) Paid() bool {
	return p == Pro || p == Premium
}

// Allows reports whether plan p unlocks feature f.
func Allows(p Plan, f Feature) bool {
	if !paidFeatures[f] {
		return true
	}
	return p.Paid()
}
