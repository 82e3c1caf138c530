package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/gridstats/internal/plan"
)

func TestParse(t *testing.T) {
	assert.Equal(t, plan.Pro, plan.Parse("PRO"))
	assert.Equal(t, plan.Premium, plan.Parse(" premium "))
	assert.Equal(t, plan.Free, plan.Parse(""))
	assert.Equal(t, plan.Free, plan.Parse("enterprise"))
}

func TestAllows(t *testing.T) {
	tests := []struct {
		plan     plan.Plan
		feature  plan.Feature
		expected bool
	}{
		{plan.Free, plan.FeatureGameLog, true},
		{plan.Free, plan.FeatureDepthZones, true},
		{plan.Free, plan.FeatureTrends, false},
		{plan.Free, plan.FeaturePercentiles, false},
		{plan.Pro, plan.FeatureTrends, true},
		{plan.Pro, plan.FeaturePercentiles, true},
		{plan.Premium, plan.FeatureTrends, true},
		{plan.Premium, plan.FeatureGameLog, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan)+"/"+string(tt.feature), func(t *testing.T) {
			assert.Equal(t, tt.expected, plan.Allows(tt.plan, tt.feature))
		})
	}
}
