package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/gridstats/internal/position"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		code     string
		statKind string
	}{
		{input: "QB", code: "QB", statKind: position.KindPassing},
		{input: "qb", code: "QB", statKind: position.KindPassing},
		{input: " hb ", code: "RB", statKind: position.KindRushing},
		{input: "WR", code: "WR", statKind: position.KindReceiving},
		{input: "TE", code: "TE", statKind: position.KindReceiving},
		{input: "C", code: "OL", statKind: position.KindBlocking},
		{input: "EDGE", code: "DL", statKind: position.KindDefense},
		{input: "OLB", code: "LB", statKind: position.KindDefense},
		{input: "SS", code: "S", statKind: position.KindDefense},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := position.Lookup(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.code, p.Code)
			assert.Equal(t, tt.statKind, p.StatKind)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := position.Lookup("K")
	assert.False(t, ok)
}

func TestAll_ProfilesAreComplete(t *testing.T) {
	profiles := position.All()
	require.NotEmpty(t, profiles)

	for i, p := range profiles {
		assert.NotEmpty(t, p.StatKind, p.Code)
		assert.NotEmpty(t, p.PercentileKind, p.Code)
		assert.NotEmpty(t, p.TrendMetrics, p.Code)
		assert.NotEmpty(t, p.Columns, p.Code)
		assert.NotEmpty(t, p.CompactColumns, p.Code)
		assert.Less(t, len(p.CompactColumns), len(p.Columns), p.Code)
		if i > 0 {
			assert.Less(t, profiles[i-1].Code, p.Code)
		}
	}
}

func TestColumnsFor(t *testing.T) {
	p, ok := position.Lookup("WR")
	require.True(t, ok)

	assert.Equal(t, p.Columns, p.ColumnsFor(false))
	assert.Equal(t, p.CompactColumns, p.ColumnsFor(true))
}

func TestReceivingDepthPositions(t *testing.T) {
	for _, code := range []string{"WR", "TE", "RB"} {
		p, ok := position.Lookup(code)
		require.True(t, ok)
		assert.True(t, p.ReceivingDepth, code)
	}
	for _, code := range []string{"QB", "OL", "CB"} {
		p, ok := position.Lookup(code)
		require.True(t, ok)
		assert.False(t, p.ReceivingDepth, code)
	}
}
