// Package trend derives short-term improving and declining metrics from a
// player's most recent graded games.
package trend

import (
	"math"
	"sort"

	"github.com/vytor/gridstats/internal/models"
)

const (
	DefaultWindow = 3
	DefaultTopN   = 3

	totalGrowthWeight  = 0.7
	recentChangeWeight = 0.3
)

// Aggregator scores metrics over the last Window qualifying games and keeps
// TopN entries per direction. Zero values fall back to the defaults.
type Aggregator struct {
	Window int
	TopN   int
}

// Compute runs the default aggregator.
func Compute(games []models.Game, grades models.GradeBook, metrics MetricSet) models.TrendResult {
	return Aggregator{}.Compute(games, grades, metrics)
}

// Compute returns the improving and declining metrics. It never fails: empty
// or missing inputs produce empty lists. Inputs are not modified.
func (a Aggregator) Compute(games []models.Game, grades models.GradeBook, metrics MetricSet) models.TrendResult {
	window := a.Window
	if window <= 0 {
		window = DefaultWindow
	}
	topN := a.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	recent := RecentGames(games, grades, metrics, window)

	scored := make([]models.TrendEntry, 0, len(metrics))
	for _, m := range metrics {
		values := make([]float64, 0, len(recent))
		for _, g := range recent {
			if v, ok := grades[g.Key()].Value(m.Key); ok {
				values = append(values, v)
			}
		}
		score, ok := Score(values)
		if !ok {
			continue
		}
		scored = append(scored, models.TrendEntry{Key: m.Key, Label: m.Label, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	result := models.TrendResult{
		TrendUp:   []models.TrendEntry{},
		TrendDown: []models.TrendEntry{},
	}

	var negative []models.TrendEntry
	for _, e := range scored {
		if e.Score >= 0 {
			if len(result.TrendUp) < topN {
				result.TrendUp = append(result.TrendUp, e)
			}
			continue
		}
		negative = append(negative, e)
	}

	if len(negative) > topN {
		negative = negative[len(negative)-topN:]
	}
	for i := len(negative) - 1; i >= 0; i-- {
		result.TrendDown = append(result.TrendDown, negative[i])
	}

	return result
}

// RecentGames filters games to those with at least one tracked metric,
// orders them chronologically and returns the last window of them.
func RecentGames(games []models.Game, grades models.GradeBook, metrics MetricSet, window int) []models.Game {
	keys := metrics.Keys()

	qualifying := make([]models.Game, 0, len(games))
	for _, g := range games {
		if grades[g.Key()].HasAny(keys) {
			qualifying = append(qualifying, g)
		}
	}

	SortChronological(qualifying)

	if window > 0 && len(qualifying) > window {
		qualifying = qualifying[len(qualifying)-window:]
	}
	return qualifying
}

// Score weights total growth across the window against the most recent change.
// ok is false when there are no values. A single value scores 0.
func Score(values []float64) (score float64, ok bool) {
	switch len(values) {
	case 0:
		return 0, false
	case 1:
		return 0, true
	}

	start := values[0]
	mid := values[1]
	end := values[len(values)-1]

	totalGrowth := 0.0
	if start != 0 {
		totalGrowth = finiteOrZero((end - start) / start * 100)
	}

	recentChange := 0.0
	if len(values) >= 3 && mid != 0 {
		recentChange = finiteOrZero((end - mid) / mid * 100)
	}

	return totalGrowthWeight*totalGrowth + recentChangeWeight*recentChange, true
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
