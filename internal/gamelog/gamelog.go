// Package gamelog builds per-game table rows with opponent details.
package gamelog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/trend"
)

// Opponent describes who a team played and how it went.
type Opponent struct {
	Team     string `json:"team"`
	HomeAway string `json:"home_away"` // "vs" at home, "@" away
	Result   string `json:"result,omitempty"`
	Score    string `json:"score,omitempty"`
}

// Cell is one column value. Value is nil when the game has no such stat.
type Cell struct {
	Key   string   `json:"key"`
	Value *float64 `json:"value"`
}

// Row is one game in the log.
type Row struct {
	Key        models.GameKey    `json:"key"`
	Week       int               `json:"week"`
	SeasonType models.SeasonType `json:"season_type"`
	StartDate  string            `json:"start_date"`
	Opponent   Opponent          `json:"opponent"`
	Graded     bool              `json:"graded"`
	Cells      []Cell            `json:"cells"`
}

// OpponentFor resolves the opponent of team in g. An empty or unknown team
// is treated as the home side.
func OpponentFor(g models.Game, team string) Opponent {
	away := team != "" && strings.EqualFold(g.AwayTeam, team)

	opp := Opponent{Team: g.AwayTeam, HomeAway: "vs"}
	pointsFor, pointsAgainst := g.HomePoints, g.AwayPoints
	if away {
		opp = Opponent{Team: g.HomeTeam, HomeAway: "@"}
		pointsFor, pointsAgainst = g.AwayPoints, g.HomePoints
	}

	if pointsFor == nil || pointsAgainst == nil {
		return opp
	}

	switch {
	case *pointsFor > *pointsAgainst:
		opp.Result = "W"
	case *pointsFor < *pointsAgainst:
		opp.Result = "L"
	default:
		opp.Result = "T"
	}
	opp.Score = fmt.Sprintf("%d-%d", *pointsFor, *pointsAgainst)
	return opp
}

// BuildOpponentLookup maps each game key to the opponent of team.
func BuildOpponentLookup(games []models.Game, team string) map[models.GameKey]Opponent {
	out := make(map[models.GameKey]Opponent, len(games))
	for _, g := range games {
		out[g.Key()] = OpponentFor(g, team)
	}
	return out
}

// Build returns one row per game, regular season first, then by week.
func Build(games []models.Game, grades models.GradeBook, team string, columns trend.MetricSet) []Row {
	ordered := append([]models.Game(nil), games...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.SeasonType != b.SeasonType {
			return a.SeasonType == models.SeasonRegular
		}
		return a.Week < b.Week
	})

	opponents := BuildOpponentLookup(ordered, team)
	keys := columns.Keys()

	rows := make([]Row, 0, len(ordered))
	for _, g := range ordered {
		line := grades[g.Key()]
		row := Row{
			Key:        g.Key(),
			Week:       g.Week,
			SeasonType: g.SeasonType,
			StartDate:  g.StartDate,
			Opponent:   opponents[g.Key()],
			Graded:     line.HasAny(keys),
			Cells:      make([]Cell, len(keys)),
		}
		for i, k := range keys {
			row.Cells[i] = Cell{Key: k}
			if v, ok := line.Value(k); ok {
				row.Cells[i].Value = &v
			}
		}
		rows = append(rows, row)
	}
	return rows
}
