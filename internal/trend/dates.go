package trend

import (
	"sort"
	"strings"
	"time"

	"github.com/vytor/gridstats/internal/models"
)

var startDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	"1/2/2006 15:04:05",
	"1/2/2006",
	"2006/1/2",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Mon Jan 2 2006",
}

// ParseStartDate parses a game start date. ok is false for empty or unparsable input.
func ParseStartDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortChronological sorts games ascending by start date in place. When either
// date of a compared pair is unparsable that pair is ordered by week instead.
// The fallback is per comparison, so mixing parsable and unparsable dates does
// not give a consistent total order.
func SortChronological(games []models.Game) {
	type datedGame struct {
		game models.Game
		at   time.Time
		ok   bool
	}

	items := make([]datedGame, len(games))
	for i, g := range games {
		at, ok := ParseStartDate(g.StartDate)
		items[i] = datedGame{game: g, at: at, ok: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.ok || !b.ok {
			return a.game.Week < b.game.Week
		}
		return a.at.Before(b.at)
	})

	for i := range items {
		games[i] = items[i].game
	}
}
