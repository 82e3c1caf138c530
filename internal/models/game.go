package models

import (
	"fmt"
	"time"
)

// SeasonType distinguishes regular season games from postseason games.
type SeasonType string

const (
	SeasonRegular    SeasonType = "regular"
	SeasonPostseason SeasonType = "postseason"
)

// Valid reports whether t is a known season type.
func (t SeasonType) Valid() bool {
	return t == SeasonRegular || t == SeasonPostseason
}

// GameKey joins a game to its weekly grade record: "{week}_{seasonType}".
type GameKey string

// NewGameKey builds the identity key for a week and season type.
func NewGameKey(week int, seasonType SeasonType) GameKey {
	return GameKey(fmt.Sprintf("%d_%s", week, seasonType))
}

// Game is one scheduled or played contest as returned by the stats service.
type Game struct {
	ID         int64      `json:"id"`
	Week       int        `json:"week"`
	SeasonType SeasonType `json:"seasonType"`
	StartDate  string     `json:"startDate"`
	HomeTeam   string     `json:"homeTeam"`
	AwayTeam   string     `json:"awayTeam"`
	HomePoints *int       `json:"homePoints"`
	AwayPoints *int       `json:"awayPoints"`
	Status     string     `json:"status"`
}

// Key returns the game's identity key.
func (g Game) Key() GameKey {
	return NewGameKey(g.Week, g.SeasonType)
}

// StoredGame is a game persisted for a player's season.
type StoredGame struct {
	Game
	PlayerID  int64     `json:"player_id"`
	Year      int       `json:"year"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GameFilter struct {
	PlayerID   int64
	Year       int
	SeasonType SeasonType
}
