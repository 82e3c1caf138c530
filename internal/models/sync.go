package models

import "time"

// SeasonSync records when a player's season was last pulled from the stats service.
type SeasonSync struct {
	PlayerID     int64     `json:"player_id"`
	Year         int       `json:"year"`
	StatKind     string    `json:"stat_kind"`
	GamesCount   int       `json:"games_count"`
	GradesCount  int       `json:"grades_count"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}

// SyncResult summarizes a completed season sync.
type SyncResult struct {
	PlayerID int64 `json:"player_id"`
	Year     int   `json:"year"`
	Games    int   `json:"games"`
	Grades   int   `json:"grades"`
	Failed   int   `json:"failed"`
}
