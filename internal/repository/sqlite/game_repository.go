package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new GameRepository implementation
func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) UpsertBatch(ctx context.Context, playerID int64, year int, games []models.Game) error {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("upserting %d games: player_id=%d, year=%d", len(games), playerID, year)

	if len(games) == 0 {
		return nil
	}

	now := time.Now().UTC()
	return tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO games (
    player_id, year, week, season_type, game_id, start_date,
    home_team, away_team, home_points, away_points, status, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(player_id, year, week, season_type) DO UPDATE SET
    game_id = excluded.game_id,
    start_date = excluded.start_date,
    home_team = excluded.home_team,
    away_team = excluded.away_team,
    home_points = excluded.home_points,
    away_points = excluded.away_points,
    status = excluded.status,
    updated_at = excluded.updated_at
`)
		if err != nil {
			log.Error("failed to prepare game upsert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, g := range games {
			if _, err := stmt.ExecContext(ctx,
				playerID, year, g.Week, string(g.SeasonType), g.ID, g.StartDate,
				g.HomeTeam, g.AwayTeam, nullInt(g.HomePoints), nullInt(g.AwayPoints), g.Status, now,
			); err != nil {
				log.Error("failed to upsert game %s: %v", g.Key(), err)
				return err
			}
		}
		return nil
	})
}

func (r *gameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.StoredGame, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("listing games with filter: player_id=%d, year=%d, season_type=%s",
		filter.PlayerID, filter.Year, filter.SeasonType)

	query := applyGameFilter(sqlBuilder.Select(
		"player_id", "year", "week", "season_type", "game_id", "start_date",
		"home_team", "away_team", "home_points", "away_points", "status", "updated_at",
	).From("games"), filter)

	// "regular" > "postseason", so DESC keeps the regular season first.
	query = query.OrderBy("season_type DESC", "week ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, err
	}
	defer rows.Close()

	var games []models.StoredGame
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			log.Error("failed to scan game row: %v", err)
			return nil, err
		}
		games = append(games, g)
	}
	log.Debug("found %d games", len(games))
	return games, rows.Err()
}

func applyGameFilter(query squirrel.SelectBuilder, filter models.GameFilter) squirrel.SelectBuilder {
	if filter.PlayerID != 0 {
		query = query.Where(squirrel.Eq{"player_id": filter.PlayerID})
	}
	if filter.Year != 0 {
		query = query.Where(squirrel.Eq{"year": filter.Year})
	}
	if filter.SeasonType != "" {
		query = query.Where(squirrel.Eq{"season_type": string(filter.SeasonType)})
	}
	return query
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (models.StoredGame, error) {
	var (
		g          models.StoredGame
		seasonType string
		homePoints sql.NullInt64
		awayPoints sql.NullInt64
	)
	err := row.Scan(&g.PlayerID, &g.Year, &g.Week, &seasonType, &g.ID, &g.StartDate,
		&g.HomeTeam, &g.AwayTeam, &homePoints, &awayPoints, &g.Status, &g.UpdatedAt)
	if err != nil {
		return g, err
	}
	g.SeasonType = models.SeasonType(seasonType)
	g.HomePoints = intPtr(homePoints)
	g.AwayPoints = intPtr(awayPoints)
	return g, nil
}
