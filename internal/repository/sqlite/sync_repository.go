package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/repository"
)

type syncRepository struct {
	db *sql.DB
}

// NewSyncRepository creates a new SyncRepository implementation
func NewSyncRepository(db *sql.DB) repository.SyncRepository {
	return &syncRepository{db: db}
}

func (r *syncRepository) Get(ctx context.Context, playerID int64, year int, statKind string) (*models.SeasonSync, error) {
	log := logger.FromContext(ctx).WithPrefix("sync_repo")

	var s models.SeasonSync
	err := r.db.QueryRowContext(ctx, `
SELECT player_id, year, stat_kind, games_count, grades_count, last_synced_at
FROM season_syncs
WHERE player_id = ? AND year = ? AND stat_kind = ?
`, playerID, year, statKind).Scan(&s.PlayerID, &s.Year, &s.StatKind, &s.GamesCount, &s.GradesCount, &s.LastSyncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("season not synced: player_id=%d, year=%d, stat_kind=%s", playerID, year, statKind)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get season sync: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *syncRepository) MarkSynced(ctx context.Context, s models.SeasonSync) error {
	log := logger.FromContext(ctx).WithPrefix("sync_repo")
	log.Debug("marking season synced: player_id=%d, year=%d, stat_kind=%s", s.PlayerID, s.Year, s.StatKind)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO season_syncs (player_id, year, stat_kind, games_count, grades_count, last_synced_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(player_id, year, stat_kind) DO UPDATE SET
    games_count = excluded.games_count,
    grades_count = excluded.grades_count,
    last_synced_at = excluded.last_synced_at
`, s.PlayerID, s.Year, s.StatKind, s.GamesCount, s.GradesCount, s.LastSyncedAt.UTC())
	if err != nil {
		log.Error("failed to mark season synced: %v", err)
	}
	return err
}

func (r *syncRepository) Delete(ctx context.Context, playerID int64, year int) error {
	log := logger.FromContext(ctx).WithPrefix("sync_repo")
	log.Debug("deleting season data: player_id=%d, year=%d", playerID, year)

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		// Grades first in case foreign keys are disabled on this connection.
		if _, err := tx.ExecContext(ctx, `DELETE FROM weekly_grades WHERE player_id = ? AND year = ?`, playerID, year); err != nil {
			log.Error("failed to delete weekly grades: %v", err)
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM games WHERE player_id = ? AND year = ?`, playerID, year); err != nil {
			log.Error("failed to delete games: %v", err)
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM season_syncs WHERE player_id = ? AND year = ?`, playerID, year); err != nil {
			log.Error("failed to delete season syncs: %v", err)
			return err
		}
		return nil
	})
}
