package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/repository"
)

type gradeRepository struct {
	db *sql.DB
}

// NewGradeRepository creates a new GradeRepository implementation
func NewGradeRepository(db *sql.DB) repository.GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) UpsertBatch(ctx context.Context, grades []models.WeeklyGrade) error {
	log := logger.FromContext(ctx).WithPrefix("grade_repo")
	log.Debug("upserting %d weekly grades", len(grades))

	if len(grades) == 0 {
		return nil
	}

	now := time.Now().UTC()
	return tx(ctx, r.db, func(tx *sql.Tx) error {
		for _, g := range grades {
			metrics, err := json.Marshal(g.Metrics)
			if err != nil {
				return fmt.Errorf("marshal metrics for %s: %w", g.Key(), err)
			}

			query, args, err := sqlBuilder.Insert("weekly_grades").
				Columns("player_id", "year", "week", "season_type", "stat_kind", "metrics", "updated_at").
				Values(g.PlayerID, g.Year, g.Week, string(g.SeasonType), g.StatKind, string(metrics), now).
				Suffix(`ON CONFLICT(player_id, year, week, season_type, stat_kind) DO UPDATE SET
    metrics = excluded.metrics,
    updated_at = excluded.updated_at`).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				log.Error("failed to upsert grade %s: %v", g.Key(), err)
				return err
			}
		}
		return nil
	})
}

func (r *gradeRepository) GradeBook(ctx context.Context, playerID int64, year int, statKind string) (models.GradeBook, error) {
	log := logger.FromContext(ctx).WithPrefix("grade_repo")
	log.Debug("loading grade book: player_id=%d, year=%d, stat_kind=%s", playerID, year, statKind)

	rows, err := r.db.QueryContext(ctx, `
SELECT week, season_type, metrics
FROM weekly_grades
WHERE player_id = ? AND year = ? AND stat_kind = ?
`, playerID, year, statKind)
	if err != nil {
		log.Error("failed to query weekly grades: %v", err)
		return nil, err
	}
	defer rows.Close()

	book := models.GradeBook{}
	for rows.Next() {
		var (
			week       int
			seasonType string
			raw        string
		)
		if err := rows.Scan(&week, &seasonType, &raw); err != nil {
			log.Error("failed to scan weekly grade row: %v", err)
			return nil, err
		}
		var line models.StatLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			log.Warn("skipping unreadable metrics for week %d %s: %v", week, seasonType, err)
			continue
		}
		book[models.NewGameKey(week, models.SeasonType(seasonType))] = line
	}
	log.Debug("loaded %d weekly grades", len(book))
	return book, rows.Err()
}
