package repository

import (
	"context"

	"github.com/vytor/gridstats/internal/models"
)

// GameRepository handles game data access
type GameRepository interface {
	UpsertBatch(ctx context.Context, playerID int64, year int, games []models.Game) error
	List(ctx context.Context, filter models.GameFilter) ([]models.StoredGame, error)
}

// GradeRepository handles weekly stat record access
type GradeRepository interface {
	UpsertBatch(ctx context.Context, grades []models.WeeklyGrade) error
	GradeBook(ctx context.Context, playerID int64, year int, statKind string) (models.GradeBook, error)
}

// SyncRepository tracks which player seasons have been pulled locally
type SyncRepository interface {
	// Get returns nil when the season has never been synced for statKind.
	Get(ctx context.Context, playerID int64, year int, statKind string) (*models.SeasonSync, error)
	MarkSynced(ctx context.Context, sync models.SeasonSync) error
	// Delete removes the season's sync records, games and grades.
	Delete(ctx context.Context, playerID int64, year int) error
}
