package worker

import (
	"context"

	"github.com/vytor/gridstats/internal/models"
)

// SeasonSyncer refreshes a stored player season.
// This avoids import cycles by not importing the services package
type SeasonSyncer interface {
	Sync(ctx context.Context, playerID int64, year int, statKind string) (*models.SyncResult, error)
}
