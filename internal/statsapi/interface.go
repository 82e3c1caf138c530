package statsapi

import (
	"context"

	"github.com/vytor/gridstats/internal/models"
)

// ClientInterface defines the stats data service operations.
type ClientInterface interface {
	FetchPlayerGames(ctx context.Context, year int, playerID int64) ([]models.Game, error)
	FetchWeeklyStats(ctx context.Context, kind string, playerID int64, year, week int, seasonType models.SeasonType) (models.StatLine, bool, error)
	FetchPercentiles(ctx context.Context, kind string, playerID int64, year int) (models.StatLine, error)
	FetchReceivingDepth(ctx context.Context, playerID int64, year int) (models.StatLine, error)
}

var (
	_ ClientInterface = (*Client)(nil)
	_ ClientInterface = (*CachedClient)(nil)
)
