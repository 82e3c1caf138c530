package services

import (
	"context"

	"github.com/vytor/gridstats/internal/errors"
	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/position"
	"github.com/vytor/gridstats/internal/trend"
)

// PlayerTrends is the trend result for one player season and position.
type PlayerTrends struct {
	PlayerID int64  `json:"player_id"`
	Year     int    `json:"year"`
	Position string `json:"position"`
	models.TrendResult
}

// TrendService computes improving and declining metrics for a player
type TrendService interface {
	PlayerTrends(ctx context.Context, playerID int64, year int, positionCode string) (*PlayerTrends, error)
}

type trendService struct {
	seasons    SeasonService
	aggregator trend.Aggregator
}

// NewTrendService creates a new TrendService
func NewTrendService(seasons SeasonService, aggregator trend.Aggregator) TrendService {
	return &trendService{seasons: seasons, aggregator: aggregator}
}

func (s *trendService) PlayerTrends(ctx context.Context, playerID int64, year int, positionCode string) (*PlayerTrends, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing trends: player_id=%d, year=%d, position=%s", playerID, year, positionCode)

	profile, err := lookupProfile(positionCode)
	if err != nil {
		return nil, err
	}

	season, err := s.seasons.Load(ctx, playerID, year, profile.StatKind)
	if err != nil {
		return nil, err
	}

	result := s.aggregator.Compute(season.Games, season.Grades, profile.TrendMetrics)
	log.Debug("trends computed: up=%d, down=%d", len(result.TrendUp), len(result.TrendDown))

	return &PlayerTrends{
		PlayerID:    playerID,
		Year:        year,
		Position:    profile.Code,
		TrendResult: result,
	}, nil
}

func lookupProfile(code string) (position.Profile, error) {
	if code == "" {
		return position.Profile{}, errors.NewValidationError("position", "is required")
	}
	profile, ok := position.Lookup(code)
	if !ok {
		return position.Profile{}, errors.NewValidationError("position", "unsupported position "+code)
	}
	return profile, nil
}
