package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/gridstats/internal/models"
)

// MockStatsClient is a mock implementation of statsapi.ClientInterface
type MockStatsClient struct {
	mock.Mock
}

func (m *MockStatsClient) FetchPlayerGames(ctx context.Context, year int, playerID int64) ([]models.Game, error) {
	args := m.Called(ctx, year, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockStatsClient) FetchWeeklyStats(ctx context.Context, kind string, playerID int64, year, week int, seasonType models.SeasonType) (models.StatLine, bool, error) {
	args := m.Called(ctx, kind, playerID, year, week, seasonType)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(models.StatLine), args.Bool(1), args.Error(2)
}

func (m *MockStatsClient) FetchPercentiles(ctx context.Context, kind string, playerID int64, year int) (models.StatLine, error) {
	args := m.Called(ctx, kind, playerID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.StatLine), args.Error(1)
}

func (m *MockStatsClient) FetchReceivingDepth(ctx context.Context, playerID int64, year int) (models.StatLine, error) {
	args := m.Called(ctx, playerID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.StatLine), args.Error(1)
}
