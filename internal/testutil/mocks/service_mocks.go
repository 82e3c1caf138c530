package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/services"
)

// MockSeasonService is a mock implementation of services.SeasonService
type MockSeasonService struct {
	mock.Mock
}

func (m *MockSeasonService) Load(ctx context.Context, playerID int64, year int, statKind string) (*services.Season, error) {
	args := m.Called(ctx, playerID, year, statKind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Season), args.Error(1)
}

func (m *MockSeasonService) Sync(ctx context.Context, playerID int64, year int, statKind string) (*models.SyncResult, error) {
	args := m.Called(ctx, playerID, year, statKind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SyncResult), args.Error(1)
}

func (m *MockSeasonService) Delete(ctx context.Context, playerID int64, year int) error {
	args := m.Called(ctx, playerID, year)
	return args.Error(0)
}

// MockTrendService is a mock implementation of services.TrendService
type MockTrendService struct {
	mock.Mock
}

func (m *MockTrendService) PlayerTrends(ctx context.Context, playerID int64, year int, positionCode string) (*services.PlayerTrends, error) {
	args := m.Called(ctx, playerID, year, positionCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PlayerTrends), args.Error(1)
}

// MockDashboardService is a mock implementation of services.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GameLog(ctx context.Context, req services.PlayerRequest) (*services.GameLog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.GameLog), args.Error(1)
}

func (m *MockDashboardService) Build(ctx context.Context, req services.PlayerRequest) (*services.Dashboard, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Dashboard), args.Error(1)
}
