package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/gridstats/internal/models"
)

// MockGameRepository is a mock implementation of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) UpsertBatch(ctx context.Context, playerID int64, year int, games []models.Game) error {
	args := m.Called(ctx, playerID, year, games)
	return args.Error(0)
}

func (m *MockGameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.StoredGame, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StoredGame), args.Error(1)
}

// MockGradeRepository is a mock implementation of repository.GradeRepository
type MockGradeRepository struct {
	mock.Mock
}

func (m *MockGradeRepository) UpsertBatch(ctx context.Context, grades []models.WeeklyGrade) error {
	args := m.Called(ctx, grades)
	return args.Error(0)
}

func (m *MockGradeRepository) GradeBook(ctx context.Context, playerID int64, year int, statKind string) (models.GradeBook, error) {
	args := m.Called(ctx, playerID, year, statKind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.GradeBook), args.Error(1)
}

// MockSyncRepository is a mock implementation of repository.SyncRepository
type MockSyncRepository struct {
	mock.Mock
}

func (m *MockSyncRepository) Get(ctx context.Context, playerID int64, year int, statKind string) (*models.SeasonSync, error) {
	args := m.Called(ctx, playerID, year, statKind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeasonSync), args.Error(1)
}

func (m *MockSyncRepository) MarkSynced(ctx context.Context, sync models.SeasonSync) error {
	args := m.Called(ctx, sync)
	return args.Error(0)
}

func (m *MockSyncRepository) Delete(ctx context.Context, playerID int64, year int) error {
	args := m.Called(ctx, playerID, year)
	return args.Error(0)
}
