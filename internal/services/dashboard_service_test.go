package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/gridstats/internal/errors"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/plan"
	"github.com/vytor/gridstats/internal/services"
	"github.com/vytor/gridstats/internal/testutil/mocks"
	"github.com/vytor/gridstats/internal/trend"
	"github.com/vytor/gridstats/internal/viewport"
)

// stubSeasons serves a fixed season or error.
type stubSeasons struct {
	season *services.Season
	err    error
	kinds  []string
}

func (s *stubSeasons) Load(_ context.Context, playerID int64, year int, statKind string) (*services.Season, error) {
	s.kinds = append(s.kinds, statKind)
	if s.err != nil {
		return nil, s.err
	}
	return s.season, nil
}

func (s *stubSeasons) Sync(context.Context, int64, int, string) (*models.SyncResult, error) {
	return &models.SyncResult{}, nil
}

func (s *stubSeasons) Delete(context.Context, int64, int) error { return nil }

func receivingSeason() *services.Season {
	games := scheduledGames()[:3]
	return &services.Season{
		PlayerID: playerID,
		Year:     year,
		StatKind: "receiving",
		Games:    games,
		Grades: models.GradeBook{
			games[0].Key(): {"yprr": 1.0, "grades_pass_route": 60, "yards": 40},
			games[1].Key(): {"yprr": 2.0, "grades_pass_route": 55, "yards": 80},
			games[2].Key(): {"yprr": 3.0, "grades_pass_route": 50, "yards": 120},
		},
	}
}

func TestTrendService_PlayerTrends(t *testing.T) {
	seasons := &stubSeasons{season: receivingSeason()}
	svc := services.NewTrendService(seasons, trend.Aggregator{})

	result, err := svc.PlayerTrends(context.Background(), playerID, year, "wr")
	require.NoError(t, err)

	assert.Equal(t, "WR", result.Position)
	assert.Equal(t, []string{"receiving"}, seasons.kinds)
	require.Len(t, result.TrendUp, 1)
	assert.Equal(t, "yprr", result.TrendUp[0].Key)
	require.Len(t, result.TrendDown, 1)
	assert.Equal(t, "grades_pass_route", result.TrendDown[0].Key)
}

func TestTrendService_UnknownPosition(t *testing.T) {
	svc := services.NewTrendService(&stubSeasons{}, trend.Aggregator{})

	for _, code := range []string{"", "K"} {
		_, err := svc.PlayerTrends(context.Background(), playerID, year, code)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeValidation, apperrors.AsAppError(err).Code)
	}
}

func TestTrendService_PropagatesSeasonErrors(t *testing.T) {
	svc := services.NewTrendService(&stubSeasons{err: apperrors.NewNotFoundError("player season", "1/2023")}, trend.Aggregator{})

	_, err := svc.PlayerTrends(context.Background(), playerID, year, "QB")
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.AsAppError(err).Code)
}

func TestDashboardService_GameLogUsesViewport(t *testing.T) {
	svc := services.NewDashboardService(&stubSeasons{season: receivingSeason()}, new(mocks.MockStatsClient), trend.Aggregator{})

	wide, err := svc.GameLog(context.Background(), services.PlayerRequest{
		PlayerID: playerID, Year: year, Position: "WR", Team: "Georgia", Viewport: viewport.Viewport{Width: 1280},
	})
	require.NoError(t, err)

	narrow, err := svc.GameLog(context.Background(), services.PlayerRequest{
		PlayerID: playerID, Year: year, Position: "WR", Team: "Georgia", Viewport: viewport.Viewport{Width: 390},
	})
	require.NoError(t, err)

	assert.False(t, wide.Compact)
	assert.True(t, narrow.Compact)
	assert.Greater(t, len(wide.Columns), len(narrow.Columns))
	require.Len(t, wide.Rows, 3)
	assert.Equal(t, "UT Martin", wide.Rows[0].Opponent.Team)
	assert.Equal(t, "W", wide.Rows[0].Opponent.Result)
}

func TestDashboardService_BuildPaidPlan(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.MockStatsClient)
	client.On("FetchPercentiles", ctx, "receiving", playerID, year).
		Return(models.StatLine{"yprr": 91, "grades_offense": 80, "zz_custom_stat": 12}, nil).Once()
	client.On("FetchReceivingDepth", ctx, playerID, year).
		Return(models.StatLine{"deep_yards": 300, "short_yards": 200, "short_targets": 25, "player_id": 4242}, nil).Once()

	svc := services.NewDashboardService(&stubSeasons{season: receivingSeason()}, client, trend.Aggregator{})
	dash, err := svc.Build(ctx, services.PlayerRequest{
		PlayerID: playerID, Year: year, Position: "WR", Team: "Georgia", Plan: plan.Pro,
	})
	require.NoError(t, err)

	assert.True(t, dash.Trends.Available)
	assert.NotEmpty(t, dash.Trends.TrendUp)
	assert.True(t, dash.GameLog.Available)
	assert.Len(t, dash.GameLog.Rows, 3)

	require.True(t, dash.Percentiles.Available)
	require.Len(t, dash.Percentiles.Metrics, 3)
	assert.Equal(t, "Offense Grade", dash.Percentiles.Metrics[0].Label)
	assert.Equal(t, "Yards / Route Run", dash.Percentiles.Metrics[1].Label)
	assert.Equal(t, "Zz Custom Stat", dash.Percentiles.Metrics[2].Label)

	require.NotNil(t, dash.DepthZones)
	require.True(t, dash.DepthZones.Available)
	require.Len(t, dash.DepthZones.Zones, 2)
	assert.Equal(t, "short", dash.DepthZones.Zones[0].Zone)
	assert.Equal(t, "deep", dash.DepthZones.Zones[1].Zone)

	client.AssertExpectations(t)
}

func TestDashboardService_BuildFreePlanLocksPaidWidgets(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.MockStatsClient)
	client.On("FetchReceivingDepth", ctx, playerID, year).Return(models.StatLine{"deep_yards": 300}, nil).Once()

	svc := services.NewDashboardService(&stubSeasons{season: receivingSeason()}, client, trend.Aggregator{})
	dash, err := svc.Build(ctx, services.PlayerRequest{PlayerID: playerID, Year: year, Position: "TE", Plan: plan.Free})
	require.NoError(t, err)

	assert.True(t, dash.Trends.Locked)
	assert.False(t, dash.Trends.Available)
	assert.Empty(t, dash.Trends.TrendUp)
	assert.True(t, dash.Percentiles.Locked)
	assert.True(t, dash.GameLog.Available)
	require.NotNil(t, dash.DepthZones)
	assert.True(t, dash.DepthZones.Available)

	client.AssertNotCalled(t, "FetchPercentiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardService_BuildDegradesPerWidget(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.MockStatsClient)
	client.On("FetchPercentiles", ctx, "passing", playerID, year).Return(nil, errors.New("upstream down")).Once()

	svc := services.NewDashboardService(&stubSeasons{err: errors.New("db locked")}, client, trend.Aggregator{})
	dash, err := svc.Build(ctx, services.PlayerRequest{PlayerID: playerID, Year: year, Position: "QB", Plan: plan.Premium})
	require.NoError(t, err)

	assert.False(t, dash.Trends.Available)
	assert.Equal(t, "No data available", dash.Trends.Message)
	assert.NotNil(t, dash.Trends.TrendUp)
	assert.False(t, dash.GameLog.Available)
	assert.NotNil(t, dash.GameLog.Rows)
	assert.False(t, dash.Percentiles.Available)
	assert.Nil(t, dash.DepthZones, "quarterbacks have no depth zone widget")
}

func TestDashboardService_BuildValidation(t *testing.T) {
	svc := services.NewDashboardService(&stubSeasons{}, new(mocks.MockStatsClient), trend.Aggregator{})

	_, err := svc.Build(context.Background(), services.PlayerRequest{PlayerID: playerID, Year: year, Position: "XX"})
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.AsAppError(err).Code)

	_, err = svc.Build(context.Background(), services.PlayerRequest{PlayerID: 0, Year: year, Position: "WR"})
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.AsAppError(err).Code)
}

func TestGroupDepthZones(t *testing.T) {
	zones := services.GroupDepthZones(models.StatLine{
		"behind_los_targets": 4,
		"deep_yards":         300,
		"deep_catch_rate":    40,
		"medium_targets":     10,
		"short_":             1,
		"total_yards":        900,
	})

	require.Len(t, zones, 3)
	assert.Equal(t, "behind_los", zones[0].Zone)
	assert.Equal(t, "Behind LOS", zones[0].Label)
	assert.Equal(t, "medium", zones[1].Zone)
	assert.Equal(t, "deep", zones[2].Zone)
	require.Len(t, zones[2].Metrics, 2)
	assert.Equal(t, "catch_rate", zones[2].Metrics[0].Key)
	assert.Equal(t, "Catch Rate", zones[2].Metrics[0].Label)
	assert.Equal(t, 300.0, zones[2].Metrics[1].Value)

	assert.Empty(t, services.GroupDepthZones(nil))
}
