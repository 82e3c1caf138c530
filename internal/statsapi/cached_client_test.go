package statsapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/gridstats/internal/cache"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/statsapi"
	"github.com/vytor/gridstats/internal/testutil/mocks"
)

func TestCachedClient_MissThenStore(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.MockStatsClient)
	c := new(mocks.MockCache)

	games := []models.Game{{ID: 1, Week: 1, SeasonType: models.SeasonRegular}}
	c.On("Get", ctx, "games:7:2023", mock.Anything).Return(false, nil).Once()
	next.On("FetchPlayerGames", ctx, 2023, int64(7)).Return(games, nil).Once()
	c.On("Set", ctx, "games:7:2023", games, 10*time.Minute).Return(nil).Once()

	client := statsapi.NewCachedClient(next, c, 10*time.Minute)
	got, err := client.FetchPlayerGames(ctx, 2023, 7)
	require.NoError(t, err)
	assert.Equal(t, games, got)

	next.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestCachedClient_HitSkipsUpstream(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.MockStatsClient)
	c := new(mocks.MockCache)

	c.On("Get", ctx, "percentiles:passing:7:2023", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*models.StatLine)
			*dest = models.StatLine{"grades_pass": 88}
		}).
		Return(true, nil).Once()

	client := statsapi.NewCachedClient(next, c, time.Minute)
	got, err := client.FetchPercentiles(ctx, "passing", 7, 2023)
	require.NoError(t, err)
	assert.Equal(t, 88.0, got["grades_pass"])

	next.AssertNotCalled(t, "FetchPercentiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedClient_CacheErrorsAreBypassed(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.MockStatsClient)
	c := new(mocks.MockCache)

	c.On("Get", ctx, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	c.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	next.On("FetchReceivingDepth", ctx, int64(7), 2023).Return(models.StatLine{"deep_yards": 100}, nil).Once()

	client := statsapi.NewCachedClient(next, c, time.Minute)
	got, err := client.FetchReceivingDepth(ctx, 7, 2023)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got["deep_yards"])
}

func TestCachedClient_UpstreamErrorNotCached(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.MockStatsClient)
	c := new(mocks.MockCache)

	c.On("Get", ctx, mock.Anything, mock.Anything).Return(false, nil)
	next.On("FetchWeeklyStats", ctx, "rushing", int64(7), 2023, 2, models.SeasonRegular).
		Return(nil, false, errors.New("boom")).Once()

	client := statsapi.NewCachedClient(next, c, time.Minute)
	_, _, err := client.FetchWeeklyStats(ctx, "rushing", 7, 2023, 2, models.SeasonRegular)
	assert.Error(t, err)
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedClient_RemembersMissingWeeklyRecord(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.MockStatsClient)
	mem := newMemoryCache()

	next.On("FetchWeeklyStats", ctx, "rushing", int64(7), 2023, 5, models.SeasonRegular).
		Return(nil, false, nil).Once()

	client := statsapi.NewCachedClient(next, mem, time.Minute)
	for i := 0; i < 2; i++ {
		line, found, err := client.FetchWeeklyStats(ctx, "rushing", 7, 2023, 5, models.SeasonRegular)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, line)
	}
	next.AssertExpectations(t)
}

func TestCachedClient_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := new(mocks.MockCache)
	c.On("Delete", ctx, []string{"games:7:2023"}).Return(nil).Once()

	client := statsapi.NewCachedClient(new(mocks.MockStatsClient), c, time.Minute)
	require.NoError(t, client.Invalidate(ctx, 7, 2023))
	c.AssertExpectations(t)
}

func TestNewCachedClient_NilCacheUsesNop(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.MockStatsClient)
	next.On("FetchPlayerGames", ctx, 2023, int64(7)).Return([]models.Game{}, nil).Twice()

	client := statsapi.NewCachedClient(next, nil, time.Minute)
	_, err := client.FetchPlayerGames(ctx, 2023, 7)
	require.NoError(t, err)
	_, err = client.FetchPlayerGames(ctx, 2023, 7)
	require.NoError(t, err)
	next.AssertExpectations(t)
}

// memoryCache round-trips values through JSON like the Redis cache does.
type memoryCache struct {
	cache.Nop
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	return nil
}
