package statsapi

import (
	"context"
	"fmt"
	"time"

	"github.com/vytor/gridstats/internal/cache"
	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/models"
)

// CachedClient wraps a ClientInterface with read-through caching. Cache
// errors are logged and never fail a request.
type CachedClient struct {
	next  ClientInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedClient(next ClientInterface, c cache.Cache, ttl time.Duration) *CachedClient {
	if c == nil {
		c = cache.Nop{}
	}
	return &CachedClient{next: next, cache: c, ttl: ttl}
}

// weeklyEntry distinguishes a cached "no record" from a cache miss.
type weeklyEntry struct {
	Found bool            `json:"found"`
	Stats models.StatLine `json:"stats"`
}

func (c *CachedClient) FetchPlayerGames(ctx context.Context, year int, playerID int64) ([]models.Game, error) {
	key := fmt.Sprintf("games:%d:%d", playerID, year)

	var games []models.Game
	if c.lookup(ctx, key, &games) {
		return games, nil
	}
	games, err := c.next.FetchPlayerGames(ctx, year, playerID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, games)
	return games, nil
}

func (c *CachedClient) FetchWeeklyStats(ctx context.Context, kind string, playerID int64, year, week int, seasonType models.SeasonType) (models.StatLine, bool, error) {
	key := fmt.Sprintf("weekly:%s:%d:%d:%d:%s", kind, playerID, year, week, seasonType)

	var entry weeklyEntry
	if c.lookup(ctx, key, &entry) {
		return entry.Stats, entry.Found, nil
	}
	stats, found, err := c.next.FetchWeeklyStats(ctx, kind, playerID, year, week, seasonType)
	if err != nil {
		return nil, false, err
	}
	c.store(ctx, key, weeklyEntry{Found: found, Stats: stats})
	return stats, found, nil
}

func (c *CachedClient) FetchPercentiles(ctx context.Context, kind string, playerID int64, year int) (models.StatLine, error) {
	key := fmt.Sprintf("percentiles:%s:%d:%d", kind, playerID, year)

	var record models.StatLine
	if c.lookup(ctx, key, &record) {
		return record, nil
	}
	record, err := c.next.FetchPercentiles(ctx, kind, playerID, year)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, record)
	return record, nil
}

func (c *CachedClient) FetchReceivingDepth(ctx context.Context, playerID int64, year int) (models.StatLine, error) {
	key := fmt.Sprintf("depth:%d:%d", playerID, year)

	var record models.StatLine
	if c.lookup(ctx, key, &record) {
		return record, nil
	}
	record, err := c.next.FetchReceivingDepth(ctx, playerID, year)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, record)
	return record, nil
}

// Invalidate drops the cached games list for a player season.
func (c *CachedClient) Invalidate(ctx context.Context, playerID int64, year int) error {
	return c.cache.Delete(ctx, fmt.Sprintf("games:%d:%d", playerID, year))
}

func (c *CachedClient) lookup(ctx context.Context, key string, dest any) bool {
	found, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("statsapi").Warn("cache get %s failed: %v", key, err)
		return false
	}
	if found {
		logger.FromContext(ctx).WithPrefix("statsapi").Debug("cache hit: %s", key)
	}
	return found
}

func (c *CachedClient) store(ctx context.Context, key string, value any) {
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		logger.FromContext(ctx).WithPrefix("statsapi").Warn("cache set %s failed: %v", key, err)
	}
}
