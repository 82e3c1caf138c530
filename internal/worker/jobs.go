package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/vytor/gridstats/internal/logger"
)

// defaultSyncTimeout bounds one background season sync.
const defaultSyncTimeout = 2 * time.Minute

// SyncSeasonJob pulls a player season from the stats service and stores it.
type SyncSeasonJob struct {
	Seasons  SeasonSyncer
	PlayerID int64
	Year     int
	StatKind string
	Timeout  time.Duration
}

func (j *SyncSeasonJob) Name() string {
	return fmt.Sprintf("sync_season:%s:%d:%d", j.StatKind, j.PlayerID, j.Year)
}

func (j *SyncSeasonJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"player_id": j.PlayerID,
		"year":      j.Year,
		"stat_kind": j.StatKind,
	})
	log.Info("starting background season sync")

	timeout := j.Timeout
	if timeout <= 0 {
		timeout = defaultSyncTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := j.Seasons.Sync(logger.NewContext(ctx, log), j.PlayerID, j.Year, j.StatKind)
	if err != nil {
		log.Error("season sync failed: %v", err)
		return err
	}

	log.Info("season sync finished: games=%d, grades=%d, failed=%d", result.Games, result.Grades, result.Failed)
	return nil
}
