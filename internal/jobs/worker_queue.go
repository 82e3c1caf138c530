package jobs

import (
	stderrors "errors"
	"fmt"

	"github.com/vytor/gridstats/internal/errors"
	"github.com/vytor/gridstats/internal/position"
	"github.com/vytor/gridstats/internal/worker"
)

// Submitter is satisfied by *worker.Pool.
type Submitter interface {
	Submit(job worker.Job) error
}

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	syncPool Submitter
	seasons  worker.SeasonSyncer
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(syncPool Submitter, seasons worker.SeasonSyncer) JobQueue {
	return &WorkerQueue{
		syncPool: syncPool,
		seasons:  seasons,
	}
}

func (q *WorkerQueue) EnqueueSync(playerID int64, year int, code string) error {
	profile, ok := position.Lookup(code)
	if !ok {
		return errors.NewValidationError("position", fmt.Sprintf("unsupported position %q", code))
	}

	err := q.syncPool.Submit(&worker.SyncSeasonJob{
		Seasons:  q.seasons,
		PlayerID: playerID,
		Year:     year,
		StatKind: profile.StatKind,
	})
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, worker.ErrQueueFull), stderrors.Is(err, worker.ErrPoolStopped):
		return errors.NewUnavailableError("sync queue is busy, try again later", err)
	default:
		return errors.NewInternalError(err)
	}
}
