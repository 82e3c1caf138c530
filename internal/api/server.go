package api

import (
	"context"
	"time"

	"github.com/vytor/gridstats/internal/jobs"
	"github.com/vytor/gridstats/internal/services"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger is implemented by the shared cache when one is configured.
type CachePinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	DB               Pinger
	Cache            CachePinger
	SeasonService    services.SeasonService
	TrendService     services.TrendService
	DashboardService services.DashboardService
	JobQueue         jobs.JobQueue
	CORSOrigins      []string
	RequestTimeout   time.Duration
}
