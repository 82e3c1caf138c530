package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/vytor/gridstats/internal/errors"
	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/repository"
	"github.com/vytor/gridstats/internal/statsapi"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	defaultMaxConcurrentFetch = 6
	defaultSyncTimeout        = 2 * time.Minute
)

// Season is a player's games and the weekly records of one stat kind.
type Season struct {
	PlayerID int64            `json:"player_id"`
	Year     int              `json:"year"`
	StatKind string           `json:"stat_kind"`
	Games    []models.Game    `json:"games"`
	Grades   models.GradeBook `json:"grades"`
	SyncedAt time.Time        `json:"synced_at"`
}

// SeasonService loads player seasons, pulling them from the stats service
// the first time they are requested.
type SeasonService interface {
	Load(ctx context.Context, playerID int64, year int, statKind string) (*Season, error)
	Sync(ctx context.Context, playerID int64, year int, statKind string) (*models.SyncResult, error)
	Delete(ctx context.Context, playerID int64, year int) error
}

// cacheInvalidator is implemented by clients that keep their own cache.
type cacheInvalidator interface {
	Invalidate(ctx context.Context, playerID int64, year int) error
}

type seasonService struct {
	gameRepo      repository.GameRepository
	gradeRepo     repository.GradeRepository
	syncRepo      repository.SyncRepository
	client        statsapi.ClientInterface
	maxConcurrent int
	syncTimeout   time.Duration
	group         singleflight.Group
	now           func() time.Time
}

// NewSeasonService creates a new SeasonService
func NewSeasonService(
	gameRepo repository.GameRepository,
	gradeRepo repository.GradeRepository,
	syncRepo repository.SyncRepository,
	client statsapi.ClientInterface,
	maxConcurrent int,
) SeasonService {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentFetch
	}
	return &seasonService{
		gameRepo:      gameRepo,
		gradeRepo:     gradeRepo,
		syncRepo:      syncRepo,
		client:        client,
		maxConcurrent: maxConcurrent,
		syncTimeout:   defaultSyncTimeout,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *seasonService) Load(ctx context.Context, playerID int64, year int, statKind string) (*Season, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading season: player_id=%d, year=%d, stat_kind=%s", playerID, year, statKind)

	if err := validateSeason(playerID, year); err != nil {
		return nil, err
	}

	synced, err := s.syncRepo.Get(ctx, playerID, year, statKind)
	if err != nil {
		log.Error("failed to get season sync: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if synced == nil {
		log.Info("season not stored yet, fetching live: player_id=%d, year=%d", playerID, year)
		if _, err := s.Sync(ctx, playerID, year, statKind); err != nil {
			return nil, err
		}
		if synced, err = s.syncRepo.Get(ctx, playerID, year, statKind); err != nil {
			log.Error("failed to get season sync: %v", err)
			return nil, errors.NewInternalError(err)
		}
	}

	stored, err := s.gameRepo.List(ctx, models.GameFilter{PlayerID: playerID, Year: year})
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, errors.NewInternalError(err)
	}

	grades, err := s.gradeRepo.GradeBook(ctx, playerID, year, statKind)
	if err != nil {
		log.Error("failed to load grade book: %v", err)
		return nil, errors.NewInternalError(err)
	}

	season := &Season{
		PlayerID: playerID,
		Year:     year,
		StatKind: statKind,
		Games:    make([]models.Game, len(stored)),
		Grades:   grades,
	}
	for i, g := range stored {
		season.Games[i] = g.Game
	}
	if synced != nil {
		season.SyncedAt = synced.LastSyncedAt
	}

	log.Debug("loaded season: %d games, %d grades", len(season.Games), len(season.Grades))
	return season, nil
}

// Sync pulls the season from the stats service and upserts the stored copy.
// Concurrent syncs of the same season share one fetch. The shared fetch is not
// tied to any single caller's context; each caller stops waiting when its own
// context ends.
func (s *seasonService) Sync(ctx context.Context, playerID int64, year int, statKind string) (*models.SyncResult, error) {
	if err := validateSeason(playerID, year); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%d:%d", statKind, playerID, year)
	ch := s.group.DoChan(key, func() (any, error) {
		syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.syncTimeout)
		defer cancel()
		return s.sync(syncCtx, playerID, year, statKind)
	})

	select {
	case <-ctx.Done():
		logger.FromContext(ctx).Warn("stopped waiting for sync %s: %v", key, ctx.Err())
		return nil, errors.NewUnavailableError("season sync cancelled", ctx.Err())
	case res := <-ch:
		if res.Shared {
			logger.FromContext(ctx).Debug("joined in-flight sync: %s", key)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		result := *res.Val.(*models.SyncResult)
		return &result, nil
	}
}

func (s *seasonService) sync(ctx context.Context, playerID int64, year int, statKind string) (*models.SyncResult, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"player_id": playerID,
		"year":      year,
		"stat_kind": statKind,
	})
	log.Info("syncing season")
	start := time.Now()

	if inv, ok := s.client.(cacheInvalidator); ok {
		if err := inv.Invalidate(ctx, playerID, year); err != nil {
			log.Warn("failed to invalidate cached games: %v", err)
		}
	}

	fetched, err := s.client.FetchPlayerGames(ctx, year, playerID)
	if err != nil {
		log.Error("failed to fetch games: %v", err)
		return nil, upstreamError(playerID, year, err)
	}

	games := make([]models.Game, 0, len(fetched))
	for _, g := range fetched {
		if !g.SeasonType.Valid() {
			log.Warn("skipping game %d with unknown season type %q", g.ID, g.SeasonType)
			continue
		}
		games = append(games, g)
	}

	records := make([]*models.WeeklyGrade, len(games))
	var failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for i, game := range games {
		i, game := i, game
		g.Go(func() error {
			line, found, err := s.client.FetchWeeklyStats(gctx, statKind, playerID, year, game.Week, game.SeasonType)
			if err != nil {
				failed.Add(1)
				log.Warn("dropping weekly record for %s: %v", game.Key(), err)
				return nil
			}
			if !found {
				return nil
			}
			records[i] = &models.WeeklyGrade{
				PlayerID:   playerID,
				Year:       year,
				Week:       game.Week,
				SeasonType: game.SeasonType,
				StatKind:   statKind,
				Metrics:    line,
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		log.Warn("sync cancelled: %v", err)
		return nil, errors.NewUnavailableError("season sync cancelled", err)
	}

	grades := make([]models.WeeklyGrade, 0, len(records))
	for _, r := range records {
		if r != nil {
			grades = append(grades, *r)
		}
	}

	if err := s.gameRepo.UpsertBatch(ctx, playerID, year, games); err != nil {
		log.Error("failed to store games: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if err := s.gradeRepo.UpsertBatch(ctx, grades); err != nil {
		log.Error("failed to store weekly grades: %v", err)
		return nil, errors.NewInternalError(err)
	}

	err = s.syncRepo.MarkSynced(ctx, models.SeasonSync{
		PlayerID:     playerID,
		Year:         year,
		StatKind:     statKind,
		GamesCount:   len(games),
		GradesCount:  len(grades),
		LastSyncedAt: s.now(),
	})
	if err != nil {
		log.Error("failed to mark season synced: %v", err)
		return nil, errors.NewInternalError(err)
	}

	result := &models.SyncResult{
		PlayerID: playerID,
		Year:     year,
		Games:    len(games),
		Grades:   len(grades),
		Failed:   int(failed.Load()),
	}
	log.Info("season synced in %v: games=%d, grades=%d, failed=%d", time.Since(start), result.Games, result.Grades, result.Failed)
	return result, nil
}

func (s *seasonService) Delete(ctx context.Context, playerID int64, year int) error {
	log := logger.FromContext(ctx)
	log.Info("deleting stored season: player_id=%d, year=%d", playerID, year)

	if err := validateSeason(playerID, year); err != nil {
		return err
	}

	if err := s.syncRepo.Delete(ctx, playerID, year); err != nil {
		log.Error("failed to delete season: %v", err)
		return errors.NewInternalError(err)
	}

	if inv, ok := s.client.(cacheInvalidator); ok {
		if err := inv.Invalidate(ctx, playerID, year); err != nil {
			log.Warn("failed to invalidate cached games: %v", err)
		}
	}
	return nil
}

func validateSeason(playerID int64, year int) error {
	if playerID <= 0 {
		return errors.NewValidationError("player_id", "must be a positive integer")
	}
	if year < 1869 || year > 9999 {
		return errors.NewValidationError("year", "must be a four digit season year")
	}
	return nil
}

func upstreamError(playerID int64, year int, err error) error {
	var statusErr *statsapi.StatusError
	if stderrors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return errors.NewNotFoundError("player season", fmt.Sprintf("%d/%d", playerID, year))
	}
	return errors.NewUnavailableError("stats service unavailable", err)
}
