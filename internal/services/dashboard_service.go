package services

import (
	"context"
	"sort"
	"strings"

	"github.com/vytor/gridstats/internal/gamelog"
	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/plan"
	"github.com/vytor/gridstats/internal/position"
	"github.com/vytor/gridstats/internal/statsapi"
	"github.com/vytor/gridstats/internal/trend"
	"github.com/vytor/gridstats/internal/viewport"
	"golang.org/x/sync/errgroup"
)

const (
	noDataMessage = "No data available"
	lockedMessage = "Upgrade your plan to unlock"
)

// PlayerRequest identifies the player season being viewed and how.
type PlayerRequest struct {
	PlayerID int64
	Year     int
	Position string
	Team     string
	Viewport viewport.Viewport
	Plan     plan.Plan
}

// WidgetStatus is shared by every dashboard widget. Locked widgets are
// returned without data rather than omitted.
type WidgetStatus struct {
	Available bool   `json:"available"`
	Locked    bool   `json:"locked"`
	Message   string `json:"message,omitempty"`
}

type TrendsWidget struct {
	WidgetStatus
	models.TrendResult
}

type GameLog struct {
	PlayerID int64           `json:"player_id"`
	Year     int             `json:"year"`
	Position string          `json:"position"`
	Compact  bool            `json:"compact"`
	Columns  trend.MetricSet `json:"columns"`
	Rows     []gamelog.Row   `json:"rows"`
}

type GameLogWidget struct {
	WidgetStatus
	Columns trend.MetricSet `json:"columns"`
	Rows    []gamelog.Row   `json:"rows"`
}

// LabeledValue is a single named number shown in a widget.
type LabeledValue struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type PercentilesWidget struct {
	WidgetStatus
	Metrics []LabeledValue `json:"metrics"`
}

// DepthZone groups receiving metrics by how far downfield the target was.
type DepthZone struct {
	Zone    string         `json:"zone"`
	Label   string         `json:"label"`
	Metrics []LabeledValue `json:"metrics"`
}

type DepthWidget struct {
	WidgetStatus
	Zones []DepthZone `json:"zones"`
}

type Dashboard struct {
	PlayerID    int64             `json:"player_id"`
	Year        int               `json:"year"`
	Position    string            `json:"position"`
	Plan        plan.Plan         `json:"plan"`
	Compact     bool              `json:"compact"`
	Trends      TrendsWidget      `json:"trends"`
	GameLog     GameLogWidget     `json:"game_log"`
	Percentiles PercentilesWidget `json:"percentiles"`
	DepthZones  *DepthWidget      `json:"depth_zones,omitempty"`
}

var depthZones = []struct {
	prefix string
	label  string
}{
	{prefix: "behind_los", label: "Behind LOS"},
	{prefix: "short", label: "Short (0-9 yds)"},
	{prefix: "medium", label: "Medium (10-19 yds)"},
	{prefix: "deep", label: "Deep (20+ yds)"},
}

// DashboardService assembles the player dashboard widgets
type DashboardService interface {
	GameLog(ctx context.Context, req PlayerRequest) (*GameLog, error)
	// Build only fails for invalid requests. Widgets that cannot be filled
	// are returned as unavailable.
	Build(ctx context.Context, req PlayerRequest) (*Dashboard, error)
}

type dashboardService struct {
	seasons    SeasonService
	client     statsapi.ClientInterface
	aggregator trend.Aggregator
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(seasons SeasonService, client statsapi.ClientInterface, aggregator trend.Aggregator) DashboardService {
	return &dashboardService{seasons: seasons, client: client, aggregator: aggregator}
}

func (s *dashboardService) GameLog(ctx context.Context, req PlayerRequest) (*GameLog, error) {
	log := logger.FromContext(ctx)
	log.Debug("building game log: player_id=%d, year=%d, position=%s", req.PlayerID, req.Year, req.Position)

	profile, err := lookupProfile(req.Position)
	if err != nil {
		return nil, err
	}

	season, err := s.seasons.Load(ctx, req.PlayerID, req.Year, profile.StatKind)
	if err != nil {
		return nil, err
	}

	compact := req.Viewport.Compact()
	columns := profile.ColumnsFor(compact)
	return &GameLog{
		PlayerID: req.PlayerID,
		Year:     req.Year,
		Position: profile.Code,
		Compact:  compact,
		Columns:  columns,
		Rows:     gamelog.Build(season.Games, season.Grades, req.Team, columns),
	}, nil
}

func (s *dashboardService) Build(ctx context.Context, req PlayerRequest) (*Dashboard, error) {
	log := logger.FromContext(ctx).WithPrefix("dashboard")
	log.Debug("building dashboard: player_id=%d, year=%d, position=%s, plan=%s", req.PlayerID, req.Year, req.Position, req.Plan)

	profile, err := lookupProfile(req.Position)
	if err != nil {
		return nil, err
	}
	if err := validateSeason(req.PlayerID, req.Year); err != nil {
		return nil, err
	}

	compact := req.Viewport.Compact()
	dash := &Dashboard{
		PlayerID: req.PlayerID,
		Year:     req.Year,
		Position: profile.Code,
		Plan:     req.Plan,
		Compact:  compact,
	}

	var g errgroup.Group

	g.Go(func() error {
		season, err := s.seasons.Load(ctx, req.PlayerID, req.Year, profile.StatKind)
		if err != nil {
			log.Warn("season unavailable: %v", err)
			dash.Trends = TrendsWidget{WidgetStatus: unavailable(), TrendResult: emptyTrends()}
			dash.GameLog = GameLogWidget{WidgetStatus: unavailable(), Columns: profile.ColumnsFor(compact), Rows: []gamelog.Row{}}
			if !plan.Allows(req.Plan, plan.FeatureTrends) {
				dash.Trends.WidgetStatus = locked()
			}
			return nil
		}
		dash.Trends = s.trendsWidget(season, profile, req.Plan)
		dash.GameLog = gameLogWidget(season, profile, req.Team, compact)
		return nil
	})

	g.Go(func() error {
		dash.Percentiles = s.percentilesWidget(ctx, log, profile, req)
		return nil
	})

	if profile.ReceivingDepth {
		g.Go(func() error {
			dash.DepthZones = s.depthWidget(ctx, log, req)
			return nil
		})
	}

	_ = g.Wait()
	return dash, nil
}

func (s *dashboardService) trendsWidget(season *Season, profile position.Profile, p plan.Plan) TrendsWidget {
	if !plan.Allows(p, plan.FeatureTrends) {
		return TrendsWidget{WidgetStatus: locked(), TrendResult: emptyTrends()}
	}
	result := s.aggregator.Compute(season.Games, season.Grades, profile.TrendMetrics)
	if len(result.TrendUp) == 0 && len(result.TrendDown) == 0 {
		return TrendsWidget{WidgetStatus: unavailable(), TrendResult: result}
	}
	return TrendsWidget{WidgetStatus: WidgetStatus{Available: true}, TrendResult: result}
}

func gameLogWidget(season *Season, profile position.Profile, team string, compact bool) GameLogWidget {
	columns := profile.ColumnsFor(compact)
	rows := gamelog.Build(season.Games, season.Grades, team, columns)
	if len(rows) == 0 {
		return GameLogWidget{WidgetStatus: unavailable(), Columns: columns, Rows: rows}
	}
	return GameLogWidget{WidgetStatus: WidgetStatus{Available: true}, Columns: columns, Rows: rows}
}

func (s *dashboardService) percentilesWidget(ctx context.Context, log *logger.Logger, profile position.Profile, req PlayerRequest) PercentilesWidget {
	if !plan.Allows(req.Plan, plan.FeaturePercentiles) {
		return PercentilesWidget{WidgetStatus: locked(), Metrics: []LabeledValue{}}
	}

	line, err := s.client.FetchPercentiles(ctx, profile.PercentileKind, req.PlayerID, req.Year)
	if err != nil {
		log.Warn("percentiles unavailable: %v", err)
		return PercentilesWidget{WidgetStatus: unavailable(), Metrics: []LabeledValue{}}
	}

	metrics := labelPercentiles(line, profile)
	if len(metrics) == 0 {
		return PercentilesWidget{WidgetStatus: unavailable(), Metrics: metrics}
	}
	return PercentilesWidget{WidgetStatus: WidgetStatus{Available: true}, Metrics: metrics}
}

func (s *dashboardService) depthWidget(ctx context.Context, log *logger.Logger, req PlayerRequest) *DepthWidget {
	if !plan.Allows(req.Plan, plan.FeatureDepthZones) {
		return &DepthWidget{WidgetStatus: locked(), Zones: []DepthZone{}}
	}

	line, err := s.client.FetchReceivingDepth(ctx, req.PlayerID, req.Year)
	if err != nil {
		log.Warn("depth zones unavailable: %v", err)
		return &DepthWidget{WidgetStatus: unavailable(), Zones: []DepthZone{}}
	}

	zones := GroupDepthZones(line)
	if len(zones) == 0 {
		return &DepthWidget{WidgetStatus: unavailable(), Zones: zones}
	}
	return &DepthWidget{WidgetStatus: WidgetStatus{Available: true}, Zones: zones}
}

// labelPercentiles orders known metrics as the position lists them, then any
// remaining keys alphabetically.
func labelPercentiles(line models.StatLine, profile position.Profile) []LabeledValue {
	out := make([]LabeledValue, 0, len(line))
	seen := make(map[string]bool, len(line))

	for _, set := range []trend.MetricSet{profile.TrendMetrics, profile.Columns} {
		for _, m := range set {
			if seen[m.Key] {
				continue
			}
			if v, ok := line.Value(m.Key); ok {
				seen[m.Key] = true
				out = append(out, LabeledValue{Key: m.Key, Label: m.Label, Value: v})
			}
		}
	}

	rest := make([]string, 0, len(line))
	for k := range line {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		out = append(out, LabeledValue{Key: k, Label: humanize(k), Value: line[k]})
	}
	return out
}

// GroupDepthZones splits a season depth record into zones by key prefix,
// e.g. "deep_yards" lands in the deep zone as "yards". Keys without a zone
// prefix are ignored and empty zones are left out.
func GroupDepthZones(line models.StatLine) []DepthZone {
	zones := make([]DepthZone, 0, len(depthZones))
	for _, z := range depthZones {
		prefix := z.prefix + "_"

		keys := make([]string, 0)
		for k := range line {
			if strings.HasPrefix(k, prefix) && len(k) > len(prefix) {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			continue
		}
		sort.Strings(keys)

		zone := DepthZone{Zone: z.prefix, Label: z.label, Metrics: make([]LabeledValue, 0, len(keys))}
		for _, k := range keys {
			metric := strings.TrimPrefix(k, prefix)
			zone.Metrics = append(zone.Metrics, LabeledValue{Key: metric, Label: humanize(metric), Value: line[k]})
		}
		zones = append(zones, zone)
	}
	return zones
}

func humanize(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func unavailable() WidgetStatus {
	return WidgetStatus{Message: noDataMessage}
}

func locked() WidgetStatus {
	return WidgetStatus{Locked: true, Message: lockedMessage}
}

func emptyTrends() models.TrendResult {
	return models.TrendResult{TrendUp: []models.TrendEntry{}, TrendDown: []models.TrendEntry{}}
}
