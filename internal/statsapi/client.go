package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/models"
)

// Client reads games and stat records from the stats data service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Default().WithPrefix("statsapi"),
	}
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("stats api status %d: %s", e.StatusCode, e.Body)
}

func (c *Client) FetchPlayerGames(ctx context.Context, year int, playerID int64) ([]models.Game, error) {
	path := fmt.Sprintf("/api/player_games/%d/%d", year, playerID)

	var games []models.Game
	if err := c.getJSON(ctx, path, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// FetchWeeklyStats returns the single stat record for one week. found is
// false when the service has no record for that game.
func (c *Client) FetchWeeklyStats(ctx context.Context, kind string, playerID int64, year, week int, seasonType models.SeasonType) (models.StatLine, bool, error) {
	path := fmt.Sprintf("/api/player_%s_weekly_all/%d/%d/%d/%s",
		url.PathEscape(kind), playerID, year, week, url.PathEscape(string(seasonType)))

	var records []models.StatLine
	if err := c.getJSON(ctx, path, &records); err != nil {
		return nil, false, err
	}
	if len(records) == 0 || records[0] == nil {
		return nil, false, nil
	}
	return records[0], true, nil
}

func (c *Client) FetchPercentiles(ctx context.Context, kind string, playerID int64, year int) (models.StatLine, error) {
	path := fmt.Sprintf("/api/player_percentiles_%s/%d/%d", url.PathEscape(kind), playerID, year)

	var record models.StatLine
	if err := c.getJSON(ctx, path, &record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) FetchReceivingDepth(ctx context.Context, playerID int64, year int) (models.StatLine, error) {
	path := fmt.Sprintf("/api/player_receiving_season_depth/%d/%d", playerID, year)

	var record models.StatLine
	if err := c.getJSON(ctx, path, &record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	log := logger.FromContext(ctx).WithPrefix("statsapi").WithField("path", path)
	endpoint := c.baseURL + path

	log.Debug("fetching %s", endpoint)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed: %v", err)
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Warn("request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("failed to decode response: %v", err)
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
