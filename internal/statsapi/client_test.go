package statsapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/gridstats/internal/models"
	"github.com/vytor/gridstats/internal/statsapi"
)

func newServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, "no such route", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPlayerGames(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/api/player_games/2023/4242": `[
			{"id": 1, "week": 1, "seasonType": "regular", "startDate": "2023-09-02T19:30:00.000Z",
			 "homeTeam": "Georgia", "awayTeam": "UT Martin", "homePoints": 48, "awayPoints": 7, "status": "completed"},
			{"id": 2, "week": 2, "seasonType": "regular", "startDate": "2023-09-09T19:30:00.000Z",
			 "homeTeam": "Georgia", "awayTeam": "Ball State", "homePoints": null, "awayPoints": null}
		]`,
	})
	client := statsapi.New(srv.URL+"/", time.Second)

	games, err := client.FetchPlayerGames(context.Background(), 2023, 4242)
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, models.GameKey("1_regular"), games[0].Key())
	assert.Equal(t, "UT Martin", games[0].AwayTeam)
	require.NotNil(t, games[0].HomePoints)
	assert.Equal(t, 48, *games[0].HomePoints)
	assert.Nil(t, games[1].HomePoints)
}

func TestFetchWeeklyStats(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/api/player_receiving_weekly_all/4242/2023/3/regular":    `[{"yprr": 2.4, "grades_pass_route": "81.5", "player": "Someone", "drops": null}]`,
		"/api/player_receiving_weekly_all/4242/2023/4/regular":    `[]`,
		"/api/player_receiving_weekly_all/4242/2023/1/postseason": `[{"yprr": 1.1}, {"yprr": 9.9}]`,
	})
	client := statsapi.New(srv.URL, time.Second)
	ctx := context.Background()

	line, found, err := client.FetchWeeklyStats(ctx, "receiving", 4242, 2023, 3, models.SeasonRegular)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.StatLine{"yprr": 2.4, "grades_pass_route": 81.5}, line)

	line, found, err = client.FetchWeeklyStats(ctx, "receiving", 4242, 2023, 4, models.SeasonRegular)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, line)

	line, found, err = client.FetchWeeklyStats(ctx, "receiving", 4242, 2023, 1, models.SeasonPostseason)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1.1, line["yprr"])
}

func TestFetchPercentilesAndDepth(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/api/player_percentiles_receiving/4242/2023":  `{"yprr": 91, "grades_offense": 78.2}`,
		"/api/player_receiving_season_depth/4242/2023": `{"deep_yards": 412, "short_targets": 30}`,
	})
	client := statsapi.New(srv.URL, time.Second)
	ctx := context.Background()

	pct, err := client.FetchPercentiles(ctx, "receiving", 4242, 2023)
	require.NoError(t, err)
	assert.Equal(t, 91.0, pct["yprr"])

	depth, err := client.FetchReceivingDepth(ctx, 4242, 2023)
	require.NoError(t, err)
	assert.Equal(t, models.StatLine{"deep_yards": 412, "short_targets": 30}, depth)
}

func TestGetJSON_NonOKStatus(t *testing.T) {
	long := strings.Repeat("x", 4096)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(long))
	}))
	defer srv.Close()

	client := statsapi.New(srv.URL, time.Second)
	_, err := client.FetchPlayerGames(context.Background(), 2023, 1)
	require.Error(t, err)

	var statusErr *statsapi.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Len(t, statusErr.Body, 1024)
}

func TestGetJSON_MalformedBody(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/api/player_games/2023/1": `{not json`,
	})
	client := statsapi.New(srv.URL, time.Second)

	_, err := client.FetchPlayerGames(context.Background(), 2023, 1)
	assert.Error(t, err)
}

func TestGetJSON_ContextCancelled(t *testing.T) {
	srv := newServer(t, map[string]string{"/api/player_games/2023/1": `[]`})
	client := statsapi.New(srv.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchPlayerGames(ctx, 2023, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
