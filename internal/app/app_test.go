package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/diamondtrends/internal/config"
	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "players.csv")
	table := "PLAYERNAME,MLBID,TEAM,POS\nAaron Judge,592450,NYY,OF\nSpencer Jones,,NYY,OF\n"
	require.NoError(t, os.WriteFile(path, []byte(table), 0o600))

	return config.Config{
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		PlayerTablePath:    path,
		StatsSeason:        "2025",
		StatsTimezone:      time.UTC,
		MLBAPIBaseURL:      "http://127.0.0.1:1",
		UpstreamTimeout:    time.Second,
		TrendsWindowDays:   20,
		TrendsGamesPerTeam: 10,
		TrendsTopK:         10,
		TrendsWorkers:      2,
	}
}

func TestNewHTTPServer_ResolvesPlayersFromTable(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(t), logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, ":0", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/player/id/aaron%20judge", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "592450")
}

func TestNewHTTPServer_ListsNamesWithoutIDs(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(t), logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"players":["Aaron Judge","Spencer Jones"]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/player/id/Spencer%20Jones", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHTTPServer_MissingTable(t *testing.T) {
	cfg := testConfig(t)
	cfg.PlayerTablePath = filepath.Join(t.TempDir(), "missing.csv")

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_MemoryCache(t *testing.T) {
	cfg := testConfig(t)
	cfg.CacheEnabled = true
	cfg.CacheTTL = time.Minute

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, srv.Handler)
}
