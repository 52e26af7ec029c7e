package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/diamondtrends/external/statsapi"
	"github.com/riskibarqy/diamondtrends/internal/config"
	"github.com/riskibarqy/diamondtrends/internal/domain/trend"
	"github.com/riskibarqy/diamondtrends/internal/infrastructure/playertable"
	"github.com/riskibarqy/diamondtrends/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/diamondtrends/internal/interfaces/httpapi"
	"github.com/riskibarqy/diamondtrends/internal/platform/cache"
	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
	"github.com/riskibarqy/diamondtrends/internal/platform/resilience"
	"github.com/riskibarqy/diamondtrends/internal/usecase"
)

// NewHTTPServer wires the player table, the stats API client and the
// services behind the HTTP router. The returned cleanup releases the
// cache backend and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	table, err := playertable.LoadFile(cfg.PlayerTablePath)
	if err != nil {
		return nil, nil, fmt.Errorf("load player table: %w", err)
	}
	logger.Info("player table loaded", "path", cfg.PlayerTablePath, "players", len(table.Players), "names", len(table.Names))
	playerRepo := memory.NewPlayerRepository(table.Players, table.Names)

	store, cleanup, err := newCacheStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	statsClient := statsapi.NewClient(statsapi.ClientConfig{
		BaseURL:    cfg.MLBAPIBaseURL,
		Timeout:    cfg.UpstreamTimeout,
		MaxRetries: cfg.UpstreamMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.UpstreamCircuitEnabled,
			FailureThreshold: cfg.UpstreamCircuitFailureCount,
			OpenTimeout:      cfg.UpstreamCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.UpstreamCircuitHalfOpenMaxReq,
		},
		Cache: store,
	})

	playerSvc := usecase.NewPlayerService(playerRepo, cfg.TwoWayPlayers)
	statsSvc := usecase.NewStatsService(statsClient, logger, cfg.StatsSeason)
	trendSvc := usecase.NewTrendService(statsClient, logger, usecase.TrendServiceConfig{
		Defaults: trend.Params{
			WindowDays:   cfg.TrendsWindowDays,
			GamesPerTeam: cfg.TrendsGamesPerTeam,
			TopK:         cfg.TrendsTopK,
		},
		Location: cfg.StatsTimezone,
		Workers:  cfg.TrendsWorkers,
	})

	handler := httpapi.NewHandler(playerSvc, statsSvc, trendSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsEnabled:     cfg.MetricsEnabled,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newCacheStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (cache.Store, func(), error) {
	noop := func() {}
	if !cfg.CacheEnabled {
		logger.Info("upstream cache disabled", "reason", "CACHE_ENABLED=false")
		return nil, noop, nil
	}

	if cfg.RedisURL == "" {
		logger.Info("upstream cache enabled", "backend", "memory", "ttl", cfg.CacheTTL, "max_entries", cfg.CacheMaxEntries)
		return cache.NewMemoryStore(cfg.CacheTTL, cfg.CacheMaxEntries), noop, nil
	}

	store, err := cache.NewRedisStore(ctx, cfg.RedisURL, cfg.CacheTTL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis cache: %w", err)
	}
	logger.Info("upstream cache enabled",
		"backend", "redis",
		"target", redisTargetFromURL(cfg.RedisURL),
		"ttl", cfg.CacheTTL,
	)

	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("close redis cache failed", "error", err)
		}
	}, nil
}
