package statsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/diamondtrends/internal/domain/gamelog"
	"github.com/riskibarqy/diamondtrends/internal/domain/trend"
	"github.com/riskibarqy/diamondtrends/internal/platform/cache"
	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
	"github.com/riskibarqy/diamondtrends/internal/platform/metrics"
	"github.com/riskibarqy/diamondtrends/internal/platform/resilience"
	"github.com/riskibarqy/diamondtrends/internal/usecase"
)

const (
	defaultBaseURL      = "https://statsapi.mlb.com/api/v1"
	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
	maxResponseBytes    = 8 << 20
	mlbSportID          = "1"

	endpointPlayerStats = "player_stats"
	endpointSchedule    = "schedule"
)

var (
	errStatsAPITransient = crerr.New("stats api transient failure")
	errStatsAPIRejected  = crerr.New("stats api circuit open")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// Cache stores raw response bodies keyed by URL; nil disables caching.
	Cache cache.Store
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	retryBackoff   time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	loader         *cache.Loader
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		retryBackoff:   backoff,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		loader:         cache.NewLoader(cfg.Cache),
	}
}

// FetchPlayerSplits returns the splits of the first stat block for a player.
func (c *Client) FetchPlayerSplits(ctx context.Context, query usecase.StatQuery) ([]gamelog.Split, error) {
	if query.PlayerID <= 0 {
		return nil, crerr.Wrapf(usecase.ErrInvalidInput, "player id must be greater than zero")
	}

	values := url.Values{}
	values.Set("stats", string(query.Kind))
	values.Set("group", string(query.Group))
	if query.Kind != usecase.StatKindCareer && strings.TrimSpace(query.Season) != "" {
		values.Set("season", strings.TrimSpace(query.Season))
	}

	path := "/people/" + strconv.FormatInt(query.PlayerID, 10) + "/stats"
	var payload playerStatsEnvelope
	if err := c.doJSON(ctx, endpointPlayerStats, path, values, &payload); err != nil {
		return nil, crerr.Wrapf(err, "fetch %s %s stats player_id=%d", query.Kind, query.Group, query.PlayerID)
	}

	return payload.splits()
}

// FetchSchedule returns the league schedule for one calendar day (YYYY-MM-DD).
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]trend.Game, error) {
	values := url.Values{}
	values.Set("sportId", mlbSportID)
	values.Set("date", date)
	values.Set("hydrate", "team")

	var payload scheduleEnvelope
	if err := c.doJSON(ctx, endpointSchedule, "/schedule", values, &payload); err != nil {
		return nil, crerr.Wrapf(err, "fetch schedule date=%s", date)
	}

	return payload.games(), nil
}

func (c *Client) doJSON(ctx context.Context, endpoint, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.loader.GetOrLoad(ctx, fullURL, func(ctx context.Context) ([]byte, error) {
		return c.guardedRequest(ctx, endpoint, fullURL)
	})
	if err != nil {
		if !crerr.Is(err, errStatsAPIRejected) {
			metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		}
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "malformed").Inc()
		return crerr.Wrapf(usecase.ErrUnexpectedShape, "decode %s payload: %v", endpoint, err)
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

// guardedRequest runs only on cache misses, so the breaker sees real
// upstream calls and nothing else.
func (c *Client) guardedRequest(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	if !c.circuitEnabled {
		return c.executeRequest(ctx, endpoint, fullURL)
	}

	if err := c.breaker.Allow(); err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "rejected").Inc()
		c.logger.WarnContext(ctx, "stats api circuit breaker rejected request", "endpoint", endpoint, "state", c.breaker.State())
		return nil, crerr.Mark(crerr.Wrap(usecase.ErrUpstreamUnavailable, "stats api is temporarily unavailable"), errStatsAPIRejected)
	}

	raw, err := c.executeRequest(ctx, endpoint, fullURL)
	if isStatsAPICircuitFailure(err) {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		started := time.Now()
		raw, status, err := c.send(ctx, fullURL)
		metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())

		switch {
		case err != nil:
			lastErr = crerr.Mark(crerr.Wrapf(usecase.ErrUpstreamUnavailable, "send request: %v", err), errStatsAPITransient)
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = crerr.Mark(crerr.Wrapf(usecase.ErrUpstreamUnavailable, "provider status=%d body=%s", status, abbreviateBody(raw)), errStatsAPITransient)
		default:
			lastErr = crerr.Wrapf(usecase.ErrUpstreamUnavailable, "provider status=%d body=%s", status, abbreviateBody(raw))
			c.logger.WarnContext(ctx, "stats api request failed", "url", fullURL, "error", lastErr)
			return nil, lastErr
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, crerr.Wrap(usecase.ErrUpstreamUnavailable, ctx.Err().Error())
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "stats api request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, fullURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(http.MaxBytesReader(nil, resp.Body, maxResponseBytes)); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	// buf returns to the pool, so the body must be copied out.
	raw := make([]byte, buf.Len())
	copy(raw, buf.B)
	return raw, resp.StatusCode, nil
}

func isStatsAPICircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errStatsAPITransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
