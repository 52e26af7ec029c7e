package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	PlayerTablePath string
	TwoWayPlayers   []string
	StatsSeason     string
	StatsTimezone   *time.Location

	MLBAPIBaseURL                 string
	UpstreamTimeout               time.Duration
	UpstreamMaxRetries            int
	UpstreamCircuitEnabled        bool
	UpstreamCircuitFailureCount   int
	UpstreamCircuitOpenTimeout    time.Duration
	UpstreamCircuitHalfOpenMaxReq int

	CacheEnabled    bool
	CacheTTL        time.Duration
	CacheMaxEntries int
	RedisURL        string

	TrendsWindowDays   int
	TrendsGamesPerTeam int
	TrendsTopK         int
	TrendsWorkers      int

	MetricsEnabled bool

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeUploadRate    time.Duration

	PprofEnabled bool
	PprofAddr    string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        strings.TrimSpace(getEnv("SERVICE_NAME", "diamondtrends")),
		ServiceVersion:     strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		HTTPAddr:           strings.TrimSpace(getEnv("HTTP_ADDR", ":5000")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_LEVEL", "info")))),
		PlayerTablePath:    strings.TrimSpace(getEnv("PLAYER_TABLE_PATH", "SFBB Player ID Map - PLAYERIDMAP.csv")),
		TwoWayPlayers:      splitCSV(lookupEnv("TWO_WAY_PLAYERS", "Shohei Ohtani")),
		StatsSeason:        strings.TrimSpace(getEnv("STATS_SEASON", strconv.Itoa(time.Now().Year()))),
		MLBAPIBaseURL:      strings.TrimRight(strings.TrimSpace(getEnv("MLB_API_BASE_URL", "https://statsapi.mlb.com/api/v1")), "/"),
		RedisURL:           strings.TrimSpace(getEnv("REDIS_URL", "")),
		UptraceDSN:         strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.PlayerTablePath == "" {
		return Config{}, fmt.Errorf("PLAYER_TABLE_PATH cannot be empty")
	}
	if err := validateSeason(cfg.StatsSeason); err != nil {
		return Config{}, fmt.Errorf("parse STATS_SEASON: %w", err)
	}

	cfg.StatsTimezone, err = time.LoadLocation(strings.TrimSpace(getEnv("STATS_TIMEZONE", "America/New_York")))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_TIMEZONE: %w", err)
	}

	if cfg.ReadTimeout, err = getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	// /trends fans out one upstream call per day, so the write budget is generous.
	if cfg.WriteTimeout, err = getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "60s"); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamTimeout, err = getEnvAsPositiveDuration("UPSTREAM_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}

	if cfg.UpstreamMaxRetries, err = getEnvAsInt("UPSTREAM_MAX_RETRIES", 0); err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_MAX_RETRIES: %w", err)
	}
	if cfg.UpstreamMaxRetries < 0 {
		return Config{}, fmt.Errorf("UPSTREAM_MAX_RETRIES must be >= 0")
	}

	if cfg.UpstreamCircuitEnabled, err = getEnvAsBool("UPSTREAM_CIRCUIT_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamCircuitFailureCount, err = getEnvAsMinInt("UPSTREAM_CIRCUIT_FAILURE_COUNT", 5, 1); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamCircuitOpenTimeout, err = getEnvAsPositiveDuration("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamCircuitHalfOpenMaxReq, err = getEnvAsMinInt("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", 1, 1); err != nil {
		return Config{}, err
	}

	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getEnvAsPositiveDuration("CACHE_TTL", "60s"); err != nil {
		return Config{}, err
	}
	if cfg.CacheMaxEntries, err = getEnvAsMinInt("CACHE_MAX_ENTRIES", 2048, 0); err != nil {
		return Config{}, err
	}
	if cfg.RedisURL != "" && !cfg.CacheEnabled {
		return Config{}, fmt.Errorf("REDIS_URL requires CACHE_ENABLED=true")
	}

	if cfg.TrendsWindowDays, err = getEnvAsMinInt("TRENDS_WINDOW_DAYS", 20, 1); err != nil {
		return Config{}, err
	}
	if cfg.TrendsGamesPerTeam, err = getEnvAsMinInt("TRENDS_GAMES_PER_TEAM", 10, 1); err != nil {
		return Config{}, err
	}
	if cfg.TrendsTopK, err = getEnvAsMinInt("TRENDS_TOP_K", 10, 1); err != nil {
		return Config{}, err
	}
	if cfg.TrendsWorkers, err = getEnvAsMinInt("TRENDS_WORKERS", 4, 1); err != nil {
		return Config{}, err
	}

	if cfg.MetricsEnabled, err = getEnvAsBool("METRICS_ENABLED", true); err != nil {
		return Config{}, err
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	return cfg, nil
}

func validateSeason(v string) error {
	if len(v) != 4 {
		return fmt.Errorf("season %q must be a four digit year", v)
	}
	if _, err := strconv.Atoi(v); err != nil {
		return fmt.Errorf("season %q must be a four digit year", v)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

// lookupEnv falls back only when key is unset, so an explicit empty value
// clears a non-empty default.
func lookupEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsMinInt(key string, fallback, minimum int) (int, error) {
	out, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out < minimum {
		return 0, fmt.Errorf("%s must be >= %d", key, minimum)
	}
	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	out, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
