package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/diamondtrends/internal/domain/trend"
	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
	"github.com/riskibarqy/diamondtrends/internal/platform/metrics"
)

const scheduleDateLayout = "2006-01-02"

type TrendServiceConfig struct {
	Defaults trend.Params
	Location *time.Location
	Workers  int
}

// TrendService ranks teams by recent win percentage over a window of
// daily schedules.
type TrendService struct {
	provider StatsProvider
	logger   *logging.Logger
	defaults trend.Params
	location *time.Location
	workers  int
	now      func() time.Time
}

func NewTrendService(provider StatsProvider, logger *logging.Logger, cfg TrendServiceConfig) *TrendService {
	if logger == nil {
		logger = logging.Default()
	}
	defaults := cfg.Defaults
	fallback := trend.DefaultParams()
	if defaults.WindowDays < 1 {
		defaults.WindowDays = fallback.WindowDays
	}
	if defaults.GamesPerTeam < 1 {
		defaults.GamesPerTeam = fallback.GamesPerTeam
	}
	if defaults.TopK < 1 {
		defaults.TopK = fallback.TopK
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &TrendService{
		provider: provider,
		logger:   logger,
		defaults: defaults,
		location: location,
		workers:  max(cfg.Workers, 1),
		now:      time.Now,
	}
}

// Defaults returns the configured window, sample size and list length.
func (s *TrendService) Defaults() trend.Params {
	return s.defaults
}

// Compute fetches every day of the window, newest first, and ranks the
// teams that played at least GamesPerTeam completed games. A day whose
// schedule cannot be fetched contributes no games.
func (s *TrendService) Compute(ctx context.Context, params trend.Params) (trend.Trends, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrendService.Compute")
	defer span.End()

	if params.WindowDays < 1 || params.GamesPerTeam < 1 || params.TopK < 1 {
		return trend.Trends{}, fmt.Errorf("%w: window, games and top must be positive", ErrInvalidInput)
	}

	days, err := s.fetchWindow(ctx, params.WindowDays)
	if err != nil {
		return trend.Trends{}, err
	}

	records := trend.Aggregate(trend.WindowResults(days), params.GamesPerTeam)
	metrics.TrendQualifyingTeams.Set(float64(len(records)))

	return trend.Rank(records, params.TopK), nil
}

// fetchWindow returns one schedule per day, index 0 being today.
func (s *TrendService) fetchWindow(ctx context.Context, windowDays int) ([][]trend.Game, error) {
	today := s.now().In(s.location)
	days := make([][]trend.Game, windowDays)

	pool, err := ants.NewPool(min(s.workers, windowDays))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := 0; i < windowDays; i++ {
		date := today.AddDate(0, 0, -i).Format(scheduleDateLayout)
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			games, err := s.provider.FetchSchedule(ctx, date)
			days[i] = resultOf(games, err).Or(ctx, s.logger, "schedule", nil)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit schedule fetch to worker pool: %w", err)
		}
	}
	workers.Wait()

	return days, nil
}
