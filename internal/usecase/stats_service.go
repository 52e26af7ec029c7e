package usecase

import (
	"context"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/diamondtrends/internal/domain/gamelog"
	"github.com/riskibarqy/diamondtrends/internal/domain/player"
	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
)

// StatsService fetches per-player statistics. Upstream failures never
// surface as errors: they fold into empty logs or empty stat maps.
type StatsService struct {
	provider      StatsProvider
	logger        *logging.Logger
	defaultSeason string
}

func NewStatsService(provider StatsProvider, logger *logging.Logger, defaultSeason string) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		provider:      provider,
		logger:        logger,
		defaultSeason: strings.TrimSpace(defaultSeason),
	}
}

// TwoWayLogs holds both role logs for a two-way player.
type TwoWayLogs struct {
	Hitting  []gamelog.Entry
	Pitching []gamelog.Entry
}

// TwoWayStats holds both role aggregates for a two-way player.
type TwoWayStats struct {
	Hitting  gamelog.SeasonStat
	Pitching gamelog.SeasonStat
}

// GroupForRole routes pitching positions (P, SP, RP, P/DH, ...) to
// pitching and everything else, including an empty role, to hitting.
func GroupForRole(role string) StatGroup {
	if player.IsPitcherPosition(role) {
		return StatGroupPitching
	}
	return StatGroupHitting
}

// GameLogs returns up to the 10 most recent games for the role, oldest first.
// With startsOnly set, pitching games that were not starts are dropped first.
func (s *StatsService) GameLogs(ctx context.Context, playerID int64, season, role string, startsOnly bool) []gamelog.Entry {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GameLogs")
	defer span.End()

	group := GroupForRole(role)
	fetched, err := s.provider.FetchPlayerSplits(ctx, StatQuery{
		PlayerID: playerID,
		Kind:     StatKindGameLog,
		Group:    group,
		Season:   s.season(season),
	})
	splits := resultOf(fetched, err).Or(ctx, s.logger, "game_logs_"+string(group), nil)

	if group == StatGroupPitching {
		entries := make([]gamelog.PitchingEntry, 0, len(splits))
		for _, split := range splits {
			if startsOnly && !gamelog.IsStart(split) {
				continue
			}
			entries = append(entries, gamelog.NewPitchingEntry(split))
		}
		return toEntries(gamelog.Recent(entries, gamelog.RecentLimit))
	}

	entries := make([]gamelog.BattingEntry, 0, len(splits))
	for _, split := range splits {
		entries = append(entries, gamelog.NewBattingEntry(split))
	}
	return toEntries(gamelog.Recent(entries, gamelog.RecentLimit))
}

// SeasonStats returns the first season split for the role, or an empty map.
func (s *StatsService) SeasonStats(ctx context.Context, playerID int64, season, role string) gamelog.SeasonStat {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.SeasonStats")
	defer span.End()

	return s.aggregate(ctx, StatQuery{
		PlayerID: playerID,
		Kind:     StatKindSeason,
		Group:    GroupForRole(role),
		Season:   s.season(season),
	})
}

// CareerStats returns the career totals for the role, or an empty map.
func (s *StatsService) CareerStats(ctx context.Context, playerID int64, role string) gamelog.SeasonStat {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.CareerStats")
	defer span.End()

	return s.aggregate(ctx, StatQuery{
		PlayerID: playerID,
		Kind:     StatKindCareer,
		Group:    GroupForRole(role),
	})
}

// TwoWayGameLogs fetches hitting logs and pitching starts concurrently.
func (s *StatsService) TwoWayGameLogs(ctx context.Context, playerID int64, season string) TwoWayLogs {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TwoWayGameLogs")
	defer span.End()

	var out TwoWayLogs
	var wg conc.WaitGroup
	wg.Go(func() { out.Hitting = s.GameLogs(ctx, playerID, season, string(StatGroupHitting), false) })
	wg.Go(func() { out.Pitching = s.GameLogs(ctx, playerID, season, player.PitcherMarker, true) })
	wg.Wait()

	return out
}

func (s *StatsService) TwoWaySeasonStats(ctx context.Context, playerID int64, season string) TwoWayStats {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TwoWaySeasonStats")
	defer span.End()

	var out TwoWayStats
	var wg conc.WaitGroup
	wg.Go(func() { out.Hitting = s.SeasonStats(ctx, playerID, season, string(StatGroupHitting)) })
	wg.Go(func() { out.Pitching = s.SeasonStats(ctx, playerID, season, player.PitcherMarker) })
	wg.Wait()

	return out
}

func (s *StatsService) TwoWayCareerStats(ctx context.Context, playerID int64) TwoWayStats {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TwoWayCareerStats")
	defer span.End()

	var out TwoWayStats
	var wg conc.WaitGroup
	wg.Go(func() { out.Hitting = s.CareerStats(ctx, playerID, string(StatGroupHitting)) })
	wg.Go(func() { out.Pitching = s.CareerStats(ctx, playerID, player.PitcherMarker) })
	wg.Wait()

	return out
}

func (s *StatsService) aggregate(ctx context.Context, query StatQuery) gamelog.SeasonStat {
	operation := string(query.Kind) + "_stats_" + string(query.Group)
	fetched, err := s.provider.FetchPlayerSplits(ctx, query)
	splits := resultOf(fetched, err).Or(ctx, s.logger, operation, nil)
	if len(splits) == 0 || splits[0].Stat == nil {
		return gamelog.SeasonStat{}
	}
	return gamelog.SeasonStat(splits[0].Stat)
}

func (s *StatsService) season(season string) string {
	if v := strings.TrimSpace(season); v != "" {
		return v
	}
	return s.defaultSeason
}

func toEntries[T gamelog.Entry](items []T) []gamelog.Entry {
	out := make([]gamelog.Entry, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
