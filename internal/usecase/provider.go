package usecase

import (
	"context"

	"github.com/riskibarqy/diamondtrends/internal/domain/gamelog"
	"github.com/riskibarqy/diamondtrends/internal/domain/trend"
)

type StatKind string

const (
	StatKindGameLog StatKind = "gameLog"
	StatKindSeason  StatKind = "season"
	StatKindCareer  StatKind = "career"
)

type StatGroup string

const (
	StatGroupHitting  StatGroup = "hitting"
	StatGroupPitching StatGroup = "pitching"
)

// StatQuery addresses one player stats request. Season is ignored for career totals.
type StatQuery struct {
	PlayerID int64
	Kind     StatKind
	Group    StatGroup
	Season   string
}

// StatsProvider is the upstream statistics source. Implementations return
// errors marked with ErrUpstreamUnavailable or ErrUnexpectedShape.
type StatsProvider interface {
	FetchPlayerSplits(ctx context.Context, query StatQuery) ([]gamelog.Split, error)
	FetchSchedule(ctx context.Context, date string) ([]trend.Game, error)
}
