package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/diamondtrends/internal/domain/player"
)

// PlayerService resolves free-text names against the player directory.
type PlayerService struct {
	directory player.Directory
	twoWay    map[string]struct{}
}

// NewPlayerService builds a resolver. Names in twoWayPlayers always resolve
// with both roles and the combined position marker.
func NewPlayerService(directory player.Directory, twoWayPlayers []string) *PlayerService {
	twoWay := make(map[string]struct{}, len(twoWayPlayers))
	for _, name := range twoWayPlayers {
		if key := player.NormalizeName(name); key != "" {
			twoWay[key] = struct{}{}
		}
	}

	return &PlayerService{
		directory: directory,
		twoWay:    twoWay,
	}
}

func (s *PlayerService) Resolve(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Resolve")
	defer span.End()

	if strings.TrimSpace(name) == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrNotFound)
	}

	p, ok, err := s.directory.FindByName(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("find player by name: %w", err)
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player=%q", ErrNotFound, strings.TrimSpace(name))
	}

	if _, forced := s.twoWay[player.NormalizeName(p.Name)]; forced {
		p.Position = player.TwoWayPosition
		p.Roles = player.NewRoleSet(player.RolePitcher, player.RoleHitter)
	}

	return p, nil
}

func (s *PlayerService) ListNames(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListNames")
	defer span.End()

	names, err := s.directory.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player names: %w", err)
	}
	return names, nil
}
