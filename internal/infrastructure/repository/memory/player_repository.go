package memory

import (
	"context"

	"github.com/riskibarqy/diamondtrends/internal/domain/player"
)

// PlayerRepository is an immutable name index over the player table.
// The first row for a name wins.
type PlayerRepository struct {
	byName map[string]player.Player
	names  []string
}

// NewPlayerRepository indexes players by name. names is the listing served
// by ListNames; nil derives it from players.
func NewPlayerRepository(players []player.Player, names []string) *PlayerRepository {
	byName := make(map[string]player.Player, len(players))
	derived := make([]string, 0, len(players))

	for _, p := range players {
		key := player.NormalizeName(p.Name)
		if key == "" {
			continue
		}
		if _, exists := byName[key]; exists {
			continue
		}
		if p.Roles == nil {
			p.Roles = player.RolesFromPosition(p.Position)
		}
		byName[key] = p
		derived = append(derived, p.Name)
	}

	if names == nil {
		names = derived
	} else {
		names = append([]string(nil), names...)
	}

	return &PlayerRepository{
		byName: byName,
		names:  names,
	}
}

func (r *PlayerRepository) FindByName(_ context.Context, name string) (player.Player, bool, error) {
	p, ok := r.byName[player.NormalizeName(name)]
	return p, ok, nil
}

func (r *PlayerRepository) ListNames(_ context.Context) ([]string, error) {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out, nil
}
