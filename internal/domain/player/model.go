package player

import (
	"strings"
)

// Role is a batter/pitcher classification that selects the upstream stat group.
type Role string

const (
	RolePitcher Role = "pitcher"
	RoleHitter  Role = "hitter"
)

// TwoWayPosition is the position marker reported for players holding both roles.
const TwoWayPosition = "P/DH"

// PitcherMarker prefixes every position string routed to pitching stats.
const PitcherMarker = "P"

var pitcherPositions = map[string]struct{}{
	"P":   {},
	"SP":  {},
	"RP":  {},
	"LHP": {},
	"RHP": {},
}

// RoleSet is the set of roles a player holds.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	out := make(RoleSet, len(roles))
	for _, r := range roles {
		out[r] = struct{}{}
	}
	return out
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) IsTwoWay() bool {
	return s.Has(RolePitcher) && s.Has(RoleHitter)
}

// Player is one row of the static identity table.
type Player struct {
	ID       int64
	Name     string
	Team     string
	Position string
	Roles    RoleSet
}

// IsTwoWay reports whether stats should be served for both roles.
func (p Player) IsTwoWay() bool {
	return p.Roles.IsTwoWay()
}

// RolesFromPosition derives the role set declared by a table position string.
// Slash separated positions ("P/DH", "SS/2B") declare every listed role.
func RolesFromPosition(position string) RoleSet {
	position = strings.ToUpper(strings.TrimSpace(position))
	if position == "" {
		return NewRoleSet()
	}
	if position == "TWP" {
		return NewRoleSet(RolePitcher, RoleHitter)
	}

	out := NewRoleSet()
	for _, part := range strings.Split(position, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if isPitcherPart(part) {
			out[RolePitcher] = struct{}{}
		} else {
			out[RoleHitter] = struct{}{}
		}
	}
	return out
}

// IsPitcherPosition reports whether any slash separated part of position
// is a pitching position (P, SP, RP, LHP, RHP or another P-prefixed code).
func IsPitcherPosition(position string) bool {
	for _, part := range strings.Split(strings.ToUpper(strings.TrimSpace(position)), "/") {
		if isPitcherPart(strings.TrimSpace(part)) {
			return true
		}
	}
	return false
}

func isPitcherPart(part string) bool {
	if part == "" {
		return false
	}
	if _, ok := pitcherPositions[part]; ok {
		return true
	}
	return strings.HasPrefix(part, PitcherMarker)
}

// NormalizeName is the lookup key for case-insensitive exact matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
