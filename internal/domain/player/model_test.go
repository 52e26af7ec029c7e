package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromPosition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		position string
		pitcher  bool
		hitter   bool
	}{
		{"P", true, false},
		{"SP", true, false},
		{"RP", true, false},
		{"LHP", true, false},
		{"rhp", true, false},
		{"SP/RP", true, false},
		{"SS", false, true},
		{"OF", false, true},
		{"P/DH", true, true},
		{"twp", true, true},
		{"1B/OF", false, true},
		{"", false, false},
	}

	for _, tc := range cases {
		roles := RolesFromPosition(tc.position)
		assert.Equal(t, tc.pitcher, roles.Has(RolePitcher), tc.position)
		assert.Equal(t, tc.hitter, roles.Has(RoleHitter), tc.position)
		assert.Equal(t, tc.pitcher && tc.hitter, roles.IsTwoWay(), tc.position)
	}
}

func TestIsPitcherPosition(t *testing.T) {
	t.Parallel()

	for _, pos := range []string{"P", "SP", "RP", "LHP", "RHP", " sp ", "P/DH", "DH/SP"} {
		assert.True(t, IsPitcherPosition(pos), pos)
	}
	for _, pos := range []string{"", "C", "SS", "1B/OF", "DH", "hitting"} {
		assert.False(t, IsPitcherPosition(pos), pos)
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shohei ohtani", NormalizeName("  Shohei OHTANI "))
}
