package trend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func team(id int64, abbr string) Side {
	return Side{TeamID: id, Name: "Team " + abbr, Abbreviation: abbr}
}

func final(date string, home, away Side, homeWon bool) Game {
	home.IsWinner = homeWon
	away.IsWinner = !homeWon
	return Game{DetailedState: "Final", OfficialDate: date, Home: home, Away: away}
}

// schedule builds n days of one game per day between a and b, newest day first.
func schedule(n int, a, b Side, aWins func(day int) bool) [][]Game {
	days := make([][]Game, 0, n)
	for i := 0; i < n; i++ {
		date := fmt.Sprintf("2025-07-%02d", 30-i)
		days = append(days, []Game{final(date, a, b, aWins(i))})
	}
	return days
}

func TestGame_Completed(t *testing.T) {
	t.Parallel()

	for state, want := range map[string]bool{
		"Final":                 true,
		"Final: Tied":           true,
		"Game Over":             true,
		"Completed Early":       true,
		"Completed Early: Rain": true,
		"In Progress":           false,
		"Postponed":             false,
		"Scheduled":             false,
		"":                      false,
	} {
		assert.Equal(t, want, Game{DetailedState: state}.Completed(), state)
	}
}

func TestGame_DateFallbacks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2025-07-01", Game{OfficialDate: "2025-07-01", DayDate: "2025-07-02"}.Date())
	assert.Equal(t, "2025-07-02", Game{DayDate: "2025-07-02", GameDate: "2025-07-03T23:05:00Z"}.Date())
	assert.Equal(t, "2025-07-03", Game{GameDate: "2025-07-03T23:05:00Z"}.Date())
}

func TestResults_SkipsUnfinishedGames(t *testing.T) {
	t.Parallel()

	nyy, bos := team(147, "NYY"), team(111, "BOS")
	games := []Game{
		final("2025-07-01", nyy, bos, true),
		{DetailedState: "Postponed", OfficialDate: "2025-07-01", Home: nyy, Away: bos},
	}

	got := Results(games)
	require.Len(t, got, 2)
	assert.Equal(t, int64(147), got[0].TeamID)
	assert.True(t, got[0].Won)
	assert.Equal(t, int64(111), got[1].TeamID)
	assert.False(t, got[1].Won)
}

func TestCompute_PerfectTeamLeadsRisers(t *testing.T) {
	t.Parallel()

	nyy, bos := team(147, "NYY"), team(111, "BOS")
	days := schedule(12, nyy, bos, func(int) bool { return true })

	got := Compute(days, DefaultParams())
	require.Len(t, got.Risers, 2)
	assert.Equal(t, TeamRecord{Team: "Team NYY", Abbreviation: "NYY", Wins: 10, Losses: 0, WinPct: 1.0}, got.Risers[0])
	assert.Equal(t, "BOS", got.Droppers[0].Abbreviation)
	assert.Equal(t, 0.0, got.Droppers[0].WinPct)
}

func TestCompute_ExcludesShortSamples(t *testing.T) {
	t.Parallel()

	nyy, bos := team(147, "NYY"), team(111, "BOS")
	days := schedule(9, nyy, bos, func(int) bool { return true })

	got := Compute(days, DefaultParams())
	assert.Empty(t, got.Risers)
	assert.Empty(t, got.Droppers)
	assert.NotNil(t, got.Risers)
	assert.NotNil(t, got.Droppers)
}

func TestCompute_UsesMostRecentGames(t *testing.T) {
	t.Parallel()

	nyy, bos := team(147, "NYY"), team(111, "BOS")
	// NYY wins the 5 newest days and loses the rest.
	days := schedule(15, nyy, bos, func(day int) bool { return day < 5 })

	got := Compute(days, Params{WindowDays: 15, GamesPerTeam: 10, TopK: 1})
	require.Len(t, got.Risers, 1)
	assert.Equal(t, 5, got.Risers[0].Wins)
	assert.Equal(t, 5, got.Risers[0].Losses)
	assert.Equal(t, 0.5, got.Risers[0].WinPct)
}

func TestCompute_RoundsWinPct(t *testing.T) {
	t.Parallel()

	nyy, bos := team(147, "NYY"), team(111, "BOS")
	days := schedule(3, nyy, bos, func(day int) bool { return day == 0 })

	got := Compute(days, Params{GamesPerTeam: 3, TopK: 5})
	require.Len(t, got.Risers, 2)
	assert.Equal(t, 0.667, got.Risers[0].WinPct)
	assert.Equal(t, 0.333, got.Risers[1].WinPct)
}

func TestRank_TiesKeepEncounterOrder(t *testing.T) {
	t.Parallel()

	records := []TeamRecord{
		{Abbreviation: "AAA", WinPct: 0.5},
		{Abbreviation: "BBB", WinPct: 0.7},
		{Abbreviation: "CCC", WinPct: 0.5},
		{Abbreviation: "DDD", WinPct: 0.7},
	}

	got := Rank(records, 3)
	assert.Equal(t, []string{"BBB", "DDD", "AAA"}, abbreviations(got.Risers))
	assert.Equal(t, []string{"AAA", "CCC", "BBB"}, abbreviations(got.Droppers))
}

func TestCompute_DroppedDayReducesSample(t *testing.T) {
	t.Parallel()

	nyy, bos := team(147, "NYY"), team(111, "BOS")
	days := schedule(10, nyy, bos, func(int) bool { return true })

	got := Compute(days, DefaultParams())
	require.Len(t, got.Risers, 2)

	// a failed day contributes no games and pushes both teams below the cutoff
	days[4] = nil
	got = Compute(days, DefaultParams())
	assert.Empty(t, got.Risers)
}

func abbreviations(records []TeamRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Abbreviation)
	}
	return out
}
