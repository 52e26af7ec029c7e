package trend

import (
	"math"
	"sort"
	"strings"
)

const (
	DefaultWindowDays   = 20
	DefaultGamesPerTeam = 10
	DefaultTopK         = 10
)

var completedStates = []string{"Final", "Game Over", "Completed Early"}

// Params bounds one trend computation.
type Params struct {
	WindowDays   int
	GamesPerTeam int
	TopK         int
}

func DefaultParams() Params {
	return Params{
		WindowDays:   DefaultWindowDays,
		GamesPerTeam: DefaultGamesPerTeam,
		TopK:         DefaultTopK,
	}
}

// Side is one team's view of a scheduled game.
type Side struct {
	TeamID       int64
	Name         string
	Abbreviation string
	IsWinner     bool
}

// Game is a schedule entry as reported by the upstream provider.
// DayDate is the date of the schedule bucket the game was listed under.
type Game struct {
	DetailedState string
	OfficialDate  string
	DayDate       string
	GameDate      string
	Home          Side
	Away          Side
}

// Completed reports whether the game reached a final state, including
// suffixed variants such as "Final: Tied" or "Completed Early: Rain".
func (g Game) Completed() bool {
	state := strings.TrimSpace(g.DetailedState)
	for _, prefix := range completedStates {
		if strings.HasPrefix(state, prefix) {
			return true
		}
	}
	return false
}

// Date is the calendar day the game counts toward.
func (g Game) Date() string {
	if g.OfficialDate != "" {
		return g.OfficialDate
	}
	if g.DayDate != "" {
		return g.DayDate
	}
	if len(g.GameDate) >= 10 {
		return g.GameDate[:10]
	}
	return g.GameDate
}

type TeamGameResult struct {
	TeamID       int64
	TeamName     string
	Abbreviation string
	Date         string
	Won          bool
}

type TeamRecord struct {
	Team         string  `json:"team"`
	Abbreviation string  `json:"abbreviation"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinPct       float64 `json:"winPct"`
}

type Trends struct {
	Risers   []TeamRecord `json:"risers"`
	Droppers []TeamRecord `json:"droppers"`
}

// Results emits a home and an away result for every completed game, in
// upstream order. Games that are not final contribute nothing.
func Results(games []Game) []TeamGameResult {
	out := make([]TeamGameResult, 0, len(games)*2)
	for _, g := range games {
		if !g.Completed() {
			continue
		}
		date := g.Date()
		for _, side := range []Side{g.Home, g.Away} {
			out = append(out, TeamGameResult{
				TeamID:       side.TeamID,
				TeamName:     side.Name,
				Abbreviation: side.Abbreviation,
				Date:         date,
				Won:          side.IsWinner,
			})
		}
	}
	return out
}

// Aggregate builds one record per team from its gamesPerTeam most recent
// results. Teams with fewer results are left out. Records are ordered by
// first appearance in results.
func Aggregate(results []TeamGameResult, gamesPerTeam int) []TeamRecord {
	if gamesPerTeam <= 0 {
		return []TeamRecord{}
	}

	order := make([]int64, 0, 32)
	byTeam := make(map[int64][]TeamGameResult, 32)
	for _, r := range results {
		if _, seen := byTeam[r.TeamID]; !seen {
			order = append(order, r.TeamID)
		}
		byTeam[r.TeamID] = append(byTeam[r.TeamID], r)
	}

	out := make([]TeamRecord, 0, len(order))
	for _, teamID := range order {
		games := byTeam[teamID]
		if len(games) < gamesPerTeam {
			continue
		}
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Date > games[j].Date
		})
		games = games[:gamesPerTeam]

		wins := 0
		for _, g := range games {
			if g.Won {
				wins++
			}
		}
		out = append(out, TeamRecord{
			Team:         games[0].TeamName,
			Abbreviation: games[0].Abbreviation,
			Wins:         wins,
			Losses:       gamesPerTeam - wins,
			WinPct:       round3(float64(wins) / float64(gamesPerTeam)),
		})
	}
	return out
}

// Rank splits records into the topK best and topK worst win percentages.
// Ties keep record order.
func Rank(records []TeamRecord, topK int) Trends {
	risers := make([]TeamRecord, len(records))
	copy(risers, records)
	sort.SliceStable(risers, func(i, j int) bool {
		return risers[i].WinPct > risers[j].WinPct
	})

	droppers := make([]TeamRecord, len(records))
	copy(droppers, records)
	sort.SliceStable(droppers, func(i, j int) bool {
		return droppers[i].WinPct < droppers[j].WinPct
	})

	return Trends{
		Risers:   head(risers, topK),
		Droppers: head(droppers, topK),
	}
}

// WindowResults flattens per-day schedules, newest day first, into results.
func WindowResults(days [][]Game) []TeamGameResult {
	results := make([]TeamGameResult, 0, len(days)*30)
	for _, games := range days {
		results = append(results, Results(games)...)
	}
	return results
}

// Compute ranks teams over per-day schedules ordered newest day first.
func Compute(days [][]Game, p Params) Trends {
	return Rank(Aggregate(WindowResults(days), p.GamesPerTeam), p.TopK)
}

func head(records []TeamRecord, n int) []TeamRecord {
	if n < 0 {
		n = 0
	}
	if len(records) > n {
		return records[:n]
	}
	return records
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
