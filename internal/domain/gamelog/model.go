package gamelog

import (
	"sort"
	"strconv"
	"strings"
)

// RecentLimit is the number of most recent games kept per log.
const RecentLimit = 10

const unknownOpponent = "Unknown"

// Split is one upstream aggregation bucket: a single game for logs, a
// season or career total for aggregates.
type Split struct {
	Date     string
	Opponent string
	Stat     map[string]any
}

// SeasonStat is passed through to clients exactly as the upstream sent it.
type SeasonStat map[string]any

// Entry is a dated game log row.
type Entry interface {
	GameDate() string
}

type BattingEntry struct {
	Date       string `json:"Date"`
	Opponent   string `json:"Opponent"`
	AB         int    `json:"AB"`
	R          int    `json:"R"`
	H          int    `json:"H"`
	HR         int    `json:"HR"`
	RBI        int    `json:"RBI"`
	BB         int    `json:"BB"`
	SO         int    `json:"SO"`
	TotalBases int    `json:"TOTAL_BASES"`
}

func (e BattingEntry) GameDate() string { return e.Date }

// PitchingEntry keeps IP and ERA in the upstream representation ("6.0", "3.00").
type PitchingEntry struct {
	Date     string `json:"Date"`
	Opponent string `json:"Opponent"`
	IP       any    `json:"IP"`
	H        int    `json:"H"`
	ER       int    `json:"ER"`
	BB       int    `json:"BB"`
	SO       int    `json:"SO"`
	W        int    `json:"W"`
	L        int    `json:"L"`
	SV       int    `json:"SV"`
	HR       int    `json:"HR"`
	ERA      any    `json:"ERA"`
	GS       int    `json:"GS"`
}

func (e PitchingEntry) GameDate() string { return e.Date }

// TotalBases derives total bases from hit counts. The singles term is not
// clamped, so inconsistent upstream counts can produce a negative result.
func TotalBases(hits, doubles, triples, homeRuns int) int {
	singles := hits - doubles - triples - homeRuns
	return singles + 2*doubles + 3*triples + 4*homeRuns
}

func NewBattingEntry(s Split) BattingEntry {
	hits := StatInt(s.Stat, "hits")
	homeRuns := StatInt(s.Stat, "homeRuns")
	return BattingEntry{
		Date:       s.Date,
		Opponent:   opponentName(s.Opponent),
		AB:         StatInt(s.Stat, "atBats"),
		R:          StatInt(s.Stat, "runs"),
		H:          hits,
		HR:         homeRuns,
		RBI:        StatInt(s.Stat, "rbi"),
		BB:         StatInt(s.Stat, "baseOnBalls"),
		SO:         StatInt(s.Stat, "strikeOuts"),
		TotalBases: TotalBases(hits, StatInt(s.Stat, "doubles"), StatInt(s.Stat, "triples"), homeRuns),
	}
}

func NewPitchingEntry(s Split) PitchingEntry {
	return PitchingEntry{
		Date:     s.Date,
		Opponent: opponentName(s.Opponent),
		IP:       statRaw(s.Stat, "inningsPitched", 0),
		H:        StatInt(s.Stat, "hits"),
		ER:       StatInt(s.Stat, "earnedRuns"),
		BB:       StatInt(s.Stat, "baseOnBalls"),
		SO:       StatInt(s.Stat, "strikeOuts"),
		W:        StatInt(s.Stat, "wins"),
		L:        StatInt(s.Stat, "losses"),
		SV:       StatInt(s.Stat, "saves"),
		HR:       StatInt(s.Stat, "homeRuns"),
		ERA:      statRaw(s.Stat, "era", 0),
		GS:       StatInt(s.Stat, "gamesStarted"),
	}
}

// IsStart reports whether the split records exactly one game started.
func IsStart(s Split) bool {
	return StatInt(s.Stat, "gamesStarted") == 1
}

// Recent keeps the limit most recent entries and returns them oldest first.
// Truncation runs on the descending order so ties on the same date keep
// their upstream order among the survivors.
func Recent[T Entry](entries []T, limit int) []T {
	sorted := make([]T, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GameDate() > sorted[j].GameDate()
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted
}

// StatInt reads a counting stat, accepting numbers or numeric strings.
// Missing or unparseable values read as zero.
func StatInt(src map[string]any, key string) int {
	if src == nil {
		return 0
	}
	switch typed := src[key].(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int64:
		return int(typed)
	case string:
		v, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0
		}
		return v
	default:
		return 0
	}
}

func statRaw(src map[string]any, key string, fallback any) any {
	if src == nil {
		return fallback
	}
	v, ok := src[key]
	if !ok || v == nil {
		return fallback
	}
	return v
}

func opponentName(name string) string {
	if strings.TrimSpace(name) == "" {
		return unknownOpponent
	}
	return name
}
