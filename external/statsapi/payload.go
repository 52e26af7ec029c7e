package statsapi

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/diamondtrends/internal/domain/gamelog"
	"github.com/riskibarqy/diamondtrends/internal/domain/trend"
	"github.com/riskibarqy/diamondtrends/internal/usecase"
)

type playerStatsEnvelope struct {
	Stats []statBlock `json:"stats"`
}

type statBlock struct {
	Splits []statSplit `json:"splits"`
}

type statSplit struct {
	Date     string         `json:"date"`
	Opponent *namedRef      `json:"opponent"`
	Stat     map[string]any `json:"stat"`
}

type namedRef struct {
	Name string `json:"name"`
}

// splits reads stats[0].splits. A payload without a stat block, or with a
// split missing its stat object, is treated as an unexpected shape.
func (e playerStatsEnvelope) splits() ([]gamelog.Split, error) {
	if len(e.Stats) == 0 {
		return nil, crerr.Wrap(usecase.ErrUnexpectedShape, "player stats payload has no stat blocks")
	}

	raw := e.Stats[0].Splits
	out := make([]gamelog.Split, 0, len(raw))
	for i, s := range raw {
		if s.Stat == nil {
			return nil, crerr.Wrapf(usecase.ErrUnexpectedShape, "split %d has no stat object", i)
		}
		opponent := ""
		if s.Opponent != nil {
			opponent = s.Opponent.Name
		}
		out = append(out, gamelog.Split{
			Date:     s.Date,
			Opponent: opponent,
			Stat:     s.Stat,
		})
	}
	return out, nil
}

type scheduleEnvelope struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GameDate     string `json:"gameDate"`
	OfficialDate string `json:"officialDate"`
	Status       struct {
		DetailedState string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Home scheduleSide `json:"home"`
		Away scheduleSide `json:"away"`
	} `json:"teams"`
}

type scheduleSide struct {
	IsWinner bool `json:"isWinner"`
	Team     struct {
		ID           int64  `json:"id"`
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

func (s scheduleSide) side() trend.Side {
	return trend.Side{
		TeamID:       s.Team.ID,
		Name:         s.Team.Name,
		Abbreviation: s.Team.Abbreviation,
		IsWinner:     s.IsWinner,
	}
}

func (e scheduleEnvelope) games() []trend.Game {
	out := make([]trend.Game, 0, 16)
	for _, day := range e.Dates {
		for _, g := range day.Games {
			out = append(out, trend.Game{
				DetailedState: g.Status.DetailedState,
				OfficialDate:  g.OfficialDate,
				DayDate:       day.Date,
				GameDate:      g.GameDate,
				Home:          g.Teams.Home.side(),
				Away:          g.Teams.Away.side(),
			})
		}
	}
	return out
}
