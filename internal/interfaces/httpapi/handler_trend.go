package httpapi

import (
	"net/http"

	"github.com/riskibarqy/diamondtrends/internal/domain/trend"
)

type trendsQuery struct {
	Days  *int `validate:"omitempty,min=1,max=60"`
	Games *int `validate:"omitempty,min=1,max=162"`
	Top   *int `validate:"omitempty,min=1,max=30"`
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTrends")
	defer span.End()

	query, err := parseTrendsQuery(r)
	if err != nil {
		writeError(ctx, w, err, "days, games and top must be integers")
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err, "days must be 1-60, games 1-162 and top 1-30")
		return
	}

	params := h.trendService.Defaults()
	if query.Days != nil {
		params.WindowDays = *query.Days
	}
	if query.Games != nil {
		params.GamesPerTeam = *query.Games
	}
	if query.Top != nil {
		params.TopK = *query.Top
	}

	trends, err := h.trendService.Compute(ctx, params)
	if err != nil {
		h.logger.WarnContext(ctx, "compute trends failed", "error", err)
		writeError(ctx, w, err, err.Error())
		return
	}

	writeJSON(ctx, w, http.StatusOK, nonNilTrends(trends))
}

func parseTrendsQuery(r *http.Request) (trendsQuery, error) {
	var (
		query trendsQuery
		err   error
	)
	if query.Days, err = queryInt(r, "days"); err != nil {
		return trendsQuery{}, err
	}
	if query.Games, err = queryInt(r, "games"); err != nil {
		return trendsQuery{}, err
	}
	if query.Top, err = queryInt(r, "top"); err != nil {
		return trendsQuery{}, err
	}
	return query, nil
}

func nonNilTrends(t trend.Trends) trend.Trends {
	if t.Risers == nil {
		t.Risers = []trend.TeamRecord{}
	}
	if t.Droppers == nil {
		t.Droppers = []trend.TeamRecord{}
	}
	return t
}
