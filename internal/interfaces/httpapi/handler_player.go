package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/diamondtrends/internal/domain/gamelog"
	"github.com/riskibarqy/diamondtrends/internal/domain/player"
	"github.com/riskibarqy/diamondtrends/internal/usecase"
)

type playerIDDTO struct {
	MLBID    int64  `json:"mlbid"`
	Player   string `json:"player"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

type playerIdentityDTO struct {
	Player   string `json:"player"`
	MLBID    int64  `json:"mlbid"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

type playerLogsDTO struct {
	playerIdentityDTO
	Logs []gamelog.Entry `json:"logs"`
}

type twoWayLogsDTO struct {
	playerIdentityDTO
	HittingLogs  []gamelog.Entry `json:"hitting_logs"`
	PitchingLogs []gamelog.Entry `json:"pitching_logs"`
}

type seasonStatsDTO struct {
	playerIdentityDTO
	SeasonStats gamelog.SeasonStat `json:"season_stats"`
}

type careerStatsDTO struct {
	playerIdentityDTO
	CareerStats gamelog.SeasonStat `json:"career_stats"`
}

type twoWayStatsDTO struct {
	playerIdentityDTO
	HittingStats  gamelog.SeasonStat `json:"hitting_stats"`
	PitchingStats gamelog.SeasonStat `json:"pitching_stats"`
}

type playerNamesDTO struct {
	Players []string `json:"players"`
}

type seasonQuery struct {
	Season string `validate:"omitempty,len=4,numeric"`
}

func (h *Handler) GetPlayerID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerID")
	defer span.End()

	p, ok := h.resolvePlayer(ctx, w, pathName(r))
	if !ok {
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerIDDTO{
		MLBID:    p.ID,
		Player:   p.Name,
		Team:     p.Team,
		Position: p.Position,
	})
}

func (h *Handler) GetPlayerLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerLogs")
	defer span.End()

	season, ok := h.parseSeason(ctx, w, r)
	if !ok {
		return
	}
	p, ok := h.resolvePlayer(ctx, w, pathName(r))
	if !ok {
		return
	}

	if p.IsTwoWay() {
		logs := h.statsService.TwoWayGameLogs(ctx, p.ID, season)
		writeJSON(ctx, w, http.StatusOK, twoWayLogsDTO{
			playerIdentityDTO: identityToDTO(p),
			HittingLogs:       nonNilEntries(logs.Hitting),
			PitchingLogs:      nonNilEntries(logs.Pitching),
		})
		return
	}

	logs := h.statsService.GameLogs(ctx, p.ID, season, p.Position, false)
	writeJSON(ctx, w, http.StatusOK, playerLogsDTO{
		playerIdentityDTO: identityToDTO(p),
		Logs:              nonNilEntries(logs),
	})
}

// GetPlayerSeasonStats returns both role aggregates for two-way players.
func (h *Handler) GetPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeasonStats")
	defer span.End()

	season, ok := h.parseSeason(ctx, w, r)
	if !ok {
		return
	}
	p, ok := h.resolvePlayer(ctx, w, pathName(r))
	if !ok {
		return
	}

	if p.IsTwoWay() {
		stats := h.statsService.TwoWaySeasonStats(ctx, p.ID, season)
		writeJSON(ctx, w, http.StatusOK, twoWayStatsDTO{
			playerIdentityDTO: identityToDTO(p),
			HittingStats:      nonNilStat(stats.Hitting),
			PitchingStats:     nonNilStat(stats.Pitching),
		})
		return
	}

	writeJSON(ctx, w, http.StatusOK, seasonStatsDTO{
		playerIdentityDTO: identityToDTO(p),
		SeasonStats:       nonNilStat(h.statsService.SeasonStats(ctx, p.ID, season, p.Position)),
	})
}

// GetPlayerSingleSeasonStats always answers with one role, routed by position.
func (h *Handler) GetPlayerSingleSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSingleSeasonStats")
	defer span.End()

	season, ok := h.parseSeason(ctx, w, r)
	if !ok {
		return
	}
	p, ok := h.resolvePlayer(ctx, w, pathName(r))
	if !ok {
		return
	}

	writeJSON(ctx, w, http.StatusOK, seasonStatsDTO{
		playerIdentityDTO: identityToDTO(p),
		SeasonStats:       nonNilStat(h.statsService.SeasonStats(ctx, p.ID, season, p.Position)),
	})
}

func (h *Handler) GetPlayerCareerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerCareerStats")
	defer span.End()

	p, ok := h.resolvePlayer(ctx, w, pathName(r))
	if !ok {
		return
	}

	if p.IsTwoWay() {
		stats := h.statsService.TwoWayCareerStats(ctx, p.ID)
		writeJSON(ctx, w, http.StatusOK, twoWayStatsDTO{
			playerIdentityDTO: identityToDTO(p),
			HittingStats:      nonNilStat(stats.Hitting),
			PitchingStats:     nonNilStat(stats.Pitching),
		})
		return
	}

	writeJSON(ctx, w, http.StatusOK, careerStatsDTO{
		playerIdentityDTO: identityToDTO(p),
		CareerStats:       nonNilStat(h.statsService.CareerStats(ctx, p.ID, p.Position)),
	})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	names, err := h.playerService.ListNames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err, "")
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, playerNamesDTO{Players: names})
}

func (h *Handler) resolvePlayer(ctx context.Context, w http.ResponseWriter, name string) (player.Player, bool) {
	p, err := h.playerService.Resolve(ctx, name)
	if err == nil {
		return p, true
	}

	if errors.Is(err, usecase.ErrNotFound) {
		writeError(ctx, w, err, fmt.Sprintf("No player found with name '%s'", name))
		return player.Player{}, false
	}

	h.logger.ErrorContext(ctx, "resolve player failed", "name", name, "error", err)
	writeError(ctx, w, err, "")
	return player.Player{}, false
}

func (h *Handler) parseSeason(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	query := seasonQuery{Season: strings.TrimSpace(r.URL.Query().Get("season"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err, "season must be a four digit year")
		return "", false
	}
	return query.Season, true
}

func identityToDTO(p player.Player) playerIdentityDTO {
	return playerIdentityDTO{
		Player:   p.Name,
		MLBID:    p.ID,
		Team:     p.Team,
		Position: p.Position,
	}
}

func nonNilEntries(items []gamelog.Entry) []gamelog.Entry {
	if items == nil {
		return []gamelog.Entry{}
	}
	return items
}

func nonNilStat(stat gamelog.SeasonStat) gamelog.SeasonStat {
	if stat == nil {
		return gamelog.SeasonStat{}
	}
	return stat
}
