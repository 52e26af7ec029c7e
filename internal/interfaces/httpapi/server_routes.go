package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riskibarqy/diamondtrends/internal/platform/metrics"
)

func registerSystemRoutes(r chi.Router, handler *Handler, metricsEnabled bool) {
	r.Get("/healthz", handler.Healthz)
	r.Get("/openapi.yaml", handler.OpenAPI)
	r.Get("/docs", handler.SwaggerUI)
	if metricsEnabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
}

func registerPlayerRoutes(r chi.Router, handler *Handler) {
	r.Route("/player", func(r chi.Router) {
		r.Get("/id/{name}", handler.GetPlayerID)
		r.Get("/logs/{name}", handler.GetPlayerLogs)
		r.Get("/season/{name}", handler.GetPlayerSeasonStats)
		r.Get("/career/{name}", handler.GetPlayerCareerStats)
	})
	r.Get("/players", handler.ListPlayers)
}

func registerTrendRoutes(r chi.Router, handler *Handler) {
	r.Get("/trends", handler.GetTrends)
}

// registerLegacyRoutes keeps the /api paths older frontends still call.
func registerLegacyRoutes(r chi.Router, handler *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/mlbid/{name}", handler.GetPlayerID)
		r.Get("/playerlogs/{name}", handler.GetPlayerLogs)
		r.Get("/seasonstats/{name}", handler.GetPlayerSingleSeasonStats)
		r.Get("/dual_seasonstats/{name}", handler.GetPlayerSeasonStats)
		r.Get("/allplayers", handler.ListPlayers)
		r.Get("/risersdroppers", handler.GetTrends)
	})
}
