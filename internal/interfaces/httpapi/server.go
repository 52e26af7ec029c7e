package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestLogging(logger))
	r.Use(CORS(cfg.CORSAllowedOrigins))
	r.Use(recoverPanic(logger))
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	registerSystemRoutes(r, handler, cfg.MetricsEnabled)
	registerPlayerRoutes(r, handler)
	registerTrendRoutes(r, handler)
	registerLegacyRoutes(r, handler)

	return RequestTracing(r)
}
