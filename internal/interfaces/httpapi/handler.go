package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
	"github.com/riskibarqy/diamondtrends/internal/usecase"
)

type Handler struct {
	playerService *usecase.PlayerService
	statsService  *usecase.StatsService
	trendService  *usecase.TrendService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	statsService *usecase.StatsService,
	trendService *usecase.TrendService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		statsService:  statsService,
		trendService:  trendService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// pathName returns the decoded {name} segment. chi routes on RawPath when
// it is set (escaped slashes and the like), leaving the param escaped;
// otherwise the param is already decoded and must not be decoded twice.
func pathName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// queryInt reads an optional integer query parameter; nil means absent.
func queryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}
