package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/diamondtrends/internal/usecase"
)

const internalErrorMessage = "internal server error"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeError writes {"error": message} with the status mapped from err.
// Errors that map to 500 never leak their message.
func writeError(ctx context.Context, w http.ResponseWriter, err error, message string) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := mapError(err)
	if status == http.StatusInternalServerError || message == "" {
		message = internalErrorMessage
	}
	writeJSON(ctx, w, status, errorResponse{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: internalErrorMessage})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
