package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/diamondtrends/internal/usecase"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantCode int
		wantBody string
	}{
		{
			name:     "not found keeps message",
			err:      fmt.Errorf("%w: player=x", usecase.ErrNotFound),
			message:  "No player found with name 'x'",
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"No player found with name 'x'"}`,
		},
		{
			name:     "invalid input",
			err:      fmt.Errorf("%w: bad season", usecase.ErrInvalidInput),
			message:  "season must be a four digit year",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"season must be a four digit year"}`,
		},
		{
			name:     "internal hides message",
			err:      errors.New("db exploded"),
			message:  "db exploded",
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err, tt.message)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if got := rec.Header().Get("Content-Type"); got != "application/json" {
				t.Fatalf("unexpected content type %q", got)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Fatalf("unexpected body %q", got)
			}
		})
	}
}
