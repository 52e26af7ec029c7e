package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
)

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://diamondtrends.vercel.app"})(next)

	req := httptest.NewRequest(http.MethodGet, "/trends", nil)
	req.Header.Set("Origin", "https://diamondtrends.vercel.app")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://diamondtrends.vercel.app", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/trends", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})
	handler := CORS([]string{"*"})(next)

	req := httptest.NewRequest(http.MethodOptions, "/player/logs/x", nil)
	req.Header.Set("Origin", "https://diamondtrends.vercel.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverPanic_WritesJSON500(t *testing.T) {
	handler := recoverPanic(logging.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trends", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /healthz ", "/metrics"} {
		assert.False(t, shouldTraceRequest(path), path)
	}
	for _, path := range []string{"/trends", "/player/logs/x", "/api/allplayers", "/"} {
		assert.True(t, shouldTraceRequest(path), path)
	}
}
