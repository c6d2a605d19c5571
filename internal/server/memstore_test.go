package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brk3/momentum/internal/calendar"
	"github.com/brk3/momentum/internal/config"
	"github.com/brk3/momentum/internal/storage/memory"
	"github.com/brk3/momentum/internal/tracker"
)

const testToday = "2024-02-02"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { store.Close() })
	svc := tracker.New(store, calendar.FixedClock(calendar.MustParseISO(testToday)))
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}}
	return New(cfg, svc).Router()
}

func mockRequest(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal error: %v (body %q)", err, rr.Body.String())
	}
}
