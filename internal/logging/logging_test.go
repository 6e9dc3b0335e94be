package logging

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetupDevMode(t *testing.T) {
	Setup(true)
	if !slog.Default().Enabled(nil, slog.LevelDebug) {
		t.Error("dev mode should enable debug level")
	}
}

func TestSetupProdMode(t *testing.T) {
	Setup(false)
	if slog.Default().Enabled(nil, slog.LevelDebug) {
		t.Error("prod mode should not enable debug level")
	}
	if !slog.Default().Enabled(nil, slog.LevelInfo) {
		t.Error("prod mode should enable info level")
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	called := false
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/properties", nil))

	if !called {
		t.Error("wrapped handler not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}
