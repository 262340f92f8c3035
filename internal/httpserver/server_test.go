package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Farhanb1/simple-vanilla-todo/internal/httpserver"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/render"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/repository/local"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/usecase"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/kvstore/memory"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/log"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/notifier"
)

func newServer(t *testing.T) *httpserver.HTTPServer {
	t.Helper()
	l := log.NewNop()
	uc := usecase.New(l, local.New(memory.New(memory.Options{}), l), notifier.New(time.Hour))
	if _, err := uc.Startup(context.Background()); err != nil {
		t.Fatalf("startup: %v", err)
	}
	renderer, _ := render.New(render.Options{Timezone: "UTC"})

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:          l,
		Port:            8080,
		Mode:            "test",
		Environment:     "development",
		RateLimitPerMin: 600,
		TodoUseCase:     uc,
		Renderer:        renderer,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}
	var health struct {
		Data map[string]string `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &health)
	if health.Data["service"] != httpserver.ServiceName {
		t.Errorf("health: unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("ready: expected 200, got %d", w.Code)
	}
	var ready struct {
		Data struct {
			Status string `json:"status"`
			Tasks  int    `json:"tasks"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &ready)
	if ready.Data.Status != "ready" || ready.Data.Tasks != 2 {
		t.Errorf("ready: unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("live: expected 204, got %d", w.Code)
	}
}

type unreadyUseCase struct {
	todo.UseCase
}

func (unreadyUseCase) List(context.Context) (todo.ListOutput, error) {
	return todo.ListOutput{}, errors.New("controller unavailable")
}

func TestReadyReportsUnavailableController(t *testing.T) {
	l := log.NewNop()
	renderer, _ := render.New(render.Options{Timezone: "UTC"})
	srv, err := httpserver.New(l, httpserver.Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		TodoUseCase: unreadyUseCase{},
		Renderer:    renderer,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("page: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
	if w.Code != http.StatusOK {
		t.Errorf("list: expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected request id middleware to run")
	}
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	if _, err := httpserver.New(l, httpserver.Config{Logger: l, Port: 8080, Mode: "test"}); err == nil {
		t.Errorf("expected an error without a todo use case")
	}
}
