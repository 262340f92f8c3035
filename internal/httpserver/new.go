package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Farhanb1/simple-vanilla-todo/internal/todo"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/render"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	rateLimitPerMin int

	// Todo domain
	todoUC   todo.UseCase
	renderer *render.Renderer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	// Todo domain
	TodoUseCase todo.UseCase
	Renderer    *render.Renderer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		todoUC:          cfg.TodoUseCase,
		renderer:        cfg.Renderer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoUC == nil {
		return errors.New("todo use case is required")
	}
	if srv.renderer == nil {
		return errors.New("renderer is required")
	}
	return nil
}

// Handler exposes the configured engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
