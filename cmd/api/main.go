package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Farhanb1/simple-vanilla-todo/config"
	_ "github.com/Farhanb1/simple-vanilla-todo/docs" // Swagger docs
	"github.com/Farhanb1/simple-vanilla-todo/internal/httpserver"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/render"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/repository/local"
	"github.com/Farhanb1/simple-vanilla-todo/internal/todo/usecase"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/log"
	"github.com/Farhanb1/simple-vanilla-todo/pkg/notifier"
)

// @title       Simple Vanilla Todo API
// @description Single-user task list: add, complete, execute and delete tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Simple Vanilla Todo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s (origin %s)", cfg.Storage.Driver, cfg.Storage.Origin)

	// 3. Storage
	storage, closeStorage, err := openStorage(cfg.Storage)
	if err != nil {
		logger.Errorf(ctx, "Failed to open storage: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Warnf(context.Background(), "Failed to close storage: %v", err)
		}
	}()

	// 4. Todo domain
	taskRepo := local.New(storage, logger)
	toast := notifier.New(cfg.Todo.NotifyDuration)
	defer toast.Stop()

	todoUC := usecase.New(logger, taskRepo, toast)
	if _, err := todoUC.Startup(ctx); err != nil {
		logger.Errorf(ctx, "Failed to start task list: %v", err)
		os.Exit(1)
	}

	renderer, err := render.New(render.Options{Timezone: cfg.Todo.Timezone, Layout: cfg.Todo.TimeLayout})
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Todo.Timezone, err)
		renderer, _ = render.New(render.Options{Timezone: "UTC", Layout: cfg.Todo.TimeLayout})
	}

	// 5. HTTP Server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TodoUseCase:     todoUC,
		Renderer:        renderer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server error: %v", err)
	}

	logger.Info(context.Background(), "Server stopped")
}
