package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/Farhanb1/simple-vanilla-todo/config"
	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment.Name != string(model.EnvironmentDevelopment) {
		t.Errorf("expected development environment, got %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Storage.Driver != "file" || cfg.Storage.Path != "./data" {
		t.Errorf("unexpected storage defaults %+v", cfg.Storage)
	}
	if cfg.Storage.QuotaBytes != 5<<20 {
		t.Errorf("unexpected quota %d", cfg.Storage.QuotaBytes)
	}
	if cfg.Todo.NotifyDuration != 2500*time.Millisecond {
		t.Errorf("unexpected notify duration %v", cfg.Todo.NotifyDuration)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("STORAGE_PATH", "/tmp/todo.db")
	t.Setenv("TODO_NOTIFY_DURATION", "5s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != "/tmp/todo.db" {
		t.Errorf("unexpected storage %+v", cfg.Storage)
	}
	if cfg.Todo.NotifyDuration != 5*time.Second {
		t.Errorf("unexpected notify duration %v", cfg.Todo.NotifyDuration)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "redis")

	if _, err := config.Load(); err == nil {
		t.Errorf("expected an error for an unknown driver")
	}
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("ENVIRONMENT_NAME", "staging")

	if _, err := config.Load(); err == nil {
		t.Errorf("expected an error for an unknown environment")
	}
}
