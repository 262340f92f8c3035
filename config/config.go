package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Farhanb1/simple-vanilla-todo/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task list specifics
	Storage StorageConfig
	Todo    TodoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int // requests per minute per client on mutating routes; 0 disables
}

// StorageConfig selects the key-value backend the task list persists into.
type StorageConfig struct {
	Driver     string // memory, file, sqlite, disabled
	Path       string // directory for file, database file for sqlite
	Origin     string // scope of the stored items
	QuotaBytes int64  // 0 means unlimited
}

type TodoConfig struct {
	NotifyDuration time.Duration
	TimeLayout     string
	Timezone       string // empty means the server's local zone
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
// A .env file in the working directory, if present, is loaded into the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.Origin = viper.GetString("storage.origin")
	cfg.Storage.QuotaBytes = viper.GetInt64("storage.quota_bytes")

	cfg.Todo.NotifyDuration = viper.GetDuration("todo.notify_duration")
	cfg.Todo.TimeLayout = viper.GetString("todo.time_layout")
	cfg.Todo.Timezone = viper.GetString("todo.timezone")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch model.Environment(cfg.Environment.Name) {
	case model.EnvironmentDevelopment, model.EnvironmentProduction:
	default:
		return fmt.Errorf("unknown environment.name %q", cfg.Environment.Name)
	}

	switch cfg.Storage.Driver {
	case "memory", "disabled":
	case "file", "sqlite":
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s driver", cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	if cfg.Storage.QuotaBytes < 0 {
		return errors.New("storage.quota_bytes must not be negative")
	}
	if cfg.Todo.NotifyDuration <= 0 {
		return errors.New("todo.notify_duration must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.path", "./data")
	viper.SetDefault("storage.origin", "http://localhost:8080")
	viper.SetDefault("storage.quota_bytes", 5<<20)

	viper.SetDefault("todo.notify_duration", "2500ms")
	viper.SetDefault("todo.time_layout", "1/2/2006, 3:04:05 PM")
	viper.SetDefault("todo.timezone", "")
}
