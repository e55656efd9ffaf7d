package config

import (
	"flag"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	SaveDir     string
	RedisURL    string
	PrefabDir   string
	Watch       bool
}

// Load reads the process configuration from the environment.
func Load() *Config {
	return &Config{
		Environment: getEnv("WRAITH_ENV", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		SaveDir:     getEnv("WRAITH_SAVE_DIR", "saves"),
		RedisURL:    getEnv("WRAITH_REDIS_URL", ""),
		PrefabDir:   getEnv("WRAITH_PREFAB_DIR", ""),
	}
}

// RegisterFlags binds command line overrides for cfg on fs. Call before
// fs.Parse; the environment values become the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Environment, "env", c.Environment, "environment (development or production)")
	fs.Func("log-level", "log level (debug, info, warn, error)", func(s string) error {
		c.LogLevel = parseLogLevel(s)
		return nil
	})
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory for loadout save files")
	fs.StringVar(&c.RedisURL, "redis", c.RedisURL, "redis URL for loadout saves; empty uses files")
	fs.StringVar(&c.PrefabDir, "prefabs", c.PrefabDir, "directory overriding the embedded prefab tables")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload prefab tables when they change on disk")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
