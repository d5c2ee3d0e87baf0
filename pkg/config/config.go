package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend modes. In pgsql mode the engine writes through to PostgreSQL; in
// memory mode it runs disconnected against the snapshot file alone.
const (
	BackendPgsql  = "pgsql"
	BackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	BackendMode        string
	SnapshotPath       string
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BACKEND_MODE", BackendPgsql)
	viper.SetDefault("SNAPSHOT_PATH", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:  viper.GetString("PGSQL_URL"),
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		BackendMode:  strings.ToLower(viper.GetString("BACKEND_MODE")),
		SnapshotPath: viper.GetString("SNAPSHOT_PATH"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	switch cfg.BackendMode {
	case BackendPgsql:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when BACKEND_MODE is %s", BackendPgsql)
		}
	case BackendMemory:
		if cfg.SnapshotPath == "" {
			slog.Default().Warn("SNAPSHOT_PATH not set; memory backend state will not survive restarts")
		}
	default:
		return nil, fmt.Errorf("invalid BACKEND_MODE %q (expected %s or %s)", cfg.BackendMode, BackendPgsql, BackendMemory)
	}

	return cfg, nil
}
