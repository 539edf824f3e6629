package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	STORAGE_MEMORY = "memory"
	STORAGE_SQLITE = "sqlite"
)

type Config struct {
	port string

	storage    string
	sqlitePath string
	seedDemo   bool

	metricCollectionInterval time.Duration

	discordWebhookID    string
	discordWebhookToken string

	logLevel slog.Level
}

// ParseLogLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			if _, err := strconv.ParseUint(port, 10, 16); err != nil {
				slog.Warn("invalid PORT, using 8080", "PORT", port)
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		storage: func() string {
			storage := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE")))
			switch storage {
			case STORAGE_MEMORY, STORAGE_SQLITE:
			case "":
				storage = STORAGE_SQLITE
			default:
				slog.Warn("unknown STORAGE, using sqlite", "STORAGE", storage)
				storage = STORAGE_SQLITE
			}
			slog.Debug("env", "STORAGE", storage)
			return storage
		}(),
		sqlitePath: func() string {
			sqlitePath := os.Getenv("SQLITE_PATH")
			if sqlitePath == "" {
				sqlitePath = "./sqlite.db"
			}
			if sqlitePath != ":memory:" {
				sqlitePath = filepath.Clean(sqlitePath)
			}
			slog.Debug("env", "SQLITE_PATH", sqlitePath)
			return sqlitePath
		}(),
		seedDemo: func() bool {
			raw := os.Getenv("SEED_DEMO_DATA")
			if raw == "" {
				return false
			}
			seed, err := strconv.ParseBool(raw)
			if err != nil {
				slog.Warn("invalid SEED_DEMO_DATA, not seeding", "SEED_DEMO_DATA", raw)
				return false
			}
			slog.Debug("env", "SEED_DEMO_DATA", seed)
			return seed
		}(),

		metricCollectionInterval: func() time.Duration {
			raw := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if raw == "" {
				return 15 * time.Second
			}
			interval, err := time.ParseDuration(raw)
			if err != nil || interval <= 0 {
				slog.Warn("invalid METRIC_COLLECTION_INTERVAL, using 15s", "METRIC_COLLECTION_INTERVAL", raw)
				return 15 * time.Second
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", interval)
			return interval
		}(),

		discordWebhookID: os.Getenv("DISCORD_WEBHOOK_ID"),
		discordWebhookToken: func() string {
			token := os.Getenv("DISCORD_WEBHOOK_TOKEN")
			if len(token) > 3 {
				slog.Debug("env", "DISCORD_WEBHOOK_TOKEN", token[0:3]+"...")
			}
			return token
		}(),

		logLevel: ParseLogLevel(os.Getenv("LOG_LEVEL")),
	}
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get STORAGE env, memory or sqlite, default to sqlite
func (c *Config) GetStorage() string {
	return c.storage
}

// Get SQLITE_PATH env, default to ./sqlite.db
func (c *Config) GetSQLitePath() string {
	return c.sqlitePath
}

// Get SEED_DEMO_DATA env
func (c *Config) GetSeedDemoData() bool {
	return c.seedDemo
}

// Get METRIC_COLLECTION_INTERVAL env, default to 15s
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}

// Get DISCORD_WEBHOOK_ID env
func (c *Config) GetDiscordWebhookID() string {
	return c.discordWebhookID
}

// Get DISCORD_WEBHOOK_TOKEN env
func (c *Config) GetDiscordWebhookToken() string {
	return c.discordWebhookToken
}

// Get LOG_LEVEL env, default to info
func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}
