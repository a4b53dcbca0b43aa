package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kpdinfo/kpdinfo/pkg/database"
)

const (
	EnvHistoryEnabled = "KPD_HISTORY_ENABLED"
	EnvHistoryRetain  = "KPD_HISTORY_RETAIN"
)

// DatabaseEnv maps the history database config to its environment variables.
func DatabaseEnv() *database.Env {
	return &database.Env{
		Host:            "KPD_DB_HOST",
		Port:            "KPD_DB_PORT",
		Name:            "KPD_DB_NAME",
		User:            "KPD_DB_USER",
		Password:        "KPD_DB_PASSWORD",
		SSLMode:         "KPD_DB_SSL_MODE",
		MaxOpenConns:    "KPD_DB_MAX_OPEN_CONNS",
		MaxIdleConns:    "KPD_DB_MAX_IDLE_CONNS",
		ConnMaxLifetime: "KPD_DB_CONN_MAX_LIFETIME",
		ConnTimeout:     "KPD_DB_CONN_TIMEOUT",
	}
}

// HistoryConfig holds the optional query-history persistence settings.
// When Enabled is false no database connection is made and the history
// endpoints are not registered.
type HistoryConfig struct {
	Enabled  bool            `toml:"enabled"`
	Retain   int             `toml:"retain"`
	Database database.Config `toml:"database"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *HistoryConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if c.Enabled {
		if err := c.Database.Finalize(DatabaseEnv()); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *HistoryConfig) Merge(overlay *HistoryConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Retain != 0 {
		c.Retain = overlay.Retain
	}
	c.Database.Merge(&overlay.Database)
}

func (c *HistoryConfig) loadDefaults() {
	if c.Retain == 0 {
		c.Retain = 100
	}
}

func (c *HistoryConfig) loadEnv() {
	if v := os.Getenv(EnvHistoryEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvHistoryRetain); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Retain = n
		}
	}
}

func (c *HistoryConfig) validate() error {
	if c.Retain < 1 {
		return fmt.Errorf("retain must be positive: %d", c.Retain)
	}
	return nil
}
