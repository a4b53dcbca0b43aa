// Package infrastructure assembles the shared runtime dependencies of the
// service: lifecycle coordination, logging, and the optional database
// connection used by the history module.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kpdinfo/kpdinfo/internal/config"
	"github.com/kpdinfo/kpdinfo/pkg/database"
	"github.com/kpdinfo/kpdinfo/pkg/lifecycle"
)

// Infrastructure holds the shared subsystems passed into the API module.
// Database is nil when history persistence is disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New constructs the infrastructure from the finalized configuration.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := newLogger(cfg)

	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
	}

	if cfg.History.Enabled {
		db, err := database.New(&cfg.History.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start runs the startup hooks of every managed subsystem and blocks until
// they complete.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("start database: %w", err)
		}
	}

	i.Lifecycle.WaitForStartup()
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Env() == "local" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With(
		"service", "kpdinfo",
		"version", cfg.Version,
	)
}
