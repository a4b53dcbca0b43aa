// Command migrate applies the query history schema migrations.
package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"

	"github.com/kpdinfo/kpdinfo/internal/config"
	"github.com/kpdinfo/kpdinfo/pkg/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	cfg := database.Config{}
	if err := cfg.Finalize(config.DatabaseEnv()); err != nil {
		return fmt.Errorf("database config: %w", err)
	}

	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL(&cfg))
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no pending migrations")
			return nil
		}
		return err
	}

	fmt.Println("migrations applied")
	return nil
}

func databaseURL(cfg *database.Config) string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     cfg.Name,
		RawQuery: "sslmode=" + cfg.SSLMode,
	}
	return u.String()
}
