package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/kpdinfo/kpdinfo/internal/api"
	"github.com/kpdinfo/kpdinfo/internal/config"
	"github.com/kpdinfo/kpdinfo/internal/infrastructure"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; configuration falls back to process env
	// and config files.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}

	mod, err := api.NewModule(cfg, infra)
	if err != nil {
		return err
	}

	srv := newServer(cfg, infra, mod)

	if err := infra.Start(); err != nil {
		return err
	}

	return srv.Run()
}
