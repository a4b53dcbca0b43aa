package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kpdinfo/kpdinfo/internal/config"
	"github.com/kpdinfo/kpdinfo/internal/infrastructure"
	"github.com/kpdinfo/kpdinfo/pkg/handlers"
	"github.com/kpdinfo/kpdinfo/pkg/lifecycle"
	"github.com/kpdinfo/kpdinfo/pkg/module"
)

type server struct {
	cfg   *config.Config
	infra *infrastructure.Infrastructure
	http  *http.Server
}

func newServer(cfg *config.Config, infra *infrastructure.Infrastructure, mod *module.Module) *server {
	router := module.NewRouter()
	router.Mount(mod)
	router.HandleNative("GET /healthz", healthz(infra.Lifecycle))

	return &server{
		cfg:   cfg,
		infra: infra,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
			WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		},
	}
}

// Run serves until the listener fails or a termination signal arrives,
// then drains the HTTP server and runs the lifecycle shutdown hooks.
func (s *server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.infra.Logger.Info("listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		s.infra.Logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeoutDuration())
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.infra.Logger.Error("http shutdown failed", "error", err)
	}

	if err := s.infra.Lifecycle.Shutdown(s.cfg.ShutdownTimeoutDuration()); err != nil {
		return err
	}

	s.infra.Logger.Info("shutdown complete")
	return nil
}

func healthz(lc *lifecycle.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !lc.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "starting"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
