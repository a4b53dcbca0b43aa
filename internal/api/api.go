// Package api assembles the HTTP API module: domain systems, routes, and
// the module-level middleware stack.
package api

import (
	"net/http"

	"github.com/kpdinfo/kpdinfo/internal/config"
	"github.com/kpdinfo/kpdinfo/internal/infrastructure"
	"github.com/kpdinfo/kpdinfo/pkg/middleware"
	"github.com/kpdinfo/kpdinfo/pkg/module"
	"github.com/kpdinfo/kpdinfo/pkg/routes"
)

// NewModule builds the API module mounted at the configured base path.
// Middleware order matters: CORS answers preflights before any other work,
// Ray attaches the correlation identifier, and Logger reads it.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	d, err := newDomain(cfg, infra)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	routes.Register(mux, d.routes())

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Ray())
	m.Use(middleware.Logger(infra.Logger))

	return m, nil
}
