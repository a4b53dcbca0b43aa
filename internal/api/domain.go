package api

import (
	"fmt"

	"github.com/kpdinfo/kpdinfo/internal/classify"
	"github.com/kpdinfo/kpdinfo/internal/config"
	"github.com/kpdinfo/kpdinfo/internal/examples"
	"github.com/kpdinfo/kpdinfo/internal/history"
	"github.com/kpdinfo/kpdinfo/internal/infrastructure"
	"github.com/kpdinfo/kpdinfo/internal/provider/openai"
)

// domain bundles the systems the API module exposes. history is nil when
// persistence is disabled.
type domain struct {
	classify classify.System
	history  history.System
	examples *examples.Handler
}

func newDomain(cfg *config.Config, infra *infrastructure.Infrastructure) (*domain, error) {
	client := openai.NewClient(openai.Config{
		BaseURL:         cfg.Agent.BaseURL,
		APIKey:          cfg.Agent.APIKey,
		Project:         cfg.Agent.Project,
		Model:           cfg.Agent.Model,
		ReasoningEffort: cfg.Agent.ReasoningEffort,
		Timeout:         cfg.Agent.TimeoutDuration(),
	}, infra.Logger)

	classifier, err := classify.NewSystem(client, classify.Settings{
		APIKey:       cfg.Agent.APIKey,
		VectorStores: cfg.Agent.VectorStoreIDs(),
		Grounding:    classify.GroundingPolicy(cfg.Agent.Grounding),
		MaxInputLen:  cfg.API.MaxInputLen,
	}, infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("classify system: %w", err)
	}

	d := &domain{
		classify: classifier,
		examples: examples.NewHandler(infra.Logger),
	}

	if cfg.History.Enabled && infra.Database != nil {
		d.history = history.NewSystem(
			infra.Database.Connection(),
			cfg.History.Retain,
			cfg.API.Pagination,
			infra.Logger,
		)
		d.classify = newRecorded(classifier, d.history, infra.Logger)
	}

	return d, nil
}
