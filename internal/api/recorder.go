package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/kpdinfo/kpdinfo/internal/classify"
	"github.com/kpdinfo/kpdinfo/internal/history"
)

// recordTimeout bounds the background history write after a classification.
const recordTimeout = 5 * time.Second

// recorded decorates a classification system with history persistence.
// Recording runs detached from the request and never affects the response.
type recorded struct {
	inner   classify.System
	history history.System
	logger  *slog.Logger
}

func newRecorded(inner classify.System, hist history.System, logger *slog.Logger) classify.System {
	return &recorded{
		inner:   inner,
		history: hist,
		logger:  logger.With("system", "classify"),
	}
}

func (r *recorded) Handler() *classify.Handler {
	return classify.NewHandler(r, r.logger)
}

func (r *recorded) Classify(ctx context.Context, input string) (*classify.Result, error) {
	result, err := r.inner.Classify(ctx, input)
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if _, err := r.history.Record(ctx, history.Snapshot(input, result)); err != nil {
			r.logger.Warn("history record failed", "error", err)
		}
	}()

	return result, nil
}
