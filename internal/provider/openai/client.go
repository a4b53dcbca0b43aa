// Package openai implements a minimal client for the OpenAI Responses API,
// scoped to structured-output completion requests grounded in file_search
// retrieval over pre-indexed vector stores.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/kpdinfo/kpdinfo/pkg/formatting"
)

// DefaultBaseURL is the production Responses API endpoint.
const DefaultBaseURL = "https://api.openai.com/v1/responses"

// Client issues Responses API requests with a bounded deadline.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a Client from the given provider configuration.
// The request deadline is enforced per call via context cancellation,
// not via http.Client.Timeout, so callers can shorten it further.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{},
		logger: logger.With("system", "provider"),
	}
}

// Respond submits a single structured-output request and decodes the
// response envelope. Failure modes: ErrTimeout when the deadline elapses,
// TransportError on a non-success status, ErrParse when the body is not
// valid JSON.
func (c *Client) Respond(ctx context.Context, req Request) (*Envelope, error) {
	body, err := json.Marshal(c.buildPayload(req))
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.Project != "" {
		httpReq.Header.Set("OpenAI-Project", c.cfg.Project)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w after %v", ErrTimeout, c.cfg.Timeout)
		}
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w after %v", ErrTimeout, c.cfg.Timeout)
		}
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newTransportError(resp.StatusCode, string(raw))
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: sample: %s", ErrParse, formatting.Truncate(string(raw), maxDiagnosticLen))
	}

	c.logger.Debug(
		"provider response",
		"model", env.Model,
		"output_items", len(env.Output),
	)

	return &env, nil
}
