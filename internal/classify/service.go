package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kpdinfo/kpdinfo/internal/provider/openai"
)

// DefaultMaxInputLen is the maximum accepted input length in runes.
const DefaultMaxInputLen = 2000

// Provider issues a single structured-output completion request.
// *openai.Client satisfies this; tests substitute fakes.
type Provider interface {
	Respond(ctx context.Context, req openai.Request) (*openai.Envelope, error)
}

type service struct {
	provider Provider
	settings Settings
	schema   *gojsonschema.Schema
	logger   *slog.Logger
}

// NewSystem creates the classification system. The output schema is
// compiled once here so per-request work is limited to the provider call
// and response handling.
func NewSystem(provider Provider, settings Settings, logger *slog.Logger) (System, error) {
	if settings.MaxInputLen <= 0 {
		settings.MaxInputLen = DefaultMaxInputLen
	}
	if settings.Grounding == "" {
		settings.Grounding = GroundingStrict
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	return &service{
		provider: provider,
		settings: settings,
		schema:   schema,
		logger:   logger.With("system", "classify"),
	}, nil
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Classify validates the input, issues the provider request, and extracts,
// verifies, and coerces the structured answer. Configuration failures and
// invalid input are rejected before any outbound call is made.
func (s *service) Classify(ctx context.Context, input string) (*Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}
	if utf8.RuneCountInString(input) > s.settings.MaxInputLen {
		return nil, ErrInputTooLong
	}
	if s.settings.APIKey == "" {
		return nil, ErrMissingCredential
	}
	if len(s.settings.VectorStores) == 0 {
		return nil, ErrMissingCorpus
	}

	req := openai.Request{
		Instructions: SystemPrompt(),
		Input:        input,
		SchemaName:   SchemaName,
		Schema:       OutputSchema(),
		VectorStores: s.settings.VectorStores,
	}

	grounded := true
	env, err := s.provider.Respond(ctx, req)
	if err != nil {
		// A corpus-configuration failure is retried exactly once without the
		// retrieval tool, and only under the warn policy: the fallback answer
		// cannot be grounded, so strict mode surfaces the error instead.
		if !openai.IsCorpusConfig(err) || s.settings.Grounding != GroundingWarn {
			return nil, err
		}

		s.logger.Warn("retrieval corpus misconfigured, retrying without file_search", "error", err)
		req.VectorStores = nil
		grounded = false

		if env, err = s.provider.Respond(ctx, req); err != nil {
			return nil, err
		}
	}

	if grounded {
		if err := s.checkGrounding(env); err != nil {
			return nil, err
		}
	}

	raw, err := openai.Extract(env)
	if err != nil {
		return nil, err
	}

	if err := checkAgainstSchema(s.schema, raw); err != nil {
		return nil, err
	}

	result, err := Coerce(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	for _, alt := range result.PrefixViolations() {
		s.logger.Warn(
			"alternative code outside the primary activity prefix",
			"primary_prefix", result.ActivityPrefix(),
			"alternative", alt.KPD6,
		)
	}

	if err := assertValid(result); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *service) checkGrounding(env *openai.Envelope) error {
	if openai.UsedRetrieval(env) {
		s.logger.Info(
			"retrieval proof",
			"proof", openai.RetrievalProof(env),
			"files", openai.RetrievedFiles(env),
		)
		return nil
	}

	if s.settings.Grounding == GroundingStrict {
		return ErrNotGrounded
	}

	s.logger.Warn("no retrieval evidence in provider response")
	return nil
}

// assertValid round-trips the coerced result through JSON and runs the
// shape validator, so anything handed to a caller is valid by construction.
func assertValid(result *Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return Validate(decoded)
}
