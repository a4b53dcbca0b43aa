package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kpdinfo/kpdinfo/pkg/formatting"
)

// extractor attempts to pull the structured answer out of one possible
// location in the envelope. Returns nil when the location is absent.
// Each revision of the Responses API has surfaced the answer somewhere
// else; keeping the locations as an ordered strategy list isolates the
// shape drift and keeps each location independently testable.
type extractor func(*Envelope) json.RawMessage

var extractors = []extractor{
	fromOutputParsed,
	fromItemParsed,
	fromContentJSON,
	fromContentText,
	fromOutputText,
}

// Extract returns the first structured JSON object found in the envelope,
// trying each known location in priority order. Returns ErrParse with a
// truncated diagnostic sample when no strategy succeeds.
func Extract(env *Envelope) (json.RawMessage, error) {
	for _, try := range extractors {
		if raw := try(env); raw != nil {
			return raw, nil
		}
	}

	return nil, fmt.Errorf("%w: sample: %s", ErrParse, diagnosticSample(env))
}

func fromOutputParsed(env *Envelope) json.RawMessage {
	return objectOrNil(env.OutputParsed)
}

func fromItemParsed(env *Envelope) json.RawMessage {
	for _, item := range env.Output {
		if raw := objectOrNil(item.Parsed); raw != nil {
			return raw
		}
	}
	return nil
}

func fromContentJSON(env *Envelope) json.RawMessage {
	for _, item := range env.Output {
		for _, content := range item.Content {
			if content.Type != "output_json" && content.Type != "json" {
				continue
			}
			if raw := objectOrNil(content.JSON); raw != nil {
				return raw
			}
		}
	}
	return nil
}

func fromContentText(env *Envelope) json.RawMessage {
	for _, item := range env.Output {
		for _, content := range item.Content {
			if raw := textAsJSON(content.Text); raw != nil {
				return raw
			}
		}
	}
	return nil
}

func fromOutputText(env *Envelope) json.RawMessage {
	return textAsJSON(env.OutputText)
}

// objectOrNil filters out absent fields and JSON null literals.
func objectOrNil(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

// textAsJSON accepts a text block that is itself a JSON document,
// including one wrapped in a markdown code fence.
func textAsJSON(text string) json.RawMessage {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if json.Valid([]byte(trimmed)) {
			return json.RawMessage(trimmed)
		}
		return nil
	}

	if raw, err := formatting.Parse[json.RawMessage](trimmed); err == nil {
		return raw
	}
	return nil
}

// diagnosticSample renders a bounded view of the envelope for parse errors.
func diagnosticSample(env *Envelope) string {
	sample := struct {
		Output     []OutputItem `json:"output"`
		OutputText string       `json:"output_text"`
	}{
		Output:     env.Output,
		OutputText: env.OutputText,
	}
	if len(sample.Output) > 1 {
		sample.Output = sample.Output[:1]
	}

	data, err := json.Marshal(sample)
	if err != nil {
		return "<unrenderable envelope>"
	}
	return formatting.Truncate(string(data), maxDiagnosticLen)
}
