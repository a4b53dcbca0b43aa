package classify

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaName identifies the structured-output format in provider requests.
const SchemaName = "KpdResponse"

const (
	activityCodePattern = `^\d{2}\.\d{2}(\.\d)?$`
	productCodePattern  = `^\d{2}\.\d{2}\.\d{2}$`
)

// OutputSchema returns the strict JSON schema constraining the provider's
// structured output to the Result shape, including pattern validation on
// both code fields. In strict mode every property must be present; absent
// values are expressed as null.
func OutputSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"NKD_4":           map[string]any{"type": []string{"string", "null"}, "pattern": activityCodePattern},
			"NKD_naziv":       map[string]any{"type": []string{"string", "null"}},
			"KPD_6":           map[string]any{"type": []string{"string", "null"}, "pattern": productCodePattern},
			"Naziv_proizvoda": map[string]any{"type": []string{"string", "null"}},
			"Razlog_odabira":  map[string]any{"type": []string{"string", "null"}},
			"Poruka":          map[string]any{"type": []string{"string", "null"}},
			"alternativne": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"KPD_6":        map[string]any{"type": []string{"string", "null"}, "pattern": productCodePattern},
						"Naziv":        map[string]any{"type": "string"},
						"kratko_zašto": map[string]any{"type": []string{"string", "null"}},
					},
					"required": []string{"KPD_6", "Naziv", "kratko_zašto"},
				},
			},
		},
		"required": []string{
			"NKD_4",
			"NKD_naziv",
			"KPD_6",
			"Naziv_proizvoda",
			"Razlog_odabira",
			"Poruka",
			"alternativne",
		},
	}
}

// compileSchema compiles the output schema for verifying extracted provider
// payloads. The provider is expected to honor the schema it was given; a
// payload that fails here is a provider contract violation.
func compileSchema() (*gojsonschema.Schema, error) {
	doc, err := json.Marshal(OutputSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal output schema: %w", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("compile output schema: %w", err)
	}

	return schema, nil
}

// checkAgainstSchema validates a raw extracted payload against the compiled
// output schema, reporting the first violation.
func checkAgainstSchema(schema *gojsonschema.Schema, raw json.RawMessage) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("%w: %s: %s", ErrValidation, first.Field(), first.Description())
	}

	return nil
}
