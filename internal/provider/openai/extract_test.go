package openai

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const answer = `{"NKD_4":"62.10.9"}`

func rawEqual(t *testing.T, got json.RawMessage, want string) {
	t.Helper()

	var gotVal, wantVal any
	if err := json.Unmarshal(got, &gotVal); err != nil {
		t.Fatalf("decode extracted payload: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &wantVal); err != nil {
		t.Fatalf("decode expected payload: %v", err)
	}

	gotNorm, _ := json.Marshal(gotVal)
	wantNorm, _ := json.Marshal(wantVal)
	if string(gotNorm) != string(wantNorm) {
		t.Fatalf("extracted = %s, want %s", gotNorm, wantNorm)
	}
}

func TestExtractLocations(t *testing.T) {
	tests := []struct {
		name string
		env  *Envelope
	}{
		{"output_parsed", &Envelope{OutputParsed: json.RawMessage(answer)}},
		{"item parsed", &Envelope{Output: []OutputItem{
			{Type: "message", Parsed: json.RawMessage(answer)},
		}}},
		{"content output_json", &Envelope{Output: []OutputItem{
			{Content: []ContentItem{{Type: "output_json", JSON: json.RawMessage(answer)}}},
		}}},
		{"content json", &Envelope{Output: []OutputItem{
			{Content: []ContentItem{{Type: "json", JSON: json.RawMessage(answer)}}},
		}}},
		{"content text", &Envelope{Output: []OutputItem{
			{Content: []ContentItem{{Type: "output_text", Text: answer}}},
		}}},
		{"content text fenced", &Envelope{Output: []OutputItem{
			{Content: []ContentItem{{Type: "output_text", Text: "```json\n" + answer + "\n```"}}},
		}}},
		{"output_text", &Envelope{OutputText: answer}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := Extract(tc.env)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			rawEqual(t, raw, answer)
		})
	}
}

// Higher-priority locations win even when lower ones also hold content.
func TestExtractPriority(t *testing.T) {
	env := &Envelope{
		OutputParsed: json.RawMessage(`{"source":"output_parsed"}`),
		OutputText:   `{"source":"output_text"}`,
		Output: []OutputItem{
			{
				Parsed:  json.RawMessage(`{"source":"item_parsed"}`),
				Content: []ContentItem{{Type: "output_json", JSON: json.RawMessage(`{"source":"content_json"}`)}},
			},
		},
	}

	raw, err := Extract(env)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	rawEqual(t, raw, `{"source":"output_parsed"}`)

	env.OutputParsed = nil
	raw, _ = Extract(env)
	rawEqual(t, raw, `{"source":"item_parsed"}`)

	env.Output[0].Parsed = nil
	raw, _ = Extract(env)
	rawEqual(t, raw, `{"source":"content_json"}`)

	env.Output = nil
	raw, _ = Extract(env)
	rawEqual(t, raw, `{"source":"output_text"}`)
}

func TestExtractSkipsNullLiterals(t *testing.T) {
	env := &Envelope{
		OutputParsed: json.RawMessage(`null`),
		Output: []OutputItem{
			{Parsed: json.RawMessage(`null`)},
		},
		OutputText: answer,
	}

	raw, err := Extract(env)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	rawEqual(t, raw, answer)
}

func TestExtractFailureCarriesSample(t *testing.T) {
	env := &Envelope{
		Output: []OutputItem{
			{Content: []ContentItem{{Type: "output_text", Text: "Ne mogu odrediti šifru."}}},
		},
	}

	_, err := Extract(env)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Extract() error = %v, want ErrParse", err)
	}
	if !strings.Contains(err.Error(), "Ne mogu odrediti") {
		t.Fatalf("Extract() error = %q, want diagnostic sample of the output", err)
	}
}

func TestExtractRejectsPlainText(t *testing.T) {
	env := &Envelope{OutputText: "nije JSON"}

	if _, err := Extract(env); !errors.Is(err, ErrParse) {
		t.Fatalf("Extract() error = %v, want ErrParse", err)
	}
}
