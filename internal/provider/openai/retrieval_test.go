package openai

import (
	"strings"
	"testing"
)

func TestUsedRetrieval(t *testing.T) {
	tests := []struct {
		name string
		env  *Envelope
		want bool
	}{
		{"file_search_call item", &Envelope{Output: []OutputItem{
			{Type: "file_search_call"},
		}}, true},
		{"tool_calls type", &Envelope{Output: []OutputItem{
			{ToolCalls: []ToolCall{{Type: "file_search"}}},
		}}, true},
		{"tool_calls legacy tool_type", &Envelope{Output: []OutputItem{
			{ToolCalls: []ToolCall{{ToolType: "file_search"}}},
		}}, true},
		{"tool_use content by name", &Envelope{Output: []OutputItem{
			{Content: []ContentItem{{Type: "tool_use", Name: "file_search"}}},
		}}, true},
		{"tool_use content by tool_name", &Envelope{Output: []OutputItem{
			{Content: []ContentItem{{Type: "tool_use", ToolName: "file_search"}}},
		}}, true},
		{"no evidence", &Envelope{Output: []OutputItem{
			{Type: "message", Content: []ContentItem{{Type: "output_text", Text: "{}"}}},
		}}, false},
		{"other tool", &Envelope{Output: []OutputItem{
			{ToolCalls: []ToolCall{{Type: "web_search"}}},
		}}, false},
		{"empty envelope", &Envelope{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := UsedRetrieval(tc.env); got != tc.want {
				t.Fatalf("UsedRetrieval() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRetrievalProof(t *testing.T) {
	env := &Envelope{Output: []OutputItem{
		{Type: "file_search_call"},
		{ToolCalls: []ToolCall{{Type: "file_search"}}},
	}}

	proof := RetrievalProof(env)
	if !strings.Contains(proof, "output[0]: file_search_call") {
		t.Fatalf("proof = %q, want the file_search_call position", proof)
	}
	if !strings.Contains(proof, "output[1].tool_calls[0]: file_search") {
		t.Fatalf("proof = %q, want the tool_calls position", proof)
	}
}

func TestRetrievedFiles(t *testing.T) {
	env := &Envelope{Output: []OutputItem{
		{Content: []ContentItem{
			{Annotations: []Annotation{
				{Type: "file_citation", Filename: "nkd2025.pdf"},
				{Type: "file_citation", Filename: "kpd2025.pdf"},
				{Type: "file_citation", Filename: "nkd2025.pdf"},
				{Type: "file_citation"},
			}},
		}},
	}}

	files := RetrievedFiles(env)
	if len(files) != 2 {
		t.Fatalf("files = %v, want two distinct filenames", files)
	}
	if files[0] != "nkd2025.pdf" || files[1] != "kpd2025.pdf" {
		t.Fatalf("files = %v, want order of first citation", files)
	}
}
