package openai

import "encoding/json"

// Envelope mirrors the loosely-structured response returned by the
// Responses API. Its shape has drifted across provider revisions, so
// every field is optional and extraction is delegated to the ordered
// strategies in extract.go.
type Envelope struct {
	Model        string          `json:"model"`
	OutputParsed json.RawMessage `json:"output_parsed"`
	OutputText   string          `json:"output_text"`
	Output       []OutputItem    `json:"output"`
}

// OutputItem is one entry of the envelope's output array.
type OutputItem struct {
	Type      string          `json:"type"`
	Parsed    json.RawMessage `json:"parsed"`
	Content   []ContentItem   `json:"content"`
	ToolCalls []ToolCall      `json:"tool_calls"`
}

// ContentItem is one entry of an output item's content array.
type ContentItem struct {
	Type        string          `json:"type"`
	JSON        json.RawMessage `json:"json"`
	Text        string          `json:"text"`
	Name        string          `json:"name"`
	ToolName    string          `json:"tool_name"`
	Annotations []Annotation    `json:"annotations"`
}

// ToolCall records a tool invocation reported by the provider.
// Older revisions used tool_type instead of type.
type ToolCall struct {
	Type     string `json:"type"`
	ToolType string `json:"tool_type"`
}

// Annotation carries a retrieval citation attached to generated content.
type Annotation struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
}
