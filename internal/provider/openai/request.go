package openai

import "encoding/json"

// Request describes a single structured-output completion request.
// When VectorStores is non-empty the file_search tool is attached,
// bound to those stores, and forced via tool_choice so the model must
// search the reference documents before answering.
type Request struct {
	Instructions string
	Input        string
	SchemaName   string
	Schema       map[string]any
	VectorStores []string
}

type payload struct {
	Model         string          `json:"model"`
	Input         []inputMessage  `json:"input"`
	Text          *textFormat     `json:"text,omitempty"`
	Reasoning     *reasoning      `json:"reasoning,omitempty"`
	Tools         []tool          `json:"tools,omitempty"`
	ToolResources *toolResources  `json:"tool_resources,omitempty"`
	ToolChoice    json.RawMessage `json:"tool_choice,omitempty"`
}

type inputMessage struct {
	Role    string         `json:"role"`
	Content []inputContent `json:"content"`
}

type inputContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type textFormat struct {
	Format schemaFormat `json:"format"`
}

type schemaFormat struct {
	Type   string         `json:"type"`
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
	Strict bool           `json:"strict"`
}

type reasoning struct {
	Effort string `json:"effort"`
}

type tool struct {
	Type string `json:"type"`
}

type toolResources struct {
	FileSearch fileSearchResources `json:"file_search"`
}

type fileSearchResources struct {
	VectorStoreIDs []string `json:"vector_store_ids"`
}

func (c *Client) buildPayload(req Request) *payload {
	p := &payload{
		Model: c.cfg.Model,
		Input: []inputMessage{
			{Role: "system", Content: []inputContent{{Type: "input_text", Text: req.Instructions}}},
			{Role: "user", Content: []inputContent{{Type: "input_text", Text: req.Input}}},
		},
		Text: &textFormat{
			Format: schemaFormat{
				Type:   "json_schema",
				Name:   req.SchemaName,
				Schema: req.Schema,
				Strict: true,
			},
		},
	}

	if c.cfg.ReasoningEffort != "" {
		p.Reasoning = &reasoning{Effort: c.cfg.ReasoningEffort}
	}

	if len(req.VectorStores) > 0 {
		p.Tools = []tool{{Type: "file_search"}}
		p.ToolResources = &toolResources{
			FileSearch: fileSearchResources{VectorStoreIDs: req.VectorStores},
		}
		p.ToolChoice = json.RawMessage(`{"type":"file_search"}`)
	}

	return p
}
