package openai

import (
	"fmt"
	"strings"
)

// UsedRetrieval reports whether the envelope shows evidence that the
// file_search tool was actually invoked. Both known reporting forms are
// checked: tool_calls entries on output items, and tool_use content items.
func UsedRetrieval(env *Envelope) bool {
	for _, item := range env.Output {
		if item.Type == "file_search_call" {
			return true
		}
		for _, tc := range item.ToolCalls {
			if toolType(tc) == "file_search" {
				return true
			}
		}
		for _, content := range item.Content {
			if isFileSearchUse(content) {
				return true
			}
		}
	}
	return false
}

// RetrievalProof returns a short description of where retrieval evidence
// was found in the envelope, for logging.
func RetrievalProof(env *Envelope) string {
	var proofs []string
	for i, item := range env.Output {
		if item.Type == "file_search_call" {
			proofs = append(proofs, fmt.Sprintf("output[%d]: file_search_call", i))
		}
		for j, tc := range item.ToolCalls {
			if toolType(tc) == "file_search" {
				proofs = append(proofs, fmt.Sprintf("output[%d].tool_calls[%d]: file_search", i, j))
			}
		}
		for k, content := range item.Content {
			if isFileSearchUse(content) {
				proofs = append(proofs, fmt.Sprintf("output[%d].content[%d]: tool_use:file_search", i, k))
			}
		}
	}
	return strings.Join(proofs, " | ")
}

// RetrievedFiles returns the distinct document filenames cited in
// retrieval annotations.
func RetrievedFiles(env *Envelope) []string {
	seen := make(map[string]struct{})
	var files []string
	for _, item := range env.Output {
		for _, content := range item.Content {
			for _, a := range content.Annotations {
				if a.Filename == "" {
					continue
				}
				if _, ok := seen[a.Filename]; ok {
					continue
				}
				seen[a.Filename] = struct{}{}
				files = append(files, a.Filename)
			}
		}
	}
	return files
}

func toolType(tc ToolCall) string {
	if tc.Type != "" {
		return tc.Type
	}
	return tc.ToolType
}

func isFileSearchUse(content ContentItem) bool {
	return content.Type == "tool_use" &&
		(content.Name == "file_search" || content.ToolName == "file_search")
}
