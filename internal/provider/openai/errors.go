package openai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kpdinfo/kpdinfo/pkg/formatting"
)

// Sentinel errors for provider call outcomes.
var (
	// ErrTimeout indicates the provider did not respond within the configured deadline.
	ErrTimeout = errors.New("provider request timed out")

	// ErrParse indicates no extraction strategy yielded a JSON object from the envelope.
	ErrParse = errors.New("provider response did not contain a parseable JSON object")
)

// maxDiagnosticLen bounds response body samples carried inside errors.
const maxDiagnosticLen = 300

// TransportError reports a non-success HTTP status from the provider.
// Body holds a truncated sample of the response for diagnostics.
type TransportError struct {
	Status       int
	Body         string
	CorpusConfig bool
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider returned HTTP %d: %s", e.Status, e.Body)
}

// newTransportError builds a TransportError from a failed response,
// truncating the body and tagging vector-store configuration failures.
// The tag is assigned here, at the point of creation, so callers can
// switch on it without inspecting message text.
func newTransportError(status int, body string) *TransportError {
	return &TransportError{
		Status:       status,
		Body:         formatting.Truncate(body, maxDiagnosticLen),
		CorpusConfig: indicatesCorpusConfig(status, body),
	}
}

func indicatesCorpusConfig(status int, body string) bool {
	if status != 400 && status != 404 {
		return false
	}

	lower := strings.ToLower(body)
	for _, marker := range []string{"vector_store", "vector store", "file_search", "tool_resources"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsCorpusConfig reports whether err is a TransportError tagged as a
// retrieval-corpus configuration failure.
func IsCorpusConfig(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.CorpusConfig
}
