package classify

import (
	"context"
)

// System defines the public contract for classification operations.
type System interface {
	Handler() *Handler

	// Classify produces a classification result for a free-text description
	// of a business activity or product.
	Classify(ctx context.Context, input string) (*Result, error)
}

// GroundingPolicy controls what happens when retrieval usage cannot be
// proven from the provider's response.
type GroundingPolicy string

const (
	// GroundingStrict rejects answers without retrieval evidence.
	GroundingStrict GroundingPolicy = "strict"
	// GroundingWarn logs the missing evidence but accepts the answer.
	GroundingWarn GroundingPolicy = "warn"
)

// Settings carries the per-process classification configuration. It is
// constructed once at startup and passed by reference; nothing here
// mutates after construction.
type Settings struct {
	// APIKey is checked for presence only; the provider client holds its
	// own copy for authentication.
	APIKey       string
	VectorStores []string
	Grounding    GroundingPolicy
	MaxInputLen  int
}
