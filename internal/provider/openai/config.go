package openai

import "time"

// Config carries the parameters needed to reach the Responses API.
// It is constructed once at startup from the service configuration and
// treated as immutable afterwards.
type Config struct {
	BaseURL         string
	APIKey          string
	Project         string
	Model           string
	ReasoningEffort string
	Timeout         time.Duration
}
