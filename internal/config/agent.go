package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kpdinfo/kpdinfo/internal/classify"
)

const (
	// Provider credentials keep their conventional names so existing
	// deployments and .env files work unchanged.
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvOpenAIProject = "OPENAI_PROJECT"
	EnvVSNKDID       = "VS_NKD_ID"
	EnvVSKPDID       = "VS_KPD_ID"

	EnvAgentBaseURL         = "KPD_AGENT_BASE_URL"
	EnvAgentModel           = "KPD_AGENT_MODEL"
	EnvAgentReasoningEffort = "KPD_AGENT_REASONING_EFFORT"
	EnvAgentTimeout         = "KPD_AGENT_TIMEOUT"
	EnvAgentGrounding       = "KPD_AGENT_GROUNDING"
)

// FallbackVectorStoreID is used when neither VS_NKD_ID nor VS_KPD_ID is set.
const FallbackVectorStoreID = "vs_68f0cfbb2d9081918800e3eb92d9d483"

// AgentConfig holds the generative-completion provider settings.
type AgentConfig struct {
	BaseURL         string `toml:"base_url"`
	APIKey          string `toml:"api_key"`
	Project         string `toml:"project"`
	Model           string `toml:"model"`
	ReasoningEffort string `toml:"reasoning_effort"`
	VectorStoreNKD  string `toml:"vs_nkd_id"`
	VectorStoreKPD  string `toml:"vs_kpd_id"`
	Timeout         string `toml:"timeout"`
	Grounding       string `toml:"grounding"`
}

// VectorStoreIDs returns the configured vector store identifiers, falling
// back to the baked-in store when none are configured.
func (c *AgentConfig) VectorStoreIDs() []string {
	var ids []string
	if c.VectorStoreNKD != "" {
		ids = append(ids, c.VectorStoreNKD)
	}
	if c.VectorStoreKPD != "" {
		ids = append(ids, c.VectorStoreKPD)
	}
	if len(ids) == 0 {
		ids = append(ids, FallbackVectorStoreID)
	}
	return ids
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *AgentConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AgentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Project != "" {
		c.Project = overlay.Project
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.ReasoningEffort != "" {
		c.ReasoningEffort = overlay.ReasoningEffort
	}
	if overlay.VectorStoreNKD != "" {
		c.VectorStoreNKD = overlay.VectorStoreNKD
	}
	if overlay.VectorStoreKPD != "" {
		c.VectorStoreKPD = overlay.VectorStoreKPD
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.Grounding != "" {
		c.Grounding = overlay.Grounding
	}
}

func (c *AgentConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-5"
	}
	if c.ReasoningEffort == "" {
		c.ReasoningEffort = "low"
	}
	if c.Timeout == "" {
		c.Timeout = "80s"
	}
	if c.Grounding == "" {
		c.Grounding = string(classify.GroundingStrict)
	}
}

func (c *AgentConfig) loadEnv() {
	if v := os.Getenv(EnvOpenAIAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvOpenAIProject); v != "" {
		c.Project = v
	}
	if v := os.Getenv(EnvVSNKDID); v != "" {
		c.VectorStoreNKD = v
	}
	if v := os.Getenv(EnvVSKPDID); v != "" {
		c.VectorStoreKPD = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvAgentReasoningEffort); v != "" {
		c.ReasoningEffort = v
	}
	if v := os.Getenv(EnvAgentTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvAgentGrounding); v != "" {
		c.Grounding = v
	}
}

func (c *AgentConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	switch classify.GroundingPolicy(c.Grounding) {
	case classify.GroundingStrict, classify.GroundingWarn:
	default:
		return fmt.Errorf("invalid grounding policy: %s", c.Grounding)
	}
	switch c.ReasoningEffort {
	case "minimal", "low", "medium", "high":
	default:
		return fmt.Errorf("invalid reasoning_effort: %s", c.ReasoningEffort)
	}
	return nil
}
