package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kpdinfo/kpdinfo/pkg/middleware"
	"github.com/kpdinfo/kpdinfo/pkg/pagination"
)

const (
	EnvAPIBasePath    = "KPD_API_BASE_PATH"
	EnvAPIMaxInputLen = "KPD_API_MAX_INPUT_LEN"
)

// CORSEnv maps the CORS config to its environment variables.
func CORSEnv() *middleware.CORSEnv {
	return &middleware.CORSEnv{
		Enabled:          "KPD_CORS_ENABLED",
		Origins:          "KPD_CORS_ORIGINS",
		AllowedMethods:   "KPD_CORS_ALLOWED_METHODS",
		AllowedHeaders:   "KPD_CORS_ALLOWED_HEADERS",
		AllowCredentials: "KPD_CORS_ALLOW_CREDENTIALS",
		MaxAge:           "KPD_CORS_MAX_AGE",
	}
}

// APIConfig holds the API module configuration: base path, CORS policy,
// pagination bounds, and the request input cap.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxInputLen int                   `toml:"max_input_len"`
	CORS        middleware.CORSConfig `toml:"cors"`
	Pagination  pagination.Config     `toml:"pagination"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(CORSEnv()); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxInputLen != 0 {
		c.MaxInputLen = overlay.MaxInputLen
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxInputLen == 0 {
		c.MaxInputLen = 2000
	}
	// The API is consumed cross-origin by the static front-end, so CORS is
	// on by default with an open origin list unless configured otherwise.
	if len(c.CORS.Origins) == 0 {
		c.CORS.Enabled = true
		c.CORS.Origins = []string{"*"}
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxInputLen); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxInputLen = n
		}
	}
}

func (c *APIConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}
	if c.MaxInputLen < 1 {
		return fmt.Errorf("max_input_len must be positive: %d", c.MaxInputLen)
	}
	return nil
}
