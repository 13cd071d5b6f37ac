// File: internal/services/ai/config.go
package ai

import "fmt"

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Model == "" {
		return fmt.Errorf("OPENAI_MODEL is required")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
	}
}
