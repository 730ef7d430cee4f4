package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Environment variable names read by the tool.
const (
	EnvCurrentTag  = "CURRENT_TAG"
	EnvPreviousTag = "PREVIOUS_TAG"
	EnvToken       = "GITHUB_TOKEN"
)

const defaultEndpoint = "https://models.inference.ai.azure.com/chat/completions"

// PromptConfig is kept intentionally small so it is easy to tweak for
// experiments. Every field has a working default.
type PromptConfig struct {
	Endpoint     string  `json:"endpoint"`
	Model        string  `json:"model"`
	SystemPrompt string  `json:"system_prompt"`
	Temperature  float32 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
}

// Load reads the optional JSON config at path and backfills defaults. A
// missing file is not an error; an empty path skips reading entirely.
func Load(path string) (PromptConfig, error) {
	var cfg PromptConfig

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return PromptConfig{}, fmt.Errorf("read config: %w", err)
		default:
			if err := json.Unmarshal(raw, &cfg); err != nil {
				return PromptConfig{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1500
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = "You are a helpful assistant that generates professional release notes in Japanese."
	}

	return cfg, nil
}
