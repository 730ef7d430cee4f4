// Package llm holds a minimal HTTP client for OpenAI-compatible
// chat-completions endpoints (GitHub Models by default).
package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"relnotes/internal/config"
	"relnotes/internal/model"
	"relnotes/internal/prompt"
)

// Client issues one chat-completions request per Notes call.
type Client struct {
	token      string
	cfg        config.PromptConfig
	httpClient *http.Client
}

func NewClient(token string, cfg config.PromptConfig) *Client {
	return &Client{
		token: token,
		cfg:   cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Notes sends the system + user prompts and returns the generated text.
func (c *Client) Notes(h model.History) (string, error) {
	payload := map[string]any{
		"messages": []map[string]string{
			{"role": "system", "content": c.cfg.SystemPrompt},
			{"role": "user", "content": prompt.Build(h)},
		},
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  c.cfg.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("model endpoint responded with status %s", resp.Status)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
