package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relnotes/internal/config"
	"relnotes/internal/model"
)

func testHistory() model.History {
	return model.History{
		CurrentTag:  "v1.2.0",
		PreviousTag: "v1.1.0",
		Commits: []model.Commit{
			{ShortSHA: "abc1234", Subject: "Fix crash on startup"},
		},
		Stats: " 1 file changed, 2 insertions(+)",
	}
}

func testConfig(endpoint string) config.PromptConfig {
	return config.PromptConfig{
		Endpoint:     endpoint,
		Model:        "gpt-4o",
		SystemPrompt: "You are a release-note writer.",
		Temperature:  0.7,
		MaxTokens:    1500,
	}
}

func TestNotesSendsChatCompletionRequest(t *testing.T) {
	var got struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"## v1.2.0\n\nリリースノート"}}]}`))
	}))
	defer srv.Close()

	client := NewClient("tok-123", testConfig(srv.URL))
	notes, err := client.Notes(testHistory())
	require.NoError(t, err)
	assert.Equal(t, "## v1.2.0\n\nリリースノート", notes)

	assert.Equal(t, "gpt-4o", got.Model)
	assert.Equal(t, float32(0.7), got.Temperature)
	assert.Equal(t, 1500, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Contains(t, got.Messages[1].Content, "- Fix crash on startup (abc1234)")
	assert.Contains(t, got.Messages[1].Content, " 1 file changed, 2 insertions(+)")
}

func TestNotesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient("tok", testConfig(srv.URL)).Notes(testHistory())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNotesMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	_, err := NewClient("tok", testConfig(srv.URL)).Notes(testHistory())
	require.Error(t, err)
}

func TestNotesEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient("tok", testConfig(srv.URL)).Notes(testHistory())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestNotesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewClient("tok", testConfig(srv.URL)).Notes(testHistory())
	require.Error(t, err)
}
