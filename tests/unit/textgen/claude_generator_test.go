package textgen_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstmitra/internal/config"
	"gstmitra/internal/port"
	"gstmitra/internal/textgen"
	"gstmitra/internal/textgen/claude"
)

func claudeTestConfig() *config.GeneratorProviderConfig {
	return &config.GeneratorProviderConfig{
		Provider: "claude",
		APIKey:   "test-key",
	}
}

func TestClaudeGenerator_Success(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [
				{"type": "text", "text": "GSTR-3B is due "},
				{"type": "text", "text": "by the 20th."}
			],
			"stop_reason": "end_turn"
		}`))
	}))
	defer server.Close()

	gen := claude.NewGeneratorWithEndpoint(claudeTestConfig(), server.URL)

	out, err := gen.Generate(context.Background(), port.GenerateInput{Prompt: "When is GSTR-3B due?", MaxTokens: 256})

	require.NoError(t, err)
	assert.Equal(t, "GSTR-3B is due by the 20th.", out.Text)
	assert.Equal(t, "claude-sonnet-4-20250514", out.ModelUsed)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", gotHeaders.Get("anthropic-version"))
	assert.Equal(t, float64(256), gotBody["max_tokens"])
}

func TestClaudeGenerator_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"type": "rate_limit_error"}}`))
	}))
	defer server.Close()

	gen := claude.NewGeneratorWithEndpoint(claudeTestConfig(), server.URL)

	_, err := gen.Generate(context.Background(), port.GenerateInput{Prompt: "q"})

	var rlErr *textgen.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "claude", rlErr.Provider)
	assert.Equal(t, 30.0, rlErr.RetryAfter.Seconds())
}

func TestClaudeGenerator_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"type": "api_error"}}`))
	}))
	defer server.Close()

	gen := claude.NewGeneratorWithEndpoint(claudeTestConfig(), server.URL)

	_, err := gen.Generate(context.Background(), port.GenerateInput{Prompt: "q"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	var rlErr *textgen.RateLimitError
	assert.False(t, errors.As(err, &rlErr))
}

func TestClaudeGenerator_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": [], "stop_reason": "end_turn"}`))
	}))
	defer server.Close()

	gen := claude.NewGeneratorWithEndpoint(claudeTestConfig(), server.URL)

	_, err := gen.Generate(context.Background(), port.GenerateInput{Prompt: "q"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestClaudeGenerator_ModelOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-haiku-3-5", body["model"])
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "ok"}]}`))
	}))
	defer server.Close()

	cfg := claudeTestConfig()
	cfg.DefaultModel = "claude-haiku-3-5"
	gen := claude.NewGeneratorWithEndpoint(cfg, server.URL)

	out, err := gen.Generate(context.Background(), port.GenerateInput{Prompt: "q"})

	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-3-5", out.ModelUsed)
}
