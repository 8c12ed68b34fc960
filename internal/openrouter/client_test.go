package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sdko-org/website-generator/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestClient(baseURL string) *Client {
	return NewClient(testLogger(), &config.Config{
		OpenRouterAPIKey:  "test-key",
		OpenRouterBaseURL: baseURL,
	})
}

func chatCompletionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":     "gen-abc123",
		"object": "chat.completion",
		"model":  "openai/gpt-5",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
			},
		},
		"usage": map[string]interface{}{
			"prompt_tokens":     120,
			"completion_tokens": 3400,
			"total_tokens":      3520,
		},
	}
}

func TestGenerateWebsite(t *testing.T) {
	var capturedBody map[string]interface{}
	var capturedAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedBody))

		content, _ := json.Marshal(map[string]string{"html": "<html><body>generated</body></html>"})
		json.NewEncoder(w).Encode(chatCompletionResponse(string(content)))
	}))
	defer ts.Close()

	gen, err := newTestClient(ts.URL).GenerateWebsite(context.Background(), "openai/gpt-5", "make a website")
	require.NoError(t, err)

	assert.Equal(t, "<html><body>generated</body></html>", gen.HTML)
	assert.Equal(t, "gen-abc123", gen.ID)
	assert.Equal(t, 120, gen.PromptTokens)
	assert.Equal(t, 3400, gen.CompletionTokens)
	assert.Equal(t, 3520, gen.TotalTokens)
	assert.GreaterOrEqual(t, gen.DurationMs, int64(0))

	assert.Equal(t, "Bearer test-key", capturedAuth)
	assert.Equal(t, "openai/gpt-5", capturedBody["model"])

	// The request must constrain output to the single-field html schema.
	format, ok := capturedBody["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]interface{})["schema"].(map[string]interface{})
	_, hasHTML := schema["properties"].(map[string]interface{})["html"]
	assert.True(t, hasHTML)
}

func TestGenerateWebsiteMissingUsageDefaultsToZero(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := chatCompletionResponse(`{"html":"<html></html>"}`)
		delete(resp, "usage")
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	gen, err := newTestClient(ts.URL).GenerateWebsite(context.Background(), "openai/gpt-5", "p")
	require.NoError(t, err)
	assert.Zero(t, gen.PromptTokens)
	assert.Zero(t, gen.CompletionTokens)
	assert.Zero(t, gen.TotalTokens)
}

func TestGenerateWebsiteRejectsMalformedOutput(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletionResponse("not json at all"))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GenerateWebsite(context.Background(), "openai/gpt-5", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "structured generation output")
}

func TestGenerateWebsiteRejectsEmptyHTML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatCompletionResponse(`{"html":""}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GenerateWebsite(context.Background(), "openai/gpt-5", "p")
	require.Error(t, err)
}

func TestGenerationCost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generation", r.URL.Path)
		assert.Equal(t, "gen-abc123", r.URL.Query().Get("id"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"total_cost": 0.0123},
		})
	}))
	defer ts.Close()

	cost, err := newTestClient(ts.URL).GenerationCost(context.Background(), "gen-abc123")
	require.NoError(t, err)
	assert.Equal(t, 0.0123, cost)
}

func TestGenerationCostNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GenerationCost(context.Background(), "gen-abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGenerationCostEmptyID(t *testing.T) {
	_, err := newTestClient("http://unused").GenerationCost(context.Background(), "")
	require.Error(t, err)
}
