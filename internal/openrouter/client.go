package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/sdko-org/website-generator/internal/config"
	"github.com/sirupsen/logrus"
)

// Generation is the outcome of one structured website generation call.
type Generation struct {
	HTML             string
	ID               string
	DurationMs       int64
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Client struct {
	chat       *openai.Client
	httpClient *http.Client
	cfg        *config.Config
	log        *logrus.Entry
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

func NewClient(logger *logrus.Logger, cfg *config.Config) *Client {
	chatConfig := openai.DefaultConfig(cfg.OpenRouterAPIKey)
	chatConfig.BaseURL = cfg.OpenRouterBaseURL

	// OpenRouter attributes traffic via these optional headers.
	if cfg.OpenRouterReferrer != "" || cfg.OpenRouterTitle != "" {
		h := http.Header{}
		if cfg.OpenRouterReferrer != "" {
			h.Set("HTTP-Referer", cfg.OpenRouterReferrer)
		}
		if cfg.OpenRouterTitle != "" {
			h.Set("X-Title", cfg.OpenRouterTitle)
		}
		chatConfig.HTTPClient = &http.Client{
			Transport: headerTransport{rt: http.DefaultTransport, headers: h},
		}
	}

	return &Client{
		chat:       openai.NewClientWithConfig(chatConfig),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
		log:        logger.WithField("component", "openrouter_client"),
	}
}

// websiteSchema constrains the completion to a single-field object so the
// model cannot wrap the document in prose or markdown fences.
var websiteSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"html": {
			Type:        jsonschema.String,
			Description: "Complete self-contained HTML document with all CSS in <style> tags and all JavaScript in <script> tags",
		},
	},
	Required:             []string{"html"},
	AdditionalProperties: false,
}

type websiteObject struct {
	HTML string `json:"html"`
}

// GenerateWebsite issues one structured generation request. There is no retry
// here: a failed or malformed generation aborts the run and the next
// scheduled trigger starts fresh.
func (c *Client) GenerateWebsite(ctx context.Context, model, prompt string) (*Generation, error) {
	log := c.log.WithFields(logrus.Fields{
		"operation": "generate_website",
		"model":     model,
	})

	start := time.Now()
	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "website",
				Schema: &websiteSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		log.WithError(err).Error("Generation request failed")
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	durationMs := time.Since(start).Milliseconds()

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("generation returned no choices")
	}

	var website websiteObject
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &website); err != nil {
		return nil, fmt.Errorf("failed to decode structured generation output: %w", err)
	}
	if website.HTML == "" {
		return nil, fmt.Errorf("generation returned empty html")
	}

	log.WithFields(logrus.Fields{
		"duration_ms":   durationMs,
		"prompt_tokens": resp.Usage.PromptTokens,
		"total_tokens":  resp.Usage.TotalTokens,
	}).Info("Website generated")

	return &Generation{
		HTML:             website.HTML,
		ID:               resp.ID,
		DurationMs:       durationMs,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

type costResponse struct {
	Data struct {
		TotalCost float64 `json:"total_cost"`
	} `json:"data"`
}

// GenerationCost fetches the USD cost recorded for a completed generation.
// Callers treat any error as "cost unknown"; this lookup never fails a run.
func (c *Client) GenerationCost(ctx context.Context, generationID string) (float64, error) {
	if generationID == "" {
		return 0, fmt.Errorf("generation id is empty")
	}

	url := fmt.Sprintf("%s/generation?id=%s", c.cfg.OpenRouterBaseURL, generationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build cost request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenRouterAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("cost request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("cost request returned status %d", resp.StatusCode)
	}

	var cost costResponse
	if err := json.NewDecoder(resp.Body).Decode(&cost); err != nil {
		return 0, fmt.Errorf("failed to decode cost response: %w", err)
	}

	return cost.Data.TotalCost, nil
}
