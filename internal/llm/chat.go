// Package llm - chat.go implements Client for OpenAI-compatible chat completion APIs.
// DeepSeek exposes the same wire format as OpenAI, so both providers share this client.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// OpenAIEndpoint is the OpenAI chat completions endpoint
	OpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	// DeepSeekEndpoint is the DeepSeek chat completions endpoint
	DeepSeekEndpoint = "https://api.deepseek.com/v1/chat/completions"
)

// ChatCompletionsClient implements Client for OpenAI-compatible providers
type ChatCompletionsClient struct {
	config     *Config
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewChatCompletionsClient creates a client for an OpenAI-compatible endpoint
func NewChatCompletionsClient(config *Config, apiKey, endpoint string) (*ChatCompletionsClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &ChatCompletionsClient{
		config:   config,
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	Temperature    float64             `json:"temperature"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateContent generates text content using the specified model tier
func (c *ChatCompletionsClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.complete(ctx, prompt, tier, 0.4, nil)
}

// GenerateJSON generates JSON content using the specified model tier
func (c *ChatCompletionsClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.complete(ctx, prompt, tier, 0.1, &chatResponseFormat{Type: "json_object"})
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// GetModel returns the model name for a tier
func (c *ChatCompletionsClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *ChatCompletionsClient) Close() error {
	return nil
}

func (c *ChatCompletionsClient) complete(ctx context.Context, prompt string, tier ModelTier, temperature float64, format *chatResponseFormat) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	body := chatRequest{
		Model:          modelName,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		Temperature:    temperature,
		ResponseFormat: format,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("provider error (HTTP %d): %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("provider error: HTTP %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return parsed.Choices[0].Message.Content, nil
}
