package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// tavilyEndpoint is the Tavily search API endpoint
const tavilyEndpoint = "https://api.tavily.com/search"

// Tavily implements Provider using the Tavily search API
type Tavily struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewTavily creates a Tavily search provider
func NewTavily(apiKey string) *Tavily {
	return &Tavily{
		apiKey:   apiKey,
		endpoint: tavilyEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the provider for logging
func (t *Tavily) Name() string { return "tavily" }

// Search posts a query to Tavily
func (t *Tavily) Search(ctx context.Context, query string) ([]Result, error) {
	if t.apiKey == "" {
		return nil, fmt.Errorf("tavily API key is missing")
	}

	body := map[string]any{
		"query":   query,
		"api_key": t.apiKey,
		"depth":   "basic",
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily HTTP %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	results := make([]Result, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Content})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}
