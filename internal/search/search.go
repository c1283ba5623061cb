// Package search provides web search providers for company research.
//
// Available providers:
//
//   - Google Custom Search: requires GOOGLE_SEARCH_API_KEY and GOOGLE_SEARCH_CX
//   - Tavily: requires TAVILY_API_KEY
//   - DuckDuckGo: free, no API key required (scrapes the lite HTML interface)
//
// FromEnv picks the best available provider based on which keys are set,
// falling back to DuckDuckGo so research works out of the box.
package search

import (
	"context"
	"os"
)

// Result represents a single web search result
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Provider is an abstraction over web search backends
type Provider interface {
	// Search runs a query and returns up to a handful of results
	Search(ctx context.Context, query string) ([]Result, error)
	// Name identifies the provider for logging
	Name() string
}

// maxResults caps how many results a provider returns per query
const maxResults = 5

// FromEnv selects a search provider based on available API keys.
// Preference order: Google Custom Search, Tavily, DuckDuckGo.
func FromEnv(ctx context.Context) (Provider, error) {
	if key, cx := os.Getenv("GOOGLE_SEARCH_API_KEY"), os.Getenv("GOOGLE_SEARCH_CX"); key != "" && cx != "" {
		return NewGoogle(ctx, key, cx)
	}
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		return NewTavily(key), nil
	}
	return NewDuckDuckGo(), nil
}
