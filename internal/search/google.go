package search

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// Google implements Provider using the Google Custom Search JSON API
type Google struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogle creates a Google Custom Search provider
func NewGoogle(ctx context.Context, apiKey, cx string) (*Google, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &Google{
		svc: svc,
		cx:  cx,
	}, nil
}

// Name identifies the provider for logging
func (g *Google) Name() string { return "google" }

// Search runs a query against the configured custom search engine
func (g *Google) Search(ctx context.Context, query string) ([]Result, error) {
	resp, err := g.svc.Cse.List().Context(ctx).Cx(g.cx).Q(query).Num(maxResults).Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}
