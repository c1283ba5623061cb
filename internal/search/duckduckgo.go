package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ddgEndpoint is the DuckDuckGo lite HTML interface, which is stable enough to scrape
const ddgEndpoint = "https://lite.duckduckgo.com/lite/"

// DuckDuckGo implements Provider by scraping DuckDuckGo's lite HTML interface.
// It requires no API key, making it the default research backend.
type DuckDuckGo struct {
	endpoint string
	client   *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo search provider
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		endpoint: ddgEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Name identifies the provider for logging
func (d *DuckDuckGo) Name() string { return "duckduckgo" }

// Search posts a query to the lite interface and parses the result table
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty")
	}

	form := url.Values{}
	form.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return parseLiteResults(doc), nil
}

// parseLiteResults extracts results from the lite page: links carry the
// "result-link" class and snippets follow in "result-snippet" cells.
func parseLiteResults(doc *goquery.Document) []Result {
	var results []Result

	snippets := doc.Find("td.result-snippet").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})

	doc.Find("a.result-link").EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		title := strings.TrimSpace(s.Text())
		if !ok || href == "" || title == "" {
			return true
		}

		// The lite interface sometimes wraps targets in a redirect URL
		if u, err := url.Parse(href); err == nil {
			if target := u.Query().Get("uddg"); target != "" {
				href = target
			}
		}
		if strings.Contains(href, "duckduckgo.com") || strings.HasPrefix(href, "/") {
			return true
		}

		snippet := ""
		if i < len(snippets) {
			snippet = snippets[i]
		}

		results = append(results, Result{Title: title, URL: href, Snippet: snippet})
		return len(results) < maxResults
	})

	return results
}
