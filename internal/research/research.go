package research

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/coverletter-generator/internal/fetch"
	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/search"
	"github.com/jonathan/coverletter-generator/internal/types"
)

// DefaultMaxPages is how many result pages are fetched for corpus building
const DefaultMaxPages = 3

// Options configures a company research run
type Options struct {
	Company    string
	Provider   search.Provider
	Client     llm.Client
	MaxPages   int
	UseBrowser bool
	Verbose    bool
}

// Queries returns the search queries used to build the research corpus
func Queries(company string) []string {
	return []string{
		company + " company overview mission values",
		company + " company culture",
		company + " recent news achievements",
	}
}

// Run researches a company and synthesizes a profile.
// It searches the web, collects snippets, fetches the most relevant pages,
// and asks the LLM to distill the gathered text into a CompanyProfile.
func Run(ctx context.Context, opts Options) (*types.CompanyProfile, []types.Source, error) {
	if opts.Company == "" {
		return nil, nil, fmt.Errorf("company name is required")
	}
	if opts.Provider == nil {
		return nil, nil, fmt.Errorf("search provider is required")
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}

	var sources []types.Source
	seen := make(map[string]bool)

	for _, query := range Queries(opts.Company) {
		results, err := opts.Provider.Search(ctx, query)
		if err != nil {
			// A single failed query should not sink the whole research run
			log.Printf("[Research] Warning: search %q failed: %v", query, err)
			continue
		}
		for _, r := range results {
			if seen[r.URL] {
				continue
			}
			seen[r.URL] = true
			sources = append(sources, types.Source{URL: r.URL, Title: r.Title, Snippet: r.Snippet})
		}
	}

	if len(sources) == 0 {
		return nil, nil, fmt.Errorf("no search results found for %s", opts.Company)
	}

	corpus := buildCorpus(ctx, opts, sources)

	profile, err := SummarizeProfile(ctx, opts.Client, opts.Company, corpus)
	if err != nil {
		return nil, sources, err
	}

	for _, s := range sources {
		profile.SourceURLs = append(profile.SourceURLs, s.URL)
	}
	return profile, sources, nil
}

// buildCorpus assembles the text fed to the summarization prompt:
// all search snippets, plus the extracted body text of the first MaxPages pages.
func buildCorpus(ctx context.Context, opts Options, sources []types.Source) string {
	var sb strings.Builder

	sb.WriteString("## Search results\n")
	for _, s := range sources {
		sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", s.Title, s.URL, s.Snippet))
	}

	fetched := 0
	for _, s := range sources {
		if fetched >= opts.MaxPages {
			break
		}

		text, err := fetch.PageText(ctx, s.URL, nil)
		if err != nil {
			if opts.Verbose {
				log.Printf("[Research] Skipping %s: %v", s.URL, err)
			}
			continue
		}

		if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
			rendered, err := fetch.BrowserPageText(ctx, s.URL, opts.Verbose)
			if err == nil {
				text = rendered
			}
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		sb.WriteString(fmt.Sprintf("\n## Page: %s\n%s\n", s.URL, text))
		fetched++
	}

	return sb.String()
}
