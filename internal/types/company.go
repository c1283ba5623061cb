// Package types provides type definitions for structured data used throughout the cover letter generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// CompanyProfile represents synthesized company information gathered from web research
type CompanyProfile struct {
	Company    string   `json:"company"`
	Overview   string   `json:"overview"`
	Mission    string   `json:"mission"`
	Culture    string   `json:"culture"`
	RecentNews []string `json:"recent_news"`
	Products   []string `json:"products"`
	SourceURLs []string `json:"source_urls"`
}

// Source represents a single web source consulted during research
type Source struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// Render formats the profile as a text block suitable for inclusion in a prompt.
// Empty sections are omitted so the LLM is not fed placeholder noise.
func (p *CompanyProfile) Render() string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	if p.Company != "" {
		sb.WriteString(fmt.Sprintf("Company: %s\n", p.Company))
	}
	if p.Overview != "" {
		sb.WriteString(fmt.Sprintf("Overview: %s\n", p.Overview))
	}
	if p.Mission != "" {
		sb.WriteString(fmt.Sprintf("Mission and values: %s\n", p.Mission))
	}
	if p.Culture != "" {
		sb.WriteString(fmt.Sprintf("Culture: %s\n", p.Culture))
	}
	if len(p.Products) > 0 {
		sb.WriteString(fmt.Sprintf("Known for: %s\n", strings.Join(p.Products, "; ")))
	}
	if len(p.RecentNews) > 0 {
		sb.WriteString(fmt.Sprintf("Recent news: %s\n", strings.Join(p.RecentNews, "; ")))
	}
	return strings.TrimSpace(sb.String())
}

// IsEmpty reports whether the profile carries any usable research content
func (p *CompanyProfile) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Overview == "" && p.Mission == "" && p.Culture == "" &&
		len(p.RecentNews) == 0 && len(p.Products) == 0
}
