// Package research provides company research for cover letter personalization:
// company name extraction from job descriptions, web search, page fetching,
// and LLM summarization into a company profile.
package research

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/prompts"
)

// companyPatterns are tried in order against the job description before
// falling back to an LLM call. Each has exactly one capture group.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Company:?[ \t]*([A-Z][A-Za-z0-9 &,.-]+?)[ \t]*(?:\n|\.|\(|:|$)`),
	regexp.MustCompile(`About[ \t]+([A-Z][A-Za-z0-9 &,.-]+?)[ \t]*(?:\n|\.|\(|:|$)`),
	regexp.MustCompile(`([A-Z][A-Za-z0-9 &,.-]+?)[ \t]+is[ \t]+(?:a|an)[ \t]+(?:leading|innovative|growing)`),
	regexp.MustCompile(`Job[ \t]+at[ \t]+([A-Z][A-Za-z0-9 &,.-]+?)[ \t]*(?:\n|\.|\(|:|$)`),
	regexp.MustCompile(`Join[ \t]+(?:the[ \t]+)?(?:team[ \t]+at[ \t]+)?([A-Z][A-Za-z0-9 &,.-]+?)[ \t]*(?:\n|\.|\(|:|$)`),
	regexp.MustCompile(`Welcome[ \t]+to[ \t]+([A-Z][A-Za-z0-9 &,.-]+?)[ \t]*(?:\n|\.|\(|:|$)`),
}

// maxNameExtractionInput limits how much of the job description is sent to the
// LLM for name extraction; the company is almost always named near the top.
const maxNameExtractionInput = 1000

// ExtractCompanyName extracts the company name from a job description.
// Pattern matching is tried first; if no pattern matches and a client is
// provided, the LLM is asked to identify the company.
func ExtractCompanyName(ctx context.Context, jobDescription string, client llm.Client) (string, error) {
	if name := matchCompanyName(jobDescription); name != "" {
		return name, nil
	}

	if client == nil {
		return "", fmt.Errorf("could not identify company name")
	}

	input := jobDescription
	if len(input) > maxNameExtractionInput {
		input = input[:maxNameExtractionInput]
	}

	template, err := prompts.Get("research.json", "extract-company-name")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{"JobDescription": input})

	result, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("company name extraction failed: %w", err)
	}

	name := strings.TrimSpace(result)
	// A plausible company name is short; anything longer means the model rambled
	if name == "" || len(name) >= 100 {
		return "", fmt.Errorf("could not identify company name")
	}
	return name, nil
}

// matchCompanyName applies the direct-mention patterns
func matchCompanyName(jobDescription string) string {
	for _, pattern := range companyPatterns {
		if matches := pattern.FindStringSubmatch(jobDescription); matches != nil {
			name := strings.TrimSpace(matches[1])
			name = strings.TrimRight(name, ",.-")
			if name != "" {
				return name
			}
		}
	}
	return ""
}
