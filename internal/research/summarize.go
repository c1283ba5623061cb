package research

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/prompts"
	ischemas "github.com/jonathan/coverletter-generator/internal/schemas"
	"github.com/jonathan/coverletter-generator/internal/types"
	"github.com/jonathan/coverletter-generator/schemas"
)

// maxCorpusBytes caps the research corpus included in the summarization prompt
const maxCorpusBytes = 48 * 1024

// SummarizeProfile asks the LLM to distill a research corpus into a CompanyProfile.
// The JSON response is validated against the company_profile schema before use.
func SummarizeProfile(ctx context.Context, client llm.Client, company, corpus string) (*types.CompanyProfile, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}
	if len(corpus) > maxCorpusBytes {
		corpus = corpus[:maxCorpusBytes]
	}

	template, err := prompts.Get("research.json", "summarize-profile")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Company": company,
		"Corpus":  corpus,
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("company summarization failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := ischemas.ValidateJSONString(schemas.CompanyProfile(), raw); err != nil {
		return nil, fmt.Errorf("company profile response invalid: %w", err)
	}

	var profile types.CompanyProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to parse company profile: %w", err)
	}

	if profile.Company == "" {
		profile.Company = company
	}
	return &profile, nil
}
