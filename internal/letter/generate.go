package letter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/prompts"
	"github.com/jonathan/coverletter-generator/internal/types"
)

// DraftOptions carries the inputs for the initial letter draft
type DraftOptions struct {
	JobDescription  string
	PersonalHistory string
	Tone            string
	Profile         *types.CompanyProfile
}

// Draft generates the first cut of the cover letter. When a company profile
// with usable content is provided, the personalized variant of the prompt is
// used so the letter can reference the company's mission and news.
func Draft(ctx context.Context, client llm.Client, opts DraftOptions) (string, error) {
	if client == nil {
		return "", fmt.Errorf("LLM client is required")
	}
	if strings.TrimSpace(opts.JobDescription) == "" {
		return "", fmt.Errorf("job description is empty")
	}
	if strings.TrimSpace(opts.PersonalHistory) == "" {
		return "", fmt.Errorf("personal history is empty")
	}

	system, err := SystemPrompt(opts.Tone)
	if err != nil {
		return "", err
	}

	data := map[string]string{
		"System":          system,
		"JobDescription":  opts.JobDescription,
		"PersonalHistory": opts.PersonalHistory,
	}

	key := "draft"
	if !opts.Profile.IsEmpty() {
		key = "draft-with-company"
		data["CompanyInfo"] = opts.Profile.Render()
	}

	template, err := prompts.Get("letter.json", key)
	if err != nil {
		return "", err
	}

	result, err := client.GenerateContent(ctx, prompts.Format(template, data), llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("letter draft failed: %w", err)
	}

	return cleanLetter(result)
}

// cleanLetter normalizes LLM output into plain letter text
func cleanLetter(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("model returned an empty letter")
	}
	return text, nil
}
