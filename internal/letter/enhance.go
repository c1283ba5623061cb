package letter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/prompts"
	"github.com/jonathan/coverletter-generator/internal/types"
)

// EnhanceOptions carries the inputs for the revision pass
type EnhanceOptions struct {
	JobDescription  string
	PersonalHistory string
	Draft           string
	Tone            string
	Assessment      *types.SkillAssessment
	Profile         *types.CompanyProfile
}

// Enhance revises the draft using the skill gap analysis. Gaps are addressed
// by emphasizing transferable strengths rather than inventing experience.
func Enhance(ctx context.Context, client llm.Client, opts EnhanceOptions) (string, error) {
	if client == nil {
		return "", fmt.Errorf("LLM client is required")
	}
	if strings.TrimSpace(opts.Draft) == "" {
		return "", fmt.Errorf("draft letter is empty")
	}

	system, err := SystemPrompt(opts.Tone)
	if err != nil {
		return "", err
	}

	companySection := ""
	if !opts.Profile.IsEmpty() {
		sectionTemplate, err := prompts.Get("letter.json", "enhance-company-section")
		if err != nil {
			return "", err
		}
		companySection = prompts.Format(sectionTemplate, map[string]string{
			"CompanyInfo": opts.Profile.Render(),
		})
	}

	var missing, transferable []string
	if opts.Assessment != nil {
		missing = opts.Assessment.MissingSkills
		transferable = opts.Assessment.Transferable
	}

	template, err := prompts.Get("letter.json", "enhance")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"System":          system,
		"JobDescription":  opts.JobDescription,
		"PersonalHistory": opts.PersonalHistory,
		"Draft":           opts.Draft,
		"MissingSkills":   skillList(missing),
		"Transferable":    skillList(transferable),
		"CompanySection":  companySection,
	})

	result, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("letter enhancement failed: %w", err)
	}

	return cleanLetter(result)
}

// skillList formats a skill slice for prompt inclusion
func skillList(skills []string) string {
	if len(skills) == 0 {
		return "none"
	}
	return strings.Join(skills, "; ")
}
