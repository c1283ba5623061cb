package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/prompts"
	ischemas "github.com/jonathan/coverletter-generator/internal/schemas"
	"github.com/jonathan/coverletter-generator/internal/types"
	"github.com/jonathan/coverletter-generator/schemas"
)

// maxJobDescriptionBytes caps how much of the job description is sent for gap analysis
const maxJobDescriptionBytes = 24 * 1024

// AnalyzeGaps compares the job description's requirements against the
// candidate's skills and identifies missing and transferable skills.
func AnalyzeGaps(ctx context.Context, client llm.Client, jobDescription string, candidateSkills []string) (*types.SkillAssessment, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description is empty")
	}
	if len(jobDescription) > maxJobDescriptionBytes {
		jobDescription = jobDescription[:maxJobDescriptionBytes]
	}

	template, err := prompts.Get("skills.json", "gap-analysis")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"JobDescription":  jobDescription,
		"CandidateSkills": strings.Join(candidateSkills, ", "),
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("gap analysis failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := ischemas.ValidateJSONString(schemas.SkillAssessment(), raw); err != nil {
		return nil, fmt.Errorf("gap analysis response invalid: %w", err)
	}

	var assessment types.SkillAssessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		return nil, fmt.Errorf("failed to parse gap analysis response: %w", err)
	}

	assessment.CandidateSkills = candidateSkills
	return &assessment, nil
}

// Assess runs skill extraction followed by gap analysis
func Assess(ctx context.Context, client llm.Client, jobDescription, personalHistory string) (*types.SkillAssessment, error) {
	candidateSkills, err := ExtractCandidateSkills(ctx, client, personalHistory)
	if err != nil {
		return nil, err
	}
	return AnalyzeGaps(ctx, client, jobDescription, candidateSkills)
}
