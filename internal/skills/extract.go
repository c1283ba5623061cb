// Package skills extracts candidate skills from personal history and compares
// them against job requirements to surface gaps worth addressing in a letter.
package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/prompts"
	ischemas "github.com/jonathan/coverletter-generator/internal/schemas"
	"github.com/jonathan/coverletter-generator/schemas"
)

// maxHistoryBytes caps how much personal history is sent for skill extraction
const maxHistoryBytes = 24 * 1024

// ExtractCandidateSkills asks the LLM to list the skills evidenced by the
// candidate's personal history. The result is normalized and deduplicated.
func ExtractCandidateSkills(ctx context.Context, client llm.Client, personalHistory string) ([]string, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}
	if strings.TrimSpace(personalHistory) == "" {
		return nil, fmt.Errorf("personal history is empty")
	}
	if len(personalHistory) > maxHistoryBytes {
		personalHistory = personalHistory[:maxHistoryBytes]
	}

	template, err := prompts.Get("skills.json", "extract-candidate-skills")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"PersonalHistory": personalHistory})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("skill extraction failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := ischemas.ValidateJSONString(schemas.CandidateSkills(), raw); err != nil {
		return nil, fmt.Errorf("skill extraction response invalid: %w", err)
	}

	var parsed struct {
		CandidateSkills []string `json:"candidate_skills"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse skill extraction response: %w", err)
	}

	return normalizeSkills(parsed.CandidateSkills), nil
}

// normalizeSkills trims, deduplicates case-insensitively, and sorts skills.
// The first spelling seen wins.
func normalizeSkills(raw []string) []string {
	seen := make(map[string]bool)
	var skills []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, s)
	}
	sort.Slice(skills, func(i, j int) bool {
		return strings.ToLower(skills[i]) < strings.ToLower(skills[j])
	})
	return skills
}
