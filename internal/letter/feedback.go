package letter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/prompts"
	"github.com/jonathan/coverletter-generator/internal/types"
)

// FeedbackOptions carries the inputs for a user-directed revision
type FeedbackOptions struct {
	JobDescription  string
	PersonalHistory string
	Letter          string
	Feedback        string
	Tone            string
	Profile         *types.CompanyProfile
}

// ReviseWithFeedback updates an existing letter according to the user's
// feedback while preserving the letter's structure and factual claims.
func ReviseWithFeedback(ctx context.Context, client llm.Client, opts FeedbackOptions) (string, error) {
	if client == nil {
		return "", fmt.Errorf("LLM client is required")
	}
	if strings.TrimSpace(opts.Letter) == "" {
		return "", fmt.Errorf("letter is empty")
	}
	if strings.TrimSpace(opts.Feedback) == "" {
		return "", fmt.Errorf("feedback is empty")
	}

	system, err := SystemPrompt(opts.Tone)
	if err != nil {
		return "", err
	}

	data := map[string]string{
		"System":          system,
		"JobDescription":  opts.JobDescription,
		"PersonalHistory": opts.PersonalHistory,
		"Letter":          opts.Letter,
		"Feedback":        opts.Feedback,
	}

	key := "feedback-update"
	if !opts.Profile.IsEmpty() {
		key = "feedback-update-with-company"
		data["CompanyInfo"] = opts.Profile.Render()
	}

	template, err := prompts.Get("letter.json", key)
	if err != nil {
		return "", err
	}

	result, err := client.GenerateContent(ctx, prompts.Format(template, data), llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("feedback revision failed: %w", err)
	}

	return cleanLetter(result)
}
