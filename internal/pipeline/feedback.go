package pipeline

import (
	"context"
	"fmt"

	"github.com/jonathan/coverletter-generator/internal/letter"
	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/types"
)

// RevisionOptions holds configuration for a feedback-driven revision
type RevisionOptions struct {
	JobDescription  string
	PersonalHistory string
	Letter          string
	Feedback        string
	Tone            string
	Profile         *types.CompanyProfile

	// Artifacts, when set, supplies any fields left empty above from a
	// previous run, and receives the revised text as FinalLetter.
	Artifacts *types.LetterArtifacts

	Provider llm.Provider
	Model    string
	APIKey   string
	Client   llm.Client
}

// RunFeedback revises an existing letter according to user feedback. It is a
// single LLM call rather than a full pipeline run, so previously gathered
// research can be reused via Profile.
func RunFeedback(ctx context.Context, opts RevisionOptions) (string, error) {
	if a := opts.Artifacts; a != nil {
		if opts.JobDescription == "" {
			opts.JobDescription = a.JobDescription
		}
		if opts.PersonalHistory == "" {
			opts.PersonalHistory = a.PersonalHistory
		}
		if opts.Letter == "" {
			opts.Letter = a.Letter()
		}
		if opts.Profile == nil {
			opts.Profile = a.CompanyProfile
		}
	}

	client := opts.Client
	if client == nil {
		config := llm.ConfigForProvider(opts.Provider)
		if opts.Model != "" {
			config = config.WithModel(llm.TierAdvanced, opts.Model)
		}
		var err error
		client, err = llm.NewClient(ctx, config, opts.APIKey)
		if err != nil {
			return "", fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	revised, err := letter.ReviseWithFeedback(ctx, client, letter.FeedbackOptions{
		JobDescription:  opts.JobDescription,
		PersonalHistory: opts.PersonalHistory,
		Letter:          opts.Letter,
		Feedback:        opts.Feedback,
		Tone:            opts.Tone,
		Profile:         opts.Profile,
	})
	if err != nil {
		return "", err
	}
	if opts.Artifacts != nil {
		opts.Artifacts.FinalLetter = revised
	}
	return revised, nil
}
