// Package pipeline provides the high-level orchestration for cover letter generation.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/coverletter-generator/internal/ingestion"
	"github.com/jonathan/coverletter-generator/internal/letter"
	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/observability"
	"github.com/jonathan/coverletter-generator/internal/research"
	"github.com/jonathan/coverletter-generator/internal/search"
	"github.com/jonathan/coverletter-generator/internal/skills"
	"github.com/jonathan/coverletter-generator/internal/types"
)

// Step identifiers attached to progress events
const (
	StepInputs          = "inputs"
	StepCompanyName     = "company_name"
	StepCompanyProfile  = "company_profile"
	StepSkillAssessment = "skill_assessment"
	StepDraftLetter     = "draft_letter"
	StepFinalLetter     = "final_letter"
)

// Category identifiers attached to progress events
const (
	CategoryIngestion = "ingestion"
	CategoryResearch  = "research"
	CategorySkills    = "skills"
	CategoryLetter    = "letter"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	// Direct input text. When empty, the corresponding path is read, and when
	// that is empty too, built-in sample data is used.
	JobDescription  string
	PersonalHistory string

	JobDescriptionPath  string
	PersonalHistoryPath string

	Provider       llm.Provider
	Model          string // overrides the advanced-tier model when set
	Tone           string
	APIKey         string
	EnableResearch bool
	UseBrowser     bool
	Verbose        bool

	// Client and SearchProvider may be injected; when nil they are built
	// from Provider/APIKey and the environment respectively.
	Client         llm.Client
	SearchProvider search.Provider

	OnProgress ProgressCallback
}

// logPrefix is used to distinguish concurrent log output
type logPrefix string

const (
	prefixResearch logPrefix = "[Research] "
	prefixSkills   logPrefix = "[Skills]   "
)

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates the full cover letter generation pipeline:
// input resolution, optional company research in parallel with skill gap
// analysis, drafting, and a final enhancement pass.
func RunPipeline(ctx context.Context, opts RunOptions) (*types.LetterArtifacts, error) {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New().String()

	// Step 1: Resolve inputs
	fmt.Printf("Step 1/5: Resolving job description and personal history...\n")
	jobDescription, personalHistory, sampled, err := resolveInputs(&opts)
	if err != nil {
		return nil, err
	}
	inputsMsg := fmt.Sprintf("Resolved inputs (%d + %d bytes)", len(jobDescription), len(personalHistory))
	if sampled {
		inputsMsg += ", sample data substituted"
	}
	emitProgress(&opts, runID, StepInputs, CategoryIngestion, inputsMsg, nil)

	client := opts.Client
	if client == nil {
		config := llm.ConfigForProvider(opts.Provider)
		if opts.Model != "" {
			config = config.WithModel(llm.TierAdvanced, opts.Model)
		}
		client, err = llm.NewClient(ctx, config, opts.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	artifacts := &types.LetterArtifacts{
		JobDescription:  jobDescription,
		PersonalHistory: personalHistory,
	}

	// =========================================================================
	// PARALLEL EXECUTION: Research Branch + Skills Branch
	// =========================================================================
	fmt.Printf("Step 2/5: Analyzing the job posting (research and skill gaps run in parallel)...\n")

	g, gCtx := errgroup.WithContext(ctx)

	var profile *types.CompanyProfile
	var assessment *types.SkillAssessment
	var companyName string
	var resMu, skillMu sync.Mutex

	if opts.EnableResearch {
		g.Go(func() error {
			name, result := runResearchBranch(gCtx, &opts, runID, client, jobDescription)
			resMu.Lock()
			companyName = name
			profile = result
			resMu.Unlock()
			return nil
		})
	}

	g.Go(func() error {
		fmt.Printf("%sAnalyzing skill gaps...\n", prefixSkills)
		result, err := skills.Assess(gCtx, client, jobDescription, personalHistory)
		if err != nil {
			return fmt.Errorf("skill analysis failed: %w", err)
		}
		skillMu.Lock()
		assessment = result
		skillMu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifacts.CompanyName = companyName
	artifacts.CompanyProfile = profile
	artifacts.Skills = assessment

	if opts.Verbose {
		printer.PrintCompanyProfile(profile)
		printer.PrintSkillAssessment(assessment)
	}
	emitProgress(&opts, runID, StepSkillAssessment, CategorySkills,
		fmt.Sprintf("Identified %d requirements, %d gaps", len(assessment.Requirements), len(assessment.MissingSkills)), assessment)
	if profile != nil {
		emitProgress(&opts, runID, StepCompanyProfile, CategoryResearch,
			fmt.Sprintf("Researched %s from %d sources", profile.Company, len(profile.SourceURLs)), profile)
	}
	// =========================================================================

	// Step 3: Draft the letter
	fmt.Printf("Step 3/5: Drafting the cover letter...\n")
	draft, err := letter.Draft(ctx, client, letter.DraftOptions{
		JobDescription:  jobDescription,
		PersonalHistory: personalHistory,
		Tone:            opts.Tone,
		Profile:         profile,
	})
	if err != nil {
		return nil, fmt.Errorf("letter draft failed: %w", err)
	}
	artifacts.DraftLetter = draft
	if opts.Verbose {
		printer.PrintLetter("Draft Letter", draft)
	}
	emitProgress(&opts, runID, StepDraftLetter, CategoryLetter,
		fmt.Sprintf("Drafted letter (%d words)", len(strings.Fields(draft))), draft)

	// Step 4: Enhance using the gap analysis
	fmt.Printf("Step 4/5: Enhancing the letter with the skill gap analysis...\n")
	enhanced, err := letter.Enhance(ctx, client, letter.EnhanceOptions{
		JobDescription:  jobDescription,
		PersonalHistory: personalHistory,
		Draft:           draft,
		Tone:            opts.Tone,
		Assessment:      assessment,
		Profile:         profile,
	})
	if err != nil {
		return nil, fmt.Errorf("letter enhancement failed: %w", err)
	}
	artifacts.EnhancedLetter = enhanced
	if opts.Verbose {
		printer.PrintLetter("Enhanced Letter", enhanced)
	}

	fmt.Printf("Step 5/5: Done.\n")
	emitProgress(&opts, runID, StepFinalLetter, CategoryLetter,
		fmt.Sprintf("Finished letter (%d words)", len(strings.Fields(enhanced))), enhanced)

	return artifacts, nil
}

// runResearchBranch extracts the company name and researches the company.
// Research failures degrade to a non-personalized letter rather than failing
// the run, since the letter can still be generated without a profile.
func runResearchBranch(ctx context.Context, opts *RunOptions, runID string, client llm.Client, jobDescription string) (string, *types.CompanyProfile) {
	name, err := research.ExtractCompanyName(ctx, jobDescription, client)
	if err != nil {
		fmt.Printf("%sWarning: %v, skipping research\n", prefixResearch, err)
		return "", nil
	}
	fmt.Printf("%sIdentified company: %s\n", prefixResearch, name)
	emitProgress(opts, runID, StepCompanyName, CategoryResearch,
		fmt.Sprintf("Identified company: %s", name), nil)

	provider := opts.SearchProvider
	if provider == nil {
		provider, err = search.FromEnv(ctx)
		if err != nil {
			fmt.Printf("%sWarning: no search provider available: %v\n", prefixResearch, err)
			return name, nil
		}
	}

	profile, _, err := research.Run(ctx, research.Options{
		Company:    name,
		Provider:   provider,
		Client:     client,
		UseBrowser: opts.UseBrowser,
		Verbose:    opts.Verbose,
	})
	if err != nil {
		fmt.Printf("%sWarning: research failed: %v, continuing without company profile\n", prefixResearch, err)
		return name, nil
	}
	return name, profile
}

// resolveInputs reads input documents and falls back to samples when empty.
// The returned flag reports whether any sample data was substituted.
func resolveInputs(opts *RunOptions) (string, string, bool, error) {
	jobDescription := opts.JobDescription
	if jobDescription == "" && opts.JobDescriptionPath != "" {
		text, err := ingestion.ReadDocument(opts.JobDescriptionPath)
		if err != nil {
			return "", "", false, fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = text
	}

	personalHistory := opts.PersonalHistory
	if personalHistory == "" && opts.PersonalHistoryPath != "" {
		text, err := ingestion.ReadDocument(opts.PersonalHistoryPath)
		if err != nil {
			return "", "", false, fmt.Errorf("failed to read personal history: %w", err)
		}
		personalHistory = text
	}

	sampled := false
	jobDescription, substituted := ingestion.ResolveJobDescription(jobDescription)
	if substituted {
		sampled = true
		fmt.Printf("No job description provided, using sample data\n")
	}
	personalHistory, substituted = ingestion.ResolvePersonalHistory(personalHistory)
	if substituted {
		sampled = true
		fmt.Printf("No personal history provided, using sample data\n")
	}

	return jobDescription, personalHistory, sampled, nil
}
