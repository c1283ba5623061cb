package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-generator/internal/ingestion"
	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/observability"
	"github.com/jonathan/coverletter-generator/internal/research"
	"github.com/jonathan/coverletter-generator/internal/search"
)

var researchCommand = &cobra.Command{
	Use:   "research [company]",
	Short: "Research a company and print its profile",
	Long: `Searches the web for company information and summarizes it into a profile.
The company can be named directly, or extracted from a job description file
with --job.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResearchCmd,
}

var (
	resJob        string
	resProvider   string
	resAPIKey     string
	resUseBrowser bool
	resVerbose    bool
	resJSON       bool
)

func init() {
	researchCommand.Flags().StringVarP(&resJob, "job", "j", "", "Path to a job description to extract the company name from")
	researchCommand.Flags().StringVar(&resProvider, "provider", "", "LLM provider: gemini, openai, or deepseek (default gemini)")
	researchCommand.Flags().StringVar(&resAPIKey, "api-key", "", "Provider API key (defaults to the provider's env var)")
	researchCommand.Flags().BoolVar(&resUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	researchCommand.Flags().BoolVarP(&resVerbose, "verbose", "v", false, "Print detailed debug information")
	researchCommand.Flags().BoolVar(&resJSON, "json", false, "Print the profile as JSON")

	rootCmd.AddCommand(researchCommand)
}

func runResearchCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	provider := normalizeProvider(resProvider)
	apiKey, err := resolveAPIKey(resAPIKey, provider)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.ConfigForProvider(provider), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	var company string
	if len(args) == 1 {
		company = args[0]
	} else if resJob != "" {
		jobDescription, err := ingestion.ReadDocument(resJob)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		company, err = research.ExtractCompanyName(ctx, jobDescription, client)
		if err != nil {
			return err
		}
		fmt.Printf("Identified company: %s\n", company)
	} else {
		return fmt.Errorf("provide a company name or --job")
	}

	searchProvider, err := search.FromEnv(ctx)
	if err != nil {
		return fmt.Errorf("no search provider available: %w", err)
	}

	profile, _, err := research.Run(ctx, research.Options{
		Company:    company,
		Provider:   searchProvider,
		Client:     client,
		UseBrowser: resUseBrowser,
		Verbose:    resVerbose,
	})
	if err != nil {
		return err
	}

	if resJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(profile)
	}

	observability.NewPrinter(os.Stdout).PrintCompanyProfile(profile)
	return nil
}
