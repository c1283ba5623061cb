package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-generator/internal/ingestion"
	"github.com/jonathan/coverletter-generator/internal/pipeline"
)

var reviseCommand = &cobra.Command{
	Use:   "revise",
	Short: "Revise an existing cover letter based on feedback",
	Long: `Applies freeform feedback to a previously generated letter in a single
LLM call, keeping the letter's structure and factual claims intact.`,
	RunE: runReviseCmd,
}

var (
	revLetter   string
	revFeedback string
	revJob      string
	revHistory  string
	revTone     string
	revProvider string
	revModel    string
	revAPIKey   string
	revOutput   string
)

func init() {
	reviseCommand.Flags().StringVarP(&revLetter, "letter", "l", "", "Path to the letter to revise (required)")
	reviseCommand.Flags().StringVarP(&revFeedback, "feedback", "f", "", "Feedback to apply (required)")
	reviseCommand.Flags().StringVarP(&revJob, "job", "j", "", "Path to the job description the letter targets")
	reviseCommand.Flags().StringVarP(&revHistory, "history", "p", "", "Path to the personal history used for the letter")
	reviseCommand.Flags().StringVarP(&revTone, "tone", "t", "", "Letter tone (default enthusiastic)")
	reviseCommand.Flags().StringVar(&revProvider, "provider", "", "LLM provider: gemini, openai, or deepseek (default gemini)")
	reviseCommand.Flags().StringVarP(&revModel, "model", "m", "", "Model override for the revision call")
	reviseCommand.Flags().StringVar(&revAPIKey, "api-key", "", "Provider API key (defaults to the provider's env var)")
	reviseCommand.Flags().StringVarP(&revOutput, "output", "o", "", "Write the revised letter to this path instead of overwriting the input")

	_ = reviseCommand.MarkFlagRequired("letter")
	_ = reviseCommand.MarkFlagRequired("feedback")

	rootCmd.AddCommand(reviseCommand)
}

func runReviseCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	provider := normalizeProvider(revProvider)
	apiKey, err := resolveAPIKey(revAPIKey, provider)
	if err != nil {
		return err
	}

	letterText, err := ingestion.ReadDocument(revLetter)
	if err != nil {
		return fmt.Errorf("failed to read letter: %w", err)
	}

	var jobDescription, personalHistory string
	if revJob != "" {
		if jobDescription, err = ingestion.ReadDocument(revJob); err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	}
	if revHistory != "" {
		if personalHistory, err = ingestion.ReadDocument(revHistory); err != nil {
			return fmt.Errorf("failed to read personal history: %w", err)
		}
	}

	revised, err := pipeline.RunFeedback(ctx, pipeline.RevisionOptions{
		JobDescription:  jobDescription,
		PersonalHistory: personalHistory,
		Letter:          letterText,
		Feedback:        revFeedback,
		Tone:            revTone,
		Provider:        provider,
		Model:           revModel,
		APIKey:          apiKey,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n\n", revised)

	outPath := revOutput
	if outPath == "" {
		outPath = revLetter
	}
	if err := os.WriteFile(outPath, []byte(revised+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write revised letter: %w", err)
	}
	fmt.Printf("Saved %s\n", outPath)
	return nil
}
