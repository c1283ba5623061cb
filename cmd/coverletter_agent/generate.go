package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-generator/internal/config"
	"github.com/jonathan/coverletter-generator/internal/pipeline"
	"github.com/jonathan/coverletter-generator/internal/rendering"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a personalized cover letter",
	Long: `Runs the full generation pipeline: reads the job description and personal
history, optionally researches the company, analyzes skill gaps, drafts the
letter, and refines it.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath string
	genJob        string
	genHistory    string
	genName       string
	genProvider   string
	genModel      string
	genTone       string
	genOutputDir  string
	genAPIKey     string
	genResearch   bool
	genUseBrowser bool
	genVerbose    bool
	genPDF        bool
)

func init() {
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genJob, "job", "j", "", "Path to job description file (txt or pdf); sample data is used when omitted")
	generateCommand.Flags().StringVarP(&genHistory, "history", "p", "", "Path to personal history or resume file (txt or pdf); sample data is used when omitted")
	generateCommand.Flags().StringVarP(&genName, "name", "n", "", "Candidate name, printed as the PDF signature")
	generateCommand.Flags().StringVar(&genProvider, "provider", "", "LLM provider: gemini, openai, or deepseek (default gemini)")
	generateCommand.Flags().StringVarP(&genModel, "model", "m", "", "Model override for the generation tier")
	generateCommand.Flags().StringVarP(&genTone, "tone", "t", "", "Letter tone: enthusiastic, confident, concise, or free text (default enthusiastic)")
	generateCommand.Flags().StringVarP(&genOutputDir, "output-dir", "o", "", "Directory for generated files (default current directory)")
	generateCommand.Flags().BoolVarP(&genResearch, "research", "r", false, "Research the company on the web to personalize the letter")
	generateCommand.Flags().BoolVar(&genUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")
	generateCommand.Flags().BoolVar(&genPDF, "pdf", false, "Also render the letter as a PDF")

	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Provider API key (defaults to the provider's env var, e.g. GEMINI_API_KEY)")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadGenerateConfig(cmd)
	if err != nil {
		return err
	}

	provider := normalizeProvider(cfg.Provider)
	apiKey, err := resolveAPIKey(cfg.APIKey, provider)
	if err != nil {
		return err
	}

	artifacts, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		JobDescriptionPath:  cfg.Job,
		PersonalHistoryPath: cfg.PersonalHistory,
		Provider:            provider,
		Model:               cfg.Model,
		Tone:                cfg.Tone,
		APIKey:              apiKey,
		EnableResearch:      cfg.Research,
		UseBrowser:          cfg.UseBrowser,
		Verbose:             cfg.Verbose,
	})
	if err != nil {
		return err
	}

	letterText := artifacts.Letter()
	fmt.Printf("\n%s\n\n", letterText)

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	txtPath := filepath.Join(outputDir, "cover_letter.txt")
	if err := os.WriteFile(txtPath, []byte(letterText+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write letter: %w", err)
	}
	fmt.Printf("Saved %s\n", txtPath)

	if genPDF {
		data, err := rendering.RenderPDF(letterText, rendering.PDFOptions{CandidateName: cfg.Name})
		if err != nil {
			return err
		}
		pdfPath := filepath.Join(outputDir, "cover_letter.pdf")
		if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("Saved %s\n", pdfPath)
	}

	return nil
}

// loadGenerateConfig merges the config file, CLI overrides, and defaults
func loadGenerateConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if genVerbose {
			fmt.Printf("Loaded config from: %s\n", genConfigPath)
		}
	}

	// CLI flags take priority when explicitly set
	if cmd.Flags().Changed("job") {
		cfg.Job = genJob
	}
	if cmd.Flags().Changed("history") {
		cfg.PersonalHistory = genHistory
	}
	if cmd.Flags().Changed("name") {
		cfg.Name = genName
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = genProvider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = genModel
	}
	if cmd.Flags().Changed("tone") {
		cfg.Tone = genTone
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = genOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("research") {
		cfg.Research = genResearch
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = genUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Provider: "gemini",
		Tone:     "enthusiastic",
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
