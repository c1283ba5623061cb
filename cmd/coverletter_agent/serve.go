package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-generator/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serves the generation API and a minimal web form. Endpoints:

  GET  /            Web form
  GET  /health      Health check
  POST /generate    Generate a letter synchronously
  POST /generate/stream  Generate with SSE progress events
  POST /revise      Apply feedback to a letter
  POST /letters/pdf Render a letter as PDF`,
	RunE: runServeCmd,
}

var (
	servePort     int
	serveProvider string
	serveAPIKey   string
)

func init() {
	serveCommand.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCommand.Flags().StringVar(&serveProvider, "provider", "", "Default LLM provider: gemini, openai, or deepseek (default gemini)")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Provider API key (defaults to the provider's env var)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	provider := normalizeProvider(serveProvider)
	apiKey, err := resolveAPIKey(serveAPIKey, provider)
	if err != nil {
		return err
	}

	s := server.New(server.Config{
		Port:     servePort,
		APIKey:   apiKey,
		Provider: provider,
	})
	return s.Start()
}
