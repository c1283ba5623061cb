// Package main provides the entry point for the cover letter generator CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-generator/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "coverletter_agent",
	Short: "Personalized cover letter generator",
	Long:  "Generates personalized cover letters from a job description and personal history, optionally enriched with live company research.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// apiKeyEnvVars maps providers to their conventional API key variables
var apiKeyEnvVars = map[llm.Provider]string{
	llm.ProviderGemini:   "GEMINI_API_KEY",
	llm.ProviderOpenAI:   "OPENAI_API_KEY",
	llm.ProviderDeepSeek: "DEEPSEEK_API_KEY",
}

// resolveAPIKey returns the explicit key, or the provider's env var
func resolveAPIKey(explicit string, provider llm.Provider) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	envVar, ok := apiKeyEnvVars[provider]
	if !ok {
		envVar = apiKeyEnvVars[llm.ProviderGemini]
	}
	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("%s environment variable or --api-key flag is required", envVar)
}

// normalizeProvider lowercases the provider name for lookup
func normalizeProvider(name string) llm.Provider {
	return llm.Provider(strings.ToLower(strings.TrimSpace(name)))
}
