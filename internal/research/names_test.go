package research

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/coverletter-generator/internal/llm"
)

// stubClient is an in-memory llm.Client for tests
type stubClient struct {
	content     string
	contentErr  error
	jsonOut     string
	jsonErr     error
	lastPrompt  string
	promptCount int
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.lastPrompt = prompt
	s.promptCount++
	return s.content, s.contentErr
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.lastPrompt = prompt
	s.promptCount++
	return s.jsonOut, s.jsonErr
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

func TestExtractCompanyName_Patterns(t *testing.T) {
	tests := []struct {
		name string
		jd   string
		want string
	}{
		{
			name: "company label",
			jd:   "Company: Acme Corp\nRole: Backend Engineer",
			want: "Acme Corp",
		},
		{
			name: "company label without colon",
			jd:   "Company Stellar Dynamics\nWe are hiring.",
			want: "Stellar Dynamics",
		},
		{
			name: "about heading",
			jd:   "About Acme Corp\nWe build things.",
			want: "Acme Corp",
		},
		{
			name: "is a leading",
			jd:   "Acme Corp is a leading provider of developer tools.",
			want: "Acme Corp",
		},
		{
			name: "job at",
			jd:   "Job at Initech (Remote)\nApply now.",
			want: "Initech",
		},
		{
			name: "join the team at",
			jd:   "Join the team at Hooli\nWe are growing fast.",
			want: "Hooli",
		},
		{
			name: "welcome to",
			jd:   "Welcome to Pied Piper. We compress the world's data.",
			want: "Pied Piper",
		},
		{
			name: "trailing punctuation trimmed",
			jd:   "Company: Acme Corp,\nLocation: NYC",
			want: "Acme Corp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractCompanyName(context.Background(), tt.jd, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCompanyName_LLMFallback(t *testing.T) {
	client := &stubClient{content: "Vandelay Industries"}

	got, err := ExtractCompanyName(context.Background(), "We are hiring a backend engineer for our platform team.", client)
	require.NoError(t, err)
	assert.Equal(t, "Vandelay Industries", got)
	assert.Contains(t, client.lastPrompt, "backend engineer")
}

func TestExtractCompanyName_LLMFallbackTruncatesInput(t *testing.T) {
	client := &stubClient{content: "Acme"}
	jd := strings.Repeat("x", 5000)

	_, err := ExtractCompanyName(context.Background(), jd, client)
	require.NoError(t, err)
	assert.Less(t, len(client.lastPrompt), 2000)
}

func TestExtractCompanyName_NoMatchNoClient(t *testing.T) {
	_, err := ExtractCompanyName(context.Background(), "We are hiring a backend engineer.", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not identify company name")
}

func TestExtractCompanyName_RejectsRamblingLLMOutput(t *testing.T) {
	client := &stubClient{content: strings.Repeat("the company described in this posting appears to be ", 4)}

	_, err := ExtractCompanyName(context.Background(), "We are hiring.", client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not identify company name")
}

func TestMatchCompanyName_NoMatch(t *testing.T) {
	assert.Empty(t, matchCompanyName("we are hiring a backend engineer for our platform team"))
}
