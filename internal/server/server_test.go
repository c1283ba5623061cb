package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/search"
)

// routingClient answers prompts by matching markers so handlers can run the
// real pipeline without a live provider.
type routingClient struct{}

func (routingClient) respond(prompt string) string {
	switch {
	case strings.Contains(prompt, "Extract the candidate's skills"):
		return `{"candidate_skills": ["Go", "Docker"]}`
	case strings.Contains(prompt, "company research assistant"):
		return `{"company": "Acme Corp", "overview": "Acme builds developer tools.", "mission": "", "culture": "", "recent_news": [], "products": []}`
	case strings.Contains(prompt, "extracts company names"):
		return "Acme Corp"
	case strings.Contains(prompt, "expert career consultant"):
		return `{"requirements": ["Go", "Kubernetes"], "missing_skills": ["Kubernetes"], "transferable": ["Docker experience"]}`
	case strings.Contains(prompt, "needs one revision pass"):
		return "Enhanced letter body."
	case strings.Contains(prompt, "improve based on specific feedback"):
		return "Revised letter body."
	default:
		return "Draft letter body."
	}
}

func (c routingClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return c.respond(prompt), nil
}

func (c routingClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return c.respond(prompt), nil
}

func (routingClient) GetModel(llm.ModelTier) string { return "stub-model" }

func (routingClient) Close() error { return nil }

// failingClient simulates an unreachable provider
type failingClient struct{}

func (failingClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return "", errors.New("provider unavailable")
}

func (failingClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return "", errors.New("provider unavailable")
}

func (failingClient) GetModel(llm.ModelTier) string { return "stub-model" }

func (failingClient) Close() error { return nil }

type stubSearch struct{}

func (stubSearch) Search(context.Context, string) ([]search.Result, error) {
	return []search.Result{{Title: "Acme - About", URL: "http://127.0.0.1:1/about", Snippet: "Acme builds developer tools."}}, nil
}

func (stubSearch) Name() string { return "stub" }

func newTestServer() *Server {
	s := New(Config{Port: 0, Provider: llm.ProviderGemini})
	s.client = routingClient{}
	s.searchProvider = stubSearch{}
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleIndex(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Cover Letter Generator")
}

func TestHandleGenerate(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/generate", GenerateRequest{
		JobDescription:  "Company: Acme Corp\nWe need a Go engineer.",
		PersonalHistory: "Five years of Go.",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Enhanced letter body.", resp.Letter)
	assert.Equal(t, "Draft letter body.", resp.Draft)
	require.NotNil(t, resp.Skills)
	assert.Equal(t, []string{"Kubernetes"}, resp.Skills.MissingSkills)
	assert.Nil(t, resp.CompanyProfile)
}

func TestHandleGenerate_WithResearch(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/generate", GenerateRequest{
		JobDescription:  "Company: Acme Corp\nWe need a Go engineer.",
		PersonalHistory: "Five years of Go.",
		Research:        true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Acme Corp", resp.CompanyName)
	require.NotNil(t, resp.CompanyProfile)
	assert.Equal(t, "Acme builds developer tools.", resp.CompanyProfile.Overview)
}

func TestHandleGenerate_EmptyInputsUseSampleData(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/generate", GenerateRequest{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Enhanced letter body.", resp.Letter)
}

func TestHandleGenerate_UnknownProvider(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/generate", GenerateRequest{
		JobDescription:  "jd",
		PersonalHistory: "history",
		Provider:        "claude",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be one of")
}

func TestHandleGenerate_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestHandleGenerateStream(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/generate/stream", GenerateRequest{
		JobDescription:  "Company: Acme Corp\nWe need a Go engineer.",
		PersonalHistory: "Five years of Go.",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "event: step")
	assert.Contains(t, body, "event: complete")
	assert.Contains(t, body, "Enhanced letter body.")
}

func TestHandleGenerateStream_EmptyInputsReportSampleData(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/generate/stream", GenerateRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sample data substituted")
	assert.Contains(t, rec.Body.String(), "event: complete")
}

func TestHandleGenerate_ProviderError(t *testing.T) {
	s := newTestServer()
	s.client = failingClient{}

	rec := doJSON(t, s, http.MethodPost, "/generate", GenerateRequest{
		JobDescription:  "We need a Go engineer.",
		PersonalHistory: "Five years of Go.",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "provider unavailable")
}

func TestHandleGenerateStream_ProviderError(t *testing.T) {
	s := newTestServer()
	s.client = failingClient{}

	rec := doJSON(t, s, http.MethodPost, "/generate/stream", GenerateRequest{
		JobDescription:  "We need a Go engineer.",
		PersonalHistory: "Five years of Go.",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "event: error")
	assert.Contains(t, body, "provider unavailable")
	assert.NotContains(t, body, "event: complete")
}

func TestHandleRevise_ProviderError(t *testing.T) {
	s := newTestServer()
	s.client = failingClient{}

	rec := doJSON(t, s, http.MethodPost, "/revise", ReviseRequest{
		JobDescription:  "jd",
		PersonalHistory: "history",
		Letter:          "Original letter.",
		Feedback:        "Make it shorter.",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "provider unavailable")
}

func TestHandleRevise(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/revise", ReviseRequest{
		JobDescription:  "We need a Go engineer.",
		PersonalHistory: "Five years of Go.",
		Letter:          "Original letter.",
		Feedback:        "Make it shorter.",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ReviseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Revised letter body.", resp.Letter)
}

func TestHandleRevise_MissingFeedback(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/revise", ReviseRequest{
		JobDescription:  "jd",
		PersonalHistory: "history",
		Letter:          "letter",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Feedback is required")
}

func TestHandleLetterPDF(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/letters/pdf", PDFRequest{
		Letter:        "Dear Hiring Manager,\n\nShort letter body.",
		CandidateName: "Jordan Lee",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandleLetterPDF_MissingLetter(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/letters/pdf", PDFRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Letter is required")
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
