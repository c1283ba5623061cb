package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/coverletter-generator/internal/llm"
	"github.com/jonathan/coverletter-generator/internal/pipeline"
	"github.com/jonathan/coverletter-generator/internal/rendering"
	"github.com/jonathan/coverletter-generator/internal/types"
)

// GenerateRequest represents the request body for /generate. The inputs may
// be empty; the pipeline substitutes embedded sample data and reports the
// substitution in its progress events.
type GenerateRequest struct {
	JobDescription  string `json:"job_description"`
	PersonalHistory string `json:"personal_history"`
	Tone            string `json:"tone,omitempty"`
	Provider        string `json:"provider,omitempty" validate:"omitempty,oneof=gemini openai deepseek"`
	Research        bool   `json:"research,omitempty"`
}

// GenerateResponse represents the response for /generate
type GenerateResponse struct {
	Letter         string                 `json:"letter"`
	Draft          string                 `json:"draft,omitempty"`
	CompanyName    string                 `json:"company_name,omitempty"`
	CompanyProfile *types.CompanyProfile  `json:"company_profile,omitempty"`
	Skills         *types.SkillAssessment `json:"skills,omitempty"`
}

// ReviseRequest represents the request body for /revise
type ReviseRequest struct {
	JobDescription  string                `json:"job_description" validate:"required"`
	PersonalHistory string                `json:"personal_history" validate:"required"`
	Letter          string                `json:"letter" validate:"required"`
	Feedback        string                `json:"feedback" validate:"required"`
	Tone            string                `json:"tone,omitempty"`
	Provider        string                `json:"provider,omitempty" validate:"omitempty,oneof=gemini openai deepseek"`
	CompanyProfile  *types.CompanyProfile `json:"company_profile,omitempty"`
}

// ReviseResponse represents the response for /revise
type ReviseResponse struct {
	Letter string `json:"letter"`
}

// PDFRequest represents the request body for /letters/pdf
type PDFRequest struct {
	Letter        string `json:"letter" validate:"required"`
	CandidateName string `json:"candidate_name,omitempty"`
}

// decodeAndValidate decodes the JSON body and runs struct validation
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// validationMessage flattens validator errors into a readable message
func validationMessage(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var parts []string
		for _, fieldErr := range validationErrors {
			switch fieldErr.Tag() {
			case "required":
				parts = append(parts, fmt.Sprintf("%s is required", fieldErr.Field()))
			case "oneof":
				parts = append(parts, fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param()))
			default:
				parts = append(parts, fmt.Sprintf("%s is invalid", fieldErr.Field()))
			}
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

// runOptions maps an API request onto pipeline options
func (s *Server) runOptions(req *GenerateRequest) pipeline.RunOptions {
	return pipeline.RunOptions{
		JobDescription:  req.JobDescription,
		PersonalHistory: req.PersonalHistory,
		Tone:            req.Tone,
		Provider:        s.resolveProvider(req.Provider),
		APIKey:          s.apiKey,
		EnableResearch:  req.Research,
		Client:          s.client,
		SearchProvider:  s.searchProvider,
	}
}

func (s *Server) resolveProvider(requested string) llm.Provider {
	if requested != "" {
		return llm.Provider(requested)
	}
	return s.provider
}

// handleGenerate runs the full pipeline synchronously and returns the letter
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	artifacts, err := pipeline.RunPipeline(r.Context(), s.runOptions(&req))
	if err != nil {
		log.Printf("Pipeline run failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Letter:         artifacts.Letter(),
		Draft:          artifacts.DraftLetter,
		CompanyName:    artifacts.CompanyName,
		CompanyProfile: artifacts.CompanyProfile,
		Skills:         artifacts.Skills,
	})
}

// handleGenerateStream runs the pipeline and streams progress via SSE
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	opts := s.runOptions(&req)
	var runID string
	opts.OnProgress = func(event pipeline.ProgressEvent) {
		runID = event.RunID
		if err := sse.WriteEvent("step", event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	}

	artifacts, err := pipeline.RunPipeline(r.Context(), opts)
	if err != nil {
		log.Printf("Pipeline run failed: %v", err)
		sse.WriteError(err.Error())
		return
	}

	sse.WriteComplete(runID, artifacts.Letter())
}

// handleRevise applies user feedback to an existing letter
func (s *Server) handleRevise(w http.ResponseWriter, r *http.Request) {
	var req ReviseRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	revised, err := pipeline.RunFeedback(r.Context(), pipeline.RevisionOptions{
		JobDescription:  req.JobDescription,
		PersonalHistory: req.PersonalHistory,
		Letter:          req.Letter,
		Feedback:        req.Feedback,
		Tone:            req.Tone,
		Profile:         req.CompanyProfile,
		Provider:        s.resolveProvider(req.Provider),
		APIKey:          s.apiKey,
		Client:          s.client,
	})
	if err != nil {
		log.Printf("Revision failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Revision failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ReviseResponse{Letter: revised})
}

// handleLetterPDF renders a letter as a downloadable PDF
func (s *Server) handleLetterPDF(w http.ResponseWriter, r *http.Request) {
	var req PDFRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	data, err := rendering.RenderPDF(req.Letter, rendering.PDFOptions{CandidateName: req.CandidateName})
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "PDF rendering failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cover_letter.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
