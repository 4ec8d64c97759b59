package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/batch"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/gap"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/suggest"
)

// maxUploadBytes bounds multipart request memory usage.
const maxUploadBytes = 32 << 20

// AnalyzeTextRequest is the request body for /analyze/text
type AnalyzeTextRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JobText    string `json:"job_text" validate:"required"`
}

// AnalysisResponse is the response for /analyze and /analyze/text
type AnalysisResponse struct {
	Profile       extraction.ResumeProfile `json:"profile"`
	Match         matching.MatchResult     `json:"match"`
	Gap           gap.Report               `json:"gap"`
	Suggestions   []suggest.Section        `json:"suggestions"`
	PredictedRole string                   `json:"predicted_role"`
	Warning       string                   `json:"warning,omitempty"`
}

// BatchOutcome is one per-resume entry in a /batch response
type BatchOutcome struct {
	Filename  string           `json:"filename"`
	Candidate *batch.Candidate `json:"candidate,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// BatchResponse is the response for /batch
type BatchResponse struct {
	Outcomes   []BatchOutcome    `json:"outcomes"`
	Candidates []batch.Candidate `json:"candidates"`
	Stats      batch.Stats       `json:"stats"`
}

// handleAnalyze analyzes one uploaded resume against a job description.
// Multipart fields: "resume" (file), and either "job_text" (field) or
// "job" (file).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read resume upload")
		return
	}

	jobText, err := s.jobTextFromForm(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rawText, err := s.deps.Extractor.Extract(data, mediaTypeFor(header))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp, err := s.analyze(r, header.Filename, rawText, jobText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyzeText analyzes raw resume text against raw job text.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resp, err := s.analyze(r, "inline-text", req.ResumeText, req.JobText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// analyze runs the full single-resume pipeline and saves the role
// prediction when a store is configured. A failed save degrades to a
// warning; the analysis is still returned.
func (s *Server) analyze(r *http.Request, filename, rawText, jobText string) (*AnalysisResponse, error) {
	profile := extraction.BuildProfile(rawText)

	match, err := s.deps.Scorer.Score(r.Context(), profile.RawText, jobText)
	if err != nil {
		return nil, err
	}

	resp := &AnalysisResponse{
		Profile:       profile,
		Match:         match,
		Gap:           s.deps.Analyzer.Analyze(profile.Skills, jobText),
		Suggestions:   s.deps.Engine.Generate(profile.RawText, jobText),
		PredictedRole: s.deps.Roles.Classify(profile.RawText),
	}

	if s.deps.Store != nil {
		if err := s.deps.Store.SavePrediction(r.Context(), filename, resp.PredictedRole, profile.RawText, s.userEmail); err != nil {
			log.Printf("warning: could not save prediction for %s: %v", filename, err)
			resp.Warning = "analysis complete, but the prediction could not be saved to history"
		}
	}

	return resp, nil
}

// handleBatch analyzes many uploaded resumes against one job description.
// Multipart fields: "resumes" (files), and either "job_text" or "job".
// Optional query parameters: min_score, skill, sort. Results are kept in
// the server session so candidates can be shortlisted afterwards.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	jobText, err := s.jobTextFromForm(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var resumes []batch.Resume
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["resumes"] {
			data, err := readUpload(header)
			if err != nil {
				s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("failed to read upload %s", header.Filename))
				return
			}
			resumes = append(resumes, batch.Resume{
				Filename:  header.Filename,
				MediaType: mediaTypeFor(header),
				Data:      data,
			})
		}
	}

	processor := batch.NewProcessor(s.deps.Extractor, s.deps.Scorer, s.deps.Analyzer, nil)
	outcomes, err := processor.Process(r.Context(), jobText, resumes)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.sessionMu.Lock()
	s.session.SetResults(outcomes)
	candidates := s.session.Filter(filterOptionsFromQuery(r))
	stats := s.session.Stats(candidates)
	s.sessionMu.Unlock()

	resp := BatchResponse{
		Outcomes:   make([]BatchOutcome, 0, len(outcomes)),
		Candidates: candidates,
		Stats:      stats,
	}
	for _, outcome := range outcomes {
		entry := BatchOutcome{Filename: outcome.Filename, Candidate: outcome.Candidate}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}
		resp.Outcomes = append(resp.Outcomes, entry)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHistory lists saved role predictions, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.deps.Store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "prediction history is not configured")
		return
	}

	records, err := s.deps.Store.ListPredictions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"predictions": records})
}

// jobTextFromForm reads the job description from the "job_text" field or
// the "job" file upload.
func (s *Server) jobTextFromForm(r *http.Request) (string, error) {
	if jobText := r.FormValue("job_text"); strings.TrimSpace(jobText) != "" {
		return jobText, nil
	}

	file, header, err := r.FormFile("job")
	if err != nil {
		return "", fmt.Errorf("a job description is required: provide job_text or a job file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read job upload %s", header.Filename)
	}

	text, err := s.deps.Extractor.Extract(data, mediaTypeFor(header))
	if err != nil {
		return "", err
	}
	return text, nil
}

func filterOptionsFromQuery(r *http.Request) batch.FilterOptions {
	opts := batch.FilterOptions{SortBy: batch.SortByScoreDesc}

	if v := r.URL.Query().Get("min_score"); v != "" {
		if minScore, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MinScore = minScore
		}
	}
	opts.RequiredSkill = r.URL.Query().Get("skill")
	if v := r.URL.Query().Get("sort"); v != "" {
		opts.SortBy = batch.SortOrder(v)
	}

	return opts
}

func mediaTypeFor(header *multipart.FileHeader) string {
	if strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		return extraction.MediaTypePDF
	}
	return extraction.MediaTypeText
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
