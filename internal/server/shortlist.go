package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/resume-analyzer/internal/batch"
)

// ShortlistAddRequest is the request body for POST /shortlist. Filename
// identifies a candidate from the most recent /batch run.
type ShortlistAddRequest struct {
	Filename string `json:"filename" validate:"required"`
	JobTitle string `json:"job_title"`
}

// ShortlistRemoveRequest is the request body for DELETE /shortlist
type ShortlistRemoveRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// ShortlistResponse is the response for the shortlist endpoints
type ShortlistResponse struct {
	Shortlist []batch.ShortlistEntry `json:"shortlist"`
	Emails    []string               `json:"emails"`
}

// handleShortlist lists shortlisted candidates with their email list.
func (s *Server) handleShortlist(w http.ResponseWriter, _ *http.Request) {
	s.sessionMu.Lock()
	resp := s.shortlistResponse()
	s.sessionMu.Unlock()

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleShortlistAdd shortlists a candidate from the last batch run.
func (s *Server) handleShortlistAdd(w http.ResponseWriter, r *http.Request) {
	var req ShortlistAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	candidate, ok := s.findResult(req.Filename)
	if !ok {
		s.errorResponse(w, http.StatusNotFound,
			fmt.Sprintf("no batch result for %s; run a batch first", req.Filename))
		return
	}

	if !s.session.AddToShortlist(candidate, req.JobTitle, time.Now()) {
		s.errorResponse(w, http.StatusConflict, "candidate is already shortlisted")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.shortlistResponse())
}

// handleShortlistRemove drops one shortlisted candidate by name and email.
func (s *Server) handleShortlistRemove(w http.ResponseWriter, r *http.Request) {
	var req ShortlistRemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if !s.session.RemoveFromShortlist(req.Name, req.Email) {
		s.errorResponse(w, http.StatusNotFound, "candidate is not shortlisted")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.shortlistResponse())
}

// handleShortlistClear empties the shortlist.
func (s *Server) handleShortlistClear(w http.ResponseWriter, _ *http.Request) {
	s.sessionMu.Lock()
	s.session.ClearShortlist()
	s.sessionMu.Unlock()

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// handleShortlistExport downloads the shortlist as a CSV attachment.
func (s *Server) handleShortlistExport(w http.ResponseWriter, _ *http.Request) {
	s.sessionMu.Lock()
	var buf bytes.Buffer
	err := batch.WriteShortlistCSV(&buf, s.session.Shortlist())
	s.sessionMu.Unlock()

	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to export shortlist: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="shortlist.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing CSV response: %v", err)
	}
}

// findResult looks up a candidate by filename in the stored batch results.
// Callers hold sessionMu.
func (s *Server) findResult(filename string) (batch.Candidate, bool) {
	for _, c := range s.session.Results() {
		if c.Filename == filename {
			return c, true
		}
	}
	return batch.Candidate{}, false
}

// shortlistResponse snapshots the session's shortlist. Callers hold
// sessionMu.
func (s *Server) shortlistResponse() ShortlistResponse {
	return ShortlistResponse{
		Shortlist: s.session.Shortlist(),
		Emails:    s.session.EmailList(),
	}
}
