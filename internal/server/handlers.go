package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ranker/internal/jobdesc"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/jonathan/resume-ranker/internal/types"
)

// maxUploadBytes caps the total size of a multipart rank request.
const maxUploadBytes = 64 << 20 // 64 MiB

// handleRank accepts a multipart form with one or more resume files under
// the "resumes" field and a job description as either the "job_description"
// text field or a "job_url" field. The run is synchronous: the response body
// is the finished report.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Printf("Error cleaning up multipart form: %v", err)
		}
	}()

	jobText := r.FormValue("job_description")
	jobURL := r.FormValue("job_url")
	switch {
	case jobText != "" && jobURL != "":
		s.errorResponse(w, http.StatusBadRequest, "job_description and job_url are mutually exclusive")
		return
	case jobText == "" && jobURL == "":
		s.errorResponse(w, http.StatusBadRequest, "Either job_description or job_url is required")
		return
	case jobURL != "":
		text, err := jobdesc.FromURL(r.Context(), jobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
			return
		}
		jobText = text
	}

	fileHeaders := r.MultipartForm.File["resumes"]
	if len(fileHeaders) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one file under 'resumes' is required")
		return
	}

	files := make([]pipeline.InputFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Failed to open upload %s: %v", header.Filename, err))
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Failed to read upload %s: %v", header.Filename, err))
			return
		}
		files = append(files, pipeline.InputFile{Name: header.Filename, Data: data})
	}

	report, err := pipeline.Process(r.Context(), files, jobText, s.matcher.Terms(), s.region, nil)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}

	if s.db != nil {
		s.persistReport(r.Context(), report)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// persistReport stores a finished report. Persistence failures are logged,
// not surfaced: the client already has the result.
func (s *Server) persistReport(ctx context.Context, report *types.Report) {
	runID, err := s.db.CreateRun(ctx, report.Job)
	if err != nil {
		log.Printf("Warning: failed to persist run: %v", err)
		return
	}

	status := "completed"
	for i := range report.Candidates {
		if err := s.db.SaveCandidate(ctx, runID, i+1, &report.Candidates[i]); err != nil {
			log.Printf("Warning: %v", err)
			status = "partial"
		}
	}
	for i := range report.Failures {
		if err := s.db.SaveFailure(ctx, runID, &report.Failures[i]); err != nil {
			log.Printf("Warning: %v", err)
			status = "partial"
		}
	}
	if err := s.db.CompleteRun(ctx, runID, status); err != nil {
		log.Printf("Warning: failed to complete run: %v", err)
	}
}

// handleVocabulary returns the active skill vocabulary
func (s *Server) handleVocabulary(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{"skills": s.matcher.Terms()})
}

// handleListRuns returns recent persisted ranking runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Run history requires database persistence")
		return
	}

	runs, err := s.db.ListRuns(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list runs: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns the persisted candidates of one run
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Run history requires database persistence")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	candidates, err := s.db.GetRunCandidates(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get run: "+err.Error())
		return
	}
	if len(candidates) == 0 {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id":     runID,
		"candidates": candidates,
	})
}

// handleHealth returns service health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"persistent": s.db != nil,
	})
}
