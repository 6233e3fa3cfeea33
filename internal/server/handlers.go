package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// CreateJobRequest is the body for POST /jobs.
type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1,dive,required"`
}

// ProcessRequest is the body for POST /process: raw resume text to run
// through the pipeline synchronously.
type ProcessRequest struct {
	Text string `json:"text" validate:"required"`
	Ref  string `json:"ref"`
}

// ListResponse wraps list results the way the dashboard consumes them.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ListResponse[types.JobPosting]{Items: jobs, Count: len(jobs)})
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// Required skills are stored in normalized form so matching and
	// extraction agree on the vocabulary.
	skillSet := matching.NormalizeSkillSet(req.RequiredSkills)
	if len(skillSet) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "required_skills must contain at least one non-empty skill")
		return
	}
	skills := make([]string, 0, len(skillSet))
	for skill := range skillSet {
		skills = append(skills, skill)
	}

	job := types.JobPosting{
		JobID:          uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: matching.SortedSkills(skills),
	}
	if err := s.store.UpsertJob(r.Context(), job); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.store.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ListResponse[types.Report]{Items: candidates, Count: len(candidates)})
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	report, ok := s.candidateByPath(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleCandidateReport serves the candidate's profile + match list as a
// downloadable document.
func (s *Server) handleCandidateReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.candidateByPath(w, r)
	if !ok {
		return
	}

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render report")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "candidate-"+report.CandidateID.String()+".json"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// handleProcess runs one raw text document through the pipeline
// synchronously and returns what was persisted.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.runner.Process(r.Context(), pipeline.Document{
		RawText:    req.Text,
		RawTextRef: req.Ref,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, report)
}

func (s *Server) candidateByPath(w http.ResponseWriter, r *http.Request) (*types.Report, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return nil, false
	}

	report, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Candidate not found")
		return nil, false
	}
	return report, true
}
