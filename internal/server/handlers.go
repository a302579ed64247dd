package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jfields/resume-screener/internal/pipeline"
)

var validate = validator.New()

// ScreenRequest represents the request body for /screen
type ScreenRequest struct {
	ResumeText    string `json:"resume_text" validate:"required,min=1"`
	JobText       string `json:"job_text" validate:"required,min=1"`
	MergeOverlaps *bool  `json:"merge_overlaps,omitempty"` // overrides the server default when set
}

// ErrorResponse represents an error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleScreen runs one screening pipeline for the submitted texts
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	mergeOverlaps := s.mergeOverlaps
	if req.MergeOverlaps != nil {
		mergeOverlaps = *req.MergeOverlaps
	}

	result, err := pipeline.RunScreening(r.Context(), pipeline.Options{
		ResumeText:    req.ResumeText,
		JobText:       req.JobText,
		Vocabulary:    s.vocabulary,
		Semantic:      s.semantic,
		MergeOverlaps: mergeOverlaps,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Screening failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
