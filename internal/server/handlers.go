package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-checker/internal/extraction"
	"github.com/jonathan/ats-checker/internal/types"
)

// AnalyzeTextRequest represents the request body for /analyze/text.
type AnalyzeTextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	return validator.New().Struct(r)
}

// AnalysisResponse represents the response for the analyze endpoints.
// Result is omitted when the input was too short to analyze.
type AnalysisResponse struct {
	Status string                `json:"status"`
	Result *types.AnalysisResult `json:"result,omitempty"`
}

// handleAnalyzeFile accepts a multipart upload (field "resume"), extracts
// its text, and returns the analysis.
func (s *Server) handleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, `multipart field "resume" is required`)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+err.Error())
		return
	}

	format, err := extraction.FormatFromMIME(header.Header.Get("Content-Type"))
	if err != nil {
		// Some clients send application/octet-stream; fall back to the
		// filename extension before rejecting.
		format, err = extraction.FormatFromPath(header.Filename)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	result, err := s.checker.SubmitDocument(types.RawDocument{Data: data, Format: format})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalysisResponse{
		Status: s.checker.Status(),
		Result: result,
	})
}

// handleAnalyzeText accepts pasted resume text and returns the analysis.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	result, err := s.checker.SubmitText(req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalysisResponse{
		Status: s.checker.Status(),
		Result: result,
	})
}

// handleResult returns the most recent committed analysis.
func (s *Server) handleResult(w http.ResponseWriter, _ *http.Request) {
	result, ok := s.checker.Result()
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "No analysis available yet")
		return
	}
	s.jsonResponse(w, http.StatusOK, AnalysisResponse{
		Status: s.checker.Status(),
		Result: &result,
	})
}

// handleStatus returns the current status line.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": s.checker.Status()})
}
