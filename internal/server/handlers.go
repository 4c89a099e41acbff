package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/abhisek/formcheck/internal/analysis"
	"github.com/abhisek/formcheck/internal/pose"
)

// maxBodyBytes caps the request body. Pose sequences are small; anything
// near this limit is not a legitimate request.
const maxBodyBytes = 4 << 20

type healthResponse struct {
	Status           string `json:"status"`
	OpenAIConfigured bool   `json:"openai_configured"`
	OpenAIAvailable  bool   `json:"openai_available"`
	Model            string `json:"model"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexPage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "ok",
		OpenAIConfigured: s.svc.Configured(),
		OpenAIAvailable:  s.status.Available,
		Model:            s.status.Model,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	req, err := pose.ValidateRequest(body)
	if err != nil {
		log.Printf("analyze [%s]: invalid request: %v", requestID(r), err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.svc.Analyze(r.Context(), req)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyPoses) {
			writeError(w, http.StatusBadRequest, analysis.ErrEmptyPoses.Error())
			return
		}
		// Diagnostic detail stays server-side; the client gets a
		// generic message.
		log.Printf("analyze [%s]: %v", requestID(r), err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
