package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/akanlabs/twi-translator/internal/service"
)

type translateRequest struct {
	Sentence string `json:"sentence"`
	Details  bool   `json:"details"`
}

// handleTranslate answers POST /api/translate. Validation outcomes ("enter a
// sentence", "one sentence at a time") are data in the translation field and
// come back with 200; only a body that is not JSON gets a 400.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := s.svc.TranslateOne(r.Context(), req.Sentence, req.Details)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Examples []string `json:"examples"`
	}{Examples: service.Examples})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
