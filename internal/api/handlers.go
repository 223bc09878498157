package api

// #region imports
import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/calibration"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/store"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/tutor"
)

// #endregion

// #region response-helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// failurePayload is the typed degraded response clients render when an
// operation could not complete.
type failurePayload struct {
	ErrorMessage     string `json:"error_message"`
	FallbackResponse string `json:"fallback_response"`
	ShouldRetry      bool   `json:"should_retry"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}); err != nil {
		log.Printf("[API] encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	}); err != nil {
		log.Printf("[API] encode error response: %v", err)
	}
}

// respondFailure returns the engine's fallback payload. 200 on purpose: the
// learner still gets a renderable, reassuring response.
func respondFailure(w http.ResponseWriter, fail *tutor.Failure) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiResponse{
		Success: false,
		Data: failurePayload{
			ErrorMessage:     fail.ErrorMessage,
			FallbackResponse: fail.FallbackResponse,
			ShouldRetry:      fail.ShouldRetry,
		},
		Error: &apiError{Code: string(fail.Kind), Message: fail.ErrorMessage},
	}); err != nil {
		log.Printf("[API] encode failure response: %v", err)
	}
}

// #endregion

// #region decode

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return false
	}
	return true
}

// #endregion

// #region health

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.HealthCheck(r.Context()); err != nil {
		log.Printf("[API] health check failed: %v", err)
		respondError(w, http.StatusServiceUnavailable, "unhealthy", "model capability unreachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// #endregion

// #region interaction-handlers

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.validate(false, false); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	ic := req.toContext()
	result, fail := s.engine.AssessUser(r.Context(), ic)
	if fail != nil {
		s.record(req, "assess", tutor.Metadata{}, string(fail.Kind))
		respondFailure(w, fail)
		return
	}
	s.record(req, "assess", result.Meta, "")
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGuidance(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.validate(true, false); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	ic := req.toContext()
	result, fail := s.engine.ProvideGuidance(r.Context(), ic, req.Message)
	if fail != nil {
		s.record(req, "guide", tutor.Metadata{}, string(fail.Kind))
		respondFailure(w, fail)
		return
	}
	s.record(req, "guide", result.Meta, "")
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.validate(false, true); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	ic := req.toContext()
	result, fail := s.engine.ValidateSolution(r.Context(), ic, req.Solution)
	if fail != nil {
		s.record(req, "validate", tutor.Metadata{}, string(fail.Kind))
		respondFailure(w, fail)
		return
	}
	s.record(req, "validate", result.Meta, "")
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.validate(true, false); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	ic := req.toContext()
	result, fail := s.engine.HandleChat(r.Context(), ic, req.Message)
	if fail != nil {
		s.record(req, "chat", tutor.Metadata{}, string(fail.Kind))
		respondFailure(w, fail)
		return
	}
	s.record(req, "chat", result.Meta, "")
	respondJSON(w, http.StatusOK, result)
}

// #endregion

// #region calibration-handlers

func (s *Server) handleCalibrate(w http.ResponseWriter, r *http.Request) {
	var req calibrationRequest
	if !decode(w, r, &req) {
		return
	}
	if req.UserID == "" || req.PatternID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "user_id and pattern_id are required")
		return
	}
	if len(req.Responses) == 0 {
		respondError(w, http.StatusBadRequest, "invalid_request", "responses are required")
		return
	}

	result := calibration.Score(req.Responses, calibration.Questions)

	if s.store != nil {
		if _, err := s.store.SaveCalibration(req.UserID, req.PatternID, result); err != nil {
			log.Printf("[API] save calibration: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total_score":      result.TotalScore,
		"persona":          result.Persona,
		"description":      persona.Description(result.Persona),
		"guidance_bullets": persona.GuidanceBullets(result.Persona),
		"guidance_config":  result.Guidance,
	})
}

func (s *Server) handleLatestCalibration(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	patternID := r.URL.Query().Get("pattern_id")
	if userID == "" || patternID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "user_id and pattern_id are required")
		return
	}
	if s.store == nil {
		respondError(w, http.StatusNotFound, "not_found", "no calibration store configured")
		return
	}

	result, err := s.store.LatestCalibration(userID, patternID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "not_found", "no calibration result for this user and pattern")
			return
		}
		log.Printf("[API] latest calibration: %v", err)
		respondError(w, http.StatusInternalServerError, "internal", "failed to load calibration result")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// #endregion

// #region record

// record appends an interaction row; persistence problems are logged, never
// surfaced to the learner.
func (s *Server) record(req interactionRequest, kind string, meta tutor.Metadata, errKind string) {
	if s.store == nil {
		return
	}
	err := s.store.RecordInteraction(store.InteractionRecord{
		UserID:       req.UserID,
		PatternID:    req.PatternID,
		Kind:         kind,
		StepID:       meta.StepID,
		Persona:      string(meta.Persona),
		InputTokens:  meta.InputTokens,
		OutputTokens: meta.OutputTokens,
		CostEstimate: meta.CostEstimate,
		LatencyMS:    meta.ResponseTimeMS,
		QualityScore: meta.QualityScore,
		ErrorKind:    errKind,
	})
	if err != nil {
		log.Printf("[API] record interaction: %v", err)
	}
}

// #endregion
