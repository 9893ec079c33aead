// Package api - Thin, deterministic HTTP layer
// The API is only responsible for input ingestion, engine invocation,
// and output serialization. It never performs cost logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"landed-cost/core/engine"
	"landed-cost/core/report"
	"landed-cost/core/types"
	"landed-cost/internal/errors"
	"landed-cost/internal/logging"
)

// Server is the API server.
type Server struct {
	engine    *engine.Engine
	assembler *report.Assembler
	mux       *http.ServeMux
	version   string
}

// NewServer creates an API server around a constructed engine.
func NewServer(version string, eng *engine.Engine, assembler *report.Assembler) *Server {
	s := &Server{
		engine:    eng,
		assembler: assembler,
		mux:       http.NewServeMux(),
		version:   version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleAnalyze handles POST /analyze
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	var req types.ShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.engine.Estimate(&req)
	if err != nil {
		if errors.IsValidation(err) {
			s.writeError(w, string(errors.TypeValidation), err.Error(), http.StatusBadRequest)
			return
		}
		s.writeError(w, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	doc := s.assembler.Assemble(result, report.RequestMeta{TargetMarket: req.TargetMarket})

	logging.Info("analysis served",
		zap.String("request_id", requestID),
		zap.String("input_hash", inputHash(&req)),
		zap.String("confidence", string(doc.Meta.ConfidenceLevel)),
		zap.String("overall_risk", doc.RiskAnalysis.OverallRiskLevel),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	s.writeJSON(w, doc, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "landed-cost",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// inputHash is a deterministic digest of the request, logged so
// identical inputs can be correlated across runs.
func inputHash(req *types.ShipmentRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])[:16]
}
