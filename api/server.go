// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, core invocation, output serialization.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	apperrors "agency-dash/internal/errors"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
	logger  *zap.Logger
}

// NewServer creates a new API server
func NewServer(version string, handler *Handler, logger *zap.Logger) *Server {
	if handler == nil {
		handler = NewHandler(HandlerConfig{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		handler: handler,
		mux:     http.NewServeMux(),
		version: version,
		logger:  logger,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Calculators
	s.mux.HandleFunc("POST /exchange", s.handleExchange)
	s.mux.HandleFunc("POST /rebates", s.handleRebates)
	s.mux.HandleFunc("POST /paysheet", s.handlePaysheet)
	s.mux.HandleFunc("GET /paychart/{kind}", s.handlePayChart)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleExchange handles POST /exchange
func (s *Server) handleExchange(w http.ResponseWriter, r *http.Request) {
	var req ExchangeRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.handler.exchange(&req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, result, http.StatusOK)
}

// handleRebates handles POST /rebates
func (s *Server) handleRebates(w http.ResponseWriter, r *http.Request) {
	var req RebateRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.handler.rebates(&req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, result, http.StatusOK)
}

// handlePaysheet handles POST /paysheet
func (s *Server) handlePaysheet(w http.ResponseWriter, r *http.Request) {
	var req PaysheetRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.handler.paysheet(&req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, result, http.StatusOK)
}

// handlePayChart handles GET /paychart/{kind}?beans=N
func (s *Server) handlePayChart(w http.ResponseWriter, r *http.Request) {
	var beans *int64
	if raw := r.URL.Query().Get("beans"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, apperrors.Parsing("beans must be a whole number", err))
			return
		}
		beans = &v
	}
	result, err := s.handler.payChart(r.PathValue("kind"), beans)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, result, http.StatusOK)
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
		"version":     s.version,
		"engine":      "agency-dash",
		"api_version": "v1",
	}, http.StatusOK)
}

// decode reads a JSON body into v, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, apperrors.Parsing("invalid JSON body", err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	errType := apperrors.TypeOf(err)
	status := statusFor(errType)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.Error(err))
	}
	s.writeJSON(w, ErrorBody{Error: ErrorDetail{
		Code:    string(errType),
		Message: err.Error(),
	}}, status)
}

func statusFor(t apperrors.Type) int {
	switch t {
	case apperrors.TypeInvalidArgument, apperrors.TypeParsing:
		return http.StatusBadRequest
	case apperrors.TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Info("Request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)))
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
