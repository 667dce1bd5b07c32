// Package api - the JSON surface of the site.
// The API is ONLY responsible for: input ingestion, pricing-engine
// orchestration, relay forwarding, output serialization. It performs no
// pricing logic itself.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MaRkS1234567/MySite-web/core/directions"
	"github.com/MaRkS1234567/MySite-web/core/lead"
	"github.com/MaRkS1234567/MySite-web/core/locale"
	"github.com/MaRkS1234567/MySite-web/core/pricing"
	"github.com/MaRkS1234567/MySite-web/internal/logging"
)

// CORS headers set on every response. The relay is called from
// browser-originated requests on any origin.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	relay   lead.Relay
	table   *pricing.Table
	version string
}

// NewServer creates a new API server
func NewServer(version string, relay lead.Relay, table *pricing.Table) *Server {
	if table == nil {
		table = pricing.DefaultTable()
	}
	s := &Server{
		mux:     http.NewServeMux(),
		relay:   relay,
		table:   table,
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// The contact route handles its own method dispatch: the wire
	// contract requires a JSON 405 body for anything but POST/OPTIONS.
	s.mux.HandleFunc("/contact", s.handleContact)

	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /directions", s.handleDirections)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler. CORS headers go on every response;
// preflight requests short-circuit with an empty 200.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for k, v := range corsHeaders {
		w.Header().Set(k, v)
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// contactRequest is the relay wire payload.
type contactRequest struct {
	Format      string `json:"format"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// handleContact handles POST /api/contact
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, map[string]string{"error": "Method not allowed"}, http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logging.Error("contact request decode failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		s.writeJSON(w, map[string]string{"error": "Internal server error"}, http.StatusInternalServerError)
		return
	}

	kind := lead.KindDev
	if req.Type == string(lead.KindTutor) {
		kind = lead.KindTutor
	}

	msg := lead.Message{
		Kind:        kind,
		Format:      req.Format,
		Name:        req.Name,
		Contact:     req.Contact,
		Description: req.Description,
	}

	if err := s.relay.Send(r.Context(), msg); err != nil {
		// The cause is logged for the operator; the browser only ever
		// sees the generic string.
		logging.Error("lead relay failed",
			zap.String("request_id", requestID),
			zap.String("kind", string(kind)),
			zap.Error(err))
		s.writeJSON(w, map[string]string{"error": "Failed to send message"}, http.StatusInternalServerError)
		return
	}

	logging.Info("lead relayed",
		zap.String("request_id", requestID),
		zap.String("kind", string(kind)))
	s.writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// estimateRequest carries one configurator state over the wire.
type estimateRequest struct {
	Format    string `json:"format"`
	Intensity string `json:"intensity"`
	Frequency string `json:"frequency"`
	Goal      string `json:"goal"`
	Duration  int    `json:"duration"`
	Urgency   string `json:"urgency"`
	Lang      string `json:"lang,omitempty"`
}

// estimateResponse is the computed quote.
type estimateResponse struct {
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
	MonthlyMin decimal.Decimal `json:"monthly_min"`
	MonthlyMax decimal.Decimal `json:"monthly_max"`
	Currency   string          `json:"currency"`
	Summary    string          `json:"summary"`
	Includes   []string        `json:"includes"`
}

// handleEstimate handles POST /api/estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	cfg, err := parseConfig(req)
	if err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}
	lang := locale.Parse(req.Lang)

	price := s.table.Calculate(cfg)
	monthly := pricing.MonthlyEstimate(price, cfg.Frequency)
	selection := pricing.Selection{
		Config:       cfg,
		EstimatedMin: price.Min,
		EstimatedMax: price.Max,
	}

	s.writeJSON(w, estimateResponse{
		Min:        price.Min,
		Max:        price.Max,
		MonthlyMin: monthly.Min,
		MonthlyMax: monthly.Max,
		Currency:   "RUB",
		Summary:    selection.Summary(lang),
		Includes:   cfg.Intensity.Includes(lang),
	}, http.StatusOK)
}

func parseConfig(req estimateRequest) (pricing.Config, error) {
	var cfg pricing.Config
	var err error
	if cfg.Format, err = pricing.ParseFormat(req.Format); err != nil {
		return cfg, err
	}
	if cfg.Intensity, err = pricing.ParseIntensity(req.Intensity); err != nil {
		return cfg, err
	}
	if cfg.Frequency, err = pricing.ParseFrequency(req.Frequency); err != nil {
		return cfg, err
	}
	if cfg.Goal, err = pricing.ParseGoal(req.Goal); err != nil {
		return cfg, err
	}
	if cfg.Duration, err = pricing.ParseDuration(req.Duration); err != nil {
		return cfg, err
	}
	if cfg.Urgency, err = pricing.ParseUrgency(req.Urgency); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// handleDirections handles GET /api/directions
func (s *Server) handleDirections(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"directions": directions.Catalog,
		"count":      len(directions.Catalog),
	}, http.StatusOK)
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /api/version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"api_version": "v1",
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
