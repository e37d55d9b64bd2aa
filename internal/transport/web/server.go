// Package web is the HTTP surface of the service: the server-rendered
// associations page, a JSON view of the same rows, standalone chart SVGs,
// and the health endpoint.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/daviddamilola/LungCarcinoma-Insights/internal/chart"
	"github.com/daviddamilola/LungCarcinoma-Insights/internal/domain"
	"github.com/daviddamilola/LungCarcinoma-Insights/internal/logger"
	associationsuc "github.com/daviddamilola/LungCarcinoma-Insights/internal/usecase/associations"
	healthuc "github.com/daviddamilola/LungCarcinoma-Insights/internal/usecase/health"
)

// AssociationReader provides the ranked view model for one page load.
type AssociationReader interface {
	Overview(ctx context.Context) (associationsuc.Overview, error)
	Row(ctx context.Context, targetID string) (domain.ViewRow, error)
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server holds the HTTP handlers.
type Server struct {
	associations AssociationReader
	health       HealthChecker
	logger       *zap.Logger
}

// NewServer creates the web server.
func NewServer(associations AssociationReader, health HealthChecker, log *zap.Logger) *Server {
	return &Server{associations: associations, health: health, logger: log}
}

// Routes builds the router for all service endpoints.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/api/associations", s.handleAssociationsJSON)
	r.Get("/targets/{targetID}/chart.svg", s.handleChartSVG)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// handleIndex renders the associations page. The view model is rebuilt
// from a fresh upstream fetch on every request.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ov, err := s.associations.Overview(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, buildPageData(ov)); err != nil {
		logger.FromContext(r.Context()).Error("render page", zap.Error(err))
	}
}

// associationsResponse is the JSON shape of GET /api/associations.
type associationsResponse struct {
	DiseaseID   string           `json:"diseaseId"`
	DiseaseName string           `json:"diseaseName"`
	Rows        []domain.ViewRow `json:"rows"`
}

func (s *Server) handleAssociationsJSON(w http.ResponseWriter, r *http.Request) {
	ov, err := s.associations.Overview(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, associationsResponse{
		DiseaseID:   ov.DiseaseID,
		DiseaseName: ov.DiseaseName,
		Rows:        ov.Rows,
	})
}

// handleChartSVG serves one row's score chart as a standalone SVG.
// The kind query parameter selects the variant: bar (default) or radar.
func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = "bar"
	}
	if kind != "bar" && kind != "radar" {
		s.renderError(w, r, domain.ErrUnknownChartKind)
		return
	}

	row, err := s.associations.Row(r.Context(), chi.URLParam(r, "targetID"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	data := chartData(row)
	title := chartTitle(row)

	w.Header().Set("Content-Type", "image/svg+xml")
	if kind == "radar" {
		chart.NewRadarLayout(data, title).Render(w)
		return
	}
	chart.NewBarLayout(data, title).Render(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// chartData maps a row's categories onto chart input, formatting datatype
// identifiers into human-readable labels.
func chartData(row domain.ViewRow) []chart.Datum {
	data := make([]chart.Datum, 0, len(row.Categories))
	for _, c := range row.Categories {
		data = append(data, chart.Datum{
			Label: associationsuc.CategoryLabel(c.ID),
			Value: c.Score,
		})
	}
	return data
}

func chartTitle(row domain.ViewRow) string {
	name := row.Symbol
	if name == "" {
		name = row.Name
	}
	return name + " association scores"
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// renderError maps domain sentinels onto HTTP statuses. An upstream
// failure is fatal for the whole render cycle; there is no partial result.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrTargetNotFound):
		http.Error(w, "target not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrUnknownChartKind):
		http.Error(w, "chart kind must be bar or radar", http.StatusBadRequest)
	case errors.Is(err, domain.ErrUpstreamUnavailable), errors.Is(err, domain.ErrDiseaseNotFound):
		log.Error("upstream load failed", zap.Error(err))
		http.Error(w, "failed to load association data", http.StatusBadGateway)
	default:
		log.Error("unhandled error", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
