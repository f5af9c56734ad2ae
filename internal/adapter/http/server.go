// Package http exposes the dashboard API plus health, readiness, and
// metrics endpoints over the canonical disaster table.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/bencana-dashboard/internal/domain"
	"github.com/couchcryptid/bencana-dashboard/internal/observability"
)

// DataProvider is the pipeline surface the server consumes: the current
// canonical table, its clean reports, re-ingestion, and readiness.
type DataProvider interface {
	Table() *domain.Table
	Reports() []domain.CleanReport
	Ingest(ctx context.Context) error
	CheckReadiness(ctx context.Context) error
}

// Server serves the dashboard API.
type Server struct {
	httpServer  *http.Server
	data        DataProvider
	defaultTopN int
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewServer wires the API routes onto a chi router.
func NewServer(addr string, data DataProvider, defaultTopN int, logger *slog.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		data:        data,
		defaultTopN: defaultTopN,
		logger:      logger,
		metrics:     metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/provinces", s.handleProvinces)
		r.Get("/records", s.handleRecords)
		r.Get("/report", s.handleReport)
		r.Post("/reload", s.handleReload)
	})

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.data.CheckReadiness(ctx); err != nil {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]string{"status": "not ready", "error": err.Error()})
		return
	}
	render.JSON(w, r, map[string]string{"status": "ready"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r)
	if !ok {
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	metric := domain.MetricIncidents
	if name := r.URL.Query().Get("metric"); name != "" {
		metric, err = domain.ParseMetric(name)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	topN := s.defaultTopN
	if raw := r.URL.Query().Get("top"); raw != "" {
		topN, err = strconv.Atoi(raw)
		if err != nil || topN < 1 {
			renderError(w, r, http.StatusBadRequest, "top must be a positive integer")
			return
		}
	}

	start := time.Now()
	view := domain.Summarize(table, filter, metric, topN)
	s.metrics.SummarizeDuration.Observe(time.Since(start).Seconds())

	render.JSON(w, r, view)
}

func (s *Server) handleProvinces(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, map[string]any{"provinces": table.Provinces()})
}

// handleRecords serves the cleaned-data preview, ordered by year then
// province so the listing is stable across re-reads.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r)
	if !ok {
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	records := table.Filter(filter)
	sort.Slice(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year < records[j].Year
		}
		if records[i].Province != records[j].Province {
			return records[i].Province < records[j].Province
		}
		return records[i].DisasterType < records[j].DisasterType
	})

	render.JSON(w, r, map[string]any{"records": records, "count": len(records)})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	reports := s.data.Reports()
	if reports == nil {
		renderError(w, r, http.StatusServiceUnavailable, "canonical table has not been ingested yet")
		return
	}
	render.JSON(w, r, map[string]any{"reports": reports})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.data.Ingest(r.Context()); err != nil {
		s.logger.Error("reload failed", "error", err)
		renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, r, map[string]any{"status": "reloaded", "rows": s.data.Table().Len()})
}

// table fetches the canonical table or answers 503 when ingestion has
// not completed yet.
func (s *Server) table(w http.ResponseWriter, r *http.Request) (*domain.Table, bool) {
	table := s.data.Table()
	if table == nil {
		renderError(w, r, http.StatusServiceUnavailable, "canonical table has not been ingested yet")
		return nil, false
	}
	return table, true
}

func parseFilter(r *http.Request) (domain.Filter, error) {
	var filter domain.Filter

	if raw := r.URL.Query().Get("years"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			year, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return domain.Filter{}, &badParamError{param: "years", value: part}
			}
			filter.Years = append(filter.Years, year)
		}
	}

	if raw := r.URL.Query().Get("provinces"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				filter.Provinces = append(filter.Provinces, p)
			}
		}
	}

	return filter, nil
}

type badParamError struct {
	param string
	value string
}

func (e *badParamError) Error() string {
	return "invalid " + e.param + " value " + strconv.Quote(e.value)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": msg})
}
