package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/M1ts0sGitHub/Earthquakes/internal/catalog"
	"github.com/M1ts0sGitHub/Earthquakes/internal/charts"
	"github.com/M1ts0sGitHub/Earthquakes/internal/config"
	"github.com/M1ts0sGitHub/Earthquakes/internal/fetchers"
	"github.com/M1ts0sGitHub/Earthquakes/internal/observability"
	"github.com/M1ts0sGitHub/Earthquakes/internal/reports"
)

// Server wires the catalog pipeline to the HTTP surface.
type Server struct {
	Config     *config.Config
	Cache      *catalog.SnapshotCache
	Advisories *fetchers.AdvisoryFetcher
	Charts     *charts.ChartGenerator
	Builder    *reports.HTMLBuilder
	Metrics    *observability.Metrics
}

// NewServer creates a new server instance around an already-built snapshot
// cache. Metrics may be nil (tests).
func NewServer(cfg *config.Config, cache *catalog.SnapshotCache, advisories *fetchers.AdvisoryFetcher, metrics *observability.Metrics) (*Server, error) {
	builder, err := reports.NewHTMLBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize HTML builder: %w", err)
	}

	return &Server{
		Config:     cfg,
		Cache:      cache,
		Advisories: advisories,
		Charts:     charts.NewChartGenerator(cfg.LocalReportsDir),
		Builder:    builder,
		Metrics:    metrics,
	}, nil
}

// SetupRoutes configures HTTP routes for the server.
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/refresh", s.HandleRefresh)
	mux.HandleFunc("/earthquakes.csv", s.HandleCSV)
	mux.HandleFunc("/api/earthquakes", s.HandleAPI)
	mux.HandleFunc("/files/", s.HandleFiles)
	mux.Handle("/metrics", promhttp.Handler())

	// Catch-all last: the report page.
	mux.HandleFunc("/", s.HandleReport)

	return mux
}
