package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/M1ts0sGitHub/Earthquakes/internal/colors"
	"github.com/M1ts0sGitHub/Earthquakes/internal/config"
	"github.com/M1ts0sGitHub/Earthquakes/internal/logger"
	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
	"github.com/M1ts0sGitHub/Earthquakes/internal/reports"
)

// HandleReport serves the main report page: map, statistics, charts and the
// event table over the filtered working set.
func (s *Server) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()

	records, fetchErr := s.Cache.GetOrFetch(ctx)
	if fetchErr != nil && records == nil {
		logger.Error("Catalog fetch failed with no cached snapshot", fetchErr)
		http.Error(w, "Catalog unavailable: "+fetchErr.Error(), http.StatusBadGateway)
		return
	}

	staleNotice := ""
	if fetchErr != nil {
		logger.Warn("Serving stale snapshot after fetch failure", map[string]interface{}{"error": fetchErr.Error()})
		staleNotice = "The catalog feed is currently unreachable; showing the last cached snapshot."
	}

	filter, filterForm, err := parseFilter(r.URL.Query(), records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	working := filter.Apply(records)
	sorted := models.SortByTimeDesc(working)
	oldest, newest, _ := models.TimeBounds(working)

	mapSnippet, err := s.Charts.MapSnippet(working, s.Config.MapCenterLat, s.Config.MapCenterLon, s.Config.MapZoom)
	if err != nil {
		logger.Error("Failed to build map snippet", err)
		http.Error(w, "Failed to render map", http.StatusInternalServerError)
		return
	}

	data := reports.PageData{
		Version:     config.GetVersion(),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		FetchedAt:   reports.FormatFetchedAt(s.Cache.FetchedAt()),
		StaleNotice: staleNotice,
		Filter:      filterForm,
		Summary:     models.Summarize(working),
		MapHTML:     template.HTML(mapSnippet.HTML),
		CSVLink:     csvLink(r.URL.Query()),
		Rows: reports.FormatRows(sorted, func(rec models.EarthquakeRecord) string {
			return colors.Hex(colors.RecencyColor(rec.Timestamp, oldest, newest))
		}),
	}

	if len(working) > 0 {
		if histogram, err := s.Charts.MagnitudeHistogramHTML(working); err == nil {
			data.HistogramHTML = template.HTML(histogram)
		} else {
			logger.Warnf("Failed to build magnitude histogram: %v", err)
		}

		if daily, err := s.Charts.DailyCountsHTML(working); err == nil {
			data.DailyHTML = template.HTML(daily)
		} else {
			logger.Warnf("Failed to build daily counts chart: %v", err)
		}
	}

	if len(working) >= 2 {
		if path, err := s.Charts.MagnitudeTimelinePNG(working); err == nil {
			data.TimelineImage = "/files/" + filepath.Base(path)
		} else {
			logger.Warnf("Failed to render timeline chart: %v", err)
		}
	}

	if s.Advisories != nil {
		advisories, err := s.Advisories.FetchAdvisories(ctx, s.Config.AdvisoriesRSSURL, s.Config.AdvisoriesLimit)
		if err != nil {
			logger.Warnf("Failed to fetch advisories: %v", err)
		} else {
			data.Advisories = reports.FormatAdvisories(advisories)
		}
	}

	html, err := s.Builder.RenderPage(data)
	if err != nil {
		logger.Error("Failed to render report page", err)
		http.Error(w, "Failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// HandleCSV exports the filtered working set as CSV, newest first.
func (s *Server) HandleCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, fetchErr := s.Cache.GetOrFetch(r.Context())
	if fetchErr != nil && records == nil {
		http.Error(w, "Catalog unavailable: "+fetchErr.Error(), http.StatusBadGateway)
		return
	}

	filter, _, err := parseFilter(r.URL.Query(), records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sorted := models.SortByTimeDesc(filter.Apply(records))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="earthquakes.csv"`)
	if err := reports.WriteCSV(w, sorted); err != nil {
		logger.Error("Failed to write CSV export", err)
	}
}

// HandleAPI returns the filtered working set as JSON.
func (s *Server) HandleAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, fetchErr := s.Cache.GetOrFetch(r.Context())
	if fetchErr != nil && records == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": fetchErr.Error(),
		})
		return
	}

	filter, _, err := parseFilter(r.URL.Query(), records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	working := models.SortByTimeDesc(filter.Apply(records))

	response := map[string]interface{}{
		"records":    working,
		"summary":    models.Summarize(working),
		"fetched_at": s.Cache.FetchedAt().UTC().Format(time.RFC3339),
		"stale":      fetchErr != nil,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleRefresh discards the cached snapshot and fetches a fresh one.
func (s *Server) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	logger.Info("Manual refresh requested")
	s.Cache.Invalidate()

	records, err := s.Cache.GetOrFetch(r.Context())
	if err != nil {
		logger.Error("Manual refresh failed", err)
		http.Error(w, "Refresh failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":     "success",
		"records":    len(records),
		"fetched_at": s.Cache.FetchedAt().UTC().Format(time.RFC3339),
	})
}

// HandleHealth provides a health check endpoint.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"config": "ok",
		},
	}
	if fetchedAt := s.Cache.FetchedAt(); !fetchedAt.IsZero() {
		health["snapshot_age_seconds"] = int(time.Since(fetchedAt).Seconds())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleFiles serves static chart images from the local reports directory.
func (s *Server) HandleFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}

	// Prevent directory traversal.
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	localPath := filepath.Join(s.Config.LocalReportsDir, filePath)
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", GetContentType(localPath))
	w.Header().Set("Cache-Control", "public, max-age=60")
	http.ServeFile(w, r, localPath)
}
