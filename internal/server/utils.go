package server

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
	"github.com/M1ts0sGitHub/Earthquakes/internal/reports"
)

const dateParamLayout = "2006-01-02"

// defaultWindowDays is the sidebar's initial date window, counted back from
// the newest event in the snapshot.
const defaultWindowDays = 7

// parseFilter builds the record filter from the request query. Absent date
// bounds default to the last week of the snapshot; absent magnitude bounds
// default to [0, +inf). The returned FilterView echoes the effective values
// back into the sidebar form.
func parseFilter(query url.Values, records []models.EarthquakeRecord) (models.Filter, reports.FilterView, error) {
	filter := models.NewFilter()
	filter.MinMagnitude = 0

	if v := query.Get("from"); v != "" {
		t, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return filter, reports.FilterView{}, fmt.Errorf("invalid from date %q", v)
		}
		filter.From = t
	}
	if v := query.Get("to"); v != "" {
		t, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return filter, reports.FilterView{}, fmt.Errorf("invalid to date %q", v)
		}
		filter.To = t
	}
	if v := query.Get("min_mag"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, reports.FilterView{}, fmt.Errorf("invalid min_mag %q", v)
		}
		filter.MinMagnitude = m
	}
	if v := query.Get("max_mag"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, reports.FilterView{}, fmt.Errorf("invalid max_mag %q", v)
		}
		filter.MaxMagnitude = m
	}

	// Default window: the last week of data, anchored on the newest event.
	if filter.From.IsZero() && filter.To.IsZero() {
		if _, newest, ok := models.TimeBounds(records); ok {
			filter.From = newest.AddDate(0, 0, -defaultWindowDays)
			filter.To = newest
		}
	}

	return filter, filterView(filter), nil
}

// filterView echoes the effective filter back into the form fields.
func filterView(f models.Filter) reports.FilterView {
	view := reports.FilterView{
		MinMagnitude: strconv.FormatFloat(f.MinMagnitude, 'f', 1, 64),
	}
	if !f.From.IsZero() {
		view.From = f.From.Format(dateParamLayout)
	}
	if !f.To.IsZero() {
		view.To = f.To.Format(dateParamLayout)
	}
	if !math.IsInf(f.MaxMagnitude, 1) {
		view.MaxMagnitude = strconv.FormatFloat(f.MaxMagnitude, 'f', 1, 64)
	}
	return view
}

// csvLink builds the CSV download URL carrying the active filter.
func csvLink(query url.Values) string {
	if len(query) == 0 {
		return "/earthquakes.csv"
	}
	return "/earthquakes.csv?" + query.Encode()
}

// GetContentType returns the content type for a static file path.
func GetContentType(filePath string) string {
	switch {
	case strings.HasSuffix(filePath, ".html"):
		return "text/html"
	case strings.HasSuffix(filePath, ".png"):
		return "image/png"
	case strings.HasSuffix(filePath, ".csv"):
		return "text/csv"
	case strings.HasSuffix(filePath, ".json"):
		return "application/json"
	case strings.HasSuffix(filePath, ".css"):
		return "text/css"
	case strings.HasSuffix(filePath, ".js"):
		return "application/javascript"
	case strings.HasSuffix(filePath, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
