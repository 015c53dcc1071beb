package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
)

func chartRecords() []models.EarthquakeRecord {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.EarthquakeRecord{
		{Timestamp: base, Latitude: 38.10, Longitude: 23.70, Depth: 10.0, Magnitude: 4.5},
		{Timestamp: base.Add(-26 * time.Hour), Latitude: 37.90, Longitude: 22.50, Depth: 5.2, Magnitude: 2.1},
		{Timestamp: base.Add(-50 * time.Hour), Latitude: 39.00, Longitude: 24.10, Depth: 18.7, Magnitude: 3.3},
	}
}

func TestMapSnippet(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	snippet, err := cg.MapSnippet(chartRecords(), 38.2, 23.7, 7)
	if err != nil {
		t.Fatalf("MapSnippet failed: %v", err)
	}

	if snippet.ID == "" || snippet.Div == "" || snippet.Script == "" {
		t.Error("Snippet should have ID, div and script")
	}
	if !strings.Contains(snippet.HTML, "leaflet") {
		t.Error("Map snippet should include the Leaflet library")
	}
	if !strings.Contains(snippet.Script, "circleMarker") {
		t.Error("Map script should add circle markers")
	}

	// Newest event renders red, oldest blue.
	if !strings.Contains(snippet.Script, "#ff0000") {
		t.Error("Expected newest-event color #ff0000 in marker data")
	}
	if !strings.Contains(snippet.Script, "#0000ff") {
		t.Error("Expected oldest-event color #0000ff in marker data")
	}
}

func TestMapSnippetMarkerRadius(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	snippet, err := cg.MapSnippet(chartRecords()[:1], 38.2, 23.7, 7)
	if err != nil {
		t.Fatalf("MapSnippet failed: %v", err)
	}

	// radius = 4.5*2.5 + 4 = 15.25
	if !strings.Contains(snippet.Script, "15.25") {
		t.Errorf("Expected magnitude-scaled radius 15.25 in script: %s", snippet.Script)
	}
}

func TestMapSnippetEmptySet(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	snippet, err := cg.MapSnippet(nil, 38.2, 23.7, 7)
	if err != nil {
		t.Fatalf("MapSnippet should handle an empty set: %v", err)
	}
	if !strings.Contains(snippet.Script, "var markers=[]") {
		t.Errorf("Expected empty marker list, got: %s", snippet.Script)
	}
}

func TestMagnitudeHistogramHTML(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	html, err := cg.MagnitudeHistogramHTML(chartRecords())
	if err != nil {
		t.Fatalf("MagnitudeHistogramHTML failed: %v", err)
	}
	if !strings.Contains(html, "Magnitude Distribution") {
		t.Error("Histogram HTML should contain the chart title")
	}
}

func TestBinMagnitudes(t *testing.T) {
	labels, counts := binMagnitudes(chartRecords())

	// Magnitudes 2.1, 3.3, 4.5 span bins 2.0 .. 4.5.
	if len(labels) != 6 {
		t.Fatalf("Expected 6 bins from 2.0 to 4.5, got %d: %v", len(labels), labels)
	}
	if labels[0] != "2.0" || labels[len(labels)-1] != "4.5" {
		t.Errorf("Unexpected bin range: %v", labels)
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Errorf("Bins should account for all 3 records, got %d", total)
	}
}

func TestDailyCountsHTML(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	html, err := cg.DailyCountsHTML(chartRecords())
	if err != nil {
		t.Fatalf("DailyCountsHTML failed: %v", err)
	}
	if !strings.Contains(html, "Seismicity Over Time") {
		t.Error("Daily counts HTML should contain the chart title")
	}
}

func TestMagnitudeTimelinePNG(t *testing.T) {
	dir := t.TempDir()
	cg := NewChartGenerator(dir)

	path, err := cg.MagnitudeTimelinePNG(chartRecords())
	if err != nil {
		t.Fatalf("MagnitudeTimelinePNG failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("Chart should be written to the output dir, got %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Chart file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Chart file is empty")
	}
}

func TestMagnitudeTimelinePNGTooFewRecords(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	if _, err := cg.MagnitudeTimelinePNG(chartRecords()[:1]); err == nil {
		t.Error("Expected error for a single-record timeline")
	}
}
