package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/M1ts0sGitHub/Earthquakes/internal/colors"
	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
)

// MagnitudeTimelinePNG renders magnitude-over-time as a static PNG image in
// the generator's output directory and returns the file path. Dot color
// follows the same recency gradient as the map markers.
func (cg *ChartGenerator) MagnitudeTimelinePNG(records []models.EarthquakeRecord) (string, error) {
	if len(records) < 2 {
		return "", fmt.Errorf("timeline chart needs at least 2 records, got %d", len(records))
	}

	byTime := make([]models.EarthquakeRecord, len(records))
	copy(byTime, records)
	sort.Slice(byTime, func(i, j int) bool {
		return byTime[i].Timestamp.Before(byTime[j].Timestamp)
	})

	oldest, newest, _ := models.TimeBounds(byTime)

	xValues := make([]time.Time, len(byTime))
	yValues := make([]float64, len(byTime))
	for i, r := range byTime {
		xValues[i] = r.Timestamp
		yValues[i] = r.Magnitude
	}

	var dotSeries []chart.Series
	for i, r := range byTime {
		dotSeries = append(dotSeries, chart.TimeSeries{
			Style: chart.Style{
				StrokeColor: colors.RecencyColor(r.Timestamp, oldest, newest),
				DotColor:    colors.RecencyColor(r.Timestamp, oldest, newest),
				DotWidth:    4,
			},
			XValues: []time.Time{xValues[i]},
			YValues: []float64{yValues[i]},
		})
	}

	mainSeries := chart.TimeSeries{
		Name: "Magnitude",
		Style: chart.Style{
			StrokeColor: drawing.Color{R: 120, G: 120, B: 120, A: 128},
			StrokeWidth: 1,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title: "Magnitude Timeline",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   60,
				Right:  20,
				Bottom: 40,
			},
		},
		Height: 350,
		Width:  800,
		XAxis: chart.XAxis{
			Name: "Time (local)",
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(time.Time); ok {
					return t.Format("01-02 15:04")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Magnitude",
		},
		Series: append([]chart.Series{mainSeries}, dotSeries...),
	}

	if err := os.MkdirAll(cg.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create chart output directory: %w", err)
	}

	filename := filepath.Join(cg.outputDir, "magnitude_timeline.png")
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create timeline chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render timeline chart: %w", err)
	}

	return filename, nil
}
