package charts

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
)

// histogramBinWidth groups magnitudes into half-unit bins, the convention
// seismicity summaries use.
const histogramBinWidth = 0.5

// MagnitudeHistogramHTML renders a bar chart of event counts per magnitude
// bin for the working set.
func (cg *ChartGenerator) MagnitudeHistogramHTML(records []models.EarthquakeRecord) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "360px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Magnitude Distribution",
			Subtitle: "Events per half-magnitude bin",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Magnitude",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Events",
		}),
	)

	labels, counts := binMagnitudes(records)

	barData := make([]opts.BarData, len(counts))
	for i, c := range counts {
		barData[i] = opts.BarData{Value: c}
	}

	bar.SetXAxis(labels).AddSeries("Events", barData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// binMagnitudes buckets records into half-magnitude bins covering the set's
// magnitude range, including empty bins in between.
func binMagnitudes(records []models.EarthquakeRecord) ([]string, []int) {
	min, max, ok := models.MagnitudeBounds(records)
	if !ok {
		return nil, nil
	}

	start := math.Floor(min/histogramBinWidth) * histogramBinWidth
	end := math.Floor(max/histogramBinWidth) * histogramBinWidth

	bins := make(map[float64]int)
	for _, r := range records {
		bin := math.Floor(r.Magnitude/histogramBinWidth) * histogramBinWidth
		bins[bin]++
	}

	var labels []string
	var counts []int
	for bin := start; bin <= end+histogramBinWidth/2; bin += histogramBinWidth {
		labels = append(labels, fmt.Sprintf("%.1f", bin))
		counts = append(counts, bins[bin])
	}
	return labels, counts
}

// DailyCountsHTML renders a line chart of event counts per calendar day.
func (cg *ChartGenerator) DailyCountsHTML(records []models.EarthquakeRecord) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "360px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Seismicity Over Time",
			Subtitle: "Events per day in the selected window",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Events",
		}),
	)

	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Timestamp.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	lineData := make([]opts.LineData, len(days))
	for i, day := range days {
		lineData[i] = opts.LineData{Value: counts[day]}
	}

	line.SetXAxis(days).
		AddSeries("Events", lineData).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
