package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
)

// aboutMarkdown is the data-source note rendered into the report footer.
const aboutMarkdown = `## About this data

The earthquake catalog is provided by the **Seismology Laboratory of the
National and Kapodistrian University of Athens**. Event times are shown in
local Greek time (fixed +2h offset from the feed's reference clock).
Magnitudes are as reported by the laboratory and may be revised; very small
events can carry negative magnitudes.

Marker color encodes recency *within the current selection*: blue for the
oldest event in view, red for the newest. Marker size scales with magnitude.`

// HTMLBuilder renders the complete report page.
type HTMLBuilder struct {
	tmpl     *template.Template
	goldmark goldmark.Markdown
}

// NewHTMLBuilder creates an HTML builder with the embedded page template and
// a goldmark renderer for the markdown sections.
func NewHTMLBuilder() (*HTMLBuilder, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			ghtml.WithHardWraps(),
		),
	)

	return &HTMLBuilder{
		tmpl:     tmpl,
		goldmark: md,
	}, nil
}

// FilterView carries the active filter back into the sidebar form fields.
type FilterView struct {
	From         string
	To           string
	MinMagnitude string
	MaxMagnitude string
}

// RecordRow is one preformatted table row, newest first.
type RecordRow struct {
	Datetime  string
	Latitude  string
	Longitude string
	Magnitude string
	Depth     string
	Color     string // recency swatch matching the map marker
}

// AdvisoryView is one sidebar announcement.
type AdvisoryView struct {
	Title     string
	Link      string
	Published string
}

// PageData is everything the report template needs for one render.
type PageData struct {
	Version     string
	GeneratedAt string
	FetchedAt   string
	StaleNotice string

	Filter  FilterView
	Summary models.Summary
	Rows    []RecordRow

	MapHTML       template.HTML
	HistogramHTML template.HTML
	DailyHTML     template.HTML
	TimelineImage string // URL path of the PNG, empty when unavailable

	Advisories []AdvisoryView
	AboutHTML  template.HTML

	CSVLink string
}

// RenderPage renders the full report page.
func (b *HTMLBuilder) RenderPage(data PageData) (string, error) {
	if data.AboutHTML == "" {
		about, err := b.markdownToHTML(aboutMarkdown)
		if err != nil {
			return "", err
		}
		data.AboutHTML = template.HTML(about)
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}
	return buf.String(), nil
}

// markdownToHTML converts markdown to HTML using goldmark.
func (b *HTMLBuilder) markdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := b.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// FormatRows preformats a record set for the table, preserving input order.
// colorFor supplies the recency swatch per record; a nil colorFor leaves the
// swatch empty.
func FormatRows(records []models.EarthquakeRecord, colorFor func(models.EarthquakeRecord) string) []RecordRow {
	rows := make([]RecordRow, 0, len(records))
	for _, r := range records {
		row := RecordRow{
			Datetime:  r.Timestamp.Format("2006-01-02 15:04"),
			Latitude:  fmt.Sprintf("%.4f", r.Latitude),
			Longitude: fmt.Sprintf("%.4f", r.Longitude),
			Magnitude: fmt.Sprintf("%.1f", r.Magnitude),
			Depth:     fmt.Sprintf("%.1f", r.Depth),
		}
		if colorFor != nil {
			row.Color = colorFor(r)
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatAdvisories preformats the sidebar announcements.
func FormatAdvisories(advisories []models.Advisory) []AdvisoryView {
	views := make([]AdvisoryView, 0, len(advisories))
	for _, a := range advisories {
		view := AdvisoryView{
			Title: a.Title,
			Link:  a.Link,
		}
		if !a.Published.IsZero() {
			view.Published = a.Published.Format("2006-01-02")
		}
		views = append(views, view)
	}
	return views
}

// FormatFetchedAt renders the snapshot age line shown under the title.
func FormatFetchedAt(fetchedAt time.Time) string {
	if fetchedAt.IsZero() {
		return ""
	}
	return fetchedAt.Format("2006-01-02 15:04:05 MST")
}
