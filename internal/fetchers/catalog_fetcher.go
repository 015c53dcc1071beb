package fetchers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/M1ts0sGitHub/Earthquakes/internal/logger"
	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
	"github.com/M1ts0sGitHub/Earthquakes/internal/observability"
)

// catalogClockOffset converts the feed's reference clock to local (Greek)
// wall time. This is a fixed offset, deliberately not a DST-aware zone
// conversion, matching the upstream portal's own display.
const catalogClockOffset = 2 * time.Hour

// Upstream header names for the columns the pipeline keeps. The remaining
// columns (RMS, dx, dy, dz, Np, Na, Gap) are solution-quality diagnostics
// and are dropped after the positional mapping.
const (
	colYear      = "Year"
	colMonth     = "Mo"
	colDay       = "Dy"
	colHour      = "Hr"
	colMinute    = "Mn"
	colSecond    = "Sec"
	colLatitude  = "Lat"
	colLongitude = "Long"
	colDepth     = "Dep"
	colMagnitude = "Mag"
)

var requiredColumns = []string{
	colYear, colMonth, colDay, colHour, colMinute, colSecond,
	colLatitude, colLongitude, colDepth, colMagnitude,
}

// CatalogFetcher retrieves the plain-text seismicity catalog and parses it
// into earthquake records. One fetch is one attempt; retry policy, if any,
// belongs to the caller.
type CatalogFetcher struct {
	client    *resty.Client
	maxEvents int
	metrics   *observability.Metrics
}

// NewCatalogFetcher creates a catalog fetcher. maxEvents caps the returned
// record count (0 means unlimited); the feed lists newest events first, so
// the cap keeps the most recent ones. metrics may be nil.
func NewCatalogFetcher(timeout time.Duration, maxEvents int, metrics *observability.Metrics) *CatalogFetcher {
	client := resty.New()
	client.SetTimeout(timeout)

	return &CatalogFetcher{
		client:    client,
		maxEvents: maxEvents,
		metrics:   metrics,
	}
}

// FetchCatalog performs one GET against the catalog endpoint and returns the
// parsed records. Transport failures and non-200 responses surface as
// *FetchError; malformed rows are excluded from the result, never an error.
func (f *CatalogFetcher) FetchCatalog(ctx context.Context, url string) ([]models.EarthquakeRecord, error) {
	start := time.Now()

	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(url)

	if err != nil {
		fetchErr := &FetchError{URL: url, Err: err}
		f.metrics.ObserveFetch(time.Since(start), fetchErr)
		return nil, fetchErr
	}

	if resp.StatusCode() != 200 {
		fetchErr := &FetchError{URL: url, StatusCode: resp.StatusCode()}
		f.metrics.ObserveFetch(time.Since(start), fetchErr)
		return nil, fetchErr
	}

	records, excluded, err := ParseCatalog(string(resp.Body()))
	f.metrics.ObserveFetch(time.Since(start), err)
	if err != nil {
		return nil, err
	}

	f.metrics.AddRowsExcluded(excluded)
	if excluded > 0 {
		logger.Warnf("Excluded %d malformed catalog rows", excluded)
	}

	if f.maxEvents > 0 && len(records) > f.maxEvents {
		records = records[:f.maxEvents]
	}

	logger.Infof("Fetched %d earthquake records from catalog", len(records))
	return records, nil
}

// ParseCatalog converts the raw catalog text into earthquake records. It is a
// pure function of its input: line 1 names the columns, every following line
// is one candidate event row. Rows whose token count differs from the header
// (the feed ends with a blank line) or whose fields fail to parse are counted
// in excluded and skipped. An empty document yields an empty record set.
func ParseCatalog(raw string) ([]models.EarthquakeRecord, int, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, 0, nil
	}

	header := strings.Fields(lines[0])
	columns, err := resolveColumns(header)
	if err != nil {
		return nil, 0, err
	}

	var records []models.EarthquakeRecord
	excluded := 0

	for _, line := range lines[1:] {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue // trailing or embedded blank line, not a data row
		}
		if len(tokens) != len(header) {
			excluded++
			continue
		}

		record, ok := parseRow(tokens, columns)
		if !ok {
			excluded++
			continue
		}
		records = append(records, record)
	}

	return records, excluded, nil
}

// resolveColumns maps each required column name to its position in the header.
func resolveColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, &MissingColumnError{Column: name}
		}
	}
	return columns, nil
}

// MissingColumnError reports a catalog header that lacks a required column,
// which makes every row uninterpretable.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return "catalog header missing required column " + strconv.Quote(e.Column)
}

// parseRow extracts one record from a token row that already matched the
// header's column count. The seconds field and the quality columns are
// parsed or ignored but never carried into the record.
func parseRow(tokens []string, columns map[string]int) (models.EarthquakeRecord, bool) {
	year, err1 := strconv.Atoi(tokens[columns[colYear]])
	month, err2 := strconv.Atoi(tokens[columns[colMonth]])
	day, err3 := strconv.Atoi(tokens[columns[colDay]])
	hour, err4 := strconv.Atoi(tokens[columns[colHour]])
	minute, err5 := strconv.Atoi(tokens[columns[colMinute]])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return models.EarthquakeRecord{}, false
	}

	// The seconds column must still parse for the row to count as well formed,
	// even though the timestamp is built at minute resolution.
	if _, err := parseDecimal(tokens[columns[colSecond]]); err != nil {
		return models.EarthquakeRecord{}, false
	}

	lat, err1 := parseDecimal(tokens[columns[colLatitude]])
	lon, err2 := parseDecimal(tokens[columns[colLongitude]])
	depth, err3 := parseDecimal(tokens[columns[colDepth]])
	mag, err4 := parseDecimal(tokens[columns[colMagnitude]])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return models.EarthquakeRecord{}, false
	}

	timestamp := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC).
		Add(catalogClockOffset)

	return models.EarthquakeRecord{
		Timestamp: timestamp,
		Latitude:  lat,
		Longitude: lon,
		Depth:     depth,
		Magnitude: mag,
	}, true
}

// parseDecimal parses a float that may use a comma as the decimal separator.
// The comma is a locale artifact of the upstream feed; normalizing it here as
// a plain string transform keeps parsing independent of process locale.
func parseDecimal(token string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
}
