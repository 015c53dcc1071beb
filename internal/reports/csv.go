package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
)

// csvHeader fixes the export column order. No field ever contains the
// delimiter, so no quoting is needed beyond what encoding/csv applies.
var csvHeader = []string{"Datetime", "Lat", "Long", "Dep", "Mag"}

// WriteCSV writes the record set as delimited text: one header line plus one
// line per record, in the given order.
func WriteCSV(w io.Writer, records []models.EarthquakeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Timestamp.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.4f", r.Latitude),
			fmt.Sprintf("%.4f", r.Longitude),
			fmt.Sprintf("%.1f", r.Depth),
			fmt.Sprintf("%.1f", r.Magnitude),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
