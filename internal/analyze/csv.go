package analyze

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"tunnelscan/internal/category"
)

// WriteCSV renders the records as a flat table: one header row, one row per
// sector, one column per (category, metric). Count columns are included only
// when withCounts is set, matching the label-map aggregation entry point;
// the color-image entry point exports percentages only.
func WriteCSV(w io.Writer, records []SectorRecord, withCounts bool) error {
	cw := csv.NewWriter(w)

	header := []string{"sector_id", "total_pixels"}
	if withCounts {
		for _, c := range category.All {
			header = append(header, "count_"+c.String())
		}
	}
	for _, c := range category.All {
		header = append(header, "pct_"+c.String())
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{strconv.Itoa(rec.SectorID), strconv.Itoa(rec.TotalPixels)}
		if withCounts {
			for _, c := range category.All {
				row = append(row, strconv.Itoa(rec.Counts[c]))
			}
		}
		for _, c := range category.All {
			row = append(row, strconv.FormatFloat(rec.Percentages[c], 'f', 4, 64))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", rec.SectorID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
