package stats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/verte-zerg/qcdash/internal/model"
)

// ExportCSV serializes the view as UTF-8 CSV with the source header.
func ExportCSV(view model.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV streams the view as CSV to w.
func WriteCSV(w io.Writer, view model.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(view.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, len(view.Columns))
	for i, r := range view.Records {
		for j := range row {
			row[j] = ""
			if j < len(r.Cells) {
				row[j] = r.Cells[j]
			}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
