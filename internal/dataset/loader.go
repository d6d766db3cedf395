// Package dataset loads inspection records from spreadsheets and CSV files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/verte-zerg/qcdash/internal/model"
)

// DefaultSheet is the sheet name written by the inspection station export.
const DefaultSheet = "SheetJS"

// Options controls how a dataset is read.
type Options struct {
	// Sheet selects the workbook sheet; empty means DefaultSheet.
	Sheet string
	// DropInvalid drops rows with unparsable timestamps instead of failing the load.
	DropInvalid bool
	Logger      *slog.Logger
}

type columnIndex struct {
	timestamp      int
	operator       int
	defectLocation int
	defectType     int
}

// Load reads the dataset at path. Spreadsheets (.xlsx, .xlsm, .xltx) and CSV
// files are supported. Any failure is returned as a *LoadError.
func Load(path string, opts Options) (model.Table, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var (
		rows     [][]string
		date1904 bool
		err      error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx":
		rows, date1904, err = readWorkbook(path, opts.Sheet, logger)
	case ".csv":
		rows, err = readCSV(path)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return model.Table{}, &LoadError{Path: path, Err: err}
	}

	table, dropped, err := buildTable(rows, date1904, opts.DropInvalid)
	if err != nil {
		return model.Table{}, &LoadError{Path: path, Err: err}
	}
	if dropped > 0 {
		logger.Warn("dropped rows without a usable timestamp",
			slog.String("path", path),
			slog.Int("dropped", dropped))
	}
	logger.Debug("dataset loaded",
		slog.String("path", path),
		slog.Int("records", table.Len()),
		slog.Int("columns", len(table.Columns)))
	return table, nil
}

func readWorkbook(path, sheet string, logger *slog.Logger) ([][]string, bool, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Debug("failed to close workbook", slog.String("error", cerr.Error()))
		}
	}()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, false, fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, sheet, strings.Join(f.GetSheetList(), ", "))
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	logger.Debug("read workbook sheet",
		slog.String("sheet", sheet),
		slog.Int("rows", len(rows)),
		slog.Bool("date1904", date1904))
	return rows, date1904, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	return parseCSV(file)
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

func buildTable(rows [][]string, date1904, dropInvalid bool) (model.Table, int, error) {
	if len(rows) == 0 || isBlankRow(rows[0]) {
		return model.Table{}, 0, ErrNoHeader
	}
	columns := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		columns[i] = strings.TrimSpace(h)
	}
	idx, err := locateColumns(columns)
	if err != nil {
		return model.Table{}, 0, err
	}

	records := make([]model.Record, 0, len(rows)-1)
	dropped := 0
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		cells := make([]string, len(columns))
		copy(cells, row)
		rawTS := cells[idx.timestamp]
		ts, err := ParseTimestamp(rawTS, date1904)
		if err != nil {
			if dropInvalid {
				dropped++
				continue
			}
			return model.Table{}, dropped, &ParseError{
				Row:    i + 2,
				Column: model.ColumnTimestamp,
				Value:  rawTS,
				Err:    err,
			}
		}
		cells[idx.timestamp] = ts.Format(model.TimestampLayout)
		records = append(records, model.Record{
			Timestamp:      ts,
			Operator:       strings.TrimSpace(cells[idx.operator]),
			DefectLocation: strings.TrimSpace(cells[idx.defectLocation]),
			DefectType:     strings.TrimSpace(cells[idx.defectType]),
			Cells:          cells,
		})
	}
	return model.Table{Columns: columns, Records: records}, dropped, nil
}

func locateColumns(columns []string) (columnIndex, error) {
	find := func(name string) (int, error) {
		for i, c := range columns {
			if c == name {
				return i, nil
			}
		}
		return -1, &MissingColumnError{Column: name}
	}
	var (
		idx columnIndex
		err error
	)
	if idx.timestamp, err = find(model.ColumnTimestamp); err != nil {
		return idx, err
	}
	if idx.operator, err = find(model.ColumnOperator); err != nil {
		return idx, err
	}
	if idx.defectLocation, err = find(model.ColumnDefectLocation); err != nil {
		return idx, err
	}
	if idx.defectType, err = find(model.ColumnDefectType); err != nil {
		return idx, err
	}
	return idx, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// IsLoadError reports whether err is (or wraps) a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
