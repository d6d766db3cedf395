package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for file extensions the loader cannot read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrSheetNotFound is returned when the workbook lacks the requested sheet.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrNoHeader is returned when the source has no header row.
	ErrNoHeader = errors.New("no header row")
	// ErrMissingColumn matches any MissingColumnError.
	ErrMissingColumn = errors.New("missing required column")
)

// LoadError reports a dataset that could not be loaded. It is fatal for the caller.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingColumnError names a required column absent from the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// Is makes errors.Is(err, ErrMissingColumn) match.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// ParseError reports a cell value that cannot be coerced to its column type.
// Row is 1-based and counts the header row, matching spreadsheet numbering.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
