package dataset

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var errUnknownTimestamp = errors.New("unrecognized timestamp format")

// Layouts tried in order for text timestamps. Zone-less values are read as UTC
// wall clock so the calendar date never shifts.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
}

// ParseTimestamp converts a raw cell into a time. It accepts the text layouts
// above and Excel serial day numbers.
func ParseTimestamp(raw string, date1904 bool) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, errors.New("empty value")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return time.Time{}, errUnknownTimestamp
	}
	ts, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, err
	}
	// Serials carry float noise; round to the nearest second.
	return ts.Round(time.Second), nil
}
