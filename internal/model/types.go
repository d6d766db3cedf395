// Package model defines shared data structures.
package model

import (
	"fmt"
	"sort"
	"time"
)

// Fixed column names of the inspection export.
const (
	ColumnTimestamp      = "Czas działania"
	ColumnOperator       = "Operator"
	ColumnDefectLocation = "Lokalizacja wady1"
	ColumnDefectType     = "Typ wady1"
)

// NoDefect marks a record whose inspection found nothing.
const NoDefect = "-"

// TimestampLayout is used when a parsed timestamp is written back out.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one inspection row.
type Record struct {
	Timestamp time.Time
	Operator  string
	// DefectLocation is empty when the source cell was blank.
	DefectLocation string
	DefectType     string
	// Cells holds every source cell in column order; the timestamp cell is
	// normalized to TimestampLayout.
	Cells []string
}

// HasDefect reports whether the record carries a defect type other than NoDefect.
func (r Record) HasDefect() bool {
	return r.DefectType != NoDefect
}

// Table is an ordered set of records sharing one header.
type Table struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.Records)
}

// Operators returns distinct operators in first-seen order.
func (t Table) Operators() []string {
	return distinct(t.Records, func(r Record) string { return r.Operator })
}

// Locations returns distinct non-empty defect locations in first-seen order.
func (t Table) Locations() []string {
	return distinct(t.Records, func(r Record) string { return r.DefectLocation })
}

// DateRange returns the earliest and latest calendar dates in the table.
// ok is false for an empty table.
func (t Table) DateRange() (first, last Date, ok bool) {
	for i, r := range t.Records {
		d := DateOf(r.Timestamp)
		if i == 0 || d.Before(first) {
			first = d
		}
		if i == 0 || d.After(last) {
			last = d
		}
	}
	return first, last, len(t.Records) > 0
}

func distinct(records []Record, key func(Record) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Date is a calendar day without time or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// FilterCriteria selects records for a report.
type FilterCriteria struct {
	// StartDate and EndDate are inclusive.
	StartDate Date
	EndDate   Date
	// Operators is a set; an empty set lets nothing through.
	Operators []string
	// DefectLocations is a set; an empty set disables the location filter.
	DefectLocations []string
}

// Metrics summarizes a filtered view.
type Metrics struct {
	Total       int
	DefectCount int
	// FPY is the first-pass yield in percent, 0 for an empty view.
	FPY float64
}

// DailyAggregate maps a calendar date to a derived value.
type DailyAggregate map[Date]float64

// DailyPoint is one entry of a sorted DailyAggregate.
type DailyPoint struct {
	Date  Date
	Value float64
}

// Sorted returns the entries in ascending date order.
func (a DailyAggregate) Sorted() []DailyPoint {
	out := make([]DailyPoint, 0, len(a))
	for d, v := range a {
		out = append(out, DailyPoint{Date: d, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// RankedItem is a category with its occurrence count.
type RankedItem struct {
	Category string
	Count    int
}

// ParetoRow is a ranked category with the running share of all counts.
type ParetoRow struct {
	Category          string
	Count             int
	CumulativePercent float64
}
