package stats

import (
	"math"
	"testing"
	"time"

	"github.com/verte-zerg/qcdash/internal/model"
)

var testColumns = []string{
	model.ColumnTimestamp,
	model.ColumnOperator,
	model.ColumnDefectLocation,
	model.ColumnDefectType,
}

func testRecord(t *testing.T, ts, operator, location, defect string) model.Record {
	t.Helper()
	parsed, err := time.ParseInLocation(model.TimestampLayout, ts, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", ts, err)
	}
	return model.Record{
		Timestamp:      parsed,
		Operator:       operator,
		DefectLocation: location,
		DefectType:     defect,
		Cells:          []string{ts, operator, location, defect},
	}
}

// testTable holds 8 inspections over three days, 5 of them defective.
func testTable(t *testing.T) model.Table {
	t.Helper()
	return model.Table{
		Columns: testColumns,
		Records: []model.Record{
			testRecord(t, "2024-03-01 08:00:00", "Anna", "", "-"),
			testRecord(t, "2024-03-01 09:00:00", "Anna", "Front", "Scratch"),
			testRecord(t, "2024-03-01 10:00:00", "Jan", "Rear", "Dent"),
			testRecord(t, "2024-03-02 08:00:00", "Jan", "", "-"),
			testRecord(t, "2024-03-02 09:00:00", "Anna", "Front", "Scratch"),
			testRecord(t, "2024-03-03 08:00:00", "Ewa", "", "-"),
			testRecord(t, "2024-03-03 09:00:00", "Ewa", "Side", "Crack"),
			testRecord(t, "2024-03-03 10:00:00", "Jan", "Front", "Scratch"),
		},
	}
}

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return d
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBuildReport(t *testing.T) {
	table := testTable(t)
	report := BuildReport(table, DefaultCriteria(table), ReportOptions{TopN: 2, TrendWindow: 2})

	if report.View.Len() != 8 {
		t.Fatalf("expected 8 records, got %d", report.View.Len())
	}
	if report.Metrics.Total != 8 || report.Metrics.DefectCount != 5 {
		t.Fatalf("unexpected metrics: %+v", report.Metrics)
	}
	if !almostEqual(report.Metrics.FPY, 37.5) {
		t.Fatalf("expected FPY 37.5, got %.4f", report.Metrics.FPY)
	}
	if len(report.DailyFPY) != 3 {
		t.Fatalf("expected 3 daily points, got %d", len(report.DailyFPY))
	}
	if report.DailyFPY[0].Date.String() != "2024-03-01" || report.DailyFPY[2].Date.String() != "2024-03-03" {
		t.Fatalf("daily FPY not sorted: %+v", report.DailyFPY)
	}
	if len(report.FPYTrend) != 3 {
		t.Fatalf("expected trend per day, got %d", len(report.FPYTrend))
	}
	wantTrend := (report.DailyFPY[0].Value + report.DailyFPY[1].Value) / 2
	if !almostEqual(report.FPYTrend[1], wantTrend) {
		t.Fatalf("expected trend %.4f, got %.4f", wantTrend, report.FPYTrend[1])
	}
	if len(report.TopDefects) != 2 || report.TopDefects[0].Category != "Scratch" {
		t.Fatalf("unexpected top defects: %+v", report.TopDefects)
	}
	if len(report.Pareto) != 3 {
		t.Fatalf("pareto must not be truncated, got %d rows", len(report.Pareto))
	}
	if len(report.TopLocations) != 2 || report.TopLocations[0].Category != "Front" {
		t.Fatalf("unexpected top locations: %+v", report.TopLocations)
	}
}

func TestBuildReportDefaults(t *testing.T) {
	table := testTable(t)
	report := BuildReport(table, DefaultCriteria(table), ReportOptions{})
	if len(report.TopDefects) != 3 {
		t.Fatalf("expected all 3 defect types under the default limit, got %d", len(report.TopDefects))
	}
}

func TestBuildReportEmptySelection(t *testing.T) {
	table := testTable(t)
	criteria := DefaultCriteria(table)
	criteria.Operators = nil
	report := BuildReport(table, criteria, ReportOptions{})

	if report.Metrics != (model.Metrics{}) {
		t.Fatalf("expected zero metrics, got %+v", report.Metrics)
	}
	if len(report.DailyFPY) != 0 || len(report.DailyDefects) != 0 {
		t.Fatalf("expected no daily data")
	}
	if report.TopDefects != nil && len(report.TopDefects) != 0 {
		t.Fatalf("expected no defects, got %+v", report.TopDefects)
	}
	if report.Pareto != nil {
		t.Fatalf("expected nil pareto, got %+v", report.Pareto)
	}
}

func TestBuildReportDoesNotModifyTable(t *testing.T) {
	table := testTable(t)
	before := len(table.Records)
	first := table.Records[0].Cells[0]
	criteria := DefaultCriteria(table)
	criteria.Operators = []string{"Ewa"}
	_ = BuildReport(table, criteria, ReportOptions{})
	if len(table.Records) != before || table.Records[0].Cells[0] != first {
		t.Fatalf("table was modified")
	}
}
