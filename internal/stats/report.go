package stats

import (
	"github.com/verte-zerg/qcdash/internal/model"
)

// Defaults for report options.
const (
	DefaultTopN        = 10
	DefaultTrendWindow = 7
)

// ReportOptions tunes the derived aggregates of a report.
type ReportOptions struct {
	TopN        int
	TrendWindow int
}

// Report contains precomputed data for rendering one filter selection.
type Report struct {
	Criteria     model.FilterCriteria
	View         model.Table
	Metrics      model.Metrics
	DailyFPY     []model.DailyPoint
	FPYTrend     []float64
	DailyDefects []model.DailyPoint
	TopDefects   []model.RankedItem
	Pareto       []model.ParetoRow
	TopLocations []model.RankedItem
}

// BuildReport filters the table and computes every aggregate shown by the
// dashboard. It does not modify table.
func BuildReport(table model.Table, criteria model.FilterCriteria, opts ReportOptions) Report {
	if opts.TopN == 0 {
		opts.TopN = DefaultTopN
	}
	if opts.TrendWindow == 0 {
		opts.TrendWindow = DefaultTrendWindow
	}
	view := Filter(table, criteria)
	daily := DailyFPY(view).Sorted()
	return Report{
		Criteria:     criteria,
		View:         view,
		Metrics:      ComputeMetrics(view),
		DailyFPY:     daily,
		FPYTrend:     MovingAverage(pointValues(daily), opts.TrendWindow),
		DailyDefects: DailyDefectCount(view).Sorted(),
		TopDefects:   TopDefectTypes(view, opts.TopN),
		Pareto:       ParetoAnalysis(view),
		TopLocations: TopLocations(view, opts.TopN),
	}
}

func pointValues(points []model.DailyPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
