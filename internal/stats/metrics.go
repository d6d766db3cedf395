package stats

import (
	"github.com/verte-zerg/qcdash/internal/model"
)

// ComputeMetrics counts records and defects and derives the first-pass yield.
func ComputeMetrics(view model.Table) model.Metrics {
	m := model.Metrics{Total: view.Len()}
	for _, r := range view.Records {
		if r.HasDefect() {
			m.DefectCount++
		}
	}
	m.FPY = FirstPassYield(m.Total, m.DefectCount)
	return m
}

// FirstPassYield returns the defect-free share in percent, 0 when total is 0.
func FirstPassYield(total, defects int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(total-defects) / float64(total) * 100
}

// DailyFPY groups the view by calendar day and computes each day's yield.
func DailyFPY(view model.Table) model.DailyAggregate {
	type dayCount struct {
		total   int
		defects int
	}
	days := map[model.Date]*dayCount{}
	for _, r := range view.Records {
		d := model.DateOf(r.Timestamp)
		c, ok := days[d]
		if !ok {
			c = &dayCount{}
			days[d] = c
		}
		c.total++
		if r.HasDefect() {
			c.defects++
		}
	}
	out := make(model.DailyAggregate, len(days))
	for d, c := range days {
		out[d] = FirstPassYield(c.total, c.defects)
	}
	return out
}

// DailyDefectCount counts defective records per calendar day. Days without
// defects are absent rather than zero.
func DailyDefectCount(view model.Table) model.DailyAggregate {
	out := model.DailyAggregate{}
	for _, r := range view.Records {
		if !r.HasDefect() {
			continue
		}
		out[model.DateOf(r.Timestamp)]++
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 || len(values) == 0 {
		copy(out, values)
		return out
	}
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}
