package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/qcdash/internal/model"
)

const sparkChars = " .:-=+*#%@"

// RenderOptions sizes the text report.
type RenderOptions struct {
	// Width is the total line width; zero uses the terminal width.
	Width      int
	PlotHeight int
	Color      bool
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := minMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderCriteria prints the active filter selection.
func RenderCriteria(w io.Writer, c model.FilterCriteria) error {
	locations := "all"
	if len(c.DefectLocations) > 0 {
		locations = strings.Join(c.DefectLocations, ", ")
	}
	operators := "none"
	if len(c.Operators) > 0 {
		operators = strings.Join(c.Operators, ", ")
	}
	_, err := fmt.Fprintf(w, "Filters\nDates: %s .. %s\nOperators: %s\nLocations: %s\n\n",
		c.StartDate, c.EndDate, operators, locations)
	return err
}

// RenderSummary prints the headline metrics.
func RenderSummary(w io.Writer, m model.Metrics) error {
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if m.Total == 0 {
		if _, err := fmt.Fprintln(w, "No records match the current filters."); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Total inspected: %d\n", m.Total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Defects: %d\n", m.DefectCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "FPY: %s\n\n", FormatPercent(m.FPY)); err != nil {
		return err
	}
	return nil
}

// RenderFPYTrend plots daily FPY and its moving average on a 0..100 axis.
func RenderFPYTrend(w io.Writer, daily []model.DailyPoint, trend []float64, opts RenderOptions) error {
	if len(daily) == 0 {
		return nil
	}
	values := make([]float64, len(daily))
	for i, p := range daily {
		values[i] = p.Value
	}
	if _, err := fmt.Fprintf(w, "FPY by day: %s\n", Sparkline(values)); err != nil {
		return err
	}
	series := []Series{{Name: "Daily FPY", Values: values}}
	if len(trend) == len(values) && len(values) > 1 {
		series = append(series, Series{Name: "Moving average", Values: trend})
	}
	width := 0
	if opts.Width > 0 {
		width = plotWidthFor(opts.Width, len("100"))
	}
	return PlotSeries(w, "First Pass Yield Trend (%)", series, PlotOptions{
		Width:      width,
		Height:     opts.PlotHeight,
		ForceColor: opts.Color,
		Min:        0,
		Max:        100,
		FirstLabel: daily[0].Date.String(),
		LastLabel:  daily[len(daily)-1].Date.String(),
	})
}

// RenderDailyDefects prints defect counts per day as horizontal bars.
func RenderDailyDefects(w io.Writer, daily []model.DailyPoint, opts RenderOptions) error {
	if _, err := fmt.Fprintln(w, "Defects per Day"); err != nil {
		return err
	}
	if len(daily) == 0 {
		_, err := io.WriteString(w, "No defects in the selection.\n\n")
		return err
	}
	bars := make([]Bar, len(daily))
	for i, p := range daily {
		bars[i] = Bar{Label: p.Date.String(), Value: p.Value}
	}
	return writeLines(w, formatBars(bars, opts.Width))
}

// RenderRanked prints a ranking table with a bar per category.
func RenderRanked(w io.Writer, title, column string, items []model.RankedItem, opts RenderOptions) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if len(items) == 0 {
		_, err := io.WriteString(w, "No data.\n\n")
		return err
	}
	headers := []string{"#", column, "Count"}
	rows := make([][]string, 0, len(items))
	bars := make([]Bar, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			item.Category,
			fmt.Sprintf("%d", item.Count),
		})
		bars = append(bars, Bar{Label: item.Category, Value: float64(item.Count)})
	}
	lines := formatTable(headers, rows, map[int]bool{0: true, 2: true})
	lines = append(lines, "")
	lines = append(lines, formatBars(bars, opts.Width)...)
	return writeLines(w, lines)
}

// RenderPareto prints the Pareto table with counts and cumulative shares.
func RenderPareto(w io.Writer, rows []model.ParetoRow) error {
	if _, err := fmt.Fprintln(w, "Pareto Analysis"); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := io.WriteString(w, "No defects in the selection.\n\n")
		return err
	}
	headers := []string{"Defect type", "Count", "Cumulative"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Category,
			fmt.Sprintf("%d", r.Count),
			FormatPercent(r.CumulativePercent),
		})
	}
	return writeLines(w, formatTable(headers, tableRows, map[int]bool{1: true, 2: true}))
}

// RenderReport prints every section of the report.
func RenderReport(w io.Writer, r Report, opts RenderOptions) error {
	if err := RenderCriteria(w, r.Criteria); err != nil {
		return err
	}
	if err := RenderSummary(w, r.Metrics); err != nil {
		return err
	}
	if err := RenderFPYTrend(w, r.DailyFPY, r.FPYTrend, opts); err != nil {
		return err
	}
	if err := RenderDailyDefects(w, r.DailyDefects, opts); err != nil {
		return err
	}
	if err := RenderRanked(w, "Top Defect Types", "Defect type", r.TopDefects, opts); err != nil {
		return err
	}
	if err := RenderPareto(w, r.Pareto); err != nil {
		return err
	}
	return RenderRanked(w, "Top Defect Locations", "Location", r.TopLocations, opts)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
