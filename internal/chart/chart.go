// Package chart renders report aggregates as PNG or SVG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/verte-zerg/qcdash/internal/model"
	"github.com/verte-zerg/qcdash/internal/stats"
)

// Format selects the image encoding.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("no data to chart")

const (
	defaultWidth  = 1024
	defaultHeight = 480
	barWidth      = 40
	barSpacing    = 12
	dateFormat    = "2006-01-02"
)

var (
	colorFPY      = drawing.ColorFromHex("1f77b4")
	colorTrend    = drawing.ColorFromHex("ff7f0e")
	colorDefects  = drawing.ColorFromHex("d62728")
	colorTypes    = drawing.ColorFromHex("1f77b4")
	colorLocation = drawing.ColorFromHex("2ca02c")
	colorPareto   = drawing.ColorFromHex("9467bd")
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q (expected png or svg)", s)
	}
}

func (f Format) provider() gochart.RendererProvider {
	if f == SVG {
		return gochart.SVG
	}
	return gochart.PNG
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	if f == SVG {
		return ".svg"
	}
	return ".png"
}

// FPYTrend draws daily FPY and its moving average on a fixed 0..100 axis.
func FPYTrend(w io.Writer, r stats.Report, f Format) error {
	if len(r.DailyFPY) == 0 {
		return ErrNoData
	}
	times := make([]time.Time, len(r.DailyFPY))
	values := make([]float64, len(r.DailyFPY))
	for i, p := range r.DailyFPY {
		times[i] = p.Date.Time()
		values[i] = p.Value
	}
	trend := r.FPYTrend
	if len(times) == 1 {
		// a single x value gives the axis a zero range
		times = append(times, times[0].Add(24*time.Hour))
		values = append(values, values[0])
		if len(trend) == 1 {
			trend = []float64{trend[0], trend[0]}
		}
	}

	series := []gochart.Series{
		gochart.TimeSeries{
			Name:    "Daily FPY",
			XValues: times,
			YValues: values,
			Style:   lineStyle(colorFPY, 2),
		},
	}
	if len(trend) == len(times) {
		series = append(series, gochart.TimeSeries{
			Name:    "Moving average",
			XValues: times,
			YValues: trend,
			Style:   lineStyle(colorTrend, 1.5),
		})
	}

	ch := gochart.Chart{
		Title:      "First Pass Yield Trend",
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:           "Date",
			ValueFormatter: gochart.TimeValueFormatterWithFormat(dateFormat),
		},
		YAxis: gochart.YAxis{
			Name:  "FPY (%)",
			Range: &gochart.ContinuousRange{Min: 0, Max: 100},
			Ticks: percentTicks(100),
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch.Render(f.provider(), w)
}

// DailyDefects draws one bar per day with at least one defect.
func DailyDefects(w io.Writer, r stats.Report, f Format) error {
	bars := make([]gochart.Value, 0, len(r.DailyDefects))
	for _, p := range r.DailyDefects {
		bars = append(bars, gochart.Value{Label: p.Date.String(), Value: p.Value})
	}
	return renderBars(w, "Defects per Day", bars, colorDefects, f)
}

// TopDefects draws the most frequent defect types.
func TopDefects(w io.Writer, r stats.Report, f Format) error {
	return renderBars(w, "Top Defect Types", rankedValues(r.TopDefects), colorTypes, f)
}

// Locations draws the most frequent defect locations.
func Locations(w io.Writer, r stats.Report, f Format) error {
	return renderBars(w, "Top Defect Locations", rankedValues(r.TopLocations), colorLocation, f)
}

// Pareto draws defect counts as a histogram with the cumulative share on a
// secondary 0..110 axis.
func Pareto(w io.Writer, r stats.Report, f Format) error {
	if len(r.Pareto) == 0 {
		return ErrNoData
	}
	xs := make([]float64, len(r.Pareto))
	counts := make([]float64, len(r.Pareto))
	cumulative := make([]float64, len(r.Pareto))
	ticks := make([]gochart.Tick, 0, len(r.Pareto))
	maxCount := 0.0
	for i, row := range r.Pareto {
		xs[i] = float64(i + 1)
		counts[i] = float64(row.Count)
		cumulative[i] = row.CumulativePercent
		ticks = append(ticks, gochart.Tick{Value: xs[i], Label: row.Category})
		maxCount = math.Max(maxCount, counts[i])
	}
	if len(xs) == 1 {
		xs = append(xs, 1.0001)
		counts = append(counts, counts[0])
		cumulative = append(cumulative, cumulative[0])
	}

	ch := gochart.Chart{
		Title:      "Pareto Analysis",
		Width:      barsWidth(len(r.Pareto)),
		Height:     defaultHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  "Defect type",
			Range: &gochart.ContinuousRange{Min: 0.5, Max: float64(len(r.Pareto)) + 0.5},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name:  "Count",
			Range: &gochart.ContinuousRange{Min: 0, Max: maxCount * 1.1},
		},
		YAxisSecondary: gochart.YAxis{
			Name:  "Cumulative (%)",
			Range: &gochart.ContinuousRange{Min: 0, Max: 110},
			Ticks: percentTicks(110),
		},
		Series: []gochart.Series{
			gochart.HistogramSeries{
				Name: "Count",
				Style: gochart.Style{
					StrokeColor: colorPareto,
					FillColor:   colorPareto.WithAlpha(180),
					StrokeWidth: 1,
				},
				InnerSeries: gochart.ContinuousSeries{XValues: xs, YValues: counts},
			},
			gochart.ContinuousSeries{
				Name:    "Cumulative %",
				XValues: xs,
				YValues: cumulative,
				YAxis:   gochart.YAxisSecondary,
				Style: gochart.Style{
					StrokeColor: colorTrend,
					StrokeWidth: 2,
					DotColor:    colorTrend,
					DotWidth:    4,
				},
			},
		},
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch.Render(f.provider(), w)
}

func renderBars(w io.Writer, title string, bars []gochart.Value, color drawing.Color, f Format) error {
	if len(bars) == 0 {
		return ErrNoData
	}
	maxVal := 0.0
	for i := range bars {
		bars[i].Style = gochart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1}
		maxVal = math.Max(maxVal, bars[i].Value)
	}
	if maxVal <= 0 {
		maxVal = 1
	}
	bc := gochart.BarChart{
		Title:      title,
		Width:      barsWidth(len(bars)),
		Height:     defaultHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Ceil(maxVal * 1.1)},
		},
		Bars: bars,
	}
	return bc.Render(f.provider(), w)
}

func rankedValues(items []model.RankedItem) []gochart.Value {
	out := make([]gochart.Value, 0, len(items))
	for _, item := range items {
		out = append(out, gochart.Value{Label: item.Category, Value: float64(item.Count)})
	}
	return out
}

func barsWidth(n int) int {
	width := 160 + n*(barWidth+barSpacing)
	if width < defaultWidth {
		return defaultWidth
	}
	return width
}

func lineStyle(color drawing.Color, width float64) gochart.Style {
	return gochart.Style{
		StrokeColor: color,
		StrokeWidth: width,
		DotColor:    color,
		DotWidth:    3,
	}
}

func percentTicks(max float64) []gochart.Tick {
	ticks := []gochart.Tick{}
	for v := 0.0; v <= max; v += 25 {
		ticks = append(ticks, gochart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	if last := ticks[len(ticks)-1].Value; last < max {
		ticks = append(ticks, gochart.Tick{Value: max, Label: fmt.Sprintf("%.0f", max)})
	}
	return ticks
}
