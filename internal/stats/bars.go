package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Bar is one labelled value of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
}

const (
	barGlyph       = "█"
	minBarWidth    = 5
	defaultBarArea = 40
)

// formatBars lays out bars so the largest value spans the available width.
// Labels are padded by display width so wide glyphs stay aligned.
func formatBars(bars []Bar, totalWidth int) []string {
	if len(bars) == 0 {
		return nil
	}
	labelWidth := 0
	valueWidth := 0
	maxVal := 0.0
	values := make([]string, len(bars))
	for i, bar := range bars {
		if lw := runewidth.StringWidth(bar.Label); lw > labelWidth {
			labelWidth = lw
		}
		values[i] = formatBarValue(bar.Value)
		if vw := len(values[i]); vw > valueWidth {
			valueWidth = vw
		}
		maxVal = math.Max(maxVal, bar.Value)
	}

	area := defaultBarArea
	if totalWidth > 0 {
		area = totalWidth - labelWidth - valueWidth - 2
	}
	if area < minBarWidth {
		area = minBarWidth
	}

	lines := make([]string, 0, len(bars))
	for i, bar := range bars {
		n := 0
		if maxVal > 0 && bar.Value > 0 {
			n = int(math.Round(bar.Value / maxVal * float64(area)))
			if n == 0 {
				n = 1
			}
		}
		line := runewidth.FillRight(bar.Label, labelWidth) + " " +
			strings.Repeat(barGlyph, n) + strings.Repeat(" ", area-n) + " " +
			fmt.Sprintf("%*s", valueWidth, values[i])
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

func formatBarValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
