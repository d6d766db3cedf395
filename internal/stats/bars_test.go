package stats

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestFormatBars(t *testing.T) {
	lines := formatBars([]Bar{
		{Label: "A", Value: 4},
		{Label: "BB", Value: 2},
	}, 20)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if got := strings.Count(lines[0], barGlyph); got != 15 {
		t.Fatalf("expected full bar of 15, got %d in %q", got, lines[0])
	}
	if got := strings.Count(lines[1], barGlyph); got != 8 {
		t.Fatalf("expected half bar of 8, got %d in %q", got, lines[1])
	}
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w != 20 {
			t.Fatalf("expected width 20, got %d for %q", w, line)
		}
	}
}

func TestFormatBarsSmallValuesStayVisible(t *testing.T) {
	lines := formatBars([]Bar{
		{Label: "big", Value: 1000},
		{Label: "tiny", Value: 1},
		{Label: "zero", Value: 0},
	}, 30)
	if strings.Count(lines[1], barGlyph) != 1 {
		t.Fatalf("expected a minimal bar, got %q", lines[1])
	}
	if strings.Contains(lines[2], barGlyph) {
		t.Fatalf("expected no bar for zero, got %q", lines[2])
	}
}

func TestFormatBarsEmpty(t *testing.T) {
	if lines := formatBars(nil, 40); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
