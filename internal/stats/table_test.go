package stats

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Defect type", "Count", "Cumulative"}
	rows := [][]string{
		{"Rysa", "12", "60.00%"},
		{"Wgniecenie", "3", "100.00%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Defect type Count Cumulative" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Rysa           12     60.00%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Wgniecenie      3    100.00%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableUsesDisplayWidth(t *testing.T) {
	lines := formatTable([]string{"Type", "N"}, [][]string{
		{"缺陷", "1"},
		{"Łza", "2"},
	}, nil)
	if runewidth.StringWidth(lines[1]) != runewidth.StringWidth(lines[2]) {
		t.Fatalf("rows not aligned: %q vs %q", lines[1], lines[2])
	}
	if lines[2] != "Łza  2" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
