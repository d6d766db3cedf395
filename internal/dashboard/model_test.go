package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/qcdash/internal/chart"
	"github.com/verte-zerg/qcdash/internal/model"
)

func testTable() model.Table {
	columns := []string{
		model.ColumnTimestamp, model.ColumnOperator, model.ColumnDefectLocation, model.ColumnDefectType,
	}
	rows := []struct {
		ts       time.Time
		operator string
		location string
		defect   string
	}{
		{time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), "Anna", "", "-"},
		{time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), "Anna", "Przód", "Rysa"},
		{time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC), "Jan", "", "-"},
		{time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC), "Jan", "Tył", "Wgniecenie"},
	}
	table := model.Table{Columns: columns}
	for _, r := range rows {
		table.Records = append(table.Records, model.Record{
			Timestamp:      r.ts,
			Operator:       r.operator,
			DefectLocation: r.location,
			DefectType:     r.defect,
			Cells:          []string{r.ts.Format(model.TimestampLayout), r.operator, r.location, r.defect},
		})
	}
	return table
}

func newSizedModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m := NewModel(testTable(), opts)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelUsesDefaultCriteria(t *testing.T) {
	m := newSizedModel(t, Options{})
	c := m.Criteria()
	if c.StartDate.String() != "2024-03-01" || c.EndDate.String() != "2024-03-03" {
		t.Fatalf("unexpected range %s..%s", c.StartDate, c.EndDate)
	}
	if len(c.Operators) != 2 || len(c.DefectLocations) != 0 {
		t.Fatalf("unexpected default selection: %+v", c)
	}
	if m.report.Metrics.Total != 4 || m.report.Metrics.DefectCount != 2 {
		t.Fatalf("unexpected metrics: %+v", m.report.Metrics)
	}
}

func TestViewShowsTabsAndCards(t *testing.T) {
	m := newSizedModel(t, Options{Source: "/data/kontrola.xlsx"})
	view := m.View()
	for _, want := range []string{"Overview", "Pareto", "Data", "Total inspected", "50.00%", "file=kontrola.xlsx"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
	if lines := strings.Split(view, "\n"); len(lines) != 40 {
		t.Fatalf("expected view to fill 40 lines, got %d", len(lines))
	}
}

func TestViewBeforeSizeIsEmpty(t *testing.T) {
	m := NewModel(testTable(), Options{})
	if m.View() != "" {
		t.Fatalf("expected empty view before the first size message")
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := newSizedModel(t, Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabData {
		t.Fatalf("expected wrap to data tab, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "Przód") {
		t.Fatalf("expected data rows in the data tab")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabOverview {
		t.Fatalf("expected wrap to overview, got %d", m.activeTab)
	}
}

func TestThemeToggle(t *testing.T) {
	m := newSizedModel(t, Options{Theme: ThemeLight})
	if m.theme.name != ThemeLight {
		t.Fatalf("expected light theme, got %s", m.theme.name)
	}
	m.Update(keyRunes("t"))
	if m.theme.name != ThemeDark {
		t.Fatalf("expected dark theme after toggle, got %s", m.theme.name)
	}
}

func TestParseTheme(t *testing.T) {
	if name, err := ParseTheme(""); err != nil || name != ThemeDark {
		t.Fatalf("expected dark default, got %q (%v)", name, err)
	}
	if _, err := ParseTheme("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestFilterFormApplies(t *testing.T) {
	m := newSizedModel(t, Options{})
	m.Update(keyRunes("/"))
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	m.filterInputs[inputFrom].SetValue("2024-03-02")
	m.filterInputs[inputTo].SetValue("")
	m.filterInputs[inputOperators].SetValue("Jan")
	m.filterInputs[inputLocations].SetValue("Tył")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.filterMode {
		t.Fatalf("expected filter mode to close, error: %s", m.filterError)
	}
	c := m.Criteria()
	if c.StartDate.String() != "2024-03-02" || c.EndDate.String() != "2024-03-03" {
		t.Fatalf("unexpected range %s..%s", c.StartDate, c.EndDate)
	}
	if m.report.Metrics.Total != 1 || m.report.Metrics.FPY != 0 {
		t.Fatalf("unexpected metrics: %+v", m.report.Metrics)
	}
}

func TestFilterFormRejectsInvalidInput(t *testing.T) {
	m := newSizedModel(t, Options{})
	m.Update(keyRunes("/"))
	m.filterInputs[inputFrom].SetValue("03/01/2024")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.filterMode || !strings.Contains(m.filterError, "expected YYYY-MM-DD") {
		t.Fatalf("expected date error, got %q", m.filterError)
	}

	m.filterInputs[inputFrom].SetValue("")
	m.filterInputs[inputOperators].SetValue("Anna, Nobody")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.filterError, `unknown operator "Nobody"`) {
		t.Fatalf("expected operator error, got %q", m.filterError)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.filterMode {
		t.Fatalf("expected esc to close the form")
	}
	if len(m.Criteria().Operators) != 2 {
		t.Fatalf("criteria changed by a cancelled form")
	}
}

func TestEmptyOperatorsShowsNotice(t *testing.T) {
	m := newSizedModel(t, Options{})
	m.Update(keyRunes("/"))
	m.filterInputs[inputOperators].SetValue("")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.report.Metrics.Total != 0 {
		t.Fatalf("expected empty view, got %d rows", m.report.Metrics.Total)
	}
	if !strings.Contains(m.View(), "No operators selected") {
		t.Fatalf("expected empty-operators notice")
	}

	m.Update(keyRunes("r"))
	if m.report.Metrics.Total != 4 {
		t.Fatalf("expected reset to restore all rows, got %d", m.report.Metrics.Total)
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "filtrowane_dane.csv")
	m := newSizedModel(t, Options{ExportPath: path})
	m.Update(keyRunes("x"))
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header and 4 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], model.ColumnTimestamp) {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(m.View(), "Exported 4 rows") {
		t.Fatalf("expected status line")
	}
}

func TestQuit(t *testing.T) {
	m := newSizedModel(t, Options{})
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestSaveCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	m := newSizedModel(t, Options{ChartDir: dir, ChartFormat: chart.SVG})
	m.Update(keyRunes("c"))
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read chart dir: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 charts, got %d", len(entries))
	}
	if !strings.Contains(m.View(), "Saved 5 charts") {
		t.Fatalf("expected status line")
	}
}

func TestFilterFormAcceptsNamesWithCommas(t *testing.T) {
	data := testTable()
	ts := time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)
	data.Records = append(data.Records, model.Record{
		Timestamp:      ts,
		Operator:       "Anna",
		DefectLocation: "Przód, lewy",
		DefectType:     "Rysa",
		Cells:          []string{ts.Format(model.TimestampLayout), "Anna", "Przód, lewy", "Rysa"},
	})
	m := NewModel(data, Options{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(keyRunes("/"))
	m.filterInputs[inputLocations].SetValue("Przód, lewy")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode {
		t.Fatalf("expected filter mode to close, error: %s", m.filterError)
	}
	if got := m.Criteria().DefectLocations; len(got) != 1 || got[0] != "Przód, lewy" {
		t.Fatalf("unexpected locations %q", got)
	}
	if m.report.Metrics.Total != 1 {
		t.Fatalf("expected 1 row, got %d", m.report.Metrics.Total)
	}

	m.Update(keyRunes("/"))
	if got := m.filterInputs[inputLocations].Value(); got != `"Przód, lewy"` {
		t.Fatalf("expected quoted name in the form, got %q", got)
	}
	m.filterInputs[inputLocations].SetValue(`Przód, "Przód, lewy"`)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode {
		t.Fatalf("expected filter mode to close, error: %s", m.filterError)
	}
	if got := m.Criteria().DefectLocations; len(got) != 2 || got[0] != "Przód" || got[1] != "Przód, lewy" {
		t.Fatalf("unexpected locations %q", got)
	}
	if m.report.Metrics.Total != 2 {
		t.Fatalf("expected 2 rows, got %d", m.report.Metrics.Total)
	}
}

func TestSelectionRoundTrip(t *testing.T) {
	names := []string{"Przód", "Przód, lewy", `Tył "B"`}
	got, err := parseSelection(formatSelection(names), names, "location")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Join(got, "|") != strings.Join(names, "|") {
		t.Fatalf("round trip mismatch: %q", got)
	}
}
