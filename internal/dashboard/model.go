// Package dashboard provides the Bubble Tea quality dashboard.
package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/qcdash/internal/chart"
	"github.com/verte-zerg/qcdash/internal/model"
	"github.com/verte-zerg/qcdash/internal/stats"
)

const (
	tabOverview = iota
	tabDefects
	tabPareto
	tabLocations
	tabData
)

const (
	defaultPlotHeight = 10
	maxDataColWidth   = 28
	defaultExportPath = "filtrowane_dane.csv"
	defaultChartDir   = "charts"
)

const (
	inputFrom = iota
	inputTo
	inputOperators
	inputLocations
)

// Options configures the dashboard.
type Options struct {
	// Source is the loaded file, shown in the header.
	Source     string
	ExportPath string
	// ChartDir receives chart images saved with the c key.
	ChartDir    string
	ChartFormat chart.Format
	Theme       string
	Report      stats.ReportOptions
	PlotHeight  int
	Logger      *slog.Logger
}

// Model implements the Bubble Tea dashboard.
type Model struct {
	table    model.Table
	opts     Options
	logger   *slog.Logger
	criteria model.FilterCriteria
	report   stats.Report
	theme    theme

	statusMsg string
	errMsg    string

	tabs       []string
	activeTab  int
	viewports  []viewport.Model
	dataTable  table.Model
	dataLayout tableLayout

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

type tableLayout struct {
	width  int
	height int
}

// NewModel constructs a dashboard over a loaded table, starting from the
// default criteria.
func NewModel(data model.Table, opts Options) *Model {
	if opts.ExportPath == "" {
		opts.ExportPath = defaultExportPath
	}
	if opts.PlotHeight <= 0 {
		opts.PlotHeight = defaultPlotHeight
	}
	if opts.ChartDir == "" {
		opts.ChartDir = defaultChartDir
	}
	if opts.ChartFormat == "" {
		opts.ChartFormat = chart.PNG
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		table:    data,
		opts:     opts,
		logger:   logger,
		criteria: stats.DefaultCriteria(data),
		theme:    newTheme(opts.Theme),
		tabs:     []string{"Overview", "Defect Types", "Pareto", "Locations", "Data"},
	}
	m.initInputs()
	m.initDataTable()
	m.initViewports()
	m.refreshReport()
	return m
}

// Criteria returns the active filter selection.
func (m *Model) Criteria() model.FilterCriteria {
	return m.criteria
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		if m.activeTab == tabData {
			m.dataTable.Focus()
		} else {
			m.dataTable.Blur()
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			return m.startFilter()
		case "r":
			m.criteria = stats.DefaultCriteria(m.table)
			m.statusMsg = "Filters reset."
			m.refreshReport()
			return m, nil
		case "t":
			m.theme = m.theme.toggled()
			m.dataTable.SetStyles(m.theme.table)
			m.statusMsg = fmt.Sprintf("Theme: %s", m.theme.name)
			m.renderTabContents()
			return m, nil
		case "x":
			m.exportCSV()
			return m, nil
		case "c":
			m.saveCharts()
			return m, nil
		case "g", "home":
			if m.activeTab == tabData {
				m.dataTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabData {
				m.dataTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabData {
				var cmd tea.Cmd
				m.dataTable, cmd = m.dataTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("From (YYYY-MM-DD): "),
		newFilterInput("To (YYYY-MM-DD): "),
		newFilterInput("Operators: "),
		newFilterInput("Locations: "),
	}
	m.filterInputs[inputOperators].Placeholder = "comma-separated; empty selects nobody"
	m.filterInputs[inputLocations].Placeholder = "comma-separated; empty means all"
	m.setInputsFromCriteria()
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromCriteria() {
	if len(m.filterInputs) == 0 {
		return
	}
	m.filterInputs[inputFrom].SetValue(dateValue(m.criteria.StartDate))
	m.filterInputs[inputTo].SetValue(dateValue(m.criteria.EndDate))
	m.filterInputs[inputOperators].SetValue(formatSelection(m.criteria.Operators))
	m.filterInputs[inputLocations].SetValue(formatSelection(m.criteria.DefectLocations))
}

func dateValue(d model.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func (m *Model) initDataTable() {
	columns := make([]table.Column, len(m.table.Columns))
	for i, title := range m.table.Columns {
		columns[i] = table.Column{Title: title, Width: runewidth.StringWidth(title)}
	}
	m.dataTable = table.New(
		table.WithColumns(columns),
		table.WithHeight(1),
	)
	m.dataTable.SetStyles(m.theme.table)
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(m.theme.activeNav.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && (m.errMsg != "" || m.statusMsg != "") {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.setDataTableSize(m.width, vpHeight)
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabData {
		m.dataTable.Focus()
	} else {
		m.dataTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, m.theme.activeNav.Render(tab))
		} else {
			parts = append(parts, m.theme.inactiveNav.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	filters := padLines(m.renderFilterSummary(), m.width)
	return tabs + "\n" + filters
}

func (m *Model) renderFilterSummary() string {
	operators := fmt.Sprintf("%d/%d", len(m.criteria.Operators), len(m.table.Operators()))
	locations := "all"
	if len(m.criteria.DefectLocations) > 0 {
		locations = strings.Join(m.criteria.DefectLocations, ",")
	}
	summary := fmt.Sprintf("Filters: %s..%s  operators=%s  locations=%s  rows=%d/%d",
		dateValue(m.criteria.StartDate), dateValue(m.criteria.EndDate),
		operators, locations, m.report.View.Len(), m.table.Len())
	if m.opts.Source != "" {
		summary += "  file=" + filepath.Base(m.opts.Source)
	}
	summary = truncateLine(summary, m.width)
	return m.theme.header.Render(summary)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Filters: /  Reset: r  Export CSV: x  Charts: c  Theme: t  Quit: q"
	return m.theme.header.Render(truncateLine(help, m.width))
}

func (m *Model) renderFilterHelp() string {
	return m.theme.header.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return m.renderFilterHelp()
	}
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + m.theme.errText.Render(m.errMsg)
	}
	if m.statusMsg != "" {
		return m.renderHelp() + "\n" + m.theme.status.Render(m.statusMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Filters (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	lines = append(lines,
		m.theme.header.Render("Operators: "+formatSelection(m.table.Operators())),
		m.theme.header.Render("Locations: "+formatSelection(m.table.Locations())),
	)
	if m.filterError != "" {
		lines = append(lines, m.theme.errText.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.activeTab == tabData {
		if m.report.View.Len() == 0 {
			return fitLines(emptyMessage(m.criteria), m.width, height)
		}
		view := m.theme.tableMuted.Render(m.dataTable.View())
		return fitLines(view, m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) refreshReport() {
	m.report = stats.BuildReport(m.table, m.criteria, m.opts.Report)
	m.logger.Debug("report refreshed",
		"rows", m.report.View.Len(),
		"defects", m.report.Metrics.DefectCount,
		"fpy", m.report.Metrics.FPY)
	m.dataTable.SetRows(dataRows(m.report.View))
	m.dataTable.GotoTop()
	m.dataLayout = tableLayout{}
	if m.width > 0 {
		_, bodyHeight, _ := m.layoutHeights()
		m.setDataTableSize(m.width, bodyHeight)
	}
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	opts := stats.RenderOptions{Width: width, PlotHeight: m.opts.PlotHeight, Color: true}
	m.viewports[tabOverview].SetContent(m.renderOverview(opts))
	m.viewports[tabDefects].SetContent(m.renderSection(func(buf *bytes.Buffer) error {
		return stats.RenderRanked(buf, "Top Defect Types", "Defect type", m.report.TopDefects, opts)
	}))
	m.viewports[tabPareto].SetContent(m.renderSection(func(buf *bytes.Buffer) error {
		return stats.RenderPareto(buf, m.report.Pareto)
	}))
	m.viewports[tabLocations].SetContent(m.renderSection(func(buf *bytes.Buffer) error {
		return stats.RenderRanked(buf, "Top Defect Locations", "Location", m.report.TopLocations, opts)
	}))
}

func (m *Model) renderOverview(opts stats.RenderOptions) string {
	cards := m.renderSummaryCards(opts.Width)
	if m.report.View.Len() == 0 {
		return cards + "\n\n" + emptyMessage(m.criteria)
	}
	var buf bytes.Buffer
	if err := stats.RenderFPYTrend(&buf, m.report.DailyFPY, m.report.FPYTrend, opts); err != nil {
		return fmt.Sprintf("Failed to render trend: %v", err)
	}
	if err := stats.RenderDailyDefects(&buf, m.report.DailyDefects, opts); err != nil {
		return fmt.Sprintf("Failed to render defects: %v", err)
	}
	return strings.TrimRight(cards+"\n\n"+buf.String(), "\n")
}

func (m *Model) renderSection(render func(*bytes.Buffer) error) string {
	if m.report.View.Len() == 0 {
		return emptyMessage(m.criteria)
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Sprintf("Failed to render: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (m *Model) renderSummaryCards(width int) string {
	metrics := m.report.Metrics
	cards := []string{
		m.metricCard("Total inspected", fmt.Sprintf("%d", metrics.Total)),
		m.metricCard("Defects", fmt.Sprintf("%d", metrics.DefectCount)),
		m.metricCard("FPY", stats.FormatPercent(metrics.FPY)),
	}
	if width < 60 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", m.theme.cardTitle.Render(label), m.theme.cardValue.Render(value))
	return m.theme.card.Render(content)
}

func emptyMessage(c model.FilterCriteria) string {
	if len(c.Operators) == 0 {
		return "No operators selected; nothing to show. Press / to choose operators or r to reset."
	}
	return "No records match the current filters."
}

func dataRows(view model.Table) []table.Row {
	rows := make([]table.Row, 0, view.Len())
	for _, r := range view.Records {
		row := make(table.Row, len(view.Columns))
		copy(row, r.Cells)
		rows = append(rows, row)
	}
	return rows
}

func (m *Model) setDataTableSize(width, height int) {
	viewportHeight := maxInt(1, height-1)
	if m.dataLayout.width == width && m.dataLayout.height == viewportHeight {
		return
	}
	m.dataLayout.width = width
	m.dataLayout.height = viewportHeight
	m.dataTable.SetColumns(dataColumns(m.table.Columns, m.dataTable.Rows()))
	m.dataTable.SetWidth(width)
	m.dataTable.SetHeight(viewportHeight)
	viewportHeight = m.adjustDataTableHeight(height)
	if m.dataLayout.height != viewportHeight {
		m.dataLayout.height = viewportHeight
		m.dataTable.SetHeight(viewportHeight)
	}
}

func dataColumns(titles []string, rows []table.Row) []table.Column {
	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		width := runewidth.StringWidth(title)
		for _, row := range rows {
			if i < len(row) {
				width = maxInt(width, runewidth.StringWidth(row[i]))
			}
		}
		columns[i] = table.Column{Title: title, Width: minInt(width, maxDataColWidth)}
	}
	return columns
}

func (m *Model) adjustDataTableHeight(bodyHeight int) int {
	target := maxInt(1, bodyHeight)
	height := m.dataTable.Height()
	viewHeight := lipgloss.Height(m.dataTable.View())
	if viewHeight == target {
		return height
	}
	height += target - viewHeight
	if height < 1 {
		height = 1
	}
	m.dataTable.SetHeight(height)
	viewHeight = lipgloss.Height(m.dataTable.View())
	if viewHeight == target {
		return height
	}
	height += target - viewHeight
	if height < 1 {
		height = 1
	}
	return height
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromCriteria()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.statusMsg = ""
		m.refreshReport()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

// applyFilter validates the form. Blank dates fall back to the data range;
// names must be values present in the data.
func (m *Model) applyFilter() error {
	first, last, _ := m.table.DateRange()
	start, err := parseDateInput(m.filterInputs[inputFrom].Value(), first)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	end, err := parseDateInput(m.filterInputs[inputTo].Value(), last)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}
	operators, err := parseSelection(m.filterInputs[inputOperators].Value(), m.table.Operators(), "operator")
	if err != nil {
		return err
	}
	locations, err := parseSelection(m.filterInputs[inputLocations].Value(), m.table.Locations(), "location")
	if err != nil {
		return err
	}
	m.criteria = model.FilterCriteria{
		StartDate:       start,
		EndDate:         end,
		Operators:       operators,
		DefectLocations: locations,
	}
	m.logger.Info("filters applied",
		"from", start.String(),
		"to", end.String(),
		"operators", len(operators),
		"locations", len(locations))
	return nil
}

func parseDateInput(input string, fallback model.Date) (model.Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback, nil
	}
	return model.ParseDate(input)
}

// parseSelection reads a comma separated list of names. Names containing a
// comma are written in double quotes, as in a CSV row. An input equal to one
// known name is taken as that name.
func parseSelection(input string, known []string, kind string) ([]string, error) {
	valid := make(map[string]struct{}, len(known))
	for _, k := range known {
		valid[k] = struct{}{}
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	if _, ok := valid[input]; ok {
		return []string{input}, nil
	}
	r := csv.NewReader(strings.NewReader(input))
	r.TrimLeadingSpace = true
	r.LazyQuotes = true
	parts, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%ss: %w", kind, err)
	}
	var out []string
	seen := map[string]struct{}{}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := valid[part]; !ok {
			return nil, fmt.Errorf("unknown %s %q", kind, part)
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out, nil
}

// formatSelection is the inverse of parseSelection.
func formatSelection(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if strings.ContainsAny(n, ",\"") {
			n = `"` + strings.ReplaceAll(n, `"`, `""`) + `"`
		}
		parts[i] = n
	}
	return strings.Join(parts, ", ")
}

func (m *Model) exportCSV() {
	m.errMsg = ""
	m.statusMsg = ""
	path := m.opts.ExportPath
	if err := writeCSVFile(path, m.report.View); err != nil {
		m.errMsg = err.Error()
		m.logger.Error("csv export failed", "path", path, "err", err)
		return
	}
	m.statusMsg = fmt.Sprintf("Exported %d rows to %s", m.report.View.Len(), path)
	m.logger.Info("csv exported", "path", path, "rows", m.report.View.Len())
}

func (m *Model) saveCharts() {
	m.errMsg = ""
	m.statusMsg = ""
	paths, err := chart.WriteAll(m.opts.ChartDir, m.report, m.opts.ChartFormat, m.logger)
	if err != nil {
		m.errMsg = err.Error()
		m.logger.Error("chart export failed", "dir", m.opts.ChartDir, "err", err)
		return
	}
	if len(paths) == 0 {
		m.statusMsg = "No charts to save for the current filters."
		return
	}
	m.statusMsg = fmt.Sprintf("Saved %d charts to %s", len(paths), m.opts.ChartDir)
}

func writeCSVFile(path string, view model.Table) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close export: %w", cerr)
		}
	}()
	return stats.WriteCSV(f, view)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
