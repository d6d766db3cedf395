// Package main provides the CLI entrypoint for qcdash.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/qcdash/internal/chart"
	"github.com/verte-zerg/qcdash/internal/config"
	"github.com/verte-zerg/qcdash/internal/dashboard"
	"github.com/verte-zerg/qcdash/internal/dataset"
	"github.com/verte-zerg/qcdash/internal/model"
	"github.com/verte-zerg/qcdash/internal/stats"
	"github.com/verte-zerg/qcdash/internal/store"
)

const (
	defaultTop         = stats.DefaultTopN
	defaultTrendWindow = stats.DefaultTrendWindow
	defaultPlotHeight  = 10
	defaultExportPath  = "filtrowane_dane.csv"
	defaultLogLevel    = "warn"
	defaultChartFormat = string(chart.PNG)
	defaultTheme       = dashboard.ThemeDark
)

const (
	formatCSV    = "csv"
	formatSQLite = "sqlite"
)

var (
	configPath string
	logLevel   string
	logFile    string

	datasetSheet       string
	datasetDropInvalid bool

	filterFrom      string
	filterTo        string
	filterOperators []string
	filterLocations []string

	reportTop         int
	reportTrendWindow int
	reportPlotHeight  int
	reportWidth       int
	reportColor       bool
	reportExportID    string

	exportFormat      string
	exportOut         string
	exportDB          string
	exportCharts      string
	exportChartFormat string

	dashboardTheme  string
	dashboardExport string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 when the input could not be loaded and 1 for other failures.
func exitCode(err error) int {
	if dataset.IsLoadError(err) {
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qcdash [FILE]",
		Short: "Quality control dashboard for inspection records",
		Long: `qcdash loads a spreadsheet of inspection records and shows first pass yield,
defect trends, Pareto analysis and defect locations.

FILE may be an .xlsx workbook or a .csv file. When omitted, [dataset] path
from the config file is used. The exit status is 2 when the input cannot be
loaded.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")

	addDatasetFlags(rootCmd)
	addReportFlags(rootCmd)
	rootCmd.Flags().StringVar(&dashboardTheme, "theme", defaultTheme, "color theme (dark, light)")
	rootCmd.Flags().StringVar(&dashboardExport, "export-path", defaultExportPath, "CSV file written by the export key")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newExportsCmd())
	rootCmd.AddCommand(newListCmd("operators", "List operators found in the data", model.Table.Operators))
	rootCmd.AddCommand(newListCmd("locations", "List defect locations found in the data", model.Table.Locations))

	return rootCmd
}

func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&datasetSheet, "sheet", dataset.DefaultSheet, "workbook sheet to read")
	cmd.Flags().BoolVar(&datasetDropInvalid, "drop-invalid", false, "drop rows with unparsable timestamps instead of failing")
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&filterFrom, "from", "", "first day to include (YYYY-MM-DD, default: first day in data)")
	cmd.Flags().StringVar(&filterTo, "to", "", "last day to include (YYYY-MM-DD, default: last day in data)")
	cmd.Flags().StringArrayVar(&filterOperators, "operator", nil,
		"operator to include (repeat for more; default: all; --operator= selects nobody and shows nothing)")
	cmd.Flags().StringArrayVar(&filterLocations, "location", nil,
		"defect location to include (repeat for more; default: no location filter)")
}

func addDBFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringVar(&exportDB, "db", config.DefaultDBPath(), usage)
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&reportTop, "top", defaultTop, "number of ranked defect types and locations")
	cmd.Flags().IntVar(&reportTrendWindow, "trend-window", defaultTrendWindow, "moving average window in days")
	cmd.Flags().IntVar(&reportPlotHeight, "plot-height", defaultPlotHeight, "plot height in rows")
}

// session holds what every data command needs after startup.
type session struct {
	cfg      config.FileConfig
	logger   *slog.Logger
	closeLog func() error
	source   string
	table    model.Table
}

func (s *session) Close() {
	if s.closeLog == nil {
		return
	}
	if err := s.closeLog(); err != nil {
		logErrf("failed to close log file: %v\n", err)
	}
}

// startSession loads config and sets up logging. Logs go to stderr unless
// logFallback is nil and no log file is configured.
func startSession(cmd *cobra.Command, logFallback io.Writer, validate func() error) (*session, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	if cmd.Flags().Lookup("sheet") != nil {
		applyStringConfig(cmd, "sheet", &datasetSheet, fileCfg.Dataset.Sheet)
		applyBoolConfig(cmd, "drop-invalid", &datasetDropInvalid, fileCfg.Dataset.DropInvalid)
	}
	if cmd.Flags().Lookup("top") != nil {
		applyIntConfig(cmd, "top", &reportTop, fileCfg.Report.Top)
		applyIntConfig(cmd, "trend-window", &reportTrendWindow, fileCfg.Report.TrendWindow)
		applyIntConfig(cmd, "plot-height", &reportPlotHeight, fileCfg.Report.PlotHeight)
	}
	if cmd.Flags().Lookup("db") != nil {
		applyStringConfig(cmd, "db", &exportDB, fileCfg.Export.DB)
	}
	if validate != nil {
		if err := validate(); err != nil {
			return nil, err
		}
	}

	logger, closeLog, err := newLogger(logLevel, logFile, logFallback)
	if err != nil {
		return nil, err
	}
	return &session{cfg: fileCfg, logger: logger, closeLog: closeLog}, nil
}

// loadDataset reads FILE, or [dataset] path when no argument is given.
func (s *session) loadDataset(args []string) error {
	source, err := resolveInput(args, s.cfg.Dataset.Path)
	if err != nil {
		return err
	}
	table, err := dataset.Load(source, dataset.Options{
		Sheet:       datasetSheet,
		DropInvalid: datasetDropInvalid,
		Logger:      s.logger,
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w\ncheck the FILE argument or [dataset] path in %s", err, configPath)
		}
		return err
	}
	s.source = source
	s.table = table
	return nil
}

func openSession(cmd *cobra.Command, args []string, logFallback io.Writer, validate func() error) (*session, error) {
	s, err := startSession(cmd, logFallback, validate)
	if err != nil {
		return nil, err
	}
	if err := s.loadDataset(args); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func resolveInput(args []string, configured *string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if configured != nil && strings.TrimSpace(*configured) != "" {
		return *configured, nil
	}
	return "", fmt.Errorf("no input file: pass FILE or set [dataset] path in the config")
}

func validateReportFlags() error {
	if reportTop < 1 {
		return fmt.Errorf("--top must be >= 1")
	}
	if reportTrendWindow < 1 {
		return fmt.Errorf("--trend-window must be >= 1")
	}
	if reportPlotHeight < 1 {
		return fmt.Errorf("--plot-height must be >= 1")
	}
	return nil
}

func validateFilterFlags() error {
	if filterFrom != "" {
		if _, err := model.ParseDate(filterFrom); err != nil {
			return fmt.Errorf("--from: %w", err)
		}
	}
	if filterTo != "" {
		if _, err := model.ParseDate(filterTo); err != nil {
			return fmt.Errorf("--to: %w", err)
		}
	}
	return nil
}

// buildCriteria overrides base with the filter flags the user set. Unknown
// names are logged against the values present in table.
func buildCriteria(cmd *cobra.Command, base model.FilterCriteria, table model.Table, logger *slog.Logger) (model.FilterCriteria, error) {
	criteria := base
	if filterFrom != "" {
		d, err := model.ParseDate(filterFrom)
		if err != nil {
			return model.FilterCriteria{}, fmt.Errorf("--from: %w", err)
		}
		criteria.StartDate = d
	}
	if filterTo != "" {
		d, err := model.ParseDate(filterTo)
		if err != nil {
			return model.FilterCriteria{}, fmt.Errorf("--to: %w", err)
		}
		criteria.EndDate = d
	}
	if cmd.Flags().Changed("operator") {
		criteria.Operators = cleanList(filterOperators)
		warnUnknown(logger, "operator", criteria.Operators, table.Operators())
	}
	if cmd.Flags().Changed("location") {
		criteria.DefectLocations = cleanList(filterLocations)
		warnUnknown(logger, "location", criteria.DefectLocations, table.Locations())
	}
	return criteria, nil
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func warnUnknown(logger *slog.Logger, kind string, selected, known []string) {
	set := make(map[string]struct{}, len(known))
	for _, k := range known {
		set[k] = struct{}{}
	}
	for _, s := range selected {
		if _, ok := set[s]; !ok {
			logger.Warn("value not found in data", "kind", kind, "value", s)
		}
	}
}

func reportOptions() stats.ReportOptions {
	return stats.ReportOptions{TopN: reportTop, TrendWindow: reportTrendWindow}
}

func runDashboardCmd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args, nil, func() error {
		if err := validateReportFlags(); err != nil {
			return err
		}
		_, err := dashboard.ParseTheme(dashboardTheme)
		return err
	})
	if err != nil {
		return err
	}
	defer s.Close()

	applyStringConfig(cmd, "theme", &dashboardTheme, s.cfg.Dashboard.Theme)
	applyStringConfig(cmd, "export-path", &dashboardExport, s.cfg.Export.Path)
	theme, err := dashboard.ParseTheme(dashboardTheme)
	if err != nil {
		return err
	}
	chartFormat := chart.PNG
	if s.cfg.Export.ChartFormat != nil {
		if chartFormat, err = chart.ParseFormat(*s.cfg.Export.ChartFormat); err != nil {
			return err
		}
	}

	m := dashboard.NewModel(s.table, dashboard.Options{
		Source:      s.source,
		ExportPath:  dashboardExport,
		ChartDir:    config.DefaultChartDir(),
		ChartFormat: chartFormat,
		Theme:       theme,
		Report:      reportOptions(),
		PlotHeight:  reportPlotHeight,
		Logger:      s.logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [FILE]",
		Short: "Print the quality report to stdout",
		Long: `Print the quality report to stdout.

With --export ID the report is built from a view saved by
'qcdash export --format sqlite' instead of FILE. Filter flags then narrow the
saved selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReportCmd,
	}
	addDatasetFlags(cmd)
	addFilterFlags(cmd)
	addReportFlags(cmd)
	cmd.Flags().IntVar(&reportWidth, "width", 0, "output width (default: terminal width)")
	cmd.Flags().BoolVar(&reportColor, "color", false, "force ANSI colors in plots")
	cmd.Flags().StringVar(&reportExportID, "export", "", "report on a saved export instead of FILE (see 'qcdash exports')")
	addDBFlag(cmd, "SQLite database holding saved exports")
	return cmd
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	s, err := startSession(cmd, cmd.ErrOrStderr(), func() error {
		if reportExportID != "" && len(args) > 0 {
			return fmt.Errorf("FILE and --export cannot be combined")
		}
		if err := validateFilterFlags(); err != nil {
			return err
		}
		if reportWidth < 0 {
			return fmt.Errorf("--width must be >= 0")
		}
		return validateReportFlags()
	})
	if err != nil {
		return err
	}
	defer s.Close()

	var base model.FilterCriteria
	if reportExportID != "" {
		exp, view, err := loadSavedExport(cmd.Context(), reportExportID)
		if err != nil {
			return err
		}
		s.logger.Info("loaded saved export", "id", exp.ID, "rows", exp.RowCount, "source", exp.Source)
		s.source = exp.Source
		s.table = view
		base = exp.Criteria
	} else {
		if err := s.loadDataset(args); err != nil {
			return err
		}
		base = stats.DefaultCriteria(s.table)
	}

	criteria, err := buildCriteria(cmd, base, s.table, s.logger)
	if err != nil {
		return err
	}
	report := stats.BuildReport(s.table, criteria, reportOptions())
	if err := stats.RenderReport(cmd.OutOrStdout(), report, stats.RenderOptions{
		Width:      reportWidth,
		PlotHeight: reportPlotHeight,
		Color:      reportColor,
	}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func loadSavedExport(ctx context.Context, id string) (store.Export, model.Table, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(exportDB)
	if err != nil {
		return store.Export{}, model.Table{}, fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	exp, view, err := st.LoadExport(ctx, id)
	if err != nil {
		return store.Export{}, model.Table{}, fmt.Errorf("failed to load export %s: %w", id, err)
	}
	return exp, view, nil
}

func newExportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exports",
		Short: "List views saved with 'qcdash export --format sqlite'",
		Args:  cobra.NoArgs,
		RunE:  runExportsCmd,
	}
	addDBFlag(cmd, "SQLite database holding saved exports")
	return cmd
}

func runExportsCmd(cmd *cobra.Command, _ []string) error {
	s, err := startSession(cmd, cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(exportDB)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	exports, err := st.ListExports(ctx)
	if err != nil {
		return fmt.Errorf("failed to list exports: %w", err)
	}
	if len(exports) == 0 {
		_, err := fmt.Fprintln(cmd.ErrOrStderr(), "No saved exports.")
		return err
	}
	for _, exp := range exports {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %6d rows  %s .. %s  %s\n",
			exp.ID,
			exp.CreatedAt.Local().Format(model.TimestampLayout),
			exp.RowCount,
			exp.Criteria.StartDate,
			exp.Criteria.EndDate,
			exp.Source,
		); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export the filtered records as CSV or to SQLite, optionally with chart images",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCmd,
	}
	addDatasetFlags(cmd)
	addFilterFlags(cmd)
	cmd.Flags().StringVar(&exportFormat, "format", formatCSV, "export format (csv, sqlite)")
	cmd.Flags().StringVar(&exportOut, "out", defaultExportPath, "CSV output path ('-' for stdout)")
	addDBFlag(cmd, "SQLite database for --format sqlite")
	cmd.Flags().StringVar(&exportCharts, "charts", "",
		fmt.Sprintf("also write chart images (%s) to this directory", strings.Join(chart.Names(), ", ")))
	cmd.Flags().StringVar(&exportChartFormat, "chart-format", defaultChartFormat, "chart image format (png, svg)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	var chartFormat chart.Format
	s, err := openSession(cmd, args, cmd.ErrOrStderr(), func() error {
		if err := validateFilterFlags(); err != nil {
			return err
		}
		format := strings.ToLower(strings.TrimSpace(exportFormat))
		if format != formatCSV && format != formatSQLite {
			return fmt.Errorf("unsupported --format %q (expected csv or sqlite)", exportFormat)
		}
		exportFormat = format
		return nil
	})
	if err != nil {
		return err
	}
	defer s.Close()

	applyStringConfig(cmd, "out", &exportOut, s.cfg.Export.Path)
	applyStringConfig(cmd, "chart-format", &exportChartFormat, s.cfg.Export.ChartFormat)
	if exportCharts != "" {
		chartFormat, err = chart.ParseFormat(exportChartFormat)
		if err != nil {
			return err
		}
	}

	criteria, err := buildCriteria(cmd, stats.DefaultCriteria(s.table), s.table, s.logger)
	if err != nil {
		return err
	}
	report := stats.BuildReport(s.table, criteria, stats.ReportOptions{})

	switch exportFormat {
	case formatSQLite:
		if err := exportSQLite(cmd.Context(), cmd.ErrOrStderr(), s, criteria, report.View); err != nil {
			return err
		}
	default:
		if err := exportCSV(cmd.OutOrStdout(), cmd.ErrOrStderr(), report.View); err != nil {
			return err
		}
	}

	if exportCharts != "" {
		paths, err := chart.WriteAll(exportCharts, report, chartFormat, s.logger)
		if err != nil {
			return fmt.Errorf("failed to write charts: %w", err)
		}
		for _, p := range paths {
			if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", p); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func exportCSV(stdout, stderr io.Writer, view model.Table) (err error) {
	if exportOut == "-" {
		return stats.WriteCSV(stdout, view)
	}
	if dir := filepath.Dir(exportOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("failed to create export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close export: %w", cerr)
		}
	}()
	if err := stats.WriteCSV(f, view); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stderr, "Exported %d rows to %s\n", view.Len(), exportOut)
	return err
}

func exportSQLite(ctx context.Context, stderr io.Writer, s *session, criteria model.FilterCriteria, view model.Table) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(exportDB)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	exp, err := st.SaveExport(ctx, s.source, criteria, view)
	if err != nil {
		return fmt.Errorf("failed to save export: %w", err)
	}
	s.logger.Info("export saved", "id", exp.ID, "rows", exp.RowCount, "db", exportDB)
	_, err = fmt.Fprintf(stderr, "Saved export %s (%d rows) to %s\n", exp.ID, exp.RowCount, exportDB)
	return err
}

type listFunc func(model.Table) []string

func newListCmd(use, short string, list listFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [FILE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer s.Close()
			values := list(s.table)
			if len(values) == 0 {
				logErrln("No values found.")
				return nil
			}
			for _, v := range values {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
	addDatasetFlags(cmd)
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# qcdash configuration
# Uncomment a value to enable it. CLI flags override config values.

[dataset]
# path = "/path/to/inspections.xlsx"  # Input used when FILE is omitted
# sheet = %q                      # Workbook sheet to read
# drop-invalid = false                 # Drop rows with unparsable timestamps

[report]
# top = %d                             # Ranked defect types and locations
# trend-window = %d                     # Moving average window in days
# plot-height = %d                     # Plot height in rows

[export]
# path = %q          # CSV written by 'export' and the dashboard x key
# db = %q
# chart-format = %q                  # png or svg

[dashboard]
# theme = %q                        # dark or light

[log]
# level = %q                         # debug, info, warn, error
# file = "/tmp/qcdash.log"              # The dashboard only logs when this is set
`,
		dataset.DefaultSheet,
		defaultTop,
		defaultTrendWindow,
		defaultPlotHeight,
		defaultExportPath,
		config.DefaultDBPath(),
		defaultChartFormat,
		defaultTheme,
		defaultLogLevel,
	)
}
