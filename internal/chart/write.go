package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/verte-zerg/qcdash/internal/stats"
)

type renderer struct {
	name string
	draw func(io.Writer, stats.Report, Format) error
}

var renderers = []renderer{
	{name: "fpy_trend", draw: FPYTrend},
	{name: "daily_defects", draw: DailyDefects},
	{name: "top_defects", draw: TopDefects},
	{name: "pareto", draw: Pareto},
	{name: "locations", draw: Locations},
}

// Names lists the chart file names without extension, in render order.
func Names() []string {
	out := make([]string, len(renderers))
	for i, r := range renderers {
		out[i] = r.name
	}
	return out
}

// WriteAll renders every chart for the report into dir and returns the written
// paths. Charts without data are skipped.
func WriteAll(dir string, r stats.Report, f Format, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chart dir: %w", err)
	}
	written := make([]string, 0, len(renderers))
	for _, rd := range renderers {
		var buf bytes.Buffer
		if err := rd.draw(&buf, r, f); err != nil {
			if errors.Is(err, ErrNoData) {
				logger.Info("chart skipped", "chart", rd.name, "reason", err)
				continue
			}
			return written, fmt.Errorf("failed to render %s: %w", rd.name, err)
		}
		path := filepath.Join(dir, rd.name+f.Ext())
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Debug("chart written", "path", path, "bytes", buf.Len())
		written = append(written, path)
	}
	return written, nil
}
