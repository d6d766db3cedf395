// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Dataset   DatasetConfig   `toml:"dataset"`
	Report    ReportConfig    `toml:"report"`
	Export    ExportConfig    `toml:"export"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Log       LogConfig       `toml:"log"`
}

// DatasetConfig maps input file settings.
type DatasetConfig struct {
	Path        *string `toml:"path"`
	Sheet       *string `toml:"sheet"`
	DropInvalid *bool   `toml:"drop-invalid"`
}

// ReportConfig maps report sizing settings.
type ReportConfig struct {
	Top         *int `toml:"top"`
	TrendWindow *int `toml:"trend-window"`
	PlotHeight  *int `toml:"plot-height"`
}

// ExportConfig maps export destinations.
type ExportConfig struct {
	Path        *string `toml:"path"`
	DB          *string `toml:"db"`
	ChartFormat *string `toml:"chart-format"`
}

// DashboardConfig maps interactive dashboard settings.
type DashboardConfig struct {
	Theme *string `toml:"theme"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
