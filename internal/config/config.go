package config

import (
	"os"
	"path/filepath"
	"strconv"

	"lightcurve/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths PathConfig
	Plot  PlotConfig
	Log   LogConfig
}

// PathConfig holds the input and output file locations
type PathConfig struct {
	BaseDir     string
	InputFile   string
	SummaryFile string
	// PlotBase is the chart path without extension; ".svg" and ".png" are appended.
	PlotBase    string
	ProfileFile string
}

// PlotConfig holds chart rendering settings
type PlotConfig struct {
	Enabled bool
	Width   int
	Height  int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths: *loadPathConfig(),
		Plot:  *loadPlotConfig(),
		Log:   LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadPathConfig() *PathConfig {
	baseDir := getEnvOrDefault("LIGHTCURVE_BASE_DIR", ".")
	return &PathConfig{
		BaseDir:     baseDir,
		InputFile:   getEnvOrDefault("LIGHTCURVE_INPUT", filepath.Join(baseDir, "Data", "data.csv")),
		SummaryFile: getEnvOrDefault("LIGHTCURVE_SUMMARY", filepath.Join(baseDir, "output_go.txt")),
		PlotBase:    getEnvOrDefault("LIGHTCURVE_PLOT_BASE", filepath.Join(baseDir, "Supernova Lightcurve")),
		ProfileFile: getEnvOrDefault("LIGHTCURVE_PROFILE", ""),
	}
}

func loadPlotConfig() *PlotConfig {
	return &PlotConfig{
		Enabled: getEnvBoolOrDefault("LIGHTCURVE_PLOT", true),
		Width:   getEnvIntOrDefault("LIGHTCURVE_PLOT_WIDTH", 640),
		Height:  getEnvIntOrDefault("LIGHTCURVE_PLOT_HEIGHT", 480),
	}
}

// Validate checks that required settings are present and sane
func (c *Config) Validate() error {
	if c.Paths.InputFile == "" {
		return errors.ConfigInvalid("input file is required")
	}
	if c.Paths.SummaryFile == "" {
		return errors.ConfigInvalid("summary file is required")
	}
	if c.Plot.Enabled {
		if c.Paths.PlotBase == "" {
			return errors.ConfigInvalid("plot base path is required when plotting is enabled")
		}
		if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
			return errors.ConfigInvalid("plot dimensions must be positive")
		}
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
