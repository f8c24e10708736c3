package config

import (
	"path/filepath"
	"testing"

	"lightcurve/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LIGHTCURVE_BASE_DIR", "/work")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/work", "Data", "data.csv"), cfg.Paths.InputFile)
	assert.Equal(t, filepath.Join("/work", "output_go.txt"), cfg.Paths.SummaryFile)
	assert.Equal(t, filepath.Join("/work", "Supernova Lightcurve"), cfg.Paths.PlotBase)
	assert.Empty(t, cfg.Paths.ProfileFile)
	assert.True(t, cfg.Plot.Enabled)
	assert.Equal(t, 640, cfg.Plot.Width)
	assert.Equal(t, 480, cfg.Plot.Height)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LIGHTCURVE_INPUT", "in.csv")
	t.Setenv("LIGHTCURVE_PLOT", "false")
	t.Setenv("LIGHTCURVE_PLOT_WIDTH", "not-a-number")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "in.csv", cfg.Paths.InputFile)
	assert.False(t, cfg.Plot.Enabled)
	assert.Equal(t, 640, cfg.Plot.Width)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
}

func TestLoadRejectsBadDimensions(t *testing.T) {
	t.Setenv("LIGHTCURVE_PLOT_HEIGHT", "-5")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeConfigInvalid))
}
