package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lightcurve/app"
	"lightcurve/internal/config"
	"lightcurve/internal/errors"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.HasCode(err, errors.CodeConfigInvalid))
}

func TestContainerRunsPipelineFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Data"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Data", "data.csv"),
		[]byte("time,flux,e_flux,band\n1,2,0.1,V\n"), 0644))

	t.Setenv("LIGHTCURVE_BASE_DIR", dir)
	t.Setenv("LOG_LEVEL", "ERROR")
	cfg, err := config.Load()
	require.NoError(t, err)

	c, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 640, c.Renderer.Width)

	report, err := c.Pipeline.Run(context.Background(), app.OptionsFromConfig(cfg))
	require.NoError(t, err)
	assert.Len(t, report.Outputs, 3)
	assert.FileExists(t, filepath.Join(dir, "output_go.txt"))
	assert.FileExists(t, filepath.Join(dir, "Supernova Lightcurve.svg"))
	assert.FileExists(t, filepath.Join(dir, "Supernova Lightcurve.png"))
}

func TestReadersUseConfiguredLogLevel(t *testing.T) {
	color.NoColor = true
	input := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(input, []byte("a\n1\n"), 0644))

	// the container's logger writes to whatever os.Stderr is at New
	stderr, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = stderr
	c, err := New(&config.Config{Log: config.LogConfig{Level: "DEBUG"}})
	os.Stderr = orig
	require.NoError(t, err)

	_, err = c.NewReader(input).ReadTable(context.Background())
	require.NoError(t, err)
	require.NoError(t, stderr.Close())

	logged, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)
	assert.Contains(t, string(logged), "[DEBUG] [CSVReader] "+input)
}
