package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 12.0, c.Tolerance)
	assert.Equal(t, 1.0, c.Alpha)
	assert.Equal(t, 1.0, c.Beta)
	assert.Zero(t, c.Gamma)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.Empty(t, c.MetricsFile)
	assert.Len(t, c.ComplexityOptions(), 2)
}

func TestLoad_File(t *testing.T) {
	c, err := config.Load("testdata/lvdesign.yaml")
	require.NoError(t, err)

	assert.Equal(t, "data/bricks.yaml", c.Catalog)
	assert.Equal(t, "data/palette.xml", c.Palette)
	assert.Equal(t, 8.0, c.Tolerance)
	assert.Equal(t, 0.5, c.Gamma)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "out/lvdesign.prom", c.MetricsFile)
	assert.Len(t, c.ComplexityOptions(), 3)
	assert.Len(t, c.RequirementOptions(), 1)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("LVDESIGN_WORKERS", "9")
	t.Setenv("LVDESIGN_LOG_LEVEL", "warn")

	c, err := config.Load("testdata/lvdesign.yaml")
	require.NoError(t, err)
	assert.Equal(t, 9, c.Workers)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("testdata/invalid.yaml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load("testdata/missing.yaml")
	assert.Error(t, err)

	t.Setenv("LVDESIGN_WORKERS", "0")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
