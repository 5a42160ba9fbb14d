package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2018/internal/config"
)

func ptr[T any](v T) *T { return &v }

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[calibration]
initial = 5
max-iterations = 2000

[nearmatch]
truncate = true
`)
	got, err := config.Load(path)
	require.NoError(t, err)

	want := config.FileConfig{
		Calibration: config.CalibrationConfig{Initial: ptr(5), MaxIterations: ptr(2000)},
		NearMatch:   config.NearMatchConfig{Truncate: ptr(true)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "calibration:\n  max-iterations: 10\n")
	got, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, got.Calibration.MaxIterations)
	assert.Equal(t, 10, *got.Calibration.MaxIterations)
	assert.Nil(t, got.Calibration.Initial, "unset keys stay nil")
	assert.Nil(t, got.NearMatch.Truncate)
}

func TestLoad_Missing(t *testing.T) {
	got, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.FileConfig{}, got)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrEmptyPath)

	_, err = config.Load(writeFile(t, "config.ini", "x=1"))
	assert.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(writeFile(t, "config.toml", "[calibration]\nbogus = 1\n"))
	assert.ErrorIs(t, err, config.ErrUnknownKey)

	_, err = config.Load(writeFile(t, "config.toml", "[calibration\n"))
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "aoc2018", "config.toml"), config.DefaultPath())
}
