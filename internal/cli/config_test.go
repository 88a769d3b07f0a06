package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dptrace/problem"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
verbose = true
format = "yaml"

[engine]
max_cities = 12
no_improvement_steps = true
`)
	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
	require.Equal(t, formatYAML, cfg.Format)
	require.Equal(t, problem.Settings{MaxCities: 12, NoImprovementSteps: true}, cfg.settings())
}

func TestLoadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := loadConfig(missing, false)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)

	_, err = loadConfig(missing, true)
	require.Error(t, err)

	cfg, err = loadConfig("", false)
	require.NoError(t, err)
	require.Equal(t, formatText, cfg.Format)
}

func TestLoadConfigRejects(t *testing.T) {
	dir := t.TempDir()

	_, err := loadConfig(writeFile(t, dir, "format.toml", `format = "xml"`), true)
	require.ErrorIs(t, err, errBadFormat)

	_, err = loadConfig(writeFile(t, dir, "unknown.toml", `colour = "red"`), true)
	require.ErrorContains(t, err, "unknown key")

	_, err = loadConfig(writeFile(t, dir, "broken.toml", `format = `), true)
	require.Error(t, err)
}
