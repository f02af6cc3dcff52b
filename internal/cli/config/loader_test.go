package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/spacelint/internal/cli/config"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "spacelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config.ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"."}, cfg.Paths)
	assert.Equal(t, []string{".cs"}, cfg.Extensions)
	assert.Zero(t, cfg.Jobs)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "auto", cfg.Output)
	assert.Nil(t, cfg.Lint)
	assert.Empty(t, config.GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	config.ResetConfig()
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `
paths:
  - src
extensions:
  - .cs
  - .csx
jobs: 2
output: json
lint:
  disabled:
    - SP010
  severity:
    SP010: error
  rules:
    SP010:
      strict: true
`)
	t.Chdir(dir)

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src"}, cfg.Paths)
	assert.Equal(t, []string{".cs", ".csx"}, cfg.Extensions)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, "json", cfg.Output)

	require.NotNil(t, cfg.Lint)
	assert.Equal(t, []string{"SP010"}, cfg.Lint.Disabled)
	assert.Equal(t, "error", cfg.Lint.Severity["SP010"])
	assert.Equal(t, true, cfg.Lint.Rules["SP010"]["strict"])

	assert.Equal(t, path, config.GetConfigFileUsed())
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Same(t, cfg, config.GetCurrentConfig())
}

func TestLoadConfigExplicitFile(t *testing.T) {
	config.ResetConfig()
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "output: text\n")
	t.Chdir(t.TempDir())

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, path, config.GetConfigFileUsed())
}

func TestLoadConfigUpwardSearch(t *testing.T) {
	config.ResetConfig()
	root := t.TempDir()
	writeConfigFile(t, root, "jobs: 3\n")
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	t.Chdir(sub)

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, root, cfg.ProjectRoot)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	config.ResetConfig()
	dir := t.TempDir()
	writeConfigFile(t, dir, "output: text\n")
	t.Chdir(dir)
	t.Setenv("SPACELINT_OUTPUT", "json")

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	config.ResetConfig()
	t.Chdir(t.TempDir())
	t.Setenv("SPACELINT_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "auto", "")
	flags.Int("jobs", 0, "")
	require.NoError(t, flags.Set("output", "text"))

	cfg, err := config.LoadConfig("", flags)
	require.NoError(t, err)

	// Changed flag wins; unchanged flag does not clobber defaults.
	assert.Equal(t, "text", cfg.Output)
	assert.Zero(t, cfg.Jobs)
}

func TestLoadConfigBadYAML(t *testing.T) {
	config.ResetConfig()
	dir := t.TempDir()
	writeConfigFile(t, dir, "output: [unclosed\n")
	t.Chdir(dir)

	_, err := config.LoadConfig("", nil)
	require.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	t.Run("falls back to discard", func(t *testing.T) {
		log := config.GetLogger(context.Background())
		require.NotNil(t, log)
	})

	t.Run("returns stored logger", func(t *testing.T) {
		want := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := context.WithValue(context.Background(), config.LoggerKey(), want)
		assert.Same(t, want, config.GetLogger(ctx))
	})
}
