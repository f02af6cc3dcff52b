package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/spacelint/internal/checker"
	"github.com/leapstack-labs/spacelint/internal/cli/config"
	"github.com/leapstack-labs/spacelint/internal/cli/output"
	"github.com/leapstack-labs/spacelint/pkg/lint"
	"github.com/leapstack-labs/spacelint/pkg/token"
)

// execute runs a command with captured stdout. Errors and usage are
// silenced the way the root command silences them, so stdout stays
// machine-parseable.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCheckCommandClean(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "clean.cs", "x = foo[0];\n")

	out, err := execute(t, NewCheckCommand(), dir, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "No spacing issues found in 1 files")
}

func TestCheckCommandReportsIssues(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "dirty.cs", "x = foo [0];\n")

	out, err := execute(t, NewCheckCommand(), dir, "--format", "text")
	require.EqualError(t, err, "spacing issues found")
	assert.Contains(t, out, "SP010")
	assert.Contains(t, out, "must not be preceded by a space")
	assert.Contains(t, out, "Summary: 1 issues, 1 warnings in 1 of 1 files")
}

func TestCheckCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "dirty.cs", "x = foo [0];\ny = bar[ 1 ];\n")

	out, err := execute(t, NewCheckCommand(), dir, "--format", "json")
	require.EqualError(t, err, "spacing issues found")

	var payload output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	assert.NotEmpty(t, payload.RunID)
	assert.Equal(t, 1, payload.Summary.FilesScanned)
	assert.Equal(t, 2, payload.Summary.TotalIssues)
	assert.Equal(t, 2, payload.Summary.Warnings)
	require.Len(t, payload.Files, 1)
	require.Len(t, payload.Files[0].Diagnostics, 2)
	first := payload.Files[0].Diagnostics[0]
	assert.Equal(t, "SP010", first.RuleID)
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 9, first.Column)
	assert.Equal(t, 1, first.EndLine)
	assert.Equal(t, 10, first.EndColumn)
}

func TestCheckCommandSeverityThreshold(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "dirty.cs", "x = foo [0];\n")

	// SP010 reports warnings; an error-only run sees nothing.
	out, err := execute(t, NewCheckCommand(), dir, "--format", "json", "--severity", "error")
	require.NoError(t, err)

	var payload output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Zero(t, payload.Summary.TotalIssues)
	assert.Empty(t, payload.Files)
}

func TestCheckCommandDisableRule(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "dirty.cs", "x = foo [0];\n")

	out, err := execute(t, NewCheckCommand(), dir, "--format", "text", "--disable", "SP010")
	require.NoError(t, err)
	assert.Contains(t, out, "No spacing issues found")
}

func TestCheckCommandMissingPath(t *testing.T) {
	_, err := execute(t, NewCheckCommand(), "/nonexistent/path", "--format", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check failed")
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("nil config enables everything", func(t *testing.T) {
		lintCfg := buildLintConfig(nil, nil, nil)
		assert.False(t, lintCfg.IsDisabled("SP010"))
	})

	t.Run("project config applies", func(t *testing.T) {
		cfg := &config.Config{
			Lint: &config.LintConfig{
				Disabled: []string{"SP010"},
				Severity: map[string]string{"SP020": "error", "SP030": "bogus"},
				Rules:    map[string]map[string]any{"SP040": {"max": 2}},
			},
		}
		lintCfg := buildLintConfig(cfg, nil, nil)

		assert.True(t, lintCfg.IsDisabled("SP010"))
		assert.Equal(t, lint.SeverityError, lintCfg.GetSeverity("SP020", lint.SeverityWarning))
		// Unparseable severity names are ignored.
		assert.Equal(t, lint.SeverityWarning, lintCfg.GetSeverity("SP030", lint.SeverityWarning))
		assert.Equal(t, map[string]any{"max": 2}, lintCfg.GetRuleOptions("SP040"))
	})

	t.Run("cli disable adds to project config", func(t *testing.T) {
		lintCfg := buildLintConfig(nil, []string{" SP010 "}, nil)
		assert.True(t, lintCfg.IsDisabled("SP010"))
	})

	t.Run("rule whitelist disables the rest", func(t *testing.T) {
		lint.Register(lint.RuleDef{
			ID:    "ZZ990",
			Name:  "test.noop",
			Group: "test",
			Check: func(context.Context, *token.Stream, map[string]any) []lint.Diagnostic {
				return nil
			},
		})

		lintCfg := buildLintConfig(nil, nil, []string{"SP010"})
		assert.False(t, lintCfg.IsDisabled("SP010"))
		assert.True(t, lintCfg.IsDisabled("ZZ990"))
	})
}

func TestFilterResult(t *testing.T) {
	res := &checker.Result{
		RunID:   "test-run",
		Scanned: 2,
		Files: []checker.FileResult{
			{
				Path: "a.cs",
				Diagnostics: []lint.Diagnostic{
					{RuleID: "SP010", Severity: lint.SeverityError},
					{RuleID: "SP010", Severity: lint.SeverityWarning},
					{RuleID: "SP010", Severity: lint.SeverityHint},
				},
			},
			{
				Path: "b.cs",
				Diagnostics: []lint.Diagnostic{
					{RuleID: "SP010", Severity: lint.SeverityInfo},
				},
			},
		},
		Summary: checker.Summary{TotalIssues: 4, Errors: 1, Warnings: 1, Info: 1, Hints: 1},
	}

	filtered := filterResult(res, "warning")

	assert.Equal(t, "test-run", filtered.RunID)
	assert.Equal(t, 2, filtered.Scanned)
	require.Len(t, filtered.Files, 1)
	assert.Equal(t, "a.cs", filtered.Files[0].Path)
	assert.Len(t, filtered.Files[0].Diagnostics, 2)
	assert.Equal(t, 2, filtered.Summary.TotalIssues)
	assert.Equal(t, 1, filtered.Summary.Errors)
	assert.Equal(t, 1, filtered.Summary.Warnings)
	assert.Zero(t, filtered.Summary.Hints)

	t.Run("unknown threshold keeps everything", func(t *testing.T) {
		filtered := filterResult(res, "bogus")
		assert.Equal(t, 4, filtered.Summary.TotalIssues)
	})
}
