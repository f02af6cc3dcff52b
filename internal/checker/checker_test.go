package checker_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/spacelint/internal/checker"
	"github.com/leapstack-labs/spacelint/internal/testutil"
	"github.com/leapstack-labs/spacelint/pkg/lint"
	_ "github.com/leapstack-labs/spacelint/pkg/lint/rules" // register rules
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newChecker(t *testing.T, cfg checker.Config) *checker.Checker {
	t.Helper()
	cfg.Logger = testutil.NewTestLogger(t)
	return checker.New(cfg)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.cs", "x = foo[0];\n")
	writeFile(t, dir, "dirty.cs", "x = foo [0];\ny = bar[ 1 ];\n")
	writeFile(t, dir, "sub/nested.cs", "z = foo [ 0 ];\n")
	writeFile(t, dir, "readme.txt", "x = foo [0];\n")

	c := newChecker(t, checker.Config{})
	res, err := c.Run(context.Background(), []string{dir})
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 3, res.Scanned) // .txt is filtered out
	assert.Equal(t, 3, res.Summary.TotalIssues)
	assert.Equal(t, 3, res.Summary.Warnings)
	assert.Zero(t, res.Summary.Errors)
	assert.True(t, res.HasIssues())

	// Only files with findings, sorted by path.
	require.Len(t, res.Files, 2)
	assert.Equal(t, filepath.Join(dir, "dirty.cs"), res.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "sub/nested.cs"), res.Files[1].Path)
	assert.Len(t, res.Files[0].Diagnostics, 2)

	// Within a file, diagnostics follow source order.
	diags := res.Files[0].Diagnostics
	assert.Less(t, diags[0].Pos.Offset, diags[1].Pos.Offset)
}

func TestRunExplicitFileBypassesExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "x = foo [0];\n")

	c := newChecker(t, checker.Config{})
	res, err := c.Run(context.Background(), []string{path})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Scanned)
	assert.Equal(t, 1, res.Summary.TotalIssues)
}

func TestRunCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cs", "x = foo [0];\n")
	writeFile(t, dir, "b.csx", "x = foo [0];\n")

	c := newChecker(t, checker.Config{Extensions: []string{".csx"}})
	res, err := c.Run(context.Background(), []string{dir})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Scanned)
	require.Len(t, res.Files, 1)
	assert.Equal(t, filepath.Join(dir, "b.csx"), res.Files[0].Path)
}

func TestRunMissingPath(t *testing.T) {
	c := newChecker(t, checker.Config{})
	_, err := c.Run(context.Background(), []string{"/nonexistent/path"})
	require.Error(t, err)
}

func TestRunHonorsLintConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dirty.cs", "x = foo [0];\n")

	t.Run("disabled rule", func(t *testing.T) {
		c := newChecker(t, checker.Config{Lint: lint.NewConfig().Disable("SP010")})
		res, err := c.Run(context.Background(), []string{dir})
		require.NoError(t, err)
		assert.False(t, res.HasIssues())
	})

	t.Run("severity override", func(t *testing.T) {
		c := newChecker(t, checker.Config{
			Lint: lint.NewConfig().SetSeverity("SP010", lint.SeverityError),
		})
		res, err := c.Run(context.Background(), []string{dir})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Summary.Errors)
		assert.Zero(t, res.Summary.Warnings)
	})
}

func TestRunManyFilesInParallel(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		writeFile(t, dir, filepath.Join("pkg", string(rune('a'+i))+".cs"), "x = foo [0];\n")
	}

	c := newChecker(t, checker.Config{Jobs: 4})
	res, err := c.Run(context.Background(), []string{dir})
	require.NoError(t, err)

	assert.Equal(t, 20, res.Scanned)
	assert.Equal(t, 20, res.Summary.TotalIssues)
	assert.Len(t, res.Files, 20)
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cs", "x = foo [0];\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newChecker(t, checker.Config{})
	_, err := c.Run(ctx, []string{dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckSource(t *testing.T) {
	c := newChecker(t, checker.Config{})

	diags := c.CheckSource(context.Background(), "x = foo[ 0 ];")
	require.Len(t, diags, 1)
	assert.Equal(t, "SP010", diags[0].RuleID)

	assert.Empty(t, c.CheckSource(context.Background(), "x = foo[0];"))
}
