// Package checker discovers source files and runs the lint rules over
// them. Files are independent inputs, so they are checked in parallel;
// each file gets its own token stream and the rules never share state.
package checker

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/spacelint/pkg/lexer"
	"github.com/leapstack-labs/spacelint/pkg/lint"
	"github.com/leapstack-labs/spacelint/pkg/token"
)

// Config configures a Checker.
type Config struct {
	// Extensions lists the file extensions to check (default: .cs).
	Extensions []string

	// Jobs limits how many files are checked concurrently.
	// Zero means one worker per CPU.
	Jobs int

	// Lint controls which rules run and with what severity.
	Lint *lint.Config

	// Logger receives progress and skip events. Nil discards.
	Logger *slog.Logger
}

// FileResult holds the diagnostics for a single file.
type FileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

// Summary aggregates diagnostic counts for a run.
type Summary struct {
	TotalIssues int
	Errors      int
	Warnings    int
	Info        int
	Hints       int
}

// Result is the outcome of one check run.
type Result struct {
	RunID    string
	Scanned  int          // files checked
	Files    []FileResult // files with at least one diagnostic, sorted by path
	Summary  Summary
	Duration time.Duration
}

// HasIssues returns true if any diagnostics were produced.
func (r *Result) HasIssues() bool {
	return r.Summary.TotalIssues > 0
}

// Checker runs lint rules over files on disk.
type Checker struct {
	cfg      Config
	analyzer *lint.Analyzer
	log      *slog.Logger
}

// New creates a Checker. Zero-value config fields get defaults.
func New(cfg Config) *Checker {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".cs"}
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{
		cfg:      cfg,
		analyzer: lint.NewAnalyzer(cfg.Lint),
		log:      logger,
	}
}

// Run discovers files under paths and checks them. Files that cannot be
// read are logged and skipped rather than failing the run.
func (c *Checker) Run(ctx context.Context, paths []string) (*Result, error) {
	files, err := c.discover(paths)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	results := make([]FileResult, len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.cfg.Jobs)

	for i, path := range files {
		eg.Go(func() error {
			// Cancellation is honored between files; a single file is
			// always finished or not started.
			if err := egCtx.Err(); err != nil {
				return err
			}

			diags, err := c.checkFile(egCtx, path)
			if err != nil {
				c.log.Warn("skipping file", "path", path, "error", err)
				return nil
			}
			results[i] = FileResult{Path: path, Diagnostics: diags}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:    uuid.NewString(),
		Scanned:  len(files),
		Duration: time.Since(start),
	}
	for _, fr := range results {
		if len(fr.Diagnostics) == 0 {
			continue
		}
		res.Files = append(res.Files, fr)
		res.Summary.TotalIssues += len(fr.Diagnostics)
		for _, d := range fr.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				res.Summary.Errors++
			case lint.SeverityWarning:
				res.Summary.Warnings++
			case lint.SeverityInfo:
				res.Summary.Info++
			case lint.SeverityHint:
				res.Summary.Hints++
			}
		}
	}
	sort.Slice(res.Files, func(i, j int) bool {
		return res.Files[i].Path < res.Files[j].Path
	})

	c.log.Debug("check run finished",
		"run_id", res.RunID,
		"scanned", res.Scanned,
		"issues", res.Summary.TotalIssues,
		"duration", res.Duration,
	)
	return res, nil
}

// checkFile lexes and analyzes a single file.
func (c *Checker) checkFile(ctx context.Context, path string) ([]lint.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ts := lexer.Tokenize(string(src))
	diags := c.analyzer.Analyze(ctx, ts)

	// Diagnostics from different rules interleave; order by source
	// position for stable output.
	sort.Slice(diags, func(i, j int) bool {
		if diags[i].Pos.Offset != diags[j].Pos.Offset {
			return diags[i].Pos.Offset < diags[j].Pos.Offset
		}
		return diags[i].RuleID < diags[j].RuleID
	})
	return diags, nil
}

// CheckSource lexes and analyzes in-memory source. Used by tests and by
// integrations that already hold file contents.
func (c *Checker) CheckSource(ctx context.Context, src string) []lint.Diagnostic {
	ts := lexer.Tokenize(src)
	return c.analyzer.Analyze(ctx, ts)
}

// CheckStream analyzes an already-built token stream.
func (c *Checker) CheckStream(ctx context.Context, ts *token.Stream) []lint.Diagnostic {
	return c.analyzer.Analyze(ctx, ts)
}

// discover expands paths into the sorted list of files to check.
// Directories are walked recursively; explicit file arguments bypass the
// extension filter.
func (c *Checker) discover(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if c.matchesExtension(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (c *Checker) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.cfg.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
