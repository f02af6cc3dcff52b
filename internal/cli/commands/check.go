package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/spacelint/internal/checker"
	"github.com/leapstack-labs/spacelint/internal/cli/output"
	"github.com/leapstack-labs/spacelint/pkg/lint"
	_ "github.com/leapstack-labs/spacelint/pkg/lint/rules" // register rules
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Paths    []string // Files or directories to check
	Format   string   // Output format: text, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Watch    bool     // Re-check on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check source files for spacing violations",
		Long: `Analyze source files for whitespace placement issues.

Runs the registered spacing rules against the given files or directories
and reports any violations found. Rules can be configured in
spacelint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Plain text
  - JSON: Machine-readable format`,
		Example: `  # Check the current directory
  spacelint check

  # Check specific paths
  spacelint check ./src ./tests/Fixtures.cs

  # Output as JSON
  spacelint check --format json

  # Disable specific rules
  spacelint check --disable SP010

  # Only report errors (ignore warnings/hints)
  spacelint check --severity error

  # Re-check on every file change
  spacelint check --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Paths = args
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check when files change")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = cfg.Paths
	}

	lintCfg := buildLintConfig(cfg, opts.Disable, opts.Rules)
	chk := newChecker(cfg, lintCfg, cmdCtx.Logger)

	if opts.Watch {
		return chk.Watch(cmd.Context(), paths, func(res *checker.Result) {
			renderCheckResult(r, filterResult(res, opts.Severity))
		})
	}

	res, err := chk.Run(cmd.Context(), paths)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	res = filterResult(res, opts.Severity)
	hasIssues := renderCheckResult(r, res)

	// Exit with code 1 if issues found
	if hasIssues {
		return fmt.Errorf("spacing issues found")
	}
	return nil
}

// filterResult drops diagnostics below the severity threshold and
// recomputes the summary.
func filterResult(res *checker.Result, severityThreshold string) *checker.Result {
	threshold, ok := lint.ParseSeverity(severityThreshold)
	if !ok {
		threshold = lint.SeverityHint
	}

	filtered := &checker.Result{
		RunID:    res.RunID,
		Scanned:  res.Scanned,
		Duration: res.Duration,
	}
	for _, fr := range res.Files {
		var diags []lint.Diagnostic
		for _, d := range fr.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		if len(diags) == 0 {
			continue
		}
		filtered.Files = append(filtered.Files, checker.FileResult{
			Path:        fr.Path,
			Diagnostics: diags,
		})
		filtered.Summary.TotalIssues += len(diags)
		for _, d := range diags {
			switch d.Severity {
			case lint.SeverityError:
				filtered.Summary.Errors++
			case lint.SeverityWarning:
				filtered.Summary.Warnings++
			case lint.SeverityInfo:
				filtered.Summary.Info++
			case lint.SeverityHint:
				filtered.Summary.Hints++
			}
		}
	}
	return filtered
}

func renderCheckResult(r *output.Renderer, res *checker.Result) bool {
	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.CheckOutput{
			RunID: res.RunID,
			Summary: output.CheckSummary{
				FilesScanned: res.Scanned,
				TotalIssues:  res.Summary.TotalIssues,
				Errors:       res.Summary.Errors,
				Warnings:     res.Summary.Warnings,
				Info:         res.Summary.Info,
				Hints:        res.Summary.Hints,
			},
		}
		for _, fr := range res.Files {
			fileResult := output.CheckFileResult{Path: fr.Path}
			for _, d := range fr.Diagnostics {
				diag := output.CheckDiagnostic{
					RuleID:   d.RuleID,
					Severity: d.Severity.String(),
					Message:  d.Message,
					Line:     d.Pos.Line,
					Column:   d.Pos.Column,
				}
				if span := d.Span(); span.IsValid() {
					diag.EndLine = span.End.Line
					diag.EndColumn = span.End.Column
				}
				fileResult.Diagnostics = append(fileResult.Diagnostics, diag)
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return res.HasIssues()
	}

	if !res.HasIssues() {
		r.Success(fmt.Sprintf("No spacing issues found in %d files", res.Scanned))
		return false
	}

	for _, fr := range res.Files {
		r.Println(r.Styles().FilePath.Render(fr.Path))
		for _, d := range fr.Diagnostics {
			loc := d.Pos.String()
			if !d.Pos.IsValid() {
				loc = "-"
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityStyle(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	// Print summary
	summaryParts := []string{fmt.Sprintf("%d issues", res.Summary.TotalIssues)}
	if res.Summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", res.Summary.Errors))
	}
	if res.Summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", res.Summary.Warnings))
	}
	if res.Summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", res.Summary.Info))
	}
	if res.Summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", res.Summary.Hints))
	}
	r.Printf("Summary: %s in %d of %d files\n",
		strings.Join(summaryParts, ", "), len(res.Files), res.Scanned)

	return true
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
