// Package lint provides the data-driven rule framework for spacelint.
//
// Rules are stateless RuleDef values registered from init() functions in
// the rule packages; all context arrives via the Check function
// parameters. The Analyzer runs the enabled rules over a token stream and
// applies configured severity overrides.
package lint

import (
	"context"
	"strings"

	"github.com/leapstack-labs/spacelint/pkg/token"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a critical issue that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "SP010"
	Name        string    // Human-readable name, e.g., "spacing.open_bracket"
	Group       string    // Category, e.g., "spacing"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a token stream and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
// Checks are total functions: they never error and never panic; absence
// of a finding is communicated by absence of a diagnostic.
type CheckFunc func(ctx context.Context, ts *token.Stream, opts map[string]any) []Diagnostic

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos      token.Position
	EndPos   token.Position // Optional: end of the problematic range
}

// Span returns the source range the diagnostic covers. The span is only
// valid when the producing rule populated EndPos.
func (d Diagnostic) Span() token.Span {
	return token.Span{Start: d.Pos, End: d.EndPos}
}
