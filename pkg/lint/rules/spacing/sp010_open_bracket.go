package spacing

import (
	"context"

	"github.com/leapstack-labs/spacelint/pkg/lint"
	"github.com/leapstack-labs/spacelint/pkg/spacing"
	"github.com/leapstack-labs/spacelint/pkg/token"
)

func init() {
	// Check is assigned here rather than in the literal: the check
	// function reads the rule's ID and severity back, which would
	// otherwise be an initialization cycle.
	OpenBracketSpacing.Check = checkOpenBracketSpacing
	lint.Register(OpenBracketSpacing)
}

// OpenBracketSpacing flags opening square brackets that are preceded or
// followed by whitespace.
//
// Brackets that open an attribute list are skipped: attribute placement is
// owned by the attribute rules. A bracket directly after the new keyword
// is never reported for the preceding side, because the space after new is
// governed by the keyword spacing rule and must not be double-reported.
// Set the ignore_after_new option to false to report that case too.
var OpenBracketSpacing = lint.RuleDef{
	ID:          "SP010",
	Name:        "spacing.open_bracket",
	Group:       "spacing",
	Description: "Opening square brackets must not be preceded or followed by a space.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"ignore_after_new"},
	Rationale: "Spaces around an opening square bracket separate the bracket from " +
		"the expression it indexes and make element accesses and array types " +
		"harder to read. Enforcing tight brackets keeps indexing expressions uniform.",
	BadExample:  "var x = values [0];\nvar y = values[ 0];",
	GoodExample: "var x = values[0];",
	Fix:         "Remove the whitespace before and after the opening bracket.",
}

func checkOpenBracketSpacing(ctx context.Context, ts *token.Stream, opts map[string]any) []lint.Diagnostic {
	ignoreAfterNew := lint.GetBoolOption(opts, "ignore_after_new", true)

	violations := spacing.Scan(ctx, ts, spacing.Options{
		Match: func(t *token.Token) bool {
			// Missing tokens come from error recovery; reporting them
			// would only add noise on already-broken code.
			return t.Kind == token.LBRACKET && !t.Missing && t.Parent != token.ParentAttributeList
		},
		SuppressPreceding: func(_, prev *token.Token, precededBySpace bool) bool {
			return ignoreAfterNew && precededBySpace && prev != nil && prev.Kind == token.NEW
		},
	})

	diags := make([]lint.Diagnostic, 0, len(violations))
	for _, v := range violations {
		diags = append(diags, lint.Diagnostic{
			RuleID:   OpenBracketSpacing.ID,
			Severity: OpenBracketSpacing.Severity,
			Message:  bracketMessage(v.Kind),
			Pos:      v.Pos,
			EndPos:   v.End,
		})
	}
	return diags
}

func bracketMessage(kind spacing.ViolationKind) string {
	switch kind {
	case spacing.NeitherPrecededNorFollowed:
		return "opening square bracket must neither be preceded nor followed by a space"
	case spacing.NotPreceded:
		return "opening square bracket must not be preceded by a space"
	case spacing.NotFollowed:
		return "opening square bracket must not be followed by a space"
	default:
		return "opening square bracket is spaced incorrectly"
	}
}
