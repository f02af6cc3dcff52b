package lint

import (
	"context"
	"sort"

	"github.com/leapstack-labs/spacelint/pkg/token"
)

// Analyzer runs lint rules against a token stream.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all registered, enabled rules against the stream.
// Rules run in ID order, so diagnostics are grouped per rule
// deterministically; within a rule they follow token order.
func (a *Analyzer) Analyze(ctx context.Context, ts *token.Stream) []Diagnostic {
	if ts == nil {
		return nil
	}

	rules := GetAll()
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })

	var diagnostics []Diagnostic
	for _, rule := range rules {
		// Skip disabled rules
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		// Cancellation between rules; a rule checks again between tokens.
		if ctx.Err() != nil {
			return diagnostics
		}

		opts := a.config.GetRuleOptions(rule.ID)
		diags := rule.Check(ctx, ts, opts)

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}

		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics
}

// AnalyzeAll runs analysis on multiple streams.
func (a *Analyzer) AnalyzeAll(ctx context.Context, streams []*token.Stream) []Diagnostic {
	var diagnostics []Diagnostic
	for _, ts := range streams {
		diagnostics = append(diagnostics, a.Analyze(ctx, ts)...)
	}
	return diagnostics
}
