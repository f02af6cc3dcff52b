// Package spacing implements the token-trivia spacing engine shared by the
// single-token spacing rules.
//
// The engine decides, from a token's position in its line and the
// whitespace trivia around it, whether the token is illegally preceded or
// followed by a space. Rules plug in a candidate filter and an optional
// suppression hook and receive a stream of violations in token order.
package spacing

import (
	"context"

	"github.com/leapstack-labs/spacelint/pkg/token"
)

// Facts captures the spacing-relevant classification of a single token.
type Facts struct {
	PrecededBySpace bool
	FirstInLine     bool
	FollowedBySpace bool
	LastInLine      bool
}

// Classify derives the spacing facts for a token. Pure function of the
// token and its immediate predecessor; a missing predecessor degrades to
// "no space information" rather than failing.
//
// A token counts as first in line when it carries any leading trivia or
// starts at column 1. The two are deliberately conflated: a token preceded
// only by a same-line comment is also treated as first in line and is
// exempt from the preceding-space check.
func Classify(tok *token.Token) Facts {
	var f Facts

	f.FirstInLine = tok.HasLeading() || tok.Pos.Column == 1

	if f.FirstInLine {
		// Start of line counts as "has a space before it" so the
		// not-preceded check never fires there.
		f.PrecededBySpace = true
	} else if prev := tok.Prev(); prev != nil {
		// The trailing trivia of the prior token decides, not the
		// leading trivia of this one.
		f.PrecededBySpace = prev.HasTrailing()
	}

	f.FollowedBySpace = tok.HasTrailing()
	f.LastInLine = f.FollowedBySpace && token.ContainsEndOfLine(tok.Trailing)

	return f
}

// ViolationKind identifies which spacing requirement a token violated.
type ViolationKind int

const (
	// NeitherPrecededNorFollowed reports a token with illegal spaces on
	// both sides.
	NeitherPrecededNorFollowed ViolationKind = iota
	// NotPreceded reports an illegal space before the token.
	NotPreceded
	// NotFollowed reports an illegal space after the token.
	NotFollowed
)

// String returns the string representation of the violation kind.
func (k ViolationKind) String() string {
	switch k {
	case NeitherPrecededNorFollowed:
		return "neither_preceded_nor_followed"
	case NotPreceded:
		return "not_preceded"
	case NotFollowed:
		return "not_followed"
	default:
		return "unknown"
	}
}

// Violation is a single spacing finding, anchored at the offending token.
// End is the position just past the token, so [Pos, End) covers its text.
type Violation struct {
	Kind ViolationKind
	Pos  token.Position
	End  token.Position
}

// Evaluate selects at most one violation for a token from its facts.
//
// The branches form a priority list and their order is load-bearing: a
// token with an illegal preceding space is always reported on the
// preceding side (folded into NeitherPrecededNorFollowed when both sides
// are wrong), and the following side is reported only when the preceding
// side was clean. Reordering the branches would change which single
// violation wins when several conditions hold at once.
func Evaluate(f Facts, ignorePreceding bool) (ViolationKind, bool) {
	switch {
	case !f.FirstInLine && f.PrecededBySpace && !ignorePreceding && !f.LastInLine && f.FollowedBySpace:
		return NeitherPrecededNorFollowed, true
	case !f.FirstInLine && f.PrecededBySpace && !ignorePreceding:
		return NotPreceded, true
	case !f.LastInLine && f.FollowedBySpace:
		return NotFollowed, true
	}
	return 0, false
}

// Options configures a scan over a token stream.
type Options struct {
	// Match selects candidate tokens. Tokens failing the predicate are
	// skipped without classification.
	Match func(*token.Token) bool

	// SuppressPreceding, when non-nil, is consulted for candidates whose
	// preceding side would otherwise be reported. Returning true cedes
	// the finding to a more specific rule that owns that case. Only the
	// preceding side has a suppression hook.
	SuppressPreceding func(tok, prev *token.Token, precededBySpace bool) bool
}

// Scan makes a single linear pass over the stream, classifying each
// candidate token and collecting violations in token order. Cancellation
// is checked between tokens, never mid-evaluation; on cancellation the
// violations found so far are returned.
func Scan(ctx context.Context, ts *token.Stream, opts Options) []Violation {
	var violations []Violation

	for _, tok := range ts.Tokens() {
		if ctx.Err() != nil {
			return violations
		}
		if opts.Match != nil && !opts.Match(tok) {
			continue
		}

		f := Classify(tok)

		ignorePreceding := false
		if opts.SuppressPreceding != nil {
			ignorePreceding = opts.SuppressPreceding(tok, tok.Prev(), f.PrecededBySpace)
		}

		if kind, ok := Evaluate(f, ignorePreceding); ok {
			violations = append(violations, Violation{Kind: kind, Pos: tok.Pos, End: tokenEnd(tok)})
		}
	}

	return violations
}

// tokenEnd returns the position just past a token's literal text.
// Token literals never contain line breaks, so only the column and
// offset move.
func tokenEnd(tok *token.Token) token.Position {
	return token.Position{
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column + len(tok.Literal),
		Offset: tok.Pos.Offset + len(tok.Literal),
	}
}
