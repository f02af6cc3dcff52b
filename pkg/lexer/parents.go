package lexer

import "github.com/leapstack-labs/spacelint/pkg/token"

// classifyParents assigns a ParentKind to bracket tokens from token-level
// context. spacelint has no syntax tree, so the classification is a
// positional heuristic: attribute lists open at declaration boundaries,
// element accesses follow a value-producing token, and everything else is
// treated as part of an array type. Closing brackets inherit the parent of
// the matching opener.
func classifyParents(toks []*token.Token) {
	var open []token.ParentKind
	for i, t := range toks {
		switch t.Kind {
		case token.LBRACKET:
			t.Parent = openBracketParent(toks, i)
			open = append(open, t.Parent)
		case token.RBRACKET:
			if len(open) > 0 {
				t.Parent = open[len(open)-1]
				open = open[:len(open)-1]
			}
		}
	}
}

func openBracketParent(toks []*token.Token, i int) token.ParentKind {
	if i == 0 {
		// A bracket with nothing before it can only start an attribute.
		return token.ParentAttributeList
	}
	prev := toks[i-1]
	switch prev.Kind {
	case token.SEMI, token.LBRACE, token.RBRACE:
		return token.ParentAttributeList
	case token.RBRACKET:
		// Stacked attributes: [One][Two] void M() { ... }
		if prev.Parent == token.ParentAttributeList {
			return token.ParentAttributeList
		}
		return token.ParentElementAccess
	case token.IDENT, token.THIS, token.BASE, token.RPAREN, token.STRING:
		return token.ParentElementAccess
	default:
		return token.ParentArrayType
	}
}
