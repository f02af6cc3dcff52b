// Package token defines the lexical token and trivia model for C-family
// source files.
//
// Tokens are produced once per file by the lexer and are read-only after
// that: rules only ever inspect them. Non-semantic source text (spaces,
// line breaks, comments) is attached to tokens as trivia rather than
// discarded, because the spacing rules reason about it.
package token

import "fmt"

// Kind represents the type of a lexical token.
type Kind int32

const (
	// Special tokens
	EOF Kind = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 0x1f
	STRING // "hello"
	CHAR   // 'c'

	// Operators and punctuation
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	ASSIGN   // =
	EQ       // ==
	NE       // !=
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	AND      // &&
	OR       // ||
	NOT      // !
	AMP      // &
	PIPE     // |
	DOT      // .
	COMMA    // ,
	COLON    // :
	SEMI     // ;
	QUESTION // ?
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }

	// Keywords
	BASE
	CLASS
	ELSE
	FOR
	IF
	NEW
	RETURN
	STRUCT
	THIS
	USING
	VAR
	VOID
	WHILE

	maxKind
)

// String returns a human-readable representation of the token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", k)
}

// kindNames maps token kinds to their string representations.
var kindNames = map[Kind]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",
	CHAR:   "CHAR",

	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	ASSIGN:   "=",
	EQ:       "==",
	NE:       "!=",
	LT:       "<",
	GT:       ">",
	LE:       "<=",
	GE:       ">=",
	AND:      "&&",
	OR:       "||",
	NOT:      "!",
	AMP:      "&",
	PIPE:     "|",
	DOT:      ".",
	COMMA:    ",",
	COLON:    ":",
	SEMI:     ";",
	QUESTION: "?",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
	LBRACE:   "{",
	RBRACE:   "}",

	BASE:   "base",
	CLASS:  "class",
	ELSE:   "else",
	FOR:    "for",
	IF:     "if",
	NEW:    "new",
	RETURN: "return",
	STRUCT: "struct",
	THIS:   "this",
	USING:  "using",
	VAR:    "var",
	VOID:   "void",
	WHILE:  "while",
}

// keywords maps keyword strings to their token kinds.
var keywords = map[string]Kind{
	"base":   BASE,
	"class":  CLASS,
	"else":   ELSE,
	"for":    FOR,
	"if":     IF,
	"new":    NEW,
	"return": RETURN,
	"struct": STRUCT,
	"this":   THIS,
	"using":  USING,
	"var":    VAR,
	"void":   VOID,
	"while":  WHILE,
}

// LookupIdent returns the token kind for the given identifier.
// If the identifier is a keyword, the keyword kind is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

// IsKeyword returns true if the kind is a keyword.
func IsKeyword(k Kind) bool {
	return k >= BASE && k <= WHILE
}

// IsOperator returns true if the kind is an operator or punctuation.
func IsOperator(k Kind) bool {
	return k >= PLUS && k <= RBRACE
}

// ParentKind classifies the syntactic construct a bracket token belongs to.
// The lexer assigns it from token-level context; rules use it to stay out of
// constructs owned by other rules (attribute lists in particular).
type ParentKind int

const (
	// ParentUnknown means no construct could be determined.
	ParentUnknown ParentKind = iota
	// ParentAttributeList marks brackets that open or close an attribute list.
	ParentAttributeList
	// ParentElementAccess marks brackets used for indexing (a[i]).
	ParentElementAccess
	// ParentArrayType marks brackets that are part of an array type or creation.
	ParentArrayType
)

// String returns the string representation of the parent kind.
func (p ParentKind) String() string {
	switch p {
	case ParentUnknown:
		return "unknown"
	case ParentAttributeList:
		return "attribute_list"
	case ParentElementAccess:
		return "element_access"
	case ParentArrayType:
		return "array_type"
	default:
		return "unknown"
	}
}

// Token represents a lexical token with position and attached trivia.
// Tokens are immutable once the stream is built; neighbor links are
// lookup-only and carry no ownership.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Position

	// Leading holds trivia between the previous token's trailing trivia
	// and this token. Trailing holds trivia after this token up to and
	// including the first end-of-line.
	Leading  []Trivia
	Trailing []Trivia

	// Parent is the syntactic construct this token belongs to.
	// Only meaningful for bracket tokens.
	Parent ParentKind

	// Missing marks a placeholder token synthesized during error
	// recovery. Missing tokens are excluded from rule evaluation.
	Missing bool

	prev, next *Token
}

// Prev returns the preceding token in the stream, or nil at the start.
func (t *Token) Prev() *Token { return t.prev }

// Next returns the following token in the stream, or nil at the end.
func (t *Token) Next() *Token { return t.next }

// HasLeading returns true if the token has any leading trivia.
func (t *Token) HasLeading() bool { return len(t.Leading) > 0 }

// HasTrailing returns true if the token has any trailing trivia.
func (t *Token) HasTrailing() bool { return len(t.Trailing) > 0 }
