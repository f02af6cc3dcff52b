package token

// TriviaKind distinguishes the kinds of non-semantic source text.
type TriviaKind int

// Trivia kinds.
const (
	TriviaWhitespace TriviaKind = iota // spaces and tabs
	TriviaEndOfLine                    // \n or \r\n
	TriviaComment                      // // line or /* block */ comment
	TriviaOther                        // anything else the lexer skipped
)

// String returns the string representation of the trivia kind.
func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "whitespace"
	case TriviaEndOfLine:
		return "end_of_line"
	case TriviaComment:
		return "comment"
	case TriviaOther:
		return "other"
	default:
		return "unknown"
	}
}

// Trivia is a piece of non-semantic source text attached to a token.
type Trivia struct {
	Kind TriviaKind
	Text string
	Pos  Position
}

// IsEndOfLine returns true if this trivia is a line break.
func (t Trivia) IsEndOfLine() bool { return t.Kind == TriviaEndOfLine }

// ContainsEndOfLine reports whether any trivia in the sequence is a line break.
func ContainsEndOfLine(trivia []Trivia) bool {
	for _, tr := range trivia {
		if tr.Kind == TriviaEndOfLine {
			return true
		}
	}
	return false
}
