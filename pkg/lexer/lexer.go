// Package lexer tokenizes C-family source text into a token.Stream with
// attached trivia.
//
// Trivia attachment follows the usual one-pass convention: a token owns
// the trivia after it up to and including the first end-of-line; anything
// beyond that becomes leading trivia of the next token. Trivia between two
// tokens on the same line therefore always lands on the trailing side of
// the earlier token.
package lexer

import (
	"github.com/leapstack-labs/spacelint/pkg/token"
)

// Lexer tokenizes source input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// Tokenize lexes the input and returns the finished token stream, with
// trivia attached and bracket parents classified.
func Tokenize(input string) *token.Stream {
	l := New(input)

	var toks []*token.Token
	pending := l.scanTriviaRun()

	for {
		tok := l.scanToken()
		tok.Leading = pending

		run := l.scanTriviaRun()
		tok.Trailing, pending = splitTrailing(run)

		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	classifyParents(toks)
	return token.NewStream(toks)
}

// splitTrailing splits a trivia run at the first end-of-line. The leading
// part, including the end-of-line itself, belongs to the previous token;
// the rest carries over to the next one.
func splitTrailing(run []token.Trivia) (trailing, rest []token.Trivia) {
	for i, tr := range run {
		if tr.Kind == token.TriviaEndOfLine {
			return run[:i+1], run[i+1:]
		}
	}
	return run, nil
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	// A lone \r is a line break too; in \r\n only the \n counts so the
	// pair does not advance the line twice.
	if l.ch == '\n' || (l.ch == '\r' && l.peekChar() != '\n') {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// scanTriviaRun consumes consecutive whitespace, line breaks, and comments
// and returns them as trivia pieces in source order.
func (l *Lexer) scanTriviaRun() []token.Trivia {
	var run []token.Trivia
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t':
			run = append(run, l.scanWhitespace())
		case l.ch == '\n' || l.ch == '\r':
			run = append(run, l.scanEndOfLine())
		case l.ch == '/' && (l.peekChar() == '/' || l.peekChar() == '*'):
			run = append(run, l.scanComment())
		default:
			return run
		}
	}
}

func (l *Lexer) scanWhitespace() token.Trivia {
	pos := l.currentPos()
	start := l.pos
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	return token.Trivia{Kind: token.TriviaWhitespace, Text: l.input[start:l.pos], Pos: pos}
}

func (l *Lexer) scanEndOfLine() token.Trivia {
	pos := l.currentPos()
	start := l.pos
	if l.ch == '\r' {
		l.readChar()
	}
	if l.ch == '\n' {
		l.readChar()
	}
	return token.Trivia{Kind: token.TriviaEndOfLine, Text: l.input[start:l.pos], Pos: pos}
}

func (l *Lexer) scanComment() token.Trivia {
	pos := l.currentPos()
	start := l.pos

	if l.peekChar() == '/' {
		// Line comment: up to but not including the line break.
		for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
			l.readChar()
		}
		return token.Trivia{Kind: token.TriviaComment, Text: l.input[start:l.pos], Pos: pos}
	}

	// Block comment: through the closing */, or to EOF when unterminated.
	l.readChar() // consume /
	l.readChar() // consume *
	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	return token.Trivia{Kind: token.TriviaComment, Text: l.input[start:l.pos], Pos: pos}
}

// scanToken returns the next token. The caller has already consumed any
// trivia, so the lexer is positioned on a token start (or EOF).
func (l *Lexer) scanToken() *token.Token {
	pos := l.currentPos()

	var tok *token.Token
	switch l.ch {
	case 0:
		return &token.Token{Kind: token.EOF, Literal: "", Pos: pos}
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		tok = l.newToken(token.MINUS, "-")
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '%':
		tok = l.newToken(token.PERCENT, "%")
	case '=':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.EQ, "==")
		} else {
			tok = l.newToken(token.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.NE, "!=")
		} else {
			tok = l.newToken(token.NOT, "!")
		}
	case '<':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.LE, "<=")
		} else {
			tok = l.newToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.newTwoCharToken(token.GE, ">=")
		} else {
			tok = l.newToken(token.GT, ">")
		}
	case '&':
		if l.peekChar() == '&' {
			tok = l.newTwoCharToken(token.AND, "&&")
		} else {
			tok = l.newToken(token.AMP, "&")
		}
	case '|':
		if l.peekChar() == '|' {
			tok = l.newTwoCharToken(token.OR, "||")
		} else {
			tok = l.newToken(token.PIPE, "|")
		}
	case '.':
		tok = l.newToken(token.DOT, ".")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case ':':
		tok = l.newToken(token.COLON, ":")
	case ';':
		tok = l.newToken(token.SEMI, ";")
	case '?':
		tok = l.newToken(token.QUESTION, "?")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '[':
		tok = l.newToken(token.LBRACKET, "[")
	case ']':
		tok = l.newToken(token.RBRACKET, "]")
	case '{':
		tok = l.newToken(token.LBRACE, "{")
	case '}':
		tok = l.newToken(token.RBRACE, "}")
	case '"':
		lit := l.readString()
		return &token.Token{Kind: token.STRING, Literal: lit, Pos: pos}
	case '\'':
		lit := l.readCharLiteral()
		return &token.Token{Kind: token.CHAR, Literal: lit, Pos: pos}
	default:
		if isLetter(l.ch) {
			lit := l.readIdentifier()
			return &token.Token{Kind: token.LookupIdent(lit), Literal: lit, Pos: pos}
		}
		if isDigit(l.ch) {
			lit := l.readNumber()
			return &token.Token{Kind: token.NUMBER, Literal: lit, Pos: pos}
		}
		tok = l.newToken(token.ILLEGAL, string(l.ch))
	}

	return tok
}

// newToken creates a single-char token and advances past it.
func (l *Lexer) newToken(kind token.Kind, literal string) *token.Token {
	tok := &token.Token{Kind: kind, Literal: literal, Pos: l.currentPos()}
	l.readChar()
	return tok
}

// newTwoCharToken creates a two-char token and advances past both chars.
func (l *Lexer) newTwoCharToken(kind token.Kind, literal string) *token.Token {
	tok := &token.Token{Kind: kind, Literal: literal, Pos: l.currentPos()}
	l.readChar()
	l.readChar()
	return tok
}

// readString reads a double-quoted string literal including quotes.
// Backslash escapes the next character. Unterminated strings run to the
// end of the line.
func (l *Lexer) readString() string {
	start := l.pos
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readCharLiteral reads a single-quoted character literal including quotes.
func (l *Lexer) readCharLiteral() string {
	start := l.pos
	l.readChar() // consume opening quote
	for l.ch != '\'' && l.ch != '\n' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == '\'' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (decimal, float, or 0x hex).
func (l *Lexer) readNumber() string {
	start := l.pos
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
		return l.input[start:l.pos]
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '@'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}
