package token

// Stream is an ordered, finite sequence of tokens for one source file.
// It is built once by the lexer and never mutated afterwards; rules make
// a single linear pass over it. Independent streams may be scanned
// concurrently without coordination.
type Stream struct {
	tokens []*Token
}

// NewStream builds a stream from tokens in document order and links each
// token to its neighbors. The slice is not copied; the caller must not
// modify it afterwards.
func NewStream(tokens []*Token) *Stream {
	for i, t := range tokens {
		if i > 0 {
			t.prev = tokens[i-1]
		}
		if i < len(tokens)-1 {
			t.next = tokens[i+1]
		}
	}
	return &Stream{tokens: tokens}
}

// Tokens returns the tokens in document order.
func (s *Stream) Tokens() []*Token {
	return s.tokens
}

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int {
	return len(s.tokens)
}
