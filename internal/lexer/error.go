package lexer

import "github.com/nutmeg-lang/nutmeg/internal/token"

// LexError is a structural problem found while scanning. The lexer
// accumulates these and stops at the first one it cannot recover
// from, mirroring the parser's own error accumulation for statements.
type LexError struct {
	Message string
	Span    token.Span
}

func (e *LexError) Error() string {
	return "SyntaxError: " + e.Message + " at " + e.Span.Start.String()
}

// SpanOf implements diagnostic.Spanner.
func (e *LexError) SpanOf() token.Span { return e.Span }
