package parser

import "github.com/nutmeg-lang/nutmeg/internal/token"

// Error codes, following go-dws's ErrXxx string-constant convention
// so diagnostics can be grepped and tested by code rather than by
// matching message prose.
const (
	ErrUnexpectedToken = "E_UNEXPECTED_TOKEN"
	ErrMissingEOL      = "E_MISSING_EOL"
	ErrMissingLParen   = "E_MISSING_LPAREN"
	ErrMissingRParen   = "E_MISSING_RPAREN"
	ErrMissingLBrace   = "E_MISSING_LBRACE"
	ErrMissingRBrace   = "E_MISSING_RBRACE"
	ErrExpectedIdent   = "E_EXPECTED_IDENT"
	ErrInvalidAssign   = "E_INVALID_ASSIGN_TARGET"
	ErrNoPrefixParse   = "E_NO_PREFIX_PARSE"
)

// ParseError is a single SyntaxError found while parsing. The parser
// accumulates these across statement boundaries rather than aborting
// on the first one.
type ParseError struct {
	Message string
	Code    string
	Span    token.Span
}

func (e *ParseError) Error() string {
	return "SyntaxError: " + e.Message + " at " + e.Span.Start.String()
}

// SpanOf implements diagnostic.Spanner.
func (e *ParseError) SpanOf() token.Span { return e.Span }

func newParseError(code, message string, span token.Span) *ParseError {
	return &ParseError{Message: message, Code: code, Span: span}
}
