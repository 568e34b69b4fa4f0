package token

// Token is one lexical unit: its Kind, the exact source text it came
// from, and the Span it occupies.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Lexeme + ")"
}
