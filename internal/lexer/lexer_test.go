package lexer

import (
	"testing"

	"github.com/nutmeg-lang/nutmeg/internal/token"
)

func TestPunctuationAndOperators(t *testing.T) {
	input := `( ) { } , . ? : | & == != < <= > >= + - * ** / % \ ! = += -= *= /= %= \= **= .. ..=`

	tests := []struct {
		expectedKind    token.Kind
		expectedLexeme  string
	}{
		{token.LPAREN, "("}, {token.RPAREN, ")"}, {token.LBRACE, "{"}, {token.RBRACE, "}"},
		{token.COMMA, ","}, {token.DOT, "."}, {token.QUESTIONMARK, "?"}, {token.COLON, ":"},
		{token.OR, "|"}, {token.AND, "&"},
		{token.EQUAL, "=="}, {token.NOT_EQUAL, "!="},
		{token.LESS, "<"}, {token.LESS_EQUAL, "<="}, {token.GREATER, ">"}, {token.GREATER_EQUAL, ">="},
		{token.PLUS, "+"}, {token.MINUS, "-"}, {token.MULTIPLY, "*"}, {token.POWER, "**"},
		{token.DIVIDE, "/"}, {token.MODULO, "%"}, {token.INT_DIVIDE, `\`}, {token.NOT, "!"},
		{token.ASSIGN, "="},
		{token.PLUS_ASSIGN, "+="}, {token.MINUS_ASSIGN, "-="}, {token.MULTIPLY_ASSIGN, "*="},
		{token.DIVIDE_ASSIGN, "/="}, {token.MODULO_ASSIGN, "%="}, {token.INT_DIVIDE_ASSIGN, `\=`},
		{token.POWER_ASSIGN, "**="},
		{token.RANGE_EXCL, ".."}, {token.RANGE_INCL, "..="},
		{token.EOF, ""},
	}

	l := New(input, "test.nut")
	for i, tt := range tests {
		tok := l.Next()
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d]: kind wrong. expected=%s, got=%s", i, tt.expectedKind, tok.Kind)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d]: lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := `var true false if else null fun loop while for in return break continue class foo _bar baz2`
	tests := []token.Kind{
		token.VAR, token.TRUE, token.FALSE, token.IF, token.ELSE, token.NULL,
		token.FUN, token.LOOP, token.WHILE, token.FOR, token.IN, token.RETURN,
		token.BREAK, token.CONTINUE, token.CLASS,
		token.IDENT, token.IDENT, token.IDENT,
	}
	l := New(input, "test.nut")
	for i, want := range tests {
		tok := l.Next()
		if tok.Kind != want {
			t.Fatalf("tests[%d]: expected=%s, got=%s (%q)", i, want, tok.Kind, tok.Lexeme)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123", "123"},
		{"1_000_000", "1000000"},
		{"3.14", "3.14"},
		{"5.", "5"},
		{"5..10", "5"},
	}
	for _, tt := range tests {
		l := New(tt.input, "test.nut")
		tok := l.Next()
		if tok.Kind != token.NUMBER {
			t.Fatalf("input %q: expected NUMBER, got %s", tt.input, tok.Kind)
		}
		if tok.Lexeme != tt.want {
			t.Fatalf("input %q: expected lexeme %q, got %q", tt.input, tt.want, tok.Lexeme)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
		{`"quote\"inside"`, `quote"inside`},
	}
	for _, tt := range tests {
		l := New(tt.input, "test.nut")
		tok := l.Next()
		if tok.Kind != token.STRING {
			t.Fatalf("input %q: expected STRING, got %s", tt.input, tok.Kind)
		}
		if tok.Lexeme != tt.want {
			t.Fatalf("input %q: expected %q, got %q", tt.input, tt.want, tok.Lexeme)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "1 // line comment\n2 /| block\ncomment |/ 3"
	l := New(input, "test.nut")

	var nums []string
	for {
		tok := l.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.NUMBER {
			nums = append(nums, tok.Lexeme)
		}
	}
	if len(nums) != 3 || nums[0] != "1" || nums[1] != "2" || nums[2] != "3" {
		t.Fatalf("unexpected numbers: %v", nums)
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	l := New(`"unterminated`, "test.nut")
	l.Next()
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lex error for unterminated string")
	}
}

func TestLocationAdvancesPerRune(t *testing.T) {
	l := New("ab\ncd", "test.nut")
	first := l.Next() // "ab" as IDENT
	if first.Span.Start.Line != 1 || first.Span.Start.Column != 1 {
		t.Fatalf("unexpected start location: %+v", first.Span.Start)
	}
	eol := l.Next() // EOL for '\n'
	if eol.Kind != token.EOL {
		t.Fatalf("expected EOL, got %s", eol.Kind)
	}
	second := l.Next() // "cd" on line 2
	if second.Span.Start.Line != 2 || second.Span.Start.Column != 1 {
		t.Fatalf("unexpected second line start: %+v", second.Span.Start)
	}
}
