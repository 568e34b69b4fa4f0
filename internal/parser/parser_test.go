package parser

import (
	"testing"

	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/lexer"
)

func testParser(input string) *Parser {
	return New(lexer.New(input, "test.nut"))
}

func checkParserErrors(t *testing.T, errs []*ParseError) {
	t.Helper()
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		t.Errorf("parser error: %s", e.Error())
	}
	t.FailNow()
}

func TestIdentifierAndLiterals(t *testing.T) {
	p := testParser("foobar\n42\n3.5\n'hi'\ntrue\nfalse\nnull\n")
	program, errs := p.ParseProgram()
	checkParserErrors(t, errs)

	if len(program.Statements) != 7 {
		t.Fatalf("expected 7 statements, got %d", len(program.Statements))
	}

	ident, ok := program.Statements[0].(*ast.ExprStmt).X.(*ast.Identifier)
	if !ok || ident.Name != "foobar" {
		t.Fatalf("statement 0: expected Identifier foobar, got %#v", program.Statements[0])
	}
	if _, ok := program.Statements[1].(*ast.ExprStmt).X.(*ast.NumberLiteral); !ok {
		t.Fatalf("statement 1: expected NumberLiteral")
	}
	str, ok := program.Statements[3].(*ast.ExprStmt).X.(*ast.StringLiteral)
	if !ok || str.Value != "hi" {
		t.Fatalf("statement 3: expected StringLiteral 'hi', got %#v", program.Statements[3])
	}
	b, ok := program.Statements[4].(*ast.ExprStmt).X.(*ast.BoolLiteral)
	if !ok || !b.Value {
		t.Fatalf("statement 4: expected BoolLiteral true")
	}
	if _, ok := program.Statements[6].(*ast.ExprStmt).X.(*ast.NullLiteral); !ok {
		t.Fatalf("statement 6: expected NullLiteral")
	}
}

func TestBinaryPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1+(2*3))"},
		{"1 * 2 + 3", "((1*2)+3)"},
		{"2 ** 3 ** 2", "(2**(3**2))"},
		{"-2 ** 2", "(-(2**2))"},
		{"1 < 2 == true", "((1<2)==true)"},
		{"1 | 2 & 3", "(1|(2&3))"},
		{"a.b(1, 2).c", "a.b(1,2).c"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			program, errs := p.ParseProgram()
			checkParserErrors(t, errs)

			if len(program.Statements) != 1 {
				t.Fatalf("expected 1 statement, got %d", len(program.Statements))
			}
			stmt, ok := program.Statements[0].(*ast.ExprStmt)
			if !ok {
				t.Fatalf("expected ExprStmt, got %T", program.Statements[0])
			}
			got := renderExpr(stmt.X)
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAssignmentVsExpression(t *testing.T) {
	p := testParser("x = 5\nx.y += 1\nfoo()\n")
	program, errs := p.ParseProgram()
	checkParserErrors(t, errs)

	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*ast.AssignStmt); !ok {
		t.Fatalf("statement 0: expected AssignStmt, got %T", program.Statements[0])
	}
	if _, ok := program.Statements[1].(*ast.AssignStmt); !ok {
		t.Fatalf("statement 1: expected AssignStmt, got %T", program.Statements[1])
	}
	if _, ok := program.Statements[2].(*ast.ExprStmt); !ok {
		t.Fatalf("statement 2: expected ExprStmt, got %T", program.Statements[2])
	}
}

func TestVarFunClassDecl(t *testing.T) {
	p := testParser("var x = 1\nfun add(a, b) { return a + b }\nclass Point { var x = 0 }\n")
	program, errs := p.ParseProgram()
	checkParserErrors(t, errs)

	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*ast.VarDecl); !ok {
		t.Fatalf("statement 0: expected VarDecl, got %T", program.Statements[0])
	}
	fd, ok := program.Statements[1].(*ast.FunDecl)
	if !ok {
		t.Fatalf("statement 1: expected FunDecl, got %T", program.Statements[1])
	}
	if len(fd.Params) != 2 || fd.Params[0] != "a" || fd.Params[1] != "b" {
		t.Fatalf("unexpected params: %v", fd.Params)
	}
	if _, ok := program.Statements[2].(*ast.ClassDecl); !ok {
		t.Fatalf("statement 2: expected ClassDecl, got %T", program.Statements[2])
	}
}

func TestRangeExpression(t *testing.T) {
	p := testParser("1..5\n1..=5\n")
	program, errs := p.ParseProgram()
	checkParserErrors(t, errs)

	r1 := program.Statements[0].(*ast.ExprStmt).X.(*ast.RangeExpr)
	if r1.Inclusive {
		t.Fatalf("expected exclusive range")
	}
	r2 := program.Statements[1].(*ast.ExprStmt).X.(*ast.RangeExpr)
	if !r2.Inclusive {
		t.Fatalf("expected inclusive range")
	}
}

func TestIfForWhileLoopAtomsParse(t *testing.T) {
	inputs := []string{
		"if (true) { 1 } else { 2 }",
		"for (x in 1..3) { x }",
		"while (true) { break }",
		"loop { break 1 }",
		"fun(a) { a }",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			p := testParser(input)
			_, errs := p.ParseProgram()
			checkParserErrors(t, errs)
		})
	}
}

func TestSyntaxErrorRecoveryContinuesParsing(t *testing.T) {
	p := testParser("var x = \nvar y = 2\n")
	program, errs := p.ParseProgram()
	if len(errs) == 0 {
		t.Fatal("expected at least one parse error")
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected recovery to still find 2 statements, got %d", len(program.Statements))
	}
}

// renderExpr is a minimal S-expression printer used only by tests, to
// assert precedence and associativity without comparing full AST
// structs field by field.
func renderExpr(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.NumberLiteral:
		return n.Value.String()
	case *ast.BoolLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.Identifier:
		return n.Name
	case *ast.UnaryExpr:
		return "(" + n.Op.String() + renderExpr(n.Operand) + ")"
	case *ast.BinaryExpr:
		return "(" + renderExpr(n.Left) + n.Op.String() + renderExpr(n.Right) + ")"
	case *ast.MemberExpr:
		return renderExpr(n.Object) + "." + n.Property
	case *ast.CallExpr:
		s := renderExpr(n.Callee) + "("
		for i, a := range n.Args {
			if i > 0 {
				s += ","
			}
			s += renderExpr(a)
		}
		return s + ")"
	default:
		return "?"
	}
}
