// Package ast defines the syntax tree produced by the parser. Every
// node carries the Span of source it was parsed from.
package ast

import (
	"github.com/nutmeg-lang/nutmeg/internal/token"
	"github.com/shopspring/decimal"
)

// Node is implemented by every AST node.
type Node interface {
	Span() token.Span
}

// Statement is implemented by every statement-level node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression-level node.
type Expression interface {
	Node
	expressionNode()
}

// Block is a function/loop/if body: either a single statement or a
// brace-delimited BlockExpr. Both implement Expression since if/for/
// while/loop/fun are themselves expression-valued.
type Block interface {
	Expression
}

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Span() token.Span {
	if len(p.Statements) == 0 {
		return token.Span{}
	}
	return p.Statements[0].Span().Merge(p.Statements[len(p.Statements)-1].Span())
}

// Base is embedded by every concrete node to supply Span().
type Base struct{ Sp token.Span }

func (b Base) Span() token.Span { return b.Sp }

// ---- Statements ----

type VarDecl struct {
	Base
	Name  string
	Value Expression // nil when no initializer; defaults to Null
}

func (*VarDecl) statementNode() {}

type FunDecl struct {
	Base
	Name   string
	Params []string
	Body   Block
}

func (*FunDecl) statementNode() {}

type ClassDecl struct {
	Base
	Name string
	Body []Statement
}

func (*ClassDecl) statementNode() {}

type BreakStmt struct {
	Base
	Value Expression // nil when bare `break`
}

func (*BreakStmt) statementNode() {}

type ContinueStmt struct {
	Base
}

func (*ContinueStmt) statementNode() {}

type ReturnStmt struct {
	Base
	Value Expression // nil when bare `return`
}

func (*ReturnStmt) statementNode() {}

// AssignStmt is `target op= value`, where target is an Identifier or a
// MemberExpr chain rooted at one.
type AssignStmt struct {
	Base
	Target Expression
	Op     token.Kind // ASSIGN or one of the compound-assign kinds
	Value  Expression
}

func (*AssignStmt) statementNode() {}

// ExprStmt wraps an expression evaluated for its value/side effects.
type ExprStmt struct {
	Base
	X Expression
}

func (*ExprStmt) statementNode() {}

// ---- Leaf expressions ----

type Identifier struct {
	Base
	Name string
}

func (*Identifier) expressionNode() {}

type NumberLiteral struct {
	Base
	Value decimal.Decimal
}

func (*NumberLiteral) expressionNode() {}

type StringLiteral struct {
	Base
	Value string
}

func (*StringLiteral) expressionNode() {}

type BoolLiteral struct {
	Base
	Value bool
}

func (*BoolLiteral) expressionNode() {}

type NullLiteral struct {
	Base
}

func (*NullLiteral) expressionNode() {}

// ---- Compound expressions ----

// RangeExpr is `start .. end` or `start ..= end`.
type RangeExpr struct {
	Base
	Start     Expression
	End       Expression
	Inclusive bool
}

func (*RangeExpr) expressionNode() {}

// BinaryExpr covers |, &, ==, !=, <, <=, >, >=, +, -, *, /, %, \, **.
type BinaryExpr struct {
	Base
	Op    token.Kind
	Left  Expression
	Right Expression
}

func (*BinaryExpr) expressionNode() {}

// UnaryExpr covers +x, -x, !x.
type UnaryExpr struct {
	Base
	Op      token.Kind
	Operand Expression
}

func (*UnaryExpr) expressionNode() {}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Base
	Callee Expression
	Args   []Expression
}

func (*CallExpr) expressionNode() {}

// MemberExpr is `object.property`.
type MemberExpr struct {
	Base
	Object   Expression
	Property string
}

func (*MemberExpr) expressionNode() {}

// ---- Block and control-flow atoms ----

// BlockExpr is `{ stmt* }`; its value is the value of its last
// statement when TrailingSemi is false, otherwise Null.
type BlockExpr struct {
	Base
	Stmts        []Statement
	TrailingSemi bool
}

func (*BlockExpr) expressionNode() {}

// SingleStmtBlock wraps a bare (non-brace) statement used as a
// function/loop/if body.
type SingleStmtBlock struct {
	Base
	Stmt Statement
}

func (*SingleStmtBlock) expressionNode() {}

type IfExpr struct {
	Base
	Cond Expression
	Then Block
	Else Block // nil means the else branch defaults to Null
}

func (*IfExpr) expressionNode() {}

type ForExpr struct {
	Base
	Var  string
	Iter Expression
	Body Block
}

func (*ForExpr) expressionNode() {}

type WhileExpr struct {
	Base
	Cond Expression
	Body Block
}

func (*WhileExpr) expressionNode() {}

type LoopExpr struct {
	Base
	Body Block
}

func (*LoopExpr) expressionNode() {}

type FunExpr struct {
	Base
	Params []string
	Body   Block
}

func (*FunExpr) expressionNode() {}

type ClassExpr struct {
	Base
	Body []Statement
}

func (*ClassExpr) expressionNode() {}
