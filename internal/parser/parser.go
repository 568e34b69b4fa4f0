// Package parser implements a recursive-descent parser that turns a
// token stream into the AST of package ast, accumulating SyntaxErrors
// across statement boundaries instead of aborting at the first one.
package parser

import (
	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/lexer"
	"github.com/nutmeg-lang/nutmeg/internal/token"
)

// Parser consumes tokens from a Lexer one at a time, keeping a single
// token of look-ahead.
type Parser struct {
	lex *lexer.Lexer

	cur    token.Token
	peek   token.Token
	errors []*ParseError
}

// New creates a Parser reading from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every SyntaxError accumulated while parsing: first
// any the underlying lexer recorded, then the parser's own, each group
// in the order it was found.
func (p *Parser) Errors() []*ParseError {
	all := make([]*ParseError, 0, len(p.lex.Errors())+len(p.errors))
	for _, le := range p.lex.Errors() {
		all = append(all, newParseError(ErrUnexpectedToken, le.Message, le.Span))
	}
	all = append(all, p.errors...)
	return all
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) addError(code, message string, span token.Span) {
	p.errors = append(p.errors, newParseError(code, message, span))
}

// expect consumes cur if it has kind k, else records an error and
// leaves cur in place so the caller's own recovery can proceed.
func (p *Parser) expect(k token.Kind, code, message string) bool {
	if p.curIs(k) {
		p.nextToken()
		return true
	}
	p.addError(code, message, p.cur.Span)
	return false
}

func (p *Parser) skipEOLs() {
	for p.curIs(token.EOL) {
		p.nextToken()
	}
}

// statementStarters are the tokens synchronize() treats as the start
// of a fresh statement, mirroring go-dws's recovery set.
var statementStarters = map[token.Kind]bool{
	token.VAR: true, token.FUN: true, token.CLASS: true,
	token.BREAK: true, token.CONTINUE: true, token.RETURN: true,
	token.IF: true, token.FOR: true, token.WHILE: true, token.LOOP: true,
}

// synchronize discards tokens until it reaches an EOL, EOF, or a
// token that plausibly starts a new statement, so one bad statement
// does not prevent later ones from being parsed and checked.
func (p *Parser) synchronize() {
	for !p.curIs(token.EOF) {
		if p.curIs(token.EOL) {
			p.nextToken()
			return
		}
		if statementStarters[p.cur.Kind] {
			return
		}
		p.nextToken()
	}
}

// ParseProgram parses the whole token stream, returning the Program
// and any accumulated errors. A non-empty error slice means the
// Program is best-effort and should not be evaluated.
func (p *Parser) ParseProgram() (*ast.Program, []*ParseError) {
	prog := &ast.Program{}
	p.skipEOLs()
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if p.curIs(token.EOL) {
			p.skipEOLs()
			continue
		}
		if p.curIs(token.EOF) {
			break
		}
		p.addError(ErrMissingEOL, "expected end of statement", p.cur.Span)
		p.synchronize()
		p.skipEOLs()
	}
	return prog, p.Errors()
}
