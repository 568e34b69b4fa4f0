package parser

import (
	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curIs(token.VAR):
		return p.parseVarDecl()
	case p.curIs(token.FUN) && p.peekIs(token.IDENT):
		return p.parseFunDecl()
	case p.curIs(token.CLASS) && p.peekIs(token.IDENT):
		return p.parseClassDecl()
	case p.curIs(token.BREAK):
		return p.parseBreakStmt()
	case p.curIs(token.CONTINUE):
		return p.parseContinueStmt()
	case p.curIs(token.RETURN):
		return p.parseReturnStmt()
	default:
		return p.parseAssignOrExprStmt()
	}
}

func (p *Parser) parseVarDecl() ast.Statement {
	start := p.cur.Span
	p.nextToken() // 'var'
	name := p.cur.Lexeme
	if !p.expect(token.IDENT, ErrExpectedIdent, "expected identifier after 'var'") {
		return &ast.VarDecl{Base: ast.Base{Sp: start}, Name: name}
	}
	var value ast.Expression
	if p.curIs(token.ASSIGN) {
		p.nextToken()
		value = p.parseExpression()
	}
	end := start
	if value != nil {
		end = value.Span()
	}
	return &ast.VarDecl{Base: ast.Base{Sp: start.Merge(end)}, Name: name, Value: value}
}

func (p *Parser) parseArgNames() []string {
	p.expect(token.LPAREN, ErrMissingLParen, "expected '(' to start parameter list")
	var names []string
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if p.curIs(token.IDENT) {
			names = append(names, p.cur.Lexeme)
			p.nextToken()
		} else {
			p.addError(ErrExpectedIdent, "expected parameter name", p.cur.Span)
			break
		}
		if p.curIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	p.expect(token.RPAREN, ErrMissingRParen, "expected ')' to close parameter list")
	return names
}

func (p *Parser) parseFunDecl() ast.Statement {
	start := p.cur.Span
	p.nextToken() // 'fun'
	name := p.cur.Lexeme
	p.expect(token.IDENT, ErrExpectedIdent, "expected function name")
	params := p.parseArgNames()
	body := p.parseBlock()
	return &ast.FunDecl{Base: ast.Base{Sp: start.Merge(body.Span())}, Name: name, Params: params, Body: body}
}

// parseMemberBody parses "{ statement EOL+ ... }", the body shared by
// class declarations and anonymous class expressions.
func (p *Parser) parseMemberBody() ([]ast.Statement, token.Span) {
	start := p.cur.Span
	p.expect(token.LBRACE, ErrMissingLBrace, "expected '{' to start class body")
	p.skipEOLs()
	var stmts []ast.Statement
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.curIs(token.EOL) {
			p.skipEOLs()
			continue
		}
		if p.curIs(token.RBRACE) {
			break
		}
		p.addError(ErrMissingEOL, "expected end of statement in class body", p.cur.Span)
		p.synchronize()
		p.skipEOLs()
	}
	end := p.cur.Span
	p.expect(token.RBRACE, ErrMissingRBrace, "expected '}' to close class body")
	return stmts, start.Merge(end)
}

func (p *Parser) parseClassDecl() ast.Statement {
	start := p.cur.Span
	p.nextToken() // 'class'
	name := p.cur.Lexeme
	p.expect(token.IDENT, ErrExpectedIdent, "expected class name")
	body, bodySpan := p.parseMemberBody()
	return &ast.ClassDecl{Base: ast.Base{Sp: start.Merge(bodySpan)}, Name: name, Body: body}
}

func (p *Parser) parseBreakStmt() ast.Statement {
	start := p.cur.Span
	p.nextToken() // 'break'
	var value ast.Expression
	if !p.curIs(token.EOL) && !p.curIs(token.EOF) && !p.curIs(token.RBRACE) {
		value = p.parseExpression()
	}
	end := start
	if value != nil {
		end = value.Span()
	}
	return &ast.BreakStmt{Base: ast.Base{Sp: start.Merge(end)}, Value: value}
}

func (p *Parser) parseContinueStmt() ast.Statement {
	start := p.cur.Span
	p.nextToken() // 'continue'
	return &ast.ContinueStmt{Base: ast.Base{Sp: start}}
}

func (p *Parser) parseReturnStmt() ast.Statement {
	start := p.cur.Span
	p.nextToken() // 'return'
	var value ast.Expression
	if !p.curIs(token.EOL) && !p.curIs(token.EOF) && !p.curIs(token.RBRACE) {
		value = p.parseExpression()
	}
	end := start
	if value != nil {
		end = value.Span()
	}
	return &ast.ReturnStmt{Base: ast.Base{Sp: start.Merge(end)}, Value: value}
}

// parseAssignOrExprStmt parses a full expression, then checks whether
// it is immediately followed by an assignment operator and is a valid
// assignment target (an Identifier or a MemberExpr chain rooted at
// one), distinguishing an assign_stmt from an expression statement
// without needing to backtrack: assignable targets are already a
// subset of what the expression grammar parses.
func (p *Parser) parseAssignOrExprStmt() ast.Statement {
	expr := p.parseExpression()
	if p.cur.Kind.IsAssignOp() && isAssignable(expr) {
		op := p.cur.Kind
		p.nextToken()
		rhs := p.parseExpression()
		return &ast.AssignStmt{Base: ast.Base{Sp: expr.Span().Merge(rhs.Span())}, Target: expr, Op: op, Value: rhs}
	}
	return &ast.ExprStmt{Base: ast.Base{Sp: expr.Span()}, X: expr}
}

func isAssignable(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.Identifier:
		return true
	case *ast.MemberExpr:
		return isAssignable(e.Object)
	default:
		return false
	}
}
