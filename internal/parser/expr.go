package parser

import (
	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/token"
	"github.com/shopspring/decimal"
)

// parseExpression implements `expression = or_expr [ (".." | "..=") or_expr ]`,
// the outermost (weakest) layer of the precedence cascade.
func (p *Parser) parseExpression() ast.Expression {
	left := p.parseOr()
	if p.curIs(token.RANGE_EXCL) || p.curIs(token.RANGE_INCL) {
		inclusive := p.curIs(token.RANGE_INCL)
		p.nextToken()
		right := p.parseOr()
		return &ast.RangeExpr{
			Base:      ast.Base{Sp: left.Span().Merge(right.Span())},
			Start:     left,
			End:       right,
			Inclusive: inclusive,
		}
	}
	return left
}

// parseOr implements `or_expr = and_expr { "|" and_expr }`.
func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.curIs(token.OR) {
		op := p.cur.Kind
		p.nextToken()
		right := p.parseAnd()
		left = &ast.BinaryExpr{Base: ast.Base{Sp: left.Span().Merge(right.Span())}, Op: op, Left: left, Right: right}
	}
	return left
}

// parseAnd implements `and_expr = eq_expr { "&" eq_expr }`.
func (p *Parser) parseAnd() ast.Expression {
	left := p.parseEq()
	for p.curIs(token.AND) {
		op := p.cur.Kind
		p.nextToken()
		right := p.parseEq()
		left = &ast.BinaryExpr{Base: ast.Base{Sp: left.Span().Merge(right.Span())}, Op: op, Left: left, Right: right}
	}
	return left
}

// parseEq implements `eq_expr = rel_expr [ ("=="|"!=") rel_expr ]`.
func (p *Parser) parseEq() ast.Expression {
	left := p.parseRel()
	if p.curIs(token.EQUAL) || p.curIs(token.NOT_EQUAL) {
		op := p.cur.Kind
		p.nextToken()
		right := p.parseRel()
		return &ast.BinaryExpr{Base: ast.Base{Sp: left.Span().Merge(right.Span())}, Op: op, Left: left, Right: right}
	}
	return left
}

// parseRel implements `rel_expr = add_expr [ ("<"|"<="|">"|">=") add_expr ]`.
func (p *Parser) parseRel() ast.Expression {
	left := p.parseAdd()
	switch p.cur.Kind {
	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		op := p.cur.Kind
		p.nextToken()
		right := p.parseAdd()
		return &ast.BinaryExpr{Base: ast.Base{Sp: left.Span().Merge(right.Span())}, Op: op, Left: left, Right: right}
	}
	return left
}

// parseAdd implements `add_expr = mul_expr { ("+"|"-") mul_expr }`.
func (p *Parser) parseAdd() ast.Expression {
	left := p.parseMul()
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		op := p.cur.Kind
		p.nextToken()
		right := p.parseMul()
		left = &ast.BinaryExpr{Base: ast.Base{Sp: left.Span().Merge(right.Span())}, Op: op, Left: left, Right: right}
	}
	return left
}

// parseMul implements `mul_expr = unary { ("*"|"/"|"%"|"\") unary }`.
func (p *Parser) parseMul() ast.Expression {
	left := p.parseUnary()
	for {
		switch p.cur.Kind {
		case token.MULTIPLY, token.DIVIDE, token.MODULO, token.INT_DIVIDE:
			op := p.cur.Kind
			p.nextToken()
			right := p.parseUnary()
			left = &ast.BinaryExpr{Base: ast.Base{Sp: left.Span().Merge(right.Span())}, Op: op, Left: left, Right: right}
		default:
			return left
		}
	}
}

// parseUnary implements `unary = ("+"|"-"|"!") unary | exp_expr`.
func (p *Parser) parseUnary() ast.Expression {
	switch p.cur.Kind {
	case token.PLUS, token.MINUS, token.NOT:
		op := p.cur.Kind
		start := p.cur.Span
		p.nextToken()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Base: ast.Base{Sp: start.Merge(operand.Span())}, Op: op, Operand: operand}
	default:
		return p.parseExp()
	}
}

// parseExp implements `exp_expr = call_expr [ "**" unary ]`, right
// associative: the exponent itself recurses into parseUnary so
// `a ** b ** c == a ** (b ** c)` and `-2 ** 2 == -(2 ** 2)`.
func (p *Parser) parseExp() ast.Expression {
	left := p.parseCall()
	if p.curIs(token.POWER) {
		p.nextToken()
		right := p.parseUnary()
		return &ast.BinaryExpr{Base: ast.Base{Sp: left.Span().Merge(right.Span())}, Op: token.POWER, Left: left, Right: right}
	}
	return left
}

// parseCall implements `call_expr = member_expr [ args { call_part } ]`
// together with `member_expr = atom { "." IDENT }`, folded into one
// postfix loop since `.field` and `(args)` chain in any order after
// the first call.
func (p *Parser) parseCall() ast.Expression {
	expr := p.parseAtom()
	for {
		switch p.cur.Kind {
		case token.DOT:
			p.nextToken()
			prop := p.cur.Lexeme
			propSpan := p.cur.Span
			p.expect(token.IDENT, ErrExpectedIdent, "expected property name after '.'")
			expr = &ast.MemberExpr{Base: ast.Base{Sp: expr.Span().Merge(propSpan)}, Object: expr, Property: prop}
		case token.LPAREN:
			args, argsSpan := p.parseArgs()
			expr = &ast.CallExpr{Base: ast.Base{Sp: expr.Span().Merge(argsSpan)}, Callee: expr, Args: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expression, token.Span) {
	start := p.cur.Span
	p.nextToken() // '('
	var args []ast.Expression
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression())
		if p.curIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	end := p.cur.Span
	p.expect(token.RPAREN, ErrMissingRParen, "expected ')' to close argument list")
	return args, start.Merge(end)
}

// parseAtom implements the `atom` production.
func (p *Parser) parseAtom() ast.Expression {
	switch p.cur.Kind {
	case token.NUMBER:
		return p.parseNumberLiteral()
	case token.STRING:
		tok := p.cur
		p.nextToken()
		return &ast.StringLiteral{Base: ast.Base{Sp: tok.Span}, Value: tok.Lexeme}
	case token.TRUE:
		tok := p.cur
		p.nextToken()
		return &ast.BoolLiteral{Base: ast.Base{Sp: tok.Span}, Value: true}
	case token.FALSE:
		tok := p.cur
		p.nextToken()
		return &ast.BoolLiteral{Base: ast.Base{Sp: tok.Span}, Value: false}
	case token.NULL:
		tok := p.cur
		p.nextToken()
		return &ast.NullLiteral{Base: ast.Base{Sp: tok.Span}}
	case token.IDENT:
		tok := p.cur
		p.nextToken()
		return &ast.Identifier{Base: ast.Base{Sp: tok.Span}, Name: tok.Lexeme}
	case token.LPAREN:
		p.nextToken()
		inner := p.parseExpression()
		p.expect(token.RPAREN, ErrMissingRParen, "expected ')' to close grouped expression")
		return inner
	case token.LBRACE:
		return p.parseBlockExpr()
	case token.IF:
		return p.parseIfExpr()
	case token.FOR:
		return p.parseForExpr()
	case token.WHILE:
		return p.parseWhileExpr()
	case token.LOOP:
		return p.parseLoopExpr()
	case token.FUN:
		return p.parseFunExpr()
	case token.CLASS:
		return p.parseClassExpr()
	default:
		start := p.cur.Span
		p.addError(ErrNoPrefixParse, "unexpected token '"+p.cur.Lexeme+"' in expression", start)
		p.nextToken()
		return &ast.NullLiteral{Base: ast.Base{Sp: start}}
	}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.cur
	p.nextToken()
	val, err := decimal.NewFromString(tok.Lexeme)
	if err != nil {
		p.addError(ErrUnexpectedToken, "invalid number literal '"+tok.Lexeme+"'", tok.Span)
		val = decimal.Zero
	}
	return &ast.NumberLiteral{Base: ast.Base{Sp: tok.Span}, Value: val}
}

// parseBlock parses a function/loop/if body: either a brace-delimited
// block expression or a single bare statement.
func (p *Parser) parseBlock() ast.Block {
	if p.curIs(token.LBRACE) {
		return p.parseBlockExpr()
	}
	start := p.cur.Span
	stmt := p.parseStatement()
	return &ast.SingleStmtBlock{Base: ast.Base{Sp: start.Merge(stmt.Span())}, Stmt: stmt}
}

// parseBlockExpr parses `{ stmt EOL+ ... }`, tracking whether the
// last statement was followed by an EOL so the evaluator can decide
// between "value of last statement" and Null.
func (p *Parser) parseBlockExpr() ast.Expression {
	start := p.cur.Span
	p.nextToken() // '{'
	p.skipEOLs()
	var stmts []ast.Statement
	trailingSemi := true
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.curIs(token.EOL) {
			trailingSemi = true
			p.skipEOLs()
			continue
		}
		trailingSemi = false
		if p.curIs(token.RBRACE) {
			break
		}
		p.addError(ErrMissingEOL, "expected end of statement", p.cur.Span)
		p.synchronize()
		p.skipEOLs()
	}
	end := p.cur.Span
	p.expect(token.RBRACE, ErrMissingRBrace, "expected '}' to close block")
	return &ast.BlockExpr{Base: ast.Base{Sp: start.Merge(end)}, Stmts: stmts, TrailingSemi: trailingSemi}
}

func (p *Parser) parseIfExpr() ast.Expression {
	start := p.cur.Span
	p.nextToken() // 'if'
	p.expect(token.LPAREN, ErrMissingLParen, "expected '(' after 'if'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, ErrMissingRParen, "expected ')' after if condition")
	then := p.parseBlock()
	end := then.Span()
	var elseBlock ast.Block
	if p.curIs(token.ELSE) {
		p.nextToken()
		elseBlock = p.parseBlock()
		end = elseBlock.Span()
	}
	return &ast.IfExpr{Base: ast.Base{Sp: start.Merge(end)}, Cond: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseForExpr() ast.Expression {
	start := p.cur.Span
	p.nextToken() // 'for'
	p.expect(token.LPAREN, ErrMissingLParen, "expected '(' after 'for'")
	name := p.cur.Lexeme
	p.expect(token.IDENT, ErrExpectedIdent, "expected loop variable name")
	p.expect(token.IN, ErrUnexpectedToken, "expected 'in' in for-loop header")
	iter := p.parseExpression()
	p.expect(token.RPAREN, ErrMissingRParen, "expected ')' after for-loop header")
	body := p.parseBlock()
	return &ast.ForExpr{Base: ast.Base{Sp: start.Merge(body.Span())}, Var: name, Iter: iter, Body: body}
}

func (p *Parser) parseWhileExpr() ast.Expression {
	start := p.cur.Span
	p.nextToken() // 'while'
	p.expect(token.LPAREN, ErrMissingLParen, "expected '(' after 'while'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, ErrMissingRParen, "expected ')' after while condition")
	body := p.parseBlock()
	return &ast.WhileExpr{Base: ast.Base{Sp: start.Merge(body.Span())}, Cond: cond, Body: body}
}

func (p *Parser) parseLoopExpr() ast.Expression {
	start := p.cur.Span
	p.nextToken() // 'loop'
	body := p.parseBlock()
	return &ast.LoopExpr{Base: ast.Base{Sp: start.Merge(body.Span())}, Body: body}
}

func (p *Parser) parseFunExpr() ast.Expression {
	start := p.cur.Span
	p.nextToken() // 'fun'
	params := p.parseArgNames()
	body := p.parseBlock()
	return &ast.FunExpr{Base: ast.Base{Sp: start.Merge(body.Span())}, Params: params, Body: body}
}

func (p *Parser) parseClassExpr() ast.Expression {
	start := p.cur.Span
	p.nextToken() // 'class'
	body, bodySpan := p.parseMemberBody()
	return &ast.ClassExpr{Base: ast.Base{Sp: start.Merge(bodySpan)}, Body: body}
}
