package interp

import (
	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/token"
	"github.com/nutmeg-lang/nutmeg/internal/value"
	"github.com/shopspring/decimal"
)

func (it *Interpreter) evalExpr(expr ast.Expression) (Result, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return normal(value.NewNumber(n.Value)), nil
	case *ast.StringLiteral:
		return normal(value.Str(n.Value)), nil
	case *ast.BoolLiteral:
		return normal(value.Bool(n.Value)), nil
	case *ast.NullLiteral:
		return normal(value.Null), nil
	case *ast.Identifier:
		return it.evalIdentifier(n)
	case *ast.RangeExpr:
		return it.evalRangeExpr(n)
	case *ast.BinaryExpr:
		return it.evalBinaryExpr(n)
	case *ast.UnaryExpr:
		return it.evalUnaryExpr(n)
	case *ast.CallExpr:
		return it.evalCallExpr(n)
	case *ast.MemberExpr:
		return it.evalMemberExpr(n)
	case *ast.BlockExpr:
		return it.evalBlock(n)
	case *ast.SingleStmtBlock:
		return it.evalBlock(n)
	case *ast.IfExpr:
		return it.evalIfExpr(n)
	case *ast.ForExpr:
		return it.evalForExpr(n)
	case *ast.WhileExpr:
		return it.evalWhileExpr(n)
	case *ast.LoopExpr:
		return it.evalLoopExpr(n)
	case *ast.FunExpr:
		return normal(&value.Function{Params: n.Params, Body: n.Body}), nil
	case *ast.ClassExpr:
		class, err := it.evalClassBody(n.Body)
		if err != nil {
			return Result{}, err
		}
		return normal(class), nil
	default:
		return Result{}, value.NewError(value.SyntaxError, "unsupported expression node", expr.Span())
	}
}

func (it *Interpreter) evalIdentifier(n *ast.Identifier) (Result, error) {
	v, _, ok := it.lookup(n.Name)
	if !ok {
		return Result{}, value.NewError(value.ReferenceError, "undefined variable '"+n.Name+"'", n.Span())
	}
	return normal(v), nil
}

func (it *Interpreter) evalRangeExpr(n *ast.RangeExpr) (Result, error) {
	startRes, err := it.evalExpr(n.Start)
	if err != nil {
		return Result{}, err
	}
	if startRes.hasSignal() {
		return startRes, nil
	}
	endRes, err := it.evalExpr(n.End)
	if err != nil {
		return Result{}, err
	}
	if endRes.hasSignal() {
		return endRes, nil
	}
	startNum, ok1 := startRes.Value.(value.Number)
	endNum, ok2 := endRes.Value.(value.Number)
	if !ok1 || !ok2 {
		return Result{}, value.NewError(value.TypeError, "range bounds must be numbers", n.Span())
	}
	if !startNum.IsInteger() || !endNum.IsInteger() {
		return Result{}, value.NewError(value.ValueError, "range bounds must be integers", n.Span())
	}
	r := value.NewRange(startNum.D.IntPart(), endNum.D.IntPart(), n.Inclusive)
	return normal(r), nil
}

func (it *Interpreter) evalBinaryExpr(n *ast.BinaryExpr) (Result, error) {
	switch n.Op {
	case token.OR:
		left, err := it.evalExpr(n.Left)
		if err != nil {
			return Result{}, err
		}
		if left.hasSignal() {
			return left, nil
		}
		if value.Truthy(left.Value) {
			return normal(value.Bool(true)), nil
		}
		right, err := it.evalExpr(n.Right)
		if err != nil {
			return Result{}, err
		}
		if right.hasSignal() {
			return right, nil
		}
		return normal(value.Bool(value.Truthy(right.Value))), nil

	case token.AND:
		left, err := it.evalExpr(n.Left)
		if err != nil {
			return Result{}, err
		}
		if left.hasSignal() {
			return left, nil
		}
		if !value.Truthy(left.Value) {
			return normal(value.Bool(false)), nil
		}
		right, err := it.evalExpr(n.Right)
		if err != nil {
			return Result{}, err
		}
		if right.hasSignal() {
			return right, nil
		}
		return normal(value.Bool(value.Truthy(right.Value))), nil

	case token.EQUAL, token.NOT_EQUAL:
		left, right, res, err := it.evalBothSides(n.Left, n.Right)
		if err != nil || res != nil {
			return zeroOr(res), err
		}
		eq := value.Equal(left, right)
		if n.Op == token.NOT_EQUAL {
			eq = !eq
		}
		return normal(value.Bool(eq)), nil

	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		left, right, res, err := it.evalBothSides(n.Left, n.Right)
		if err != nil || res != nil {
			return zeroOr(res), err
		}
		cmp, ok := value.Compare(left, right)
		if !ok {
			return Result{}, value.NewError(value.TypeError, "comparison is only defined between numbers", n.Span())
		}
		var b bool
		switch n.Op {
		case token.LESS:
			b = cmp < 0
		case token.LESS_EQUAL:
			b = cmp <= 0
		case token.GREATER:
			b = cmp > 0
		case token.GREATER_EQUAL:
			b = cmp >= 0
		}
		return normal(value.Bool(b)), nil

	default:
		left, right, res, err := it.evalBothSides(n.Left, n.Right)
		if err != nil || res != nil {
			return zeroOr(res), err
		}
		result, err := it.applyBinary(n.Op, left, right, n.Span())
		if err != nil {
			return Result{}, err
		}
		return normal(result), nil
	}
}

// evalBothSides evaluates left and right in order, short-circuiting on
// the first error or propagated control signal. sig is non-nil when a
// signal (rather than an error) interrupted evaluation.
func (it *Interpreter) evalBothSides(leftExpr, rightExpr ast.Expression) (left, right value.Value, sig *Result, err error) {
	l, err := it.evalExpr(leftExpr)
	if err != nil {
		return nil, nil, nil, err
	}
	if l.hasSignal() {
		return nil, nil, &l, nil
	}
	r, err := it.evalExpr(rightExpr)
	if err != nil {
		return nil, nil, nil, err
	}
	if r.hasSignal() {
		return nil, nil, &r, nil
	}
	return l.Value, r.Value, nil, nil
}

func zeroOr(res *Result) Result {
	if res != nil {
		return *res
	}
	return Result{}
}

func (it *Interpreter) applyBinary(op token.Kind, left, right value.Value, span token.Span) (value.Value, error) {
	switch op {
	case token.PLUS:
		return applyPlus(left, right, span)
	case token.MINUS:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, value.NewError(value.TypeError, "cannot subtract "+right.Kind().String()+" from "+left.Kind().String(), span)
		}
		return value.NumSub(ln, rn, span)
	case token.MULTIPLY:
		return applyMultiply(left, right, span)
	case token.DIVIDE:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, value.NewError(value.TypeError, "cannot divide "+left.Kind().String()+" by "+right.Kind().String(), span)
		}
		return value.NumDiv(ln, rn, span)
	case token.MODULO:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, value.NewError(value.TypeError, "cannot apply modulo to "+left.Kind().String()+" and "+right.Kind().String(), span)
		}
		return value.NumMod(ln, rn, span)
	case token.INT_DIVIDE:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, value.NewError(value.TypeError, "cannot divide "+left.Kind().String()+" by "+right.Kind().String(), span)
		}
		return value.NumIntDiv(ln, rn, span)
	case token.POWER:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, value.NewError(value.TypeError, "cannot raise "+left.Kind().String()+" by "+right.Kind().String(), span)
		}
		return value.NumPow(ln, rn, span)
	default:
		return nil, value.NewError(value.SyntaxError, "unsupported binary operator", span)
	}
}

// applyPlus: Number+Number; String+any or any+String stringifies the
// non-string side, grounded on the original's commutative dispatch.
func applyPlus(left, right value.Value, span token.Span) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return value.NumAdd(ln, rn, span)
		}
		if rs, ok := right.(value.Str); ok {
			return value.Str(left.String() + string(rs)), nil
		}
		return nil, value.NewError(value.TypeError, "cannot add "+right.Kind().String()+" to "+left.Kind().String(), span)
	}
	if ls, ok := left.(value.Str); ok {
		return value.Str(string(ls) + right.String()), nil
	}
	if rs, ok := right.(value.Str); ok {
		return value.Str(left.String() + string(rs)), nil
	}
	return nil, value.NewError(value.TypeError, "cannot add "+right.Kind().String()+" to "+left.Kind().String(), span)
}

// applyMultiply: Number*Number; (String, integer Number>=0) in either
// order repeats the string.
func applyMultiply(left, right value.Value, span token.Span) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return value.NumMul(ln, rn, span)
		}
		if rs, ok := right.(value.Str); ok {
			s, err := value.RepeatString(string(rs), ln, span)
			if err != nil {
				return nil, err
			}
			return value.Str(s), nil
		}
		return nil, value.NewError(value.TypeError, "cannot multiply "+left.Kind().String()+" with "+right.Kind().String(), span)
	}
	if ls, ok := left.(value.Str); ok {
		if rn, ok := right.(value.Number); ok {
			s, err := value.RepeatString(string(ls), rn, span)
			if err != nil {
				return nil, err
			}
			return value.Str(s), nil
		}
		return nil, value.NewError(value.TypeError, "cannot multiply "+left.Kind().String()+" with "+right.Kind().String(), span)
	}
	return nil, value.NewError(value.TypeError, "cannot multiply "+left.Kind().String()+" with "+right.Kind().String(), span)
}

func (it *Interpreter) evalUnaryExpr(n *ast.UnaryExpr) (Result, error) {
	operand, err := it.evalExpr(n.Operand)
	if err != nil {
		return Result{}, err
	}
	if operand.hasSignal() {
		return operand, nil
	}
	v := operand.Value
	switch n.Op {
	case token.NOT:
		return normal(value.Bool(!value.Truthy(v))), nil
	case token.PLUS:
		if _, ok := v.(value.Number); !ok {
			return Result{}, value.NewError(value.TypeError, "unary '+' requires a number", n.Span())
		}
		return normal(v), nil
	case token.MINUS:
		num, ok := v.(value.Number)
		if !ok {
			return Result{}, value.NewError(value.TypeError, "unary '-' requires a number", n.Span())
		}
		zero := value.NewNumber(decimal.Zero)
		result, err := value.NumSub(zero, num, n.Span())
		if err != nil {
			return Result{}, err
		}
		return normal(result), nil
	default:
		return Result{}, value.NewError(value.SyntaxError, "unsupported unary operator", n.Span())
	}
}

func (it *Interpreter) evalIfExpr(n *ast.IfExpr) (Result, error) {
	cond, err := it.evalExpr(n.Cond)
	if err != nil {
		return Result{}, err
	}
	if cond.hasSignal() {
		return cond, nil
	}
	if value.Truthy(cond.Value) {
		return it.evalBlock(n.Then)
	}
	if n.Else != nil {
		return it.evalBlock(n.Else)
	}
	return normal(value.Null), nil
}

func (it *Interpreter) evalWhileExpr(n *ast.WhileExpr) (Result, error) {
	for {
		cond, err := it.evalExpr(n.Cond)
		if err != nil {
			return Result{}, err
		}
		if cond.hasSignal() {
			return cond, nil
		}
		if !value.Truthy(cond.Value) {
			return normal(value.Null), nil
		}
		res, err := it.evalBlock(n.Body)
		if err != nil {
			return Result{}, err
		}
		switch res.Signal {
		case SigBreak:
			return normal(res.Value), nil
		case SigContinue:
			continue
		case SigReturn:
			return res, nil
		}
	}
}

func (it *Interpreter) evalLoopExpr(n *ast.LoopExpr) (Result, error) {
	for {
		res, err := it.evalBlock(n.Body)
		if err != nil {
			return Result{}, err
		}
		switch res.Signal {
		case SigBreak:
			return normal(res.Value), nil
		case SigContinue:
			continue
		case SigReturn:
			return res, nil
		}
	}
}

func (it *Interpreter) evalForExpr(n *ast.ForExpr) (Result, error) {
	iter, err := it.evalExpr(n.Iter)
	if err != nil {
		return Result{}, err
	}
	if iter.hasSignal() {
		return iter, nil
	}
	var items []value.Value
	switch v := iter.Value.(type) {
	case value.Str:
		for _, r := range string(v) {
			items = append(items, value.Str(string(r)))
		}
	case value.Range:
		for _, i := range v.Values() {
			items = append(items, value.NewNumber(decimal.NewFromInt(i)))
		}
	default:
		return Result{}, value.NewError(value.TypeError, "cannot iterate over a "+v.Kind().String(), n.Iter.Span())
	}

	it.pushScope()
	defer it.popScope()
	for _, item := range items {
		it.define(n.Var, item)
		res, err := it.evalForBody(n.Body)
		if err != nil {
			return Result{}, err
		}
		switch res.Signal {
		case SigBreak:
			return normal(res.Value), nil
		case SigContinue:
			continue
		case SigReturn:
			return res, nil
		}
	}
	return normal(value.Null), nil
}

// evalBlock evaluates a function/if/while/loop body. A brace-delimited
// BlockExpr pushes its own fresh scope, so a `var` declared inside
// shadows an outer binding of the same name only for the block's
// duration; a bare single-statement body needs no frame of its own.
func (it *Interpreter) evalBlock(block ast.Block) (Result, error) {
	switch b := block.(type) {
	case *ast.BlockExpr:
		it.pushScope()
		defer it.popScope()
		return it.evalBlockStatements(b.Stmts, b.TrailingSemi)
	case *ast.SingleStmtBlock:
		return it.evalStatement(b.Stmt)
	default:
		return Result{}, value.NewError(value.SyntaxError, "unsupported block node", block.Span())
	}
}

// evalForBody evaluates a for-loop's body in the scope the loop itself
// already pushed once for its whole run, so a fresh frame is not
// created per iteration the way evalBlock would; a `var` inside the
// body rebinds in that shared frame and stays visible to later
// iterations.
func (it *Interpreter) evalForBody(block ast.Block) (Result, error) {
	switch b := block.(type) {
	case *ast.BlockExpr:
		return it.evalBlockStatements(b.Stmts, b.TrailingSemi)
	case *ast.SingleStmtBlock:
		return it.evalStatement(b.Stmt)
	default:
		return Result{}, value.NewError(value.SyntaxError, "unsupported block node", block.Span())
	}
}

func (it *Interpreter) evalBlockStatements(stmts []ast.Statement, trailingSemi bool) (Result, error) {
	result := normal(value.Null)
	for _, stmt := range stmts {
		res, err := it.evalStatement(stmt)
		if err != nil {
			return Result{}, err
		}
		if res.hasSignal() {
			return res, nil
		}
		result = res
	}
	if trailingSemi {
		return normal(value.Null), nil
	}
	return result, nil
}
