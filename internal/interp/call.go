package interp

import (
	"unicode/utf8"

	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/token"
	"github.com/nutmeg-lang/nutmeg/internal/value"
	"github.com/shopspring/decimal"
)

func (it *Interpreter) evalCallExpr(n *ast.CallExpr) (Result, error) {
	var receiver value.Value
	var callee value.Value

	if me, ok := n.Callee.(*ast.MemberExpr); ok {
		objRes, err := it.evalExpr(me.Object)
		if err != nil {
			return Result{}, err
		}
		if objRes.hasSignal() {
			return objRes, nil
		}
		receiver = objRes.Value
		v, err := it.memberAccess(receiver, me.Property, me.Span())
		if err != nil {
			return Result{}, err
		}
		callee = v
	} else {
		calleeRes, err := it.evalExpr(n.Callee)
		if err != nil {
			return Result{}, err
		}
		if calleeRes.hasSignal() {
			return calleeRes, nil
		}
		callee = calleeRes.Value
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		res, err := it.evalExpr(a)
		if err != nil {
			return Result{}, err
		}
		if res.hasSignal() {
			return res, nil
		}
		args = append(args, res.Value)
	}

	return it.callValue(callee, receiver, args, n.Span())
}

// callValue dispatches a call based on the evaluated callee's variant.
func (it *Interpreter) callValue(callee, receiver value.Value, args []value.Value, span token.Span) (Result, error) {
	switch c := callee.(type) {
	case *value.Function:
		if len(args) != len(c.Params) {
			return Result{}, value.NewError(value.TypeError, "wrong number of arguments", span)
		}
		// The body sees only the global frame plus a fresh frame of its
		// own; the caller's stack is restored when the call returns.
		saved := it.scopes
		it.scopes = []scope{saved[0], {}}
		defer func() { it.scopes = saved }()
		if receiver != nil {
			it.define("this", receiver)
		} else {
			it.define("this", value.Null)
		}
		for i, p := range c.Params {
			it.define(p, args[i])
		}
		res, err := it.evalBlock(c.Body)
		if err != nil {
			return Result{}, err
		}
		if res.Signal == SigReturn {
			return normal(res.Value), nil
		}
		return normal(res.Value), nil

	case *value.BuiltIn:
		v, err := c.Fn(args, value.CallContext{Span: span, Out: it.out, Exit: it.exit})
		if err != nil {
			return Result{}, err
		}
		return normal(v), nil

	case *value.Class:
		if len(args) != 0 {
			return Result{}, value.NewError(value.TypeError, "class constructors take no arguments", span)
		}
		return normal(value.NewObjectFromClass(c)), nil

	default:
		return Result{}, value.NewError(value.TypeError, "cannot call a "+callee.Kind().String(), span)
	}
}

func (it *Interpreter) evalMemberExpr(n *ast.MemberExpr) (Result, error) {
	objRes, err := it.evalExpr(n.Object)
	if err != nil {
		return Result{}, err
	}
	if objRes.hasSignal() {
		return objRes, nil
	}
	v, err := it.memberAccess(objRes.Value, n.Property, n.Span())
	if err != nil {
		return Result{}, err
	}
	return normal(v), nil
}

// membersOf returns the mutable field map backing an Object/Class, if
// recv is one.
func membersOf(recv value.Value) (map[string]value.Value, bool) {
	switch v := recv.(type) {
	case *value.Object:
		return v.Members, true
	case *value.Class:
		return v.Members, true
	default:
		return nil, false
	}
}

func isCommonMethod(name string) bool {
	switch name {
	case "toString", "toBool", "clone":
		return true
	}
	return false
}

func isStringMethod(name string) bool {
	switch name {
	case "toInt", "toNumber", "toBoolStrict", "toRange", "toUppercase", "toLowercase":
		return true
	}
	return false
}

func isNumberMethod(name string) bool {
	switch name {
	case "toInt", "floor", "ceil", "round":
		return true
	}
	return false
}

// memberAccess implements `value.ident`: field lookup on Object/Class,
// `length` on String, and the common built-in method set (plus the
// per-type extras) bound as a callable BuiltIn on every other value.
func (it *Interpreter) memberAccess(recv value.Value, prop string, span token.Span) (value.Value, error) {
	if members, ok := membersOf(recv); ok {
		if v, ok := members[prop]; ok {
			return v, nil
		}
		if isCommonMethod(prop) {
			return boundMethod(recv, prop), nil
		}
		return nil, value.NewError(value.ReferenceError, "no member '"+prop+"' on "+recv.Kind().String(), span)
	}

	if s, ok := recv.(value.Str); ok {
		if prop == "length" {
			return value.NewNumber(decimal.NewFromInt(int64(utf8.RuneCountInString(string(s))))), nil
		}
		if isCommonMethod(prop) || isStringMethod(prop) {
			return boundMethod(recv, prop), nil
		}
		return nil, value.NewError(value.ReferenceError, "no member '"+prop+"' on string", span)
	}

	if _, ok := recv.(value.Number); ok {
		if isCommonMethod(prop) || isNumberMethod(prop) {
			return boundMethod(recv, prop), nil
		}
		return nil, value.NewError(value.ReferenceError, "no member '"+prop+"' on number", span)
	}

	if isCommonMethod(prop) {
		return boundMethod(recv, prop), nil
	}
	return nil, value.NewError(value.ReferenceError, "no member '"+prop+"' on "+recv.Kind().String(), span)
}

func boundMethod(recv value.Value, name string) *value.BuiltIn {
	return &value.BuiltIn{
		Name: name,
		Fn: func(args []value.Value, call value.CallContext) (value.Value, error) {
			v, _, err := value.CallCommonMethod(recv, name, args, call.Span)
			return v, err
		},
	}
}
