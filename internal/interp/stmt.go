package interp

import (
	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/token"
	"github.com/nutmeg-lang/nutmeg/internal/value"
)

func (it *Interpreter) evalStatement(stmt ast.Statement) (Result, error) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		return it.evalVarDecl(n)
	case *ast.FunDecl:
		it.define(n.Name, &value.Function{Params: n.Params, Body: n.Body})
		return normal(value.Null), nil
	case *ast.ClassDecl:
		class, err := it.evalClassBody(n.Body)
		if err != nil {
			return Result{}, err
		}
		it.define(n.Name, class)
		return normal(value.Null), nil
	case *ast.BreakStmt:
		v := value.Value(value.Null)
		if n.Value != nil {
			res, err := it.evalExpr(n.Value)
			if err != nil {
				return Result{}, err
			}
			if res.hasSignal() {
				return res, nil
			}
			v = res.Value
		}
		return Result{Value: v, Signal: SigBreak}, nil
	case *ast.ContinueStmt:
		return Result{Value: value.Null, Signal: SigContinue}, nil
	case *ast.ReturnStmt:
		v := value.Value(value.Null)
		if n.Value != nil {
			res, err := it.evalExpr(n.Value)
			if err != nil {
				return Result{}, err
			}
			if res.hasSignal() {
				return res, nil
			}
			v = res.Value
		}
		return Result{Value: v, Signal: SigReturn}, nil
	case *ast.AssignStmt:
		return it.evalAssignStmt(n)
	case *ast.ExprStmt:
		return it.evalExpr(n.X)
	default:
		return Result{}, value.NewError(value.SyntaxError, "unsupported statement node", stmt.Span())
	}
}

func (it *Interpreter) evalVarDecl(n *ast.VarDecl) (Result, error) {
	v := value.Value(value.Null)
	if n.Value != nil {
		res, err := it.evalExpr(n.Value)
		if err != nil {
			return Result{}, err
		}
		if res.hasSignal() {
			return res, nil
		}
		v = res.Value
	}
	it.define(n.Name, v)
	return normal(value.Null), nil
}

// evalClassBody evaluates a class body in a fresh scope and captures
// that scope's bindings as the Class's frozen member snapshot.
func (it *Interpreter) evalClassBody(stmts []ast.Statement) (*value.Class, error) {
	it.pushScope()
	for _, s := range stmts {
		if _, err := it.evalStatement(s); err != nil {
			it.popScope()
			return nil, err
		}
	}
	members := it.top()
	it.popScope()
	return &value.Class{Members: members}, nil
}

// assignSlot abstracts the location an assignment writes to: either a
// scope-frame binding (plain identifier) or a field in an Object/
// Class member map (member-expression chain).
type assignSlot struct {
	get func() (value.Value, bool)
	set func(value.Value)
}

func (it *Interpreter) resolveAssignTarget(target ast.Expression) (*assignSlot, error) {
	switch t := target.(type) {
	case *ast.Identifier:
		_, idx, ok := it.lookup(t.Name)
		if !ok {
			return nil, value.NewError(value.ReferenceError, "undefined variable '"+t.Name+"'", t.Span())
		}
		name := t.Name
		return &assignSlot{
			get: func() (value.Value, bool) { v, ok := it.scopes[idx][name]; return v, ok },
			set: func(v value.Value) { it.scopes[idx][name] = v },
		}, nil

	case *ast.MemberExpr:
		objRes, err := it.evalExpr(t.Object)
		if err != nil {
			return nil, err
		}
		if objRes.hasSignal() {
			return nil, value.NewError(value.SyntaxError, "control flow inside assignment target", t.Span())
		}
		members, ok := membersOf(objRes.Value)
		if !ok {
			return nil, value.NewError(value.TypeError, "cannot assign a field on a "+objRes.Value.Kind().String(), t.Span())
		}
		prop := t.Property
		return &assignSlot{
			get: func() (value.Value, bool) { v, ok := members[prop]; return v, ok },
			set: func(v value.Value) { members[prop] = v },
		}, nil

	default:
		return nil, value.NewError(value.SyntaxError, "invalid assignment target", target.Span())
	}
}

func (it *Interpreter) evalAssignStmt(n *ast.AssignStmt) (Result, error) {
	slot, err := it.resolveAssignTarget(n.Target)
	if err != nil {
		return Result{}, err
	}
	rhs, err := it.evalExpr(n.Value)
	if err != nil {
		return Result{}, err
	}
	if rhs.hasSignal() {
		return rhs, nil
	}

	cur, exists := slot.get()

	var newVal value.Value
	if n.Op == token.ASSIGN {
		newVal = rhs.Value
	} else {
		if !exists {
			return Result{}, value.NewError(value.ReferenceError, "undefined assignment target", n.Span())
		}
		binOp := n.Op.BinaryOpFor()
		newVal, err = it.applyBinary(binOp, cur, rhs.Value, n.Span())
		if err != nil {
			return Result{}, err
		}
	}

	if exists && cur.Kind() != value.KindNull && newVal.Kind() != value.KindNull && cur.Kind() != newVal.Kind() {
		return Result{}, value.NewError(value.TypeError,
			"cannot assign a "+newVal.Kind().String()+" to a variable holding a "+cur.Kind().String(), n.Span())
	}

	slot.set(newVal)
	return normal(value.Null), nil
}
