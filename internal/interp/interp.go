// Package interp implements the evaluator: a recursive walker over
// the AST that threads a RuntimeResult control signal through every
// statement and expression, operating against a stack of lexical
// scopes rooted at a pre-populated global frame.
package interp

import (
	"io"

	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/value"
)

// scope is one frame of the environment: a mapping from identifier to
// Value. var always binds in the current top frame.
type scope map[string]value.Value

// Interpreter owns one logical thread of control; it is not safe to
// call Run concurrently, and no state crosses interpreter instances.
type Interpreter struct {
	scopes []scope
	out    io.Writer
	exit   func(int32)
}

// New creates an Interpreter whose global frame (index 0) is
// pre-populated with print, printl, typeOf, exit, and answer. out is
// the injected output sink for print/printl; exitFn is invoked when
// the program calls exit(code).
func New(out io.Writer, exitFn func(int32)) *Interpreter {
	it := &Interpreter{out: out, exit: exitFn}
	it.scopes = []scope{{}}
	it.registerGlobals()
	return it
}

// Run evaluates every top-level statement in source order. The first
// error aborts the program; the evaluator never catches errors
// internally. A stray break/continue/return at top level (outside any
// loop or function) simply ends evaluation early rather than
// producing an error, since the core has no outer loop/function frame
// to report the misuse against.
func (it *Interpreter) Run(prog *ast.Program) error {
	for _, stmt := range prog.Statements {
		res, err := it.evalStatement(stmt)
		if err != nil {
			return err
		}
		if res.hasSignal() {
			return nil
		}
	}
	return nil
}

func (it *Interpreter) pushScope() { it.scopes = append(it.scopes, scope{}) }

func (it *Interpreter) popScope() { it.scopes = it.scopes[:len(it.scopes)-1] }

func (it *Interpreter) top() scope { return it.scopes[len(it.scopes)-1] }

// define binds name in the current top frame, shadowing any outer
// binding without modifying it.
func (it *Interpreter) define(name string, v value.Value) {
	it.top()[name] = v
}

// GlobalBinding is a host-supplied function exposed as a built-in.
// Embedders use it via pkg/nutmeg's WithGlobal to extend the global
// frame beyond print/printl/typeOf/exit/answer.
type GlobalBinding func(args []value.Value, call value.CallContext) (value.Value, error)

// DefineGlobal binds name in the global frame (index 0) to a host
// function, overwriting any existing binding of the same name.
func (it *Interpreter) DefineGlobal(name string, fn GlobalBinding) {
	it.scopes[0][name] = &value.BuiltIn{Name: name, Fn: fn}
}

// lookup resolves name walking from the innermost frame to the
// global frame at index 0.
func (it *Interpreter) lookup(name string) (value.Value, int, bool) {
	for i := len(it.scopes) - 1; i >= 0; i-- {
		if v, ok := it.scopes[i][name]; ok {
			return v, i, true
		}
	}
	return nil, -1, false
}
