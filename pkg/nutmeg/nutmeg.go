// Package nutmeg is the embeddable front door to the language: parse
// source into an AST, then run that AST against an interpreter whose
// output sink and exit behavior the host controls.
package nutmeg

import (
	"io"
	"os"

	"github.com/nutmeg-lang/nutmeg/internal/ast"
	"github.com/nutmeg-lang/nutmeg/internal/interp"
	"github.com/nutmeg-lang/nutmeg/internal/lexer"
	"github.com/nutmeg-lang/nutmeg/internal/parser"
)

// ParseError is a user-facing, already-formatted syntax error. It
// never escapes the package wrapped, so hosts can type-assert it to
// inspect its Span directly.
type ParseError = parser.ParseError

// Parse lexes and parses source, returning every syntax error found
// rather than stopping at the first one.
func Parse(source, filename string) (*ast.Program, []error) {
	l := lexer.New(source, filename)
	p := parser.New(l)
	program, errs := p.ParseProgram()
	if len(errs) == 0 {
		return program, nil
	}
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return program, out
}

// Option configures a Run invocation.
type Option func(*config)

type config struct {
	out     io.Writer
	exit    func(int32)
	globals map[string]interp.GlobalBinding
}

// WithStdout overrides the writer print/printl write to; the default
// is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithExit overrides the callback exit(code) invokes; the default
// calls os.Exit directly. Hosts embedding the interpreter in a
// longer-lived process should supply one that returns control instead
// (e.g. by panicking with a sentinel and recovering around Run).
func WithExit(fn func(int32)) Option {
	return func(c *config) { c.exit = fn }
}

// WithGlobal binds an additional name into the interpreter's global
// frame before Run starts, alongside print/printl/typeOf/exit/answer.
func WithGlobal(name string, fn interp.GlobalBinding) Option {
	return func(c *config) {
		if c.globals == nil {
			c.globals = map[string]interp.GlobalBinding{}
		}
		c.globals[name] = fn
	}
}

// Run evaluates a parsed program to completion or the first runtime
// error.
func Run(program *ast.Program, opts ...Option) error {
	c := &config{out: os.Stdout, exit: func(code int32) { os.Exit(int(code)) }}
	for _, opt := range opts {
		opt(c)
	}
	it := interp.New(c.out, c.exit)
	for name, fn := range c.globals {
		it.DefineGlobal(name, fn)
	}
	return it.Run(program)
}
