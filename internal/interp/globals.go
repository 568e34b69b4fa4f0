package interp

import (
	"io"
	"strings"

	"github.com/nutmeg-lang/nutmeg/internal/value"
	"github.com/shopspring/decimal"
)

func (it *Interpreter) registerGlobals() {
	it.define("print", &value.BuiltIn{Name: "print", Fn: it.builtinPrint(false)})
	it.define("printl", &value.BuiltIn{Name: "printl", Fn: it.builtinPrint(true)})
	it.define("typeOf", &value.BuiltIn{Name: "typeOf", Fn: builtinTypeOf})
	it.define("exit", &value.BuiltIn{Name: "exit", Fn: it.builtinExit})
	it.define("answer", value.NewNumber(decimal.NewFromInt(42)))
}

// builtinPrint writes its arguments' string forms, space-joined, to
// the injected output sink; printl additionally appends a newline.
func (it *Interpreter) builtinPrint(newline bool) func([]value.Value, value.CallContext) (value.Value, error) {
	return func(args []value.Value, call value.CallContext) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		text := strings.Join(parts, " ")
		if newline {
			text += "\n"
		}
		if _, err := io.WriteString(it.out, text); err != nil {
			return nil, value.NewError(value.ValueError, "write failed: "+err.Error(), call.Span)
		}
		return value.Null, nil
	}
}

func builtinTypeOf(args []value.Value, call value.CallContext) (value.Value, error) {
	if len(args) != 1 {
		return nil, value.NewError(value.TypeError, "typeOf expects exactly one argument", call.Span)
	}
	return value.Str(args[0].Kind().String()), nil
}

func (it *Interpreter) builtinExit(args []value.Value, call value.CallContext) (value.Value, error) {
	code := int32(0)
	if len(args) > 0 {
		n, ok := args[0].(value.Number)
		if !ok {
			return nil, value.NewError(value.TypeError, "exit expects a number", call.Span)
		}
		code = int32(n.D.IntPart())
	}
	it.exit(code)
	return value.Null, nil
}
