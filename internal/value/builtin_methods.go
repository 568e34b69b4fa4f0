package value

import (
	"strconv"
	"strings"

	"github.com/nutmeg-lang/nutmeg/internal/token"
	"github.com/shopspring/decimal"
)

// CallCommonMethod dispatches the built-in methods available on
// every value (toString, toBool, clone) plus per-type extras (String:
// toInt/toNumber/toBoolStrict/toRange/toUppercase/toLowercase; Number:
// toInt/floor/ceil/round). found is false when name is not one of
// these, so the caller can fall back to field lookup / ReferenceError.
func CallCommonMethod(recv Value, name string, args []Value, span token.Span) (result Value, found bool, err error) {
	switch name {
	case "toString":
		return Str(recv.String()), true, nil
	case "toBool":
		return Bool(Truthy(recv)), true, nil
	case "clone":
		return cloneValue(recv), true, nil
	}

	if s, ok := recv.(Str); ok {
		if v, found, err := callStringMethod(s, name, args, span); found {
			return v, true, err
		}
	}
	if n, ok := recv.(Number); ok {
		if v, found, err := callNumberMethod(n, name, args, span); found {
			return v, true, err
		}
	}
	return nil, false, nil
}

func cloneValue(v Value) Value {
	switch vv := v.(type) {
	case *Object:
		return vv.Clone()
	case *Class:
		return vv.Clone()
	default:
		// Number, Bool, Str, NullValue, Range are plain Go values and
		// are already copied at the call site; Function/BuiltIn carry
		// no mutable state to copy.
		return v
	}
}

func callStringMethod(s Str, name string, args []Value, span token.Span) (Value, bool, error) {
	switch name {
	case "toInt":
		radix := 10
		if len(args) > 0 {
			n, ok := args[0].(Number)
			if !ok || !n.IsInteger() {
				return nil, true, NewError(TypeError, "toInt radix must be an integer number", span)
			}
			radix = int(n.D.IntPart())
		}
		i, err := strconv.ParseInt(strings.TrimSpace(string(s)), radix, 64)
		if err != nil {
			return nil, true, NewError(ValueError, "cannot parse '"+string(s)+"' as an integer", span)
		}
		return NewNumber(decimal.NewFromInt(i)), true, nil
	case "toNumber":
		d, err := decimal.NewFromString(strings.TrimSpace(string(s)))
		if err != nil {
			return nil, true, NewError(ValueError, "cannot parse '"+string(s)+"' as a number", span)
		}
		return NewNumber(d), true, nil
	case "toBoolStrict":
		switch string(s) {
		case "true":
			return Bool(true), true, nil
		case "false":
			return Bool(false), true, nil
		default:
			return nil, true, NewError(ValueError, "cannot parse '"+string(s)+"' as a bool", span)
		}
	case "toRange":
		parts := strings.SplitN(string(s), "..", 2)
		if len(parts) != 2 {
			return nil, true, NewError(ValueError, "cannot parse '"+string(s)+"' as a range", span)
		}
		inclusive := strings.HasPrefix(parts[1], "=")
		endPart := strings.TrimPrefix(parts[1], "=")
		start, err1 := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		end, err2 := strconv.ParseInt(strings.TrimSpace(endPart), 10, 64)
		if err1 != nil || err2 != nil {
			return nil, true, NewError(ValueError, "cannot parse '"+string(s)+"' as a range", span)
		}
		return NewRange(start, end, inclusive), true, nil
	case "toUppercase":
		return Str(strings.ToUpper(string(s))), true, nil
	case "toLowercase":
		return Str(strings.ToLower(string(s))), true, nil
	}
	return nil, false, nil
}

func callNumberMethod(n Number, name string, args []Value, span token.Span) (Value, bool, error) {
	switch name {
	case "toInt":
		return NewNumber(n.D.Truncate(0)), true, nil
	case "floor":
		return NewNumber(n.D.Floor()), true, nil
	case "ceil":
		return NewNumber(n.D.Ceil()), true, nil
	case "round":
		return NewNumber(n.D.Round(0)), true, nil
	}
	return nil, false, nil
}
