package value

// Equal implements structural equality over all variants; cross-type
// comparisons are never equal, with no coercion between them.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.D.Equal(bv.D)
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case Range:
		bv, ok := b.(Range)
		return ok && av == bv
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *BuiltIn:
		bv, ok := b.(*BuiltIn)
		return ok && av == bv
	case *Class:
		bv, ok := b.(*Class)
		return ok && av == bv
	case *Object:
		bv, ok := b.(*Object)
		return ok && av == bv
	default:
		return false
	}
}

// Compare defines <, <=, >, >= which are only valid Number x Number;
// ok is false for any other pairing.
func Compare(a, b Value) (cmp int, ok bool) {
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if !aok || !bok {
		return 0, false
	}
	return an.D.Cmp(bn.D), true
}
