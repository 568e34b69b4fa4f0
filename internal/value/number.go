package value

import (
	"github.com/nutmeg-lang/nutmeg/internal/token"
	"github.com/shopspring/decimal"
)

// maxSignificantDigits bounds Number's coefficient the way .NET's
// System.Decimal bounds its own: 28-29 significant decimal digits,
// integer part at most 96 bits.
const maxSignificantDigits = 29

// Number is the fixed-precision decimal variant. Arithmetic always
// normalizes (trims trailing zeros) and checks the result against
// maxSignificantDigits, failing with OverflowError past that point.
type Number struct {
	D decimal.Decimal
}

func NewNumber(d decimal.Decimal) Number { return Number{D: d.Normalize()} }

func (Number) Kind() Kind        { return KindNumber }
func (n Number) String() string  { return n.D.String() }

func (n Number) IsZero() bool       { return n.D.IsZero() }
func (n Number) IsInteger() bool    { return n.D.Equal(n.D.Truncate(0)) }
func (n Number) Sign() int          { return n.D.Sign() }

func checkOverflow(d decimal.Decimal, span token.Span, op string) (Number, error) {
	d = d.Normalize()
	if d.NumDigits() > maxSignificantDigits {
		return Number{}, NewError(OverflowError, op+" resulted in overflow", span)
	}
	return Number{D: d}, nil
}

func NumAdd(a, b Number, span token.Span) (Number, error) {
	return checkOverflow(a.D.Add(b.D), span, "addition")
}

func NumSub(a, b Number, span token.Span) (Number, error) {
	return checkOverflow(a.D.Sub(b.D), span, "subtraction")
}

func NumMul(a, b Number, span token.Span) (Number, error) {
	return checkOverflow(a.D.Mul(b.D), span, "multiplication")
}

// divToSignificantDigits rounds a/b to sig total significant digits
// rather than a fixed number of decimal places, so e.g. 10/3 lands on
// 3.3333333333333333333333333333 (29 significant digits) instead of
// being truncated after a fixed fractional width regardless of how
// many digits the integer part already used.
func divToSignificantDigits(a, b decimal.Decimal, sig int32) decimal.Decimal {
	if a.IsZero() {
		return a
	}
	intDigits := int32(a.DivRound(b, 0).Abs().NumDigits())
	if intDigits < 1 {
		intDigits = 1
	}
	places := sig - intDigits
	if places < 0 {
		places = 0
	}
	return a.DivRound(b, places)
}

func NumDiv(a, b Number, span token.Span) (Number, error) {
	if b.IsZero() {
		return Number{}, NewError(DivisionByZeroError, "cannot divide by zero", span)
	}
	return checkOverflow(divToSignificantDigits(a.D, b.D, maxSignificantDigits), span, "division")
}

func NumIntDiv(a, b Number, span token.Span) (Number, error) {
	if b.IsZero() {
		return Number{}, NewError(DivisionByZeroError, "cannot divide by zero", span)
	}
	result, err := checkOverflow(a.D.DivRound(b.D, maxSignificantDigits), span, "division")
	if err != nil {
		return Number{}, err
	}
	return checkOverflow(result.D.Truncate(0), span, "division")
}

func NumMod(a, b Number, span token.Span) (Number, error) {
	if b.IsZero() {
		return Number{}, NewError(DivisionByZeroError, "cannot divide by zero", span)
	}
	return checkOverflow(a.D.Mod(b.D), span, "modulo")
}

func NumPow(a, b Number, span token.Span) (Number, error) {
	result, err := a.D.PowWithPrecision(b.D, maxSignificantDigits)
	if err != nil {
		return Number{}, NewError(OverflowError, "power resulted in overflow", span)
	}
	return checkOverflow(result, span, "power")
}

// RepeatString validates the multiplier for `str * number` and
// returns the repeated string, grounded on the original's explicit
// fractional/negative checks before the repeat loop.
func RepeatString(s string, n Number, span token.Span) (string, error) {
	if !n.IsInteger() {
		return "", NewError(ValueError, "cannot multiply string with fractional number", span)
	}
	if n.Sign() < 0 {
		return "", NewError(ValueError, "cannot multiply string with negative number", span)
	}
	count := n.D.IntPart()
	out := make([]byte, 0, len(s)*int(count))
	for i := int64(0); i < count; i++ {
		out = append(out, s...)
	}
	return string(out), nil
}
