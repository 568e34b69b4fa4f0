package value

import (
	"testing"

	"github.com/nutmeg-lang/nutmeg/internal/token"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(s string) Number {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return NewNumber(d)
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(num("0")))
	assert.True(t, Truthy(num("1")))
	assert.True(t, Truthy(Bool(true)))
	assert.False(t, Truthy(Bool(false)))
	assert.False(t, Truthy(Str("")))
	assert.True(t, Truthy(Str("x")))
	assert.False(t, Truthy(Null))
	assert.False(t, Truthy(NewRange(5, 5, true)))
	assert.True(t, Truthy(NewRange(5, 6, true)))
}

func TestEqualCrossTypeNeverEqual(t *testing.T) {
	assert.False(t, Equal(num("1"), Str("1")))
	assert.False(t, Equal(Bool(true), num("1")))
	assert.True(t, Equal(num("1.0"), num("1")))
	assert.True(t, Equal(Null, NullValue{}))
}

func TestCompareOnlyDefinedForNumbers(t *testing.T) {
	_, ok := Compare(Str("a"), Str("b"))
	assert.False(t, ok)

	cmp, ok := Compare(num("1"), num("2"))
	require.True(t, ok)
	assert.Negative(t, cmp)
}

func TestRangeBoundaryBehaviors(t *testing.T) {
	assert.Equal(t, []int64{3}, NewRange(3, 3, true).Values())
	assert.Equal(t, []int64{5, 4, 3}, NewRange(5, 3, false).Values())
	assert.Equal(t, []int64{5, 4, 3}, NewRange(5, 3, true).Values())
	assert.Equal(t, []int64{3, 4}, NewRange(3, 5, false).Values())
	assert.Equal(t, []int64{3, 4, 5}, NewRange(3, 5, true).Values())
}

func TestDivisionByZero(t *testing.T) {
	span := token.Span{}
	_, err := NumDiv(num("1"), num("0"), span)
	requireErrKind(t, err, DivisionByZeroError)

	_, err = NumMod(num("1"), num("0"), span)
	requireErrKind(t, err, DivisionByZeroError)

	_, err = NumIntDiv(num("1"), num("0"), span)
	requireErrKind(t, err, DivisionByZeroError)
}

func TestRepeatString(t *testing.T) {
	span := token.Span{}

	s, err := RepeatString("ab", num("0"), span)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = RepeatString("ab", num("3"), span)
	require.NoError(t, err)
	assert.Equal(t, "ababab", s)

	_, err = RepeatString("ab", num("-1"), span)
	requireErrKind(t, err, ValueError)

	_, err = RepeatString("ab", num("1.5"), span)
	requireErrKind(t, err, ValueError)
}

func TestCloneDeepCopiesObjectNotNumber(t *testing.T) {
	span := token.Span{}

	obj := &Object{Members: map[string]Value{"x": num("1")}}
	cloned, _, err := CallCommonMethod(obj, "clone", nil, span)
	require.NoError(t, err)
	clonedObj := cloned.(*Object)
	clonedObj.Members["x"] = num("99")
	assert.True(t, Equal(obj.Members["x"], num("1")), "mutating the clone must not affect the original")

	n := num("5")
	clonedNum, _, err := CallCommonMethod(n, "clone", nil, span)
	require.NoError(t, err)
	assert.True(t, Equal(clonedNum, n))
}

func requireErrKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	re, ok := err.(*RuntimeError)
	require.True(t, ok, "expected *RuntimeError, got %T", err)
	assert.Equal(t, kind, re.Kind)
}
