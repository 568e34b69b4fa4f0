package nutmeg_test

import (
	"bytes"
	"testing"

	"github.com/nutmeg-lang/nutmeg/pkg/nutmeg"
	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string) string {
	t.Helper()
	program, errs := nutmeg.Parse(src, "fixture.nut")
	require.Empty(t, errs, "unexpected parse errors")

	var buf bytes.Buffer
	err := nutmeg.Run(program, nutmeg.WithStdout(&buf), nutmeg.WithExit(func(int32) {}))
	require.NoError(t, err)
	return buf.String()
}

func TestCompoundAssignmentChain(t *testing.T) {
	out := runSource(t, `
var start = 12
print(start + ' ')

start  +=  2; print(start + ' ') // 14
start  -=  4; print(start + ' ') // 10
start  *=  2; print(start + ' ') // 20
start  /=  2; print(start + ' ') // 10
start  %=  3; print(start + ' ') // 1
start   = 10; print(start + ' ') // 10
start  \=  3; print(start + ' ') // 3
start **=  3; print(start + ' ') // 27

var start = 'a'
print(start)
`)
	require.Equal(t, "12 14 10 20 10 1 10 3 27 a", out)
}

func TestOperatorTableScenario(t *testing.T) {
	out := runSource(t, `
print(10 + 3, '')
print(10 - 3, '')
print(10 * 3, '')
print(10 / 3, '')
print(10 % 3, '')
print(10 \ 3, '')
print(10 ** 3, '')

print(+5, '')
print(-5, '')
print(!5, '')

print(5 < 5, '')
print(5 <= 5, '')
print(5 > 5, '')
print(5 >= 5, '')
print(5 == 5, '')
print(5 != 5, '')
print(false | true, '')
print(false & true, '')
`)
	require.Equal(t, "13 7 30 3.3333333333333333333333333333 1 3 1000 5 -5 false false true false true true false true false ", out)
}

func TestLoopsTerminateAndProduceNoOutput(t *testing.T) {
	out := runSource(t, `
var i = 0
loop { if (i > 50) break; i += 1 }
var i = 0
while (i <= 50) { i += 1 }
var i = 0
while (i <= 50) i += 1
for (i in 0..=50) { continue; 10/0 }
`)
	require.Equal(t, "", out)
}

func TestFunVariantsAllReturnSeven(t *testing.T) {
	out := runSource(t, `
fun a(a, b) return a + b
print(a(3, 4), '')
fun a(a, b) { return a + b; 10/0 }
print(a(3, 4), '')
fun a(a, b) a + b
print(a(3, 4), '')
fun a(a, b) { a + b }
print(a(3, 4), '')

var a = fun(a, b) return a + b
print(a(3, 4), '')
var a = fun(a, b) { return a + b; 10/0 }
print(a(3, 4), '')
`)
	require.Equal(t, "7 7 7 7 7 7 ", out)
}

func TestNestedBlockScopesShadowAndUnwind(t *testing.T) {
	out := runSource(t, `
var a = 1
var b = 2
var c = 3
{
    var a = 4
    var b = 5
    {
        var a = 6
        print(a)
        print(b)
        print(c)
        print(answer)
    }
    print(a)
    print(b)
    print(c)
    print(answer)
}
print(a)
print(b)
print(c)
print(answer)
`)
	require.Equal(t, "653424534212342", out)
}

func TestCommentsAreIgnoredByParser(t *testing.T) {
	out := runSource(t, `
print('a') // $ ; print('a')
print(/| comment $ |/ 'b') /|
comment
comment
|/
print('c')
`)
	require.Equal(t, "abc", out)
}
