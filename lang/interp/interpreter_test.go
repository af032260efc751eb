package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tjbuckner/golox/lang/interp"
	"github.com/tjbuckner/golox/lang/parser"
	"github.com/tjbuckner/golox/lang/resolver"
	"github.com/tjbuckner/golox/lang/scanner"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := scanner.Scan("test.lox", []byte(src))
	require.NoError(t, err)
	chunk, err := parser.Parse("test.lox", toks)
	require.NoError(t, err)
	resolutions, err := resolver.Resolve("test.lox", chunk)
	require.NoError(t, err)

	var out bytes.Buffer
	in := interp.New(&out, resolutions)
	return out.String(), in.Interpret(chunk.Stmts)
}

func TestScopingAndClosureCaptureAtDeclarationTime(t *testing.T) {
	const src = `
	var a = "global";
	{
	  fun showA() { print a; }
	  showA();
	  var a = "block";
	  showA();
	}
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "global\nglobal\n", out)
}

func TestCounterClosure(t *testing.T) {
	const src = `
	fun makeCounter() {
	  var i = 0;
	  fun c() { i = i + 1; return i; }
	  return c;
	}
	var k = makeCounter();
	print k();
	print k();
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n", out)
}

func TestMethodAndBoundThis(t *testing.T) {
	const src = `
	class Person { sayName() { print this.name; } }
	var j = Person();
	j.name = "Jane";
	j.sayName();
	var m = j.sayName;
	m();
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "Jane\nJane\n", out)
}

func TestInitializerAlwaysReturnsInstance(t *testing.T) {
	const src = `
	class Foo { init() { print this; } }
	var f = Foo();
	print f.init();
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "Foo instance\nFoo instance\nFoo instance\n", out)
}

func TestSuperThroughTwoLevels(t *testing.T) {
	const src = `
	class A { m() { return "A"; } }
	class B < A { m() { return super.m() + "B"; } }
	class C < B { m() { return super.m() + "C"; } }
	print C().m();
	`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "ABC\n", out)
}

func TestForDesugarPrintsAscendingSequence(t *testing.T) {
	const src = `for (var i = 0; i < 3; i = i + 1) print i;`
	out, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestAndOrShortCircuitReturnOperandValue(t *testing.T) {
	out, err := run(t, `print nil and "unreached"; print nil or 17;`)
	require.NoError(t, err)
	require.Equal(t, "nil\n17\n", out)
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Division by zero.")
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print undefined_name;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Undefined variable 'undefined_name'.")
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

func TestTypeMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 + "x";`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Operands must be two numbers or two strings.")
}

func TestGettingPropertyOfNonInstanceIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; print x.foo;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Only instances have properties.")
}

func TestRuntimeErrorInsideInitializerPropagates(t *testing.T) {
	const src = `
	class Foo { init() { this.x = 1 / 0; } }
	var f = Foo();
	`
	_, err := run(t, src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Division by zero.")
}

func TestOrderingOfBoolAndNil(t *testing.T) {
	out, err := run(t, `
	print false < true;
	print true < false;
	print nil <= nil;
	`)
	require.NoError(t, err)
	require.Equal(t, "true\nfalse\ntrue\n", out)
}

func TestOrderingOfMismatchedTypesIsUnorderedNotError(t *testing.T) {
	out, err := run(t, `
	print 4 < "x";
	print true < 1;
	print nil < false;
	`)
	require.NoError(t, err)
	require.Equal(t, "false\nfalse\nfalse\n", out)
}
