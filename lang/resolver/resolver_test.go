package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tjbuckner/golox/lang/ast"
	"github.com/tjbuckner/golox/lang/parser"
	"github.com/tjbuckner/golox/lang/resolver"
	"github.com/tjbuckner/golox/lang/scanner"
)

// resolveSrc runs the full scan -> parse -> resolve pipeline, the same
// full-pipeline style original_source's resolver test table uses, rather
// than constructing ASTs by hand.
func resolveSrc(t *testing.T, src string) (*ast.Chunk, resolver.Resolutions, error) {
	t.Helper()
	toks, err := scanner.Scan("test.lox", []byte(src))
	require.NoError(t, err)
	chunk, err := parser.Parse("test.lox", toks)
	require.NoError(t, err)
	res, rerr := resolver.Resolve("test.lox", chunk)
	return chunk, res, rerr
}

func TestResolverClosureShadowing(t *testing.T) {
	// the classic closure/shadowing scenario: the inner `var a` shadows the
	// outer one, and each read resolves to depth 0 within its own block.
	const src = `
	var a = "global";
	{
	  var a = "outer";
	  {
	    var a = "inner";
	    print a;
	  }
	  print a;
	}
	`
	chunk, res, err := resolveSrc(t, src)
	require.NoError(t, err)

	outerBlock := chunk.Stmts[1].(*ast.Block)
	innerBlock := outerBlock.Stmts[1].(*ast.Block)

	innerPrint := innerBlock.Stmts[1].(*ast.PrintStmt)
	require.Equal(t, 0, res[innerPrint.X])

	outerPrint := outerBlock.Stmts[2].(*ast.PrintStmt)
	require.Equal(t, 0, res[outerPrint.X])
}

func TestResolverClosureCapturesDefiningScope(t *testing.T) {
	const src = `
	fun makeCounter() {
	  var count = 0;
	  fun counter() {
	    count = count + 1;
	    return count;
	  }
	  return counter;
	}
	`
	chunk, res, err := resolveSrc(t, src)
	require.NoError(t, err)

	outer := chunk.Stmts[0].(*ast.FunStmt)
	inner := outer.Body[1].(*ast.FunStmt)
	assign := inner.Body[0].(*ast.ExprStmt).X.(*ast.Assign)
	require.Equal(t, 1, res[assign])
}

func TestResolverGlobalLeftUnresolved(t *testing.T) {
	chunk, res, err := resolveSrc(t, `var x = 1; print x;`)
	require.NoError(t, err)
	ps := chunk.Stmts[1].(*ast.PrintStmt)
	_, ok := res[ps.X]
	require.False(t, ok, "global reference should not be in the resolution map")
}

func TestResolverDoubleDeclarationError(t *testing.T) {
	_, _, err := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Already a variable with this name in this scope.")
}

func TestResolverReadInOwnInitializerError(t *testing.T) {
	_, _, err := resolveSrc(t, `{ var a = a; }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't read local variable in its own initializer.")
}

func TestResolverReturnOutsideFunctionError(t *testing.T) {
	_, _, err := resolveSrc(t, `return 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't return from top-level code.")
}

func TestResolverReturnValueFromInitializerError(t *testing.T) {
	_, _, err := resolveSrc(t, `class A { init() { return 1; } }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't return a value from an initializer.")
}

func TestResolverThisOutsideClassError(t *testing.T) {
	_, _, err := resolveSrc(t, `print this;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't use 'this' outside of a class.")
}

func TestResolverSuperOutsideSubclassError(t *testing.T) {
	_, _, err := resolveSrc(t, `class A { m() { return super.m(); } }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't use 'super' in a class with no superclass.")
}

func TestResolverSelfInheritanceError(t *testing.T) {
	_, _, err := resolveSrc(t, `class A < A {}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "A class can't inherit from itself.")
}

func TestResolverValidSuperThroughTwoLevels(t *testing.T) {
	const src = `
	class A { m() { return "A"; } }
	class B < A { m() { return super.m(); } }
	class C < B { m() { return super.m(); } }
	`
	_, _, err := resolveSrc(t, src)
	require.NoError(t, err)
}
