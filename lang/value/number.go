package value

import (
	"math"
	"strconv"

	"github.com/tjbuckner/golox/lang/token"
)

// Number is Lox's only numeric type, a double-precision float.
type Number float64

var (
	_ Value     = Number(0)
	_ Ordered   = Number(0)
	_ HasBinary = Number(0)
	_ HasUnary  = Number(0)
)

func (n Number) Type() string { return "number" }
func (n Number) Truth() bool  { return true } // every number is truthy, including 0

// String prints the shortest round-trip decimal, without a trailing ".0"
// when n is an integer within float64's exact integer range.
func (n Number) String() string {
	f := float64(n)
	if f == math.Trunc(f) && math.Abs(f) < (1<<53) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (n Number) Cmp(y Value) int {
	o := float64(y.(Number))
	f := float64(n)
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	default:
		return 0
	}
}

// Unary implements -number. !number is handled generically by the evaluator
// via Truth, since negation-by-truthiness applies to every value, not just
// numbers.
func (n Number) Unary(op token.Token) (Value, bool) {
	if op == token.MINUS {
		return -n, true
	}
	return nil, false
}

// Binary implements the arithmetic operators. Division by zero is reported
// by the evaluator, not here: this method only declines on a type mismatch.
func (n Number) Binary(op token.Token, y Value, side Side) (Value, bool) {
	o, ok := y.(Number)
	if !ok {
		return nil, false
	}
	a, b := n, o
	if side == Right {
		a, b = o, n
	}
	switch op {
	case token.PLUS:
		return a + b, true
	case token.MINUS:
		return a - b, true
	case token.STAR:
		return a * b, true
	case token.SLASH:
		return a / b, true
	}
	return nil, false
}
