package value

import "github.com/tjbuckner/golox/lang/token"

// String is Lox's text-string type: an immutable sequence of bytes, printed
// without surrounding quotes (spec.md's output-format table). Lox has no
// escape sequences, so unlike Go string literals the bytes are exactly what
// the source contained between the quotes.
type String string

var (
	_ Value     = String("")
	_ Ordered   = String("")
	_ HasBinary = String("")
)

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truth() bool    { return true } // even "" is truthy in Lox

func (s String) Cmp(y Value) int {
	o := string(y.(String))
	str := string(s)
	switch {
	case str < o:
		return -1
	case str > o:
		return 1
	default:
		return 0
	}
}

// Binary implements string+string concatenation; every other operator is a
// type mismatch the evaluator reports.
func (s String) Binary(op token.Token, y Value, side Side) (Value, bool) {
	if op != token.PLUS {
		return nil, false
	}
	o, ok := y.(String)
	if !ok {
		return nil, false
	}
	if side == Right {
		return o + s, true
	}
	return s + o, true
}
