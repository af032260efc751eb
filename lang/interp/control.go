package interp

import (
	"fmt"

	"github.com/tjbuckner/golox/lang/token"
	"github.com/tjbuckner/golox/lang/value"
)

// returnSignal unwinds a function call when a `return` statement runs. It
// implements error so it can travel through the same execStmt/evalExpr
// return paths as a genuine runtime error, and CallFunction type-asserts for
// it specifically to tell "the function returned" apart from "the function
// failed". Grounded on the teacher's own use of plain Go errors for
// non-local control flow (see DESIGN.md); no example repo in the pack reaches
// for a dedicated signal/result library for this.
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return outside of a function call" }

// RuntimeError is a failure during evaluation: a type mismatch, an
// undefined variable, division by zero, calling a non-callable value, or an
// arity mismatch. Pos is the position of the expression or statement that
// failed, used to build the spec's "[line N] Error: message" diagnostic.
type RuntimeError struct {
	Pos     token.Pos
	Message string
}

func (e *RuntimeError) Error() string { return fmt.Sprintf("[line %d] Error: %s", e.Pos, e.Message) }

func runtimeErrorf(pos token.Pos, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
