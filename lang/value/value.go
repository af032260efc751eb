// Package value defines the runtime representation of every value golox's
// evaluator manipulates: numbers, strings, booleans, nil, functions, classes
// and instances. The interface shape -- a minimal Value plus optional
// capability interfaces for operators and attributes -- is grounded on the
// teacher's lang/types package; the capability set is trimmed to what Lox
// actually needs (no Freeze, no Iterable/Sequence/Mapping, since Lox has no
// collections and this interpreter never publishes values across threads).
package value

import "github.com/tjbuckner/golox/lang/token"

// Value is implemented by every value the evaluator produces or consumes.
type Value interface {
	// String returns the value's display form, as printed by the `print`
	// statement and shown in error messages.
	String() string
	// Type names the value's type, e.g. "number", "string", "nil".
	Type() string
	// Truth reports whether the value is truthy. Lox's rule: nil and the
	// boolean false are falsy, everything else is truthy.
	Truth() bool
}

// Side indicates whether a HasBinary receiver is the left or right operand.
type Side bool

const (
	Left  Side = false
	Right Side = true
)

// HasBinary is implemented by values that participate in binary operators.
// An implementation that does not recognize op or the type of y returns
// (nil, false) so the caller can report a type-mismatch error; it must not
// assume y shares its own type.
type HasBinary interface {
	Value
	Binary(op token.Token, y Value, side Side) (Value, bool)
}

// HasUnary is implemented by values that participate in unary operators.
type HasUnary interface {
	Value
	Unary(op token.Token) (Value, bool)
}

// Ordered is implemented by values with a total order, used for <, <=, >, >=.
// Cmp returns negative, zero or positive as x is less than, equal to, or
// greater than y. The caller guarantees y has the same concrete type as x.
type Ordered interface {
	Value
	Cmp(y Value) int
}

// HasAttrs is implemented by values with named members reachable through a
// dot expression (instances, bound methods via Get on Instance).
type HasAttrs interface {
	Value
	Attr(name string) (Value, bool)
}

// Callable is implemented by values that may appear as the callee of a call
// expression: functions, classes (calling a class constructs an instance)
// and natives such as clock.
type Callable interface {
	Value
	Arity() int
	// Call invokes the value with args, which has already been checked
	// against Arity. call is the evaluator's own call-back into itself,
	// abstracted so this package does not import lang/interp.
	Call(call Caller, args []Value) (Value, error)
}

// Env is the subset of lang/interp's Environment that a closure needs to
// capture: a handle onto the scope chain live when the function was
// declared. Defined here, instead of importing lang/interp, so this package
// has no dependency on the evaluator that consumes it.
type Env interface {
	Define(name string, v Value)
	// Child returns a new environment nested directly inside this one, used
	// to bind "this" (and "super") when a method is bound to an instance.
	Child() Env
}

// Caller is the subset of the evaluator a Callable needs to run a function
// body: it executes a block of statements in a fresh environment anchored to
// closure, binding params to args first, and reports a return statement (if
// any) by way of the evaluator's own control-flow error. Defined here, not
// in lang/interp, so lang/value never imports its caller.
type Caller interface {
	CallFunction(fn *Function, args []Value) (Value, error)
}

// Equal reports whether x and y are equal under Lox's == operator: value
// equality for numbers, strings and booleans, nil only equals nil, and
// reference equality for everything else (functions, classes, instances).
func Equal(x, y Value) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if x.Type() != y.Type() {
		return false
	}
	switch xv := x.(type) {
	case Number:
		return xv == y.(Number)
	case String:
		return xv == y.(String)
	case Bool:
		return xv == y.(Bool)
	case Nil:
		return true
	default:
		return x == y
	}
}
