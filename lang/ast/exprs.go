package ast

import (
	"fmt"

	"github.com/tjbuckner/golox/lang/token"
)

// IsAssignable returns true if e is a valid assignment target: a bare
// identifier or a property access (the left-hand side of a Set expression).
func IsAssignable(e Expr) bool {
	switch e.(type) {
	case *Variable, *Get:
		return true
	default:
		return false
	}
}

type (
	// Literal represents a number, string, boolean or nil literal.
	Literal struct {
		Start token.Pos
		Raw   string      // uninterpreted source text
		Value interface{} // float64 | string | bool | nil
	}

	// Variable represents a bare identifier used as an expression.
	Variable struct {
		Start token.Pos
		Name  string
	}

	// This represents the `this` keyword used inside a method body.
	This struct {
		Start token.Pos
	}

	// Super represents a `super.method` expression.
	Super struct {
		Start  token.Pos
		Method string
	}

	// Assign represents `name = value`.
	Assign struct {
		Start token.Pos
		Name  string
		Value Expr
	}

	// Grouping represents a parenthesized expression.
	Grouping struct {
		Lparen token.Pos
		Expr   Expr
		Rparen token.Pos
	}

	// Unary represents a unary operator expression, e.g. -x or !x.
	Unary struct {
		Op    token.Token
		Start token.Pos
		Right Expr
	}

	// Binary represents a binary operator expression, e.g. x + y.
	Binary struct {
		Left  Expr
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// Logical represents `and`/`or`, which short-circuit unlike other binary
	// operators and so are kept distinct from Binary.
	Logical struct {
		Left  Expr
		Op    token.Token // AND or OR
		OpPos token.Pos
		Right Expr
	}

	// Call represents a function or method call, e.g. f(a, b).
	Call struct {
		Callee Expr
		Paren  token.Pos // position of the closing ')', used for runtime error lines
		Args   []Expr
	}

	// Get represents a property access, e.g. obj.field.
	Get struct {
		Object Expr
		Dot    token.Pos
		Name   string
	}

	// Set represents a property assignment, e.g. obj.field = value.
	Set struct {
		Object Expr
		Dot    token.Pos
		Name   string
		Value  Expr
	}
)

func (n *Literal) Format(f fmt.State, verb rune) { format(f, verb, n, "literal "+n.Raw, nil) }
func (n *Literal) Span() (start, end token.Pos)  { return n.Start, n.Start }
func (n *Literal) Walk(_ Visitor)                {}
func (n *Literal) expr()                         {}

func (n *Variable) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name, nil) }
func (n *Variable) Span() (start, end token.Pos)  { return n.Start, n.Start }
func (n *Variable) Walk(_ Visitor)                {}
func (n *Variable) expr()                         {}

func (n *This) Format(f fmt.State, verb rune) { format(f, verb, n, "this", nil) }
func (n *This) Span() (start, end token.Pos)  { return n.Start, n.Start }
func (n *This) Walk(_ Visitor)                {}
func (n *This) expr()                         {}

func (n *Super) Format(f fmt.State, verb rune) { format(f, verb, n, "super."+n.Method, nil) }
func (n *Super) Span() (start, end token.Pos)  { return n.Start, n.Start }
func (n *Super) Walk(_ Visitor)                {}
func (n *Super) expr()                         {}

func (n *Assign) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name+" = ", nil) }
func (n *Assign) Span() (start, end token.Pos) {
	_, end = n.Value.Span()
	return n.Start, end
}
func (n *Assign) Walk(v Visitor) { Walk(v, n.Value) }
func (n *Assign) expr()          {}

func (n *Grouping) Format(f fmt.State, verb rune) { format(f, verb, n, "(expr)", nil) }
func (n *Grouping) Span() (start, end token.Pos)  { return n.Lparen, n.Rparen }
func (n *Grouping) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *Grouping) expr()                         {}

func (n *Unary) Format(f fmt.State, verb rune) { format(f, verb, n, "unary "+n.Op.GoString(), nil) }
func (n *Unary) Span() (start, end token.Pos) {
	_, end = n.Right.Span()
	return n.Start, end
}
func (n *Unary) Walk(v Visitor) { Walk(v, n.Right) }
func (n *Unary) expr()          {}

func (n *Binary) Format(f fmt.State, verb rune) { format(f, verb, n, "binary "+n.Op.GoString(), nil) }
func (n *Binary) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *Binary) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *Binary) expr() {}

func (n *Logical) Format(f fmt.State, verb rune) {
	format(f, verb, n, "logical "+n.Op.GoString(), nil)
}
func (n *Logical) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *Logical) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *Logical) expr() {}

func (n *Call) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *Call) Span() (start, end token.Pos) {
	start, _ = n.Callee.Span()
	return start, n.Paren
}
func (n *Call) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *Call) expr() {}

func (n *Get) Format(f fmt.State, verb rune) { format(f, verb, n, "expr."+n.Name, nil) }
func (n *Get) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	return start, n.Dot
}
func (n *Get) Walk(v Visitor) { Walk(v, n.Object) }
func (n *Get) expr()          {}

func (n *Set) Format(f fmt.State, verb rune) { format(f, verb, n, "expr."+n.Name+" = ", nil) }
func (n *Set) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	_, end = n.Value.Span()
	return start, end
}
func (n *Set) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *Set) expr() {}
