package ast

import (
	"fmt"

	"github.com/tjbuckner/golox/lang/token"
)

type (
	// ExprStmt is an expression evaluated for its side effect (e.g. a call).
	ExprStmt struct {
		X Expr
	}

	// PrintStmt is the built-in `print expr;` statement.
	PrintStmt struct {
		Start token.Pos
		X     Expr
	}

	// VarStmt declares a new variable, e.g. `var x = 1;` or `var x;`. Init is
	// nil when no initializer was given, in which case the variable is bound
	// to nil.
	VarStmt struct {
		Start token.Pos
		Name  string
		Init  Expr // may be nil
	}

	// IfStmt is `if (cond) then [else else_]`. Else is nil when there is no
	// else branch.
	IfStmt struct {
		Start token.Pos
		Cond  Expr
		Then  Stmt
		Else  Stmt // may be nil
	}

	// WhileStmt is `while (cond) body`. for loops are desugared into this at
	// parse time.
	WhileStmt struct {
		Start token.Pos
		Cond  Expr
		Body  Stmt
	}

	// FunStmt declares a named function, or a method when it appears inside a
	// ClassStmt's Methods.
	FunStmt struct {
		Start  token.Pos
		Name   string
		Params []string
		Body   []Stmt
		End    token.Pos
	}

	// ReturnStmt is `return [expr];`. X is nil for a bare return.
	ReturnStmt struct {
		Start token.Pos
		X     Expr // may be nil
	}

	// ClassStmt declares a class, with an optional superclass and zero or more
	// methods.
	ClassStmt struct {
		Start      token.Pos
		Name       string
		Superclass *Variable // may be nil
		Methods    []*FunStmt
		End        token.Pos
	}
)

func (n *ExprStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "expr stmt", nil) }
func (n *ExprStmt) Span() (start, end token.Pos)  { return n.X.Span() }
func (n *ExprStmt) Walk(v Visitor)                { Walk(v, n.X) }
func (n *ExprStmt) stmt()                         {}

func (n *PrintStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "print", nil) }
func (n *PrintStmt) Span() (start, end token.Pos) {
	_, end = n.X.Span()
	return n.Start, end
}
func (n *PrintStmt) Walk(v Visitor) { Walk(v, n.X) }
func (n *PrintStmt) stmt()          {}

func (n *VarStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "var "+n.Name, nil) }
func (n *VarStmt) Span() (start, end token.Pos) {
	end = n.Start
	if n.Init != nil {
		_, end = n.Init.Span()
	}
	return n.Start, end
}
func (n *VarStmt) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
}
func (n *VarStmt) stmt() {}

func (n *IfStmt) Format(f fmt.State, verb rune) {
	hasElse := 0
	if n.Else != nil {
		hasElse = 1
	}
	format(f, verb, n, "if", map[string]int{"else": hasElse})
}
func (n *IfStmt) Span() (start, end token.Pos) {
	_, end = n.Then.Span()
	if n.Else != nil {
		_, end = n.Else.Span()
	}
	return n.Start, end
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *IfStmt) stmt() {}

func (n *WhileStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "while", nil) }
func (n *WhileStmt) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Start, end
}
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *WhileStmt) stmt() {}

func (n *FunStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "fun "+n.Name, map[string]int{"params": len(n.Params)})
}
func (n *FunStmt) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *FunStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *FunStmt) stmt() {}

func (n *ReturnStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "return", nil) }
func (n *ReturnStmt) Span() (start, end token.Pos) {
	end = n.Start
	if n.X != nil {
		_, end = n.X.Span()
	}
	return n.Start, end
}
func (n *ReturnStmt) Walk(v Visitor) {
	if n.X != nil {
		Walk(v, n.X)
	}
}
func (n *ReturnStmt) stmt() {}

func (n *ClassStmt) Format(f fmt.State, verb rune) {
	inherits := 0
	if n.Superclass != nil {
		inherits = 1
	}
	format(f, verb, n, "class "+n.Name, map[string]int{
		"inherits": inherits,
		"methods":  len(n.Methods),
	})
}
func (n *ClassStmt) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *ClassStmt) stmt() {}
