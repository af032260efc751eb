// Package resolver performs a static analysis pass between parsing and
// evaluation: it walks the AST once, tracking lexical scopes as a stack of
// maps exactly like the teacher's block-scoped analysis, but instead of
// classifying each binding as local/cell/free/predeclared/universal (needed
// for a bytecode backend), it records how many environments up the chain a
// variable reference must walk at run time - the depth-counting scheme used
// by original_source's resolve_local. The tree-walking evaluator in
// lang/interp looks up that depth in the map this package returns.
//
// The resolver also doubles as the static checker: double declaration in
// one scope, reading a local in its own initializer, return placement,
// this/super placement and self-inheritance are all reported here rather
// than discovered at run time.
package resolver

import (
	"github.com/tjbuckner/golox/lang/ast"
	"github.com/tjbuckner/golox/lang/token"
)

// Resolutions maps every Variable, Assign, This and Super expression node to
// the number of enclosing environments to walk to find its binding. An
// expression absent from the map refers to a global.
type Resolutions map[ast.Expr]int

// Resolve statically analyzes chunk, returning the resolution depths and any
// errors found. The returned error, if non-nil, is a token.ErrorList.
func Resolve(filename string, chunk *ast.Chunk) (Resolutions, error) {
	r := &resolver{
		filename:    filename,
		resolutions: make(Resolutions),
	}
	r.resolveStmts(chunk.Stmts)
	r.errors.Sort()
	return r.resolutions, r.errors.Err()
}

type resolver struct {
	filename    string
	scopes      []map[string]*varState
	resolutions Resolutions
	errors      token.ErrorList

	currentFunction FunctionKind
	currentClass    ClassKind
}

func (r *resolver) error(line token.Pos, msg string) {
	r.errors.Add(line.Position(r.filename), msg)
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, map[string]*varState{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare introduces name in the innermost scope as not-yet-defined. At
// global scope (no open scopes) declarations are not tracked at all: globals
// are resolved dynamically by the evaluator, exactly like the book's.
func (r *resolver) declare(name string, line token.Pos) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name]; ok {
		r.error(line, " at '"+name+"': Already a variable with this name in this scope.")
	}
	scope[name] = &varState{defined: false}
}

func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = &varState{defined: true}
}

// resolveLocal walks the scope stack from innermost to outermost looking
// for name, recording the depth if found. An unresolved name is left out of
// the map entirely and is treated as a global reference by the evaluator.
func (r *resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.resolutions[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(s.X)
	case *ast.PrintStmt:
		r.resolveExpr(s.X)
	case *ast.VarStmt:
		start, _ := s.Span()
		r.declare(s.Name, start)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.FunStmt:
		start, _ := s.Span()
		r.declare(s.Name, start)
		r.define(s.Name)
		r.resolveFunction(s, FuncFunction)
	case *ast.ReturnStmt:
		if r.currentFunction == FuncNone {
			r.error(s.Start, ": Can't return from top-level code.")
		}
		if s.X != nil {
			if r.currentFunction == FuncInitializer {
				r.error(s.Start, ": Can't return a value from an initializer.")
			}
			r.resolveExpr(s.X)
		}
	case *ast.ClassStmt:
		r.resolveClassStmt(s)
	}
}

func (r *resolver) resolveFunction(fn *ast.FunStmt, kind FunctionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p, fn.Start)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *resolver) resolveClassStmt(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = ClassClass
	defer func() { r.currentClass = enclosingClass }()

	start, _ := s.Span()
	r.declare(s.Name, start)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name == s.Name {
			r.error(start, ": A class can't inherit from itself.")
		}
		r.currentClass = ClassSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = &varState{defined: true}
		defer r.endScope()
	}

	r.beginScope()
	defer r.endScope()
	r.scopes[len(r.scopes)-1]["this"] = &varState{defined: true}

	for _, m := range s.Methods {
		kind := FuncMethod
		if m.Name == "init" {
			kind = FuncInitializer
		}
		r.resolveFunction(m, kind)
	}
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// nothing to resolve
	case *ast.Variable:
		start, _ := e.Span()
		if len(r.scopes) > 0 {
			if st, ok := r.scopes[len(r.scopes)-1][e.Name]; ok && !st.defined {
				r.error(start, " at '"+e.Name+"': Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.This:
		if r.currentClass == ClassNone {
			r.error(e.Start, ": Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")
	case *ast.Super:
		if r.currentClass == ClassNone {
			r.error(e.Start, ": Can't use 'super' outside of a class.")
		} else if r.currentClass != ClassSubclass {
			r.error(e.Start, ": Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")
	case *ast.Grouping:
		r.resolveExpr(e.Expr)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	}
}
