// Package interp implements the tree-walking evaluator: a chain of
// Environments holding variable bindings, and an Interpreter that walks a
// resolved *ast.Chunk executing it directly, with no compile step.
package interp

import (
	"github.com/dolthub/swiss"
	"github.com/tjbuckner/golox/lang/value"
)

// Environment is one link in the scope chain: a table of bindings plus a
// reference to the enclosing scope. Unlike the teacher's stack-of-maps
// machine frames (built for a bytecode VM with explicit upvalue cells),
// golox's scope chain is a genuine linked list that a closure captures by
// holding a pointer to its defining Environment - Go's garbage collector
// plays the role original_source/src/environment.rs's commented-out
// `Rc<RefCell<Environment>>` was reaching for before it was abandoned half
// finished. See SPEC_FULL.md's open-question decision.
//
// The binding table is a *swiss.Map rather than a builtin map, carrying the
// teacher's dolthub/swiss dependency (lang/machine/map.go) into the
// evaluator's variable-lookup path, exactly as lang/value's Instance.Fields
// and Class.Methods do for object state and method dispatch.
type Environment struct {
	parent *Environment
	values *swiss.Map[string, value.Value]
}

var _ value.Env = (*Environment)(nil)

// NewGlobals returns a fresh top-level environment with no parent.
func NewGlobals() *Environment {
	return &Environment{values: swiss.NewMap[string, value.Value](16)}
}

// Child returns a new environment nested directly inside e.
func (e *Environment) Child() value.Env {
	return &Environment{parent: e, values: swiss.NewMap[string, value.Value](8)}
}

// NewChild is Child with the concrete return type, for callers inside this
// package that need to walk the parent chain (e.g. executeBlock).
func (e *Environment) NewChild() *Environment {
	return e.Child().(*Environment)
}

// Define binds name in e's own table, shadowing any outer binding of the
// same name. Re-declaring an existing name in the same scope (checked
// statically by the resolver) simply overwrites it, matching re-running a
// `var` statement at the top level of a REPL.
func (e *Environment) Define(name string, v value.Value) {
	e.values.Put(name, v)
}

// Get looks up name, walking outward through enclosing scopes. The second
// result is false for an undefined variable, which the evaluator reports as
// a runtime error (spec.md's globals are resolved dynamically, so this is
// the only place that failure can surface).
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Assign rebinds an already-declared name, walking outward through
// enclosing scopes, and reports whether it found one to rebind.
func (e *Environment) Assign(name string, v value.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values.Get(name); ok {
			env.values.Put(name, v)
			return true
		}
	}
	return false
}

// ancestor walks up depth parents, as computed by the resolver.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.parent
	}
	return env
}

// GetAt reads name directly from the environment depth hops up, trusting
// the resolver's static analysis rather than searching.
func (e *Environment) GetAt(depth int, name string) (value.Value, bool) {
	return e.ancestor(depth).values.Get(name)
}

// AssignAt rebinds name directly at the environment depth hops up.
func (e *Environment) AssignAt(depth int, name string, v value.Value) {
	e.ancestor(depth).values.Put(name, v)
}
