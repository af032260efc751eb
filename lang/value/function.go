package value

import "github.com/tjbuckner/golox/lang/ast"

// Function is a user-defined function or method: the book's LoxFunction,
// grounded on original_source/src/callable.rs's LoxFunction(FunDecl) wrapper
// and extended with the closure environment the Rust original never
// captured (its call() pushed/popped a flat stack instead, which cannot
// implement closures - see SPEC_FULL.md's open-question decision favoring
// the linked-list environment model).
type Function struct {
	Decl          *ast.FunStmt
	Closure       Env
	IsInitializer bool
}

var _ Callable = (*Function)(nil)

func (f *Function) String() string { return "<fn " + f.Decl.Name + ">" }
func (f *Function) Type() string   { return "function" }
func (f *Function) Truth() bool    { return true }
func (f *Function) Arity() int     { return len(f.Decl.Params) }

func (f *Function) Call(call Caller, args []Value) (Value, error) {
	return call.CallFunction(f, args)
}

// Bind returns a copy of f whose closure is a new environment, nested inside
// f's own closure, binding "this" to instance. Grounded on the book's
// bind(): every method lookup on an instance produces its own bound copy so
// the same declaration can be bound to many instances.
func (f *Function) Bind(instance *Instance) *Function {
	env := f.Closure.Child()
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}
