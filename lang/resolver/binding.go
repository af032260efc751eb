package resolver

// FunctionKind records what kind of function body the resolver is currently
// inside, used to validate `return` and `this`/`super` placement.
type FunctionKind int

const (
	FuncNone FunctionKind = iota
	FuncFunction
	FuncMethod
	FuncInitializer
)

// ClassKind records what kind of class body the resolver is currently
// inside, used to validate `this`/`super` placement.
type ClassKind int

const (
	ClassNone ClassKind = iota
	ClassClass
	ClassSubclass
)

// varState tracks a single binding's lifecycle within its declaring scope:
// declared (false) means the name has been introduced but its initializer
// has not yet been resolved, so reading it is a static error; defined (true)
// means it is safe to reference.
type varState struct {
	defined bool
}
