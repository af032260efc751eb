package interp

import (
	"fmt"
	"io"

	"github.com/dolthub/swiss"
	"github.com/tjbuckner/golox/lang/ast"
	"github.com/tjbuckner/golox/lang/resolver"
	"github.com/tjbuckner/golox/lang/token"
	"github.com/tjbuckner/golox/lang/value"
)

// Interpreter walks a resolved chunk directly, with no compile step between
// the resolver and execution (spec.md §1's "direct tree-walking evaluator").
// Grounded on original_source/src/interpreter.rs/expr_eval.rs for evaluation
// order, extended with the resolver's depth table (which that original never
// had) and the full class/instance/closure model original_source/src/class.rs
// and callable.rs stub out.
type Interpreter struct {
	Globals     *Environment
	Stdout      io.Writer
	resolutions resolver.Resolutions
	env         *Environment
}

var _ value.Caller = (*Interpreter)(nil)

// New constructs an interpreter whose global scope has the clock native
// already defined, writing `print` output to stdout.
func New(stdout io.Writer, resolutions resolver.Resolutions) *Interpreter {
	globals := NewGlobals()
	globals.Define("clock", value.Clock())
	return &Interpreter{Globals: globals, Stdout: stdout, resolutions: resolutions, env: globals}
}

// NewWithGlobals builds an interpreter reusing an existing global
// environment, so a REPL can run one resolved chunk per line while keeping
// variables defined on earlier lines visible to later ones.
func NewWithGlobals(stdout io.Writer, resolutions resolver.Resolutions, globals *Environment) *Interpreter {
	return &Interpreter{Globals: globals, Stdout: stdout, resolutions: resolutions, env: globals}
}

// Interpret executes stmts in the global environment, stopping at the first
// runtime error (spec.md §7: runtime errors short-circuit).
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	return in.execStmts(stmts)
}

func (in *Interpreter) execStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.evalExpr(s.X)
		return err

	case *ast.PrintStmt:
		v, err := in.evalExpr(s.X)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, v.String())
		return nil

	case *ast.VarStmt:
		var v value.Value = value.Nil{}
		if s.Init != nil {
			var err error
			v, err = in.evalExpr(s.Init)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name, v)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Stmts, in.env.NewChild())

	case *ast.IfStmt:
		cond, err := in.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if cond.Truth() {
			return in.execStmt(s.Then)
		}
		if s.Else != nil {
			return in.execStmt(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truth() {
				return nil
			}
			if err := in.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunStmt:
		fn := &value.Function{Decl: s, Closure: in.env}
		in.env.Define(s.Name, fn)
		return nil

	case *ast.ReturnStmt:
		var v value.Value
		if s.X != nil {
			var err error
			v, err = in.evalExpr(s.X)
			if err != nil {
				return err
			}
		}
		return &returnSignal{Value: v}

	case *ast.ClassStmt:
		return in.execClassStmt(s)
	}
	return nil
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// environment on every exit path - normal completion, a runtime error, or a
// propagating returnSignal alike.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()
	return in.execStmts(stmts)
}

func (in *Interpreter) execClassStmt(s *ast.ClassStmt) error {
	var superclass *value.Class
	if s.Superclass != nil {
		sv, err := in.evalExpr(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := sv.(*value.Class)
		if !ok {
			start, _ := s.Superclass.Span()
			return runtimeErrorf(start, "Superclass must be a class.")
		}
		superclass = sc
	}

	methodEnv := in.env
	if superclass != nil {
		methodEnv = in.env.NewChild()
		methodEnv.Define("super", superclass)
	}

	methods := swiss.NewMap[string, *value.Function](uint32(len(s.Methods)))
	for _, m := range s.Methods {
		methods.Put(m.Name, &value.Function{
			Decl:          m,
			Closure:       methodEnv,
			IsInitializer: m.Name == "init",
		})
	}

	in.env.Define(s.Name, value.NewClass(s.Name, superclass, methods))
	return nil
}

func (in *Interpreter) evalExpr(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil
	case *ast.Variable:
		return in.lookupVariable(e, e.Name)
	case *ast.Assign:
		return in.evalAssign(e)
	case *ast.This:
		return in.lookupVariable(e, "this")
	case *ast.Super:
		return in.evalSuper(e)
	case *ast.Grouping:
		return in.evalExpr(e.Expr)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		return in.evalGet(e)
	case *ast.Set:
		return in.evalSet(e)
	}
	return nil, fmt.Errorf("interp: unhandled expression %T", expr)
}

func literalValue(e *ast.Literal) value.Value {
	switch v := e.Value.(type) {
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	case bool:
		return value.Bool(v)
	default:
		return value.Nil{}
	}
}

// lookupVariable resolves a Variable or This reference: a resolved depth
// jumps straight to the right environment, an unresolved one falls back to
// globals (spec.md §4.5).
func (in *Interpreter) lookupVariable(expr ast.Expr, name string) (value.Value, error) {
	if depth, ok := in.resolutions[expr]; ok {
		v, _ := in.env.GetAt(depth, name)
		return v, nil
	}
	if v, ok := in.Globals.Get(name); ok {
		return v, nil
	}
	start, _ := expr.Span()
	return nil, runtimeErrorf(start, "Undefined variable '%s'.", name)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (value.Value, error) {
	v, err := in.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.resolutions[e]; ok {
		in.env.AssignAt(depth, e.Name, v)
		return v, nil
	}
	if in.Globals.Assign(e.Name, v) {
		return v, nil
	}
	return nil, runtimeErrorf(e.Start, "Undefined variable '%s'.", e.Name)
}

// evalSuper resolves `super.method`: the superclass lives at the resolved
// depth, and `this` lives exactly one scope further in, the scope bind()
// wraps around the method closure (spec.md §4.5).
func (in *Interpreter) evalSuper(e *ast.Super) (value.Value, error) {
	depth := in.resolutions[e]
	superVal, _ := in.env.GetAt(depth, "super")
	superclass := superVal.(*value.Class)
	thisVal, _ := in.env.GetAt(depth-1, "this")
	instance := thisVal.(*value.Instance)

	method, ok := superclass.FindMethod(e.Method)
	if !ok {
		return nil, runtimeErrorf(e.Start, "Undefined property '%s'.", e.Method)
	}
	return method.Bind(instance), nil
}

func (in *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.BANG:
		return value.Bool(!right.Truth()), nil
	case token.MINUS:
		if hu, ok := right.(value.HasUnary); ok {
			if res, ok := hu.Unary(token.MINUS); ok {
				return res, nil
			}
		}
		return nil, runtimeErrorf(e.Start, "Operand must be a number.")
	}
	return nil, runtimeErrorf(e.Start, "unsupported unary operator %s", e.Op)
}

func (in *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op == token.OR {
		if left.Truth() {
			return left, nil
		}
	} else if !left.Truth() {
		return left, nil
	}
	return in.evalExpr(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.EQ_EQ:
		return value.Bool(value.Equal(left, right)), nil
	case token.BANG_EQ:
		return value.Bool(!value.Equal(left, right)), nil

	case token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		// Unordered or mismatched-type operands compare as unordered, not a
		// runtime error (spec.md §3; original_source/src/value.rs's PartialOrd
		// returns None for any pair it doesn't define, and Rust's `<` on a
		// None ordering is simply false).
		lo, ok := left.(value.Ordered)
		if !ok || left.Type() != right.Type() {
			return value.Bool(false), nil
		}
		cmp := lo.Cmp(right)
		switch e.Op {
		case token.LT:
			return value.Bool(cmp < 0), nil
		case token.LT_EQ:
			return value.Bool(cmp <= 0), nil
		case token.GT:
			return value.Bool(cmp > 0), nil
		default:
			return value.Bool(cmp >= 0), nil
		}

	case token.SLASH:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, runtimeErrorf(e.OpPos, "Operands must be numbers.")
		}
		if rn == 0 {
			return nil, runtimeErrorf(e.OpPos, "Division by zero.")
		}
		return ln / rn, nil

	default: // PLUS, MINUS, STAR
		if hb, ok := left.(value.HasBinary); ok {
			if res, ok := hb.Binary(e.Op, right, value.Left); ok {
				return res, nil
			}
		}
		if e.Op == token.PLUS {
			return nil, runtimeErrorf(e.OpPos, "Operands must be two numbers or two strings.")
		}
		return nil, runtimeErrorf(e.OpPos, "Operands must be numbers.")
	}
}

func (in *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	calleeVal, err := in.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := calleeVal.(value.Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (value.Value, error) {
	objVal, err := in.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	attrs, ok := objVal.(value.HasAttrs)
	if !ok {
		return nil, runtimeErrorf(e.Dot, "Only instances have properties.")
	}
	v, ok := attrs.Attr(e.Name)
	if !ok {
		return nil, runtimeErrorf(e.Dot, "Undefined property '%s'.", e.Name)
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.Set) (value.Value, error) {
	objVal, err := in.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := objVal.(*value.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Dot, "Only instances have fields.")
	}
	val, err := in.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	inst.SetField(e.Name, val)
	return val, nil
}

// CallFunction implements value.Caller: the user-function call protocol of
// spec.md §4.5. fn.Closure is always the environment bind() (or a plain
// FunStmt's declaration) captured, so a bare function's own closure and a
// bound method's this-carrying closure are handled identically here.
func (in *Interpreter) CallFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	closure := fn.Closure.(*Environment)
	callEnv := closure.NewChild()
	for i, p := range fn.Decl.Params {
		callEnv.Define(p, args[i])
	}

	prev := in.env
	in.env = callEnv
	err := in.execStmts(fn.Decl.Body)
	in.env = prev

	rs, isReturn := err.(*returnSignal)
	if err != nil && !isReturn {
		return nil, err
	}

	if fn.IsInitializer {
		this, _ := closure.GetAt(0, "this")
		return this, nil
	}
	if isReturn {
		if rs.Value == nil {
			return value.Nil{}, nil
		}
		return rs.Value, nil
	}
	return value.Nil{}, nil
}
