package value

import "github.com/dolthub/swiss"

// Class is a Lox class: a callable that constructs Instances, and a method
// table consulted by every instance of it (and, through Superclass, by every
// instance of every subclass). Grounded on original_source/src/class.rs's
// LoxClass/LoxInstance pair, which only had a name and no fields, methods or
// inheritance; those are supplied here per spec.md's full class model.
//
// The method table is a *swiss.Map rather than a builtin map, carrying the
// teacher's dolthub/swiss dependency (lang/machine/map.go) into the
// evaluator's class-dispatch path.
type Class struct {
	Name       string
	Superclass *Class
	Methods    *swiss.Map[string, *Function]
}

var _ Callable = (*Class)(nil)

func NewClass(name string, superclass *Class, methods *swiss.Map[string, *Function]) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) String() string { return c.Name }
func (c *Class) Type() string   { return "class" }
func (c *Class) Truth() bool    { return true }

// Arity is the initializer's arity, or 0 if the class declares none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// FindMethod looks up name in c's method table, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	for cur := c; cur != nil; cur = cur.Superclass {
		if m, ok := cur.Methods.Get(name); ok {
			return m, true
		}
	}
	return nil, false
}

// Call constructs a new Instance and, if the class declares an init method,
// runs it bound to the new instance before returning it.
func (c *Class) Call(call Caller, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := call.CallFunction(init.Bind(inst), args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
