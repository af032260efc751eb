package value

import "github.com/dolthub/swiss"

// Instance is a runtime object: a class tag plus its own field table.
// Grounded on original_source/src/class.rs's LoxInstance, extended with the
// field storage the original never added.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
}

var _ HasAttrs = (*Instance)(nil)

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
func (i *Instance) Type() string   { return "instance" }
func (i *Instance) Truth() bool    { return true }

// Attr resolves a dot-expression read: fields shadow methods, and a method
// found on the class (or an ancestor) is bound to this instance before it is
// returned, so it carries `this` when later called.
func (i *Instance) Attr(name string) (Value, bool) {
	if v, ok := i.Fields.Get(name); ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// SetField assigns a field, creating it if absent; Lox instances have no
// fixed field list, any name may be assigned from outside or inside a method.
func (i *Instance) SetField(name string, v Value) {
	i.Fields.Put(name, v)
}
