package value

import (
	"fmt"
	"time"
)

// Native wraps a host Go function as a Lox-callable value, grounded on
// original_source/src/callable.rs's Clock (the one native the original
// implements).
type Native struct {
	Name string
	Arr  int
	Fn   func(args []Value) (Value, error)
}

var _ Callable = (*Native)(nil)

func (n *Native) String() string { return n.Name }
func (n *Native) Type() string   { return "native function" }
func (n *Native) Truth() bool    { return true }
func (n *Native) Arity() int     { return n.Arr }

func (n *Native) Call(_ Caller, args []Value) (Value, error) {
	return n.Fn(args)
}

// Clock is the zero-arity native returning seconds since the Unix epoch.
func Clock() *Native {
	return &Native{
		Name: "clock",
		Arr:  0,
		Fn: func([]Value) (Value, error) {
			now := time.Now()
			if now.Unix() < 0 {
				return nil, fmt.Errorf("system time error")
			}
			return Number(float64(now.UnixNano()) / float64(time.Second)), nil
		},
	}
}
