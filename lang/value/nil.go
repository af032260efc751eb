package value

// Nil is Lox's nil value. There is exactly one: Nil{}.
type Nil struct{}

var (
	_ Value   = Nil{}
	_ Ordered = Nil{}
)

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }
func (Nil) Truth() bool    { return false }

// Cmp always reports equal: there is exactly one Nil value, matching
// original_source/src/value.rs's PartialOrd impl for the Nil/Nil pair.
func (Nil) Cmp(Value) int { return 0 }
