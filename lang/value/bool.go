package value

// Bool is the type of boolean values.
type Bool bool

var (
	_ Value   = Bool(false)
	_ Ordered = Bool(false)
)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Type() string { return "bool" }
func (b Bool) Truth() bool  { return bool(b) }

// Cmp orders false before true, matching original_source/src/value.rs's
// PartialOrd impl for the Bool/Bool pair.
func (b Bool) Cmp(y Value) int {
	o := bool(y.(Bool))
	x := bool(b)
	switch {
	case !x && o:
		return -1
	case x && !o:
		return 1
	default:
		return 0
	}
}
