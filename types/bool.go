package types

// Bool is an immutable boolean value.
type Bool struct {
	Val bool
}

// NewBool creates a Bool value.
func NewBool(v bool) Bool {
	return Bool{Val: v}
}

func (b Bool) Type() TypeCode { return TYPE_BOOL }

func (b Bool) String() string {
	if b.Val {
		return "True"
	}
	return "False"
}

func (b Bool) Truthy() bool { return b.Val }
