package types

// None is Mython's single null-like value.
type None struct{}

// NewNone creates the None value. None carries no state, but is its own
// type (not a nil Value) so it can flow through ordinary Value-typed code
// without special-casing nil.
func NewNone() None {
	return None{}
}

func (n None) Type() TypeCode { return TYPE_NONE }
func (n None) String() string { return "None" }
func (n None) Truthy() bool   { return false }
