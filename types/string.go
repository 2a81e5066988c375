package types

// String is an immutable text value.
type String struct {
	Val string
}

// NewString creates a String value.
func NewString(v string) String {
	return String{Val: v}
}

func (s String) Type() TypeCode { return TYPE_STRING }
func (s String) String() string { return s.Val }
func (s String) Truthy() bool   { return len(s.Val) > 0 }
