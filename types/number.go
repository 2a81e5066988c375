package types

import "strconv"

// Number is an immutable signed 64-bit integer value.
type Number struct {
	Val int64
}

// NewNumber creates a Number value.
func NewNumber(v int64) Number {
	return Number{Val: v}
}

func (n Number) Type() TypeCode { return TYPE_NUMBER }
func (n Number) String() string { return strconv.FormatInt(n.Val, 10) }
func (n Number) Truthy() bool   { return n.Val != 0 }
