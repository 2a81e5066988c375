package types

import "fmt"

// ClassInstance is a shared, mutable object: a reference to its Class plus
// a Scope of fields that appear on first assignment. ClassInstance is
// always used through a pointer so that multiple Value handles referring
// to "the same instance" observe each other's field mutations, per the
// reference-semantics invariant in spec §3/§5.
type ClassInstance struct {
	Class  *Class
	Fields *Scope
}

// NewInstance creates a fresh instance of class with an empty field scope.
func NewInstance(class *Class) *ClassInstance {
	return &ClassInstance{Class: class, Fields: NewScope()}
}

func (i *ClassInstance) Type() TypeCode { return TYPE_INSTANCE }
func (i *ClassInstance) Truthy() bool   { return false }

// String returns an implementation-defined identity marker. It is a
// fallback: printing a ClassInstance normally dispatches to its __str__
// method first, which requires executing a method body and therefore
// lives in the eval package, not here.
func (i *ClassInstance) String() string {
	return fmt.Sprintf("<%s object at %p>", i.Class.Name, i)
}
