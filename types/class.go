package types

// Method is one method of a Class: a name, its ordered formal parameter
// names (not counting "self"), and its body statement.
//
// Body is typed interface{} rather than a concrete AST type: the types
// package has no dependency on parser (which builds Method values while
// parsing a class suite), so Body holds a parser.Stmt that eval type-asserts
// back out. This mirrors the teacher's ForkInfo.Body field, which exists
// for the identical reason (avoiding a runtime<->parser import cycle).
type Method struct {
	Name   string
	Params []string
	Body   interface{}
}

// Class is a named, single-inheritance class: an ordered list of methods
// and an optional base class. Classes are created once, at parse time, and
// live for the remainder of the program.
type Class struct {
	Name    string
	Methods []*Method
	Base    *Class
}

// NewClass creates a class with the given methods and optional base.
func NewClass(name string, methods []*Method, base *Class) *Class {
	return &Class{Name: name, Methods: methods, Base: base}
}

func (c *Class) Type() TypeCode { return TYPE_CLASS }
func (c *Class) String() string { return "Class " + c.Name }
func (c *Class) Truthy() bool   { return false }

// GetMethod searches this class's own method list linearly by name; the
// first match wins. On a name miss the search continues in the base class,
// transitively. Arity is NOT consulted here — per spec, arity is checked
// only by the caller once a method has been found by name, and a
// wrong-arity match here is never retried against the base class.
func (c *Class) GetMethod(name string) (*Method, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	if c.Base != nil {
		return c.Base.GetMethod(name)
	}
	return nil, false
}

// HasMethod reports whether GetMethod(name) finds a method whose formal
// parameter count equals arity.
func (c *Class) HasMethod(name string, arity int) bool {
	m, ok := c.GetMethod(name)
	return ok && len(m.Params) == arity
}
