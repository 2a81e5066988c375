package types

import "io"

// DefaultTickBudget bounds the number of statement/expression evaluations
// a single Execute call may perform. Mython has no loops, so the only way
// a program runs forever is unbounded method recursion; this budget turns
// that into a RuntimeError instead of a Go stack overflow. Adapted from the
// teacher's TaskContext.TicksRemaining / ConsumeTick.
const DefaultTickBudget = 1_000_000

// Context is the runtime context threaded through every Execute call: the
// output sink print writes to, and a recursion/tick budget.
type Context struct {
	Output io.Writer
	Ticks  int64
}

// NewContext creates a Context writing to out with the default tick budget.
func NewContext(out io.Writer) *Context {
	return &Context{Output: out, Ticks: DefaultTickBudget}
}

// ConsumeTick decrements the remaining tick budget and reports whether any
// budget remains. Call once per statement/expression evaluated.
func (c *Context) ConsumeTick() bool {
	c.Ticks--
	return c.Ticks > 0
}
