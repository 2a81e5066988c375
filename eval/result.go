package eval

import "mython/types"

// Flow distinguishes a statement's normal completion from a return-unwind
// in flight. It realizes spec.md §9's "Ok(value) | Return(value) | Err(kind)"
// suggestion by splitting the third arm into Go's native error return value:
// Exec's error result already covers Err, so Result only needs to
// distinguish the other two (adapted from the teacher's types.Result, whose
// Flow enum additionally carries Break/Continue/Fork/Exception that Mython
// has no source-level construct for).
type Flow int

const (
	FlowNormal Flow = iota
	FlowReturn
)

// Result is what executing one statement yields: a value, and whether a
// return statement is unwinding through it. MethodBody execution is the one
// place that catches FlowReturn; Compound stops running its statements and
// passes it upward, and IfElse returns it unchanged.
type Result struct {
	Value types.Value
	Flow  Flow
}

func normal(v types.Value) Result { return Result{Value: v, Flow: FlowNormal} }

func isReturn(r Result) bool { return r.Flow == FlowReturn }
