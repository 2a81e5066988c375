package eval

import (
	"fmt"

	"mython/parser"
	"mython/trace"
	"mython/types"
)

// Evaluator walks the AST and evaluates expressions/statements. It is the
// one piece of engine state that lives longer than a single Exec/Eval call:
// the method-call activation stack, used to annotate RuntimeErrors with a
// traceback (adapted from the teacher's Evaluator struct, stripped of the
// teacher's builtins registry and object store, which Mython has no
// equivalent of).
type Evaluator struct {
	stack []frame
}

// frame is one entry of the activation stack: the class and method name of
// an in-flight method call.
type frame struct {
	class  string
	method string
}

func (f frame) String() string { return fmt.Sprintf("%s.%s()", f.class, f.method) }

// NewEvaluator creates an Evaluator with an empty call stack.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Execute runs program's top-level statements in scope against ctx and
// returns the program's value: the operand of a top-level return, if any,
// otherwise None. Top-level assignments and class-name bindings are left
// behind in scope as a side effect, per spec.md §6.
func (e *Evaluator) Execute(program *parser.Program, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	result, err := e.Exec(program.Body, scope, ctx)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

// Execute is the package-level convenience wrapper around a fresh
// Evaluator, matching the host API's `execute(program, scope, context)`
// shape described in spec.md §6 for callers that don't need tracing or a
// reusable call stack across multiple programs.
func Execute(program *parser.Program, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	return NewEvaluator().Execute(program, scope, ctx)
}

func (e *Evaluator) pushFrame(class, method string) {
	e.stack = append(e.stack, frame{class: class, method: method})
	trace.MethodCall(class, method)
}

func (e *Evaluator) popFrame() {
	e.stack = e.stack[:len(e.stack)-1]
	trace.MethodReturn()
}

// runtimeError builds a types.RuntimeError at pos, snapshotting the current
// activation stack so the top-level caller can render a traceback.
func (e *Evaluator) runtimeError(pos parser.Position, format string, args ...interface{}) *types.RuntimeError {
	stack := make([]string, len(e.stack))
	for i, f := range e.stack {
		stack[i] = f.String()
	}
	return &types.RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Column:  pos.Column,
		Stack:   stack,
	}
}

// tick consumes one unit of the context's recursion budget, surfacing
// exhaustion as a RuntimeError instead of a Go stack overflow. Called once
// per Exec and once per Eval, mirroring the teacher's ConsumeTick-per-node
// discipline.
func (e *Evaluator) tick(pos parser.Position, ctx *types.Context) error {
	if !ctx.ConsumeTick() {
		return e.runtimeError(pos, "too many nested method calls")
	}
	return nil
}
