package types

import (
	"fmt"
	"strings"
)

// RuntimeError is raised by the evaluation engine: type mismatches in an
// operator, an unknown variable, a method not found at the call's arity, a
// failed division, a non-instance method-call receiver, or an
// unsupported comparison pair. It is disjoint from the return-unwind
// channel (see eval.Result) and from LexError/ParseError (parser package).
//
// Line/Column locate the offending source position; Stack is a snapshot of
// the method-call activation stack (outermost first) taken at the moment
// the error was raised, used to render a MOO-traceback-style "called from"
// chain (adapted from the teacher's task.FormatTraceback).
type RuntimeError struct {
	Message string
	Line    int
	Column  int
	Stack   []string
}

// NewRuntimeError creates a RuntimeError with the given message and no
// position or call-stack information.
func NewRuntimeError(message string) *RuntimeError {
	return &RuntimeError{Message: message}
}

func (e *RuntimeError) Error() string {
	if e.Line == 0 && e.Column == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Traceback renders the error message followed by one "called from" line
// per stack frame, innermost first.
func (e *RuntimeError) Traceback() string {
	if len(e.Stack) == 0 {
		return e.Error()
	}
	lines := make([]string, 0, len(e.Stack)+1)
	lines = append(lines, e.Error())
	for i := len(e.Stack) - 1; i >= 0; i-- {
		lines = append(lines, "\tcalled from "+e.Stack[i])
	}
	return strings.Join(lines, "\n")
}
