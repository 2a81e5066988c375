package parser

import "fmt"

// ParseError reports a grammar violation: a wrong token where a specific
// one was required, an unknown base class, a duplicate class name, a call
// to something that isn't a declared class, method or str(), or a bare
// function call (Mython has no free functions, only methods).
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func newParseError(pos Position, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
