package parser

import "fmt"

// LexError reports a token the lexer could not produce: a malformed
// string literal, an indentation that doesn't line up, or a character
// outside the grammar's alphabet.
type LexError struct {
	Pos     Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
