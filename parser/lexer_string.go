package parser

import "fmt"

// readString scans a quoted string literal. Mython recognizes exactly four
// escapes inside a string: \n, \t, \" and \'. A bare newline or an
// unterminated literal is a lex error.
func (l *Lexer) readString() (Token, error) {
	p := l.pos()
	quote := l.ch
	l.readChar()

	var buf []byte
	for {
		switch l.ch {
		case 0:
			return Token{}, &LexError{Pos: p, Message: "unterminated string literal"}
		case '\n', '\r':
			return Token{}, &LexError{Pos: p, Message: "unterminated string literal (newline in string)"}
		case quote:
			l.readChar()
			l.started = true
			return Token{Type: STRING, Text: string(buf), Pos: p}, nil
		case '\\':
			l.readChar()
			esc, err := l.readEscape(p)
			if err != nil {
				return Token{}, err
			}
			buf = append(buf, esc)
		default:
			buf = append(buf, l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) readEscape(stringStart Position) (byte, error) {
	switch l.ch {
	case 'n':
		l.readChar()
		return '\n', nil
	case 't':
		l.readChar()
		return '\t', nil
	case '"':
		l.readChar()
		return '"', nil
	case '\'':
		l.readChar()
		return '\'', nil
	case 0:
		return 0, &LexError{Pos: stringStart, Message: "unterminated string literal"}
	default:
		return 0, &LexError{Pos: l.pos(), Message: fmt.Sprintf("unsupported escape sequence '\\%c'", l.ch)}
	}
}
