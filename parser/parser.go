package parser

// Parser builds a Program from a token stream using a single token of
// lookahead (current). It consumes the Lexer's pull-based Current/Next
// directly rather than buffering a second peeked token, since Mython's
// grammar never needs to see more than one token ahead.
type Parser struct {
	lexer   *Lexer
	current Token
	classes *classRegistry
	err     error
}

// NewParser creates a Parser over source text.
func NewParser(source string) *Parser {
	lexer := NewLexer(source)
	return &Parser{
		lexer:   lexer,
		current: lexer.Current(),
		classes: newClassRegistry(),
		err:     lexer.Err(),
	}
}

// advance moves to the next token, recording the first lex error it meets;
// Parse returns that error in place of any result or grammar error.
func (p *Parser) advance() {
	tok, err := p.lexer.Next()
	p.current = tok
	if err != nil && p.err == nil {
		p.err = err
	}
}

func (p *Parser) fail(format string, args ...interface{}) *ParseError {
	return newParseError(p.current.Pos, format, args...)
}

func (p *Parser) expect(tt TokenType, what string) error {
	if p.current.Type != tt {
		return p.fail("expected %s, got %s", what, p.current.Type)
	}
	return nil
}

func (p *Parser) expectChar(c byte) error {
	if p.current.Type != CHAR || p.current.Char != c {
		return p.fail("expected %q, got %s", c, p.current.Type)
	}
	return nil
}

// Parse runs the parser to completion, returning the finished Program or
// the first error encountered (a lex error surfaced while scanning, or a
// grammar violation).
func (p *Parser) Parse() (*Program, error) {
	if p.err != nil {
		return nil, p.err
	}
	body, err := p.parseCompoundUntilEOF()
	if p.err != nil {
		return nil, p.err
	}
	if err != nil {
		return nil, err
	}
	return &Program{Body: body}, nil
}

func (p *Parser) parseCompoundUntilEOF() (Stmt, error) {
	pos := p.current.Pos
	var stmts []Stmt
	for p.current.Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Compound{Pos: pos, Stmts: stmts}, nil
}

// parseSuite parses an indented block: NEWLINE INDENT stmt+ DEDENT.
func (p *Parser) parseSuite() (Stmt, error) {
	if err := p.expect(NEWLINE, "newline"); err != nil {
		return nil, err
	}
	p.advance()
	if err := p.expect(INDENT, "indented block"); err != nil {
		return nil, err
	}
	p.advance()

	pos := p.current.Pos
	var stmts []Stmt
	for p.current.Type != DEDENT {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume DEDENT
	return &Compound{Pos: pos, Stmts: stmts}, nil
}
