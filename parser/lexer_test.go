package parser

import "testing"

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer(src)
	var toks []Token
	for {
		tok := l.Current()
		if err := l.Err(); err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
		if _, err := l.Next(); err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
	}
	return toks
}

func typesOf(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func assertTypes(t *testing.T, got []TokenType, want ...TokenType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v tokens, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexSimpleAssignment(t *testing.T) {
	toks := allTokens(t, "x = 5\n")
	assertTypes(t, typesOf(toks), ID, CHAR, NUMBER, NEWLINE, EOF)
}

func TestLexKeywordsAreNotIdentifiers(t *testing.T) {
	toks := allTokens(t, "class Foo:\n")
	assertTypes(t, typesOf(toks), CLASS, ID, CHAR, NEWLINE, EOF)
}

func TestLexComparisonOperators(t *testing.T) {
	toks := allTokens(t, "a == b != c <= d >= e < f > g\n")
	assertTypes(t, typesOf(toks),
		ID, EQ, ID, NOT_EQ, ID, LESS_OR_EQ, ID, GREATER_OR_EQ, ID, CHAR, ID, CHAR, ID, NEWLINE, EOF)
}

func TestLexIndentDedentBalance(t *testing.T) {
	src := "class A:\n  def f(self):\n    return 1\n  def g(self):\n    return 2\n"
	toks := allTokens(t, src)
	depth := 0
	for _, tok := range toks {
		switch tok.Type {
		case INDENT:
			depth++
		case DEDENT:
			depth--
		}
	}
	if depth != 0 {
		t.Errorf("expected balanced indent/dedent tokens, final depth %d", depth)
	}
	if toks[len(toks)-1].Type != EOF {
		t.Errorf("expected stream to end in EOF")
	}
}

func TestLexBlankLinesAndCommentsAreInvisible(t *testing.T) {
	src := "x = 1\n\n# a comment\n\ny = 2\n"
	toks := allTokens(t, src)
	assertTypes(t, typesOf(toks), ID, CHAR, NUMBER, NEWLINE, ID, CHAR, NUMBER, NEWLINE, EOF)
}

func TestLexStringEscapes(t *testing.T) {
	toks := allTokens(t, `"a\nb\tc\"d\'e"`+"\n")
	if toks[0].Type != STRING {
		t.Fatalf("expected STRING token, got %v", toks[0].Type)
	}
	want := "a\nb\tc\"d'e"
	if toks[0].Text != want {
		t.Errorf("got %q, want %q", toks[0].Text, want)
	}
}

func TestLexUnterminatedStringIsAnError(t *testing.T) {
	l := NewLexer(`"abc` + "\n")
	if l.Err() == nil {
		t.Fatalf("expected an unterminated string to be a lex error")
	}
}

func TestLexNewlineInStringIsAnError(t *testing.T) {
	src := "\"abc\ndef\"\n"
	l := NewLexer(src)
	if l.Err() == nil {
		t.Fatalf("expected a bare newline inside a string to be a lex error")
	}
}

func TestLexNumberZero(t *testing.T) {
	toks := allTokens(t, "0\n")
	if toks[0].Type != NUMBER || toks[0].Number != 0 {
		t.Fatalf("expected NUMBER(0), got %v", toks[0])
	}
}

func TestLexFinalLineWithoutNewlineGetsSynthesized(t *testing.T) {
	toks := allTokens(t, "x = 1")
	last := toks[len(toks)-2] // token right before EOF
	if last.Type != NEWLINE {
		t.Errorf("expected a synthetic NEWLINE before EOF, got %v", last.Type)
	}
}

func TestLexEmptySourceIsJustEOF(t *testing.T) {
	toks := allTokens(t, "")
	assertTypes(t, typesOf(toks), EOF)
}

func TestLexSpecialSymbolCharTokens(t *testing.T) {
	toks := allTokens(t, "(){}*+,-./:\n")
	for _, tok := range toks[:len(toks)-2] {
		if tok.Type != CHAR {
			t.Errorf("expected CHAR, got %v", tok.Type)
		}
	}
}
