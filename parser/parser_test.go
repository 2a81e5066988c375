package parser

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, source string) *Program {
	t.Helper()
	p := NewParser(source)
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return program
}

func mustFailParse(t *testing.T, source, wantSubstring string) {
	t.Helper()
	p := NewParser(source)
	_, err := p.Parse()
	if err == nil {
		t.Fatalf("expected a parse error containing %q, got none", wantSubstring)
	}
	if !strings.Contains(err.Error(), wantSubstring) {
		t.Errorf("error = %q, want it to contain %q", err.Error(), wantSubstring)
	}
}

func TestParseAssignment(t *testing.T) {
	program := mustParse(t, "x = 1\n")
	compound := program.Body.(*Compound)
	if len(compound.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(compound.Stmts))
	}
	assign, ok := compound.Stmts[0].(*Assignment)
	if !ok {
		t.Fatalf("expected *Assignment, got %T", compound.Stmts[0])
	}
	if assign.Name != "x" {
		t.Errorf("Name = %q, want %q", assign.Name, "x")
	}
}

func TestParseFieldAssignment(t *testing.T) {
	program := mustParse(t, "a.b.c = 1\n")
	compound := program.Body.(*Compound)
	fa, ok := compound.Stmts[0].(*FieldAssignment)
	if !ok {
		t.Fatalf("expected *FieldAssignment, got %T", compound.Stmts[0])
	}
	want := []string{"a", "b", "c"}
	if len(fa.Names) != len(want) {
		t.Fatalf("Names = %v, want %v", fa.Names, want)
	}
	for i := range want {
		if fa.Names[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, fa.Names[i], want[i])
		}
	}
}

func TestParseUnaryMinusCompilesToMultiplyByNegativeOne(t *testing.T) {
	program := mustParse(t, "x = -5\n")
	compound := program.Body.(*Compound)
	assign := compound.Stmts[0].(*Assignment)
	bin, ok := assign.Value.(*BinaryOp)
	if !ok {
		t.Fatalf("expected -5 to compile to a BinaryOp, got %T", assign.Value)
	}
	if bin.Operator != '*' {
		t.Errorf("Operator = %q, want '*'", bin.Operator)
	}
	right, ok := bin.Right.(*NumberLiteral)
	if !ok || right.Val != -1 {
		t.Errorf("Right = %v, want NumberLiteral(-1)", bin.Right)
	}
}

func TestParseClassWithBase(t *testing.T) {
	src := "class A:\n  def f(self):\n    return 1\nclass B(A):\n  def g(self):\n    return 2\n"
	program := mustParse(t, src)
	compound := program.Body.(*Compound)
	if len(compound.Stmts) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(compound.Stmts))
	}
	b := compound.Stmts[1].(*ClassDecl)
	if b.Base != "A" {
		t.Errorf("Base = %q, want %q", b.Base, "A")
	}
	if b.Class.Base == nil || b.Class.Base.Name != "A" {
		t.Errorf("Class.Base not wired to A's *types.Class")
	}
}

func TestParseNewInstanceResolvesRegisteredClass(t *testing.T) {
	src := "class A:\n  def f(self):\n    return 1\na = A()\n"
	program := mustParse(t, src)
	compound := program.Body.(*Compound)
	assign := compound.Stmts[1].(*Assignment)
	ni, ok := assign.Value.(*NewInstance)
	if !ok {
		t.Fatalf("expected *NewInstance, got %T", assign.Value)
	}
	if ni.Class == nil || ni.Class.Name != "A" {
		t.Errorf("Class not resolved to A")
	}
}

func TestParseIfElse(t *testing.T) {
	program := mustParse(t, "if 1:\n  x = 1\nelse:\n  x = 2\n")
	compound := program.Body.(*Compound)
	ifElse, ok := compound.Stmts[0].(*IfElse)
	if !ok {
		t.Fatalf("expected *IfElse, got %T", compound.Stmts[0])
	}
	if ifElse.Else == nil {
		t.Error("expected an Else branch")
	}
}

func TestParseComparisonOperators(t *testing.T) {
	tests := []struct {
		src  string
		want TokenType
	}{
		{"print a < b\n", LESS},
		{"print a > b\n", GREATER},
		{"print a == b\n", EQ},
		{"print a != b\n", NOT_EQ},
		{"print a <= b\n", LESS_OR_EQ},
		{"print a >= b\n", GREATER_OR_EQ},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			program := mustParse(t, tt.src)
			compound := program.Body.(*Compound)
			printStmt := compound.Stmts[0].(*PrintStmt)
			cmp, ok := printStmt.Args[0].(*CompareOp)
			if !ok {
				t.Fatalf("expected *CompareOp, got %T", printStmt.Args[0])
			}
			if cmp.Operator != tt.want {
				t.Errorf("Operator = %v, want %v", cmp.Operator, tt.want)
			}
		})
	}
}

func TestParseStringifyRequiresExactlyOneArgument(t *testing.T) {
	mustParse(t, "print str(1)\n")
	mustFailParse(t, "print str(1, 2)\n", "exactly one argument")
}

func TestParseBareFunctionCallIsRejected(t *testing.T) {
	mustFailParse(t, "foo(1)\n", "functions")
}

func TestParseDuplicateClassIsRejected(t *testing.T) {
	src := "class A:\n  def f(self):\n    return 1\nclass A:\n  def g(self):\n    return 2\n"
	mustFailParse(t, src, "already exists")
}

func TestParseUnknownBaseClassIsRejected(t *testing.T) {
	mustFailParse(t, "class A(Ghost):\n  def f(self):\n    return 1\n", "not found")
}

func TestParseClassRequiresAtLeastOneMethod(t *testing.T) {
	mustFailParse(t, "class A:\n  x = 1\n", "")
}
