package parser

import "mython/types"

// Node is the base interface for all AST nodes.
type Node interface {
	Position() Position
}

// Expr is a node that evaluates to a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node executed for effect.
type Stmt interface {
	Node
	stmtNode()
}

// NumberLiteral is a bare integer constant.
type NumberLiteral struct {
	Pos Position
	Val int64
}

func (e *NumberLiteral) Position() Position { return e.Pos }
func (e *NumberLiteral) exprNode()          {}

// StringLiteral is a quoted string constant.
type StringLiteral struct {
	Pos Position
	Val string
}

func (e *StringLiteral) Position() Position { return e.Pos }
func (e *StringLiteral) exprNode()          {}

// BoolLiteral is True or False.
type BoolLiteral struct {
	Pos Position
	Val bool
}

func (e *BoolLiteral) Position() Position { return e.Pos }
func (e *BoolLiteral) exprNode()          {}

// NoneLiteral is the None constant.
type NoneLiteral struct {
	Pos Position
}

func (e *NoneLiteral) Position() Position { return e.Pos }
func (e *NoneLiteral) exprNode()          {}

// VariableValue reads a variable or a field (obj.name) through dotted
// access: names[0] is the base variable, the rest are field accesses
// chained onto it.
type VariableValue struct {
	Pos   Position
	Names []string
}

func (e *VariableValue) Position() Position { return e.Pos }
func (e *VariableValue) exprNode()          {}

// NewInstance constructs ClassName(args). Class is the *types.Class the
// parser's registry resolved ClassName to at parse time, captured directly
// rather than re-resolved by name at evaluation time (spec.md §9 Open
// Question: the parser's registry and the evaluator's bindings must stay
// consistent; holding the pointer sidesteps the question entirely).
type NewInstance struct {
	Pos       Position
	ClassName string
	Class     *types.Class
	Args      []Expr
}

func (e *NewInstance) Position() Position { return e.Pos }
func (e *NewInstance) exprNode()          {}

// MethodCall invokes obj.method(args). Object is a dotted chain of field
// accesses resolved at evaluation time, or, for a call made on the result
// of another call such as A().f(), that call.
type MethodCall struct {
	Pos    Position
	Object Expr
	Method string
	Args   []Expr
}

func (e *MethodCall) Position() Position { return e.Pos }
func (e *MethodCall) exprNode()          {}

// Stringify is the builtin str(x).
type Stringify struct {
	Pos Position
	Arg Expr
}

func (e *Stringify) Position() Position { return e.Pos }
func (e *Stringify) exprNode()          {}

// BinaryOp is one of +, -, *, / on two expressions.
type BinaryOp struct {
	Pos      Position
	Operator byte // '+', '-', '*', '/'
	Left     Expr
	Right    Expr
}

func (e *BinaryOp) Position() Position { return e.Pos }
func (e *BinaryOp) exprNode()          {}

// CompareOp is a relational comparison: ==, !=, <, <=, >, >=.
type CompareOp struct {
	Pos      Position
	Operator TokenType
	Left     Expr
	Right    Expr
}

func (e *CompareOp) Position() Position { return e.Pos }
func (e *CompareOp) exprNode()          {}

// LogicalOp is `and` or `or` between two expressions.
type LogicalOp struct {
	Pos   Position
	And   bool // true for `and`, false for `or`
	Left  Expr
	Right Expr
}

func (e *LogicalOp) Position() Position { return e.Pos }
func (e *LogicalOp) exprNode()          {}

// NotOp is `not expr`.
type NotOp struct {
	Pos     Position
	Operand Expr
}

func (e *NotOp) Position() Position { return e.Pos }
func (e *NotOp) exprNode()          {}

// Assignment binds a plain variable name: name = value.
type Assignment struct {
	Pos   Position
	Name  string
	Value Expr
}

func (s *Assignment) Position() Position { return s.Pos }
func (s *Assignment) stmtNode()          {}

// FieldAssignment binds a dotted field path: obj.field...field = value.
// Names holds the full dotted chain; the last element is the field being
// assigned, the rest navigate from the base variable to the target object.
type FieldAssignment struct {
	Pos   Position
	Names []string
	Value Expr
}

func (s *FieldAssignment) Position() Position { return s.Pos }
func (s *FieldAssignment) stmtNode()          {}

// ExprStmt runs an expression for its side effect (a bare method call).
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) stmtNode()          {}

// PrintStmt evaluates and prints a comma-separated argument list.
type PrintStmt struct {
	Pos  Position
	Args []Expr
}

func (s *PrintStmt) Position() Position { return s.Pos }
func (s *PrintStmt) stmtNode()          {}

// ReturnStmt exits the enclosing method with a value.
type ReturnStmt struct {
	Pos   Position
	Value Expr
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}

// Compound is a sequence of statements run in order.
type Compound struct {
	Pos   Position
	Stmts []Stmt
}

func (s *Compound) Position() Position { return s.Pos }
func (s *Compound) stmtNode()          {}

// IfElse runs Then when Condition is truthy, Else (which may be nil)
// otherwise.
type IfElse struct {
	Pos       Position
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfElse) Position() Position { return s.Pos }
func (s *IfElse) stmtNode()          {}

// MethodDecl is one `def name(params): body` inside a class.
type MethodDecl struct {
	Pos    Position
	Name   string
	Params []string
	Body   Stmt
}

// ClassDecl declares a class with an optional base class name. Class holds
// the same *types.Class pointer the parser registered under Name, so
// executing this node binds exactly the object the registry (and any
// NewInstance node parsed against it) already knows about.
type ClassDecl struct {
	Pos     Position
	Name    string
	Base    string // empty when there is no base class
	Methods []*MethodDecl
	Class   *types.Class
}

func (s *ClassDecl) Position() Position { return s.Pos }
func (s *ClassDecl) stmtNode()          {}

// Program is a parsed Mython source file: top-level class declarations and
// statements run in the order they appear. A ClassDecl statement binds its
// class into the enclosing scope the same way an Assignment binds a
// variable, so classes are visible to code that runs after them.
type Program struct {
	Body Stmt
}
