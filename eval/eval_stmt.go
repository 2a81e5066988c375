package eval

import (
	"mython/parser"
	"mython/types"
)

// Exec executes one statement node and returns its Result. Compound and
// the per-method invocation in eval_expr.go are the only places that
// inspect Result.Flow; IfElse passes its branch's Result through, and
// everything else produces FlowNormal.
func (e *Evaluator) Exec(stmt parser.Stmt, scope *types.Scope, ctx *types.Context) (Result, error) {
	if err := e.tick(stmt.Position(), ctx); err != nil {
		return Result{}, err
	}

	switch s := stmt.(type) {
	case *parser.Compound:
		return e.execCompound(s, scope, ctx)
	case *parser.Assignment:
		return e.execAssignment(s, scope, ctx)
	case *parser.FieldAssignment:
		return e.execFieldAssignment(s, scope, ctx)
	case *parser.ExprStmt:
		return e.execExprStmt(s, scope, ctx)
	case *parser.PrintStmt:
		return e.execPrintStmt(s, scope, ctx)
	case *parser.ReturnStmt:
		return e.execReturnStmt(s, scope, ctx)
	case *parser.IfElse:
		return e.execIfElse(s, scope, ctx)
	case *parser.ClassDecl:
		return e.execClassDecl(s, scope, ctx)
	default:
		return Result{}, e.runtimeError(stmt.Position(), "unexecutable statement %T", stmt)
	}
}

// execCompound runs its statements in order. It never catches a
// return-unwind itself: that happens only at the MethodBody boundary
// (eval_expr.go's callMethod), so a return inside a Compound that is *not*
// a method body (e.g. the body of an if) must still propagate upward.
func (e *Evaluator) execCompound(s *parser.Compound, scope *types.Scope, ctx *types.Context) (Result, error) {
	for _, stmt := range s.Stmts {
		result, err := e.Exec(stmt, scope, ctx)
		if err != nil {
			return Result{}, err
		}
		if isReturn(result) {
			return result, nil
		}
	}
	return normal(types.NewNone()), nil
}

func (e *Evaluator) execAssignment(s *parser.Assignment, scope *types.Scope, ctx *types.Context) (Result, error) {
	value, err := e.Eval(s.Value, scope, ctx)
	if err != nil {
		return Result{}, err
	}
	scope.Set(s.Name, value)
	return normal(value), nil
}

// execFieldAssignment navigates Names[0] through Names[len-2] (each step
// requiring a ClassInstance) and sets the final component on the object
// that navigation lands on.
func (e *Evaluator) execFieldAssignment(s *parser.FieldAssignment, scope *types.Scope, ctx *types.Context) (Result, error) {
	value, err := e.Eval(s.Value, scope, ctx)
	if err != nil {
		return Result{}, err
	}

	obj, ok := scope.Get(s.Names[0])
	if !ok {
		return Result{}, e.runtimeError(s.Pos, "unknown variable: %s", s.Names[0])
	}

	path := s.Names[1 : len(s.Names)-1]
	for _, name := range path {
		instance, ok := obj.(*types.ClassInstance)
		if !ok {
			return Result{}, e.runtimeError(s.Pos, "%s is not an instance", name)
		}
		obj, ok = instance.Fields.Get(name)
		if !ok {
			return Result{}, e.runtimeError(s.Pos, "unknown field: %s", name)
		}
	}

	instance, ok := obj.(*types.ClassInstance)
	if !ok {
		return Result{}, e.runtimeError(s.Pos, "cannot assign a field on a non-instance value")
	}
	instance.Fields.Set(s.Names[len(s.Names)-1], value)
	return normal(value), nil
}

func (e *Evaluator) execExprStmt(s *parser.ExprStmt, scope *types.Scope, ctx *types.Context) (Result, error) {
	value, err := e.Eval(s.Expr, scope, ctx)
	if err != nil {
		return Result{}, err
	}
	return normal(value), nil
}

// execPrintStmt evaluates and prints its arguments left to right,
// space-separated, with a trailing newline; each argument is evaluated and
// emitted before the next is evaluated (spec.md §5 ordering guarantee).
func (e *Evaluator) execPrintStmt(s *parser.PrintStmt, scope *types.Scope, ctx *types.Context) (Result, error) {
	for i, arg := range s.Args {
		value, err := e.Eval(arg, scope, ctx)
		if err != nil {
			return Result{}, err
		}
		text, err := e.stringify(value, ctx)
		if err != nil {
			return Result{}, err
		}
		if i > 0 {
			if _, err := ctx.Output.Write([]byte(" ")); err != nil {
				return Result{}, err
			}
		}
		if _, err := ctx.Output.Write([]byte(text)); err != nil {
			return Result{}, err
		}
	}
	if _, err := ctx.Output.Write([]byte("\n")); err != nil {
		return Result{}, err
	}
	return normal(types.NewNone()), nil
}

func (e *Evaluator) execReturnStmt(s *parser.ReturnStmt, scope *types.Scope, ctx *types.Context) (Result, error) {
	value, err := e.Eval(s.Value, scope, ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: value, Flow: FlowReturn}, nil
}

// execIfElse yields None unless the chosen branch itself propagates a
// return-unwind, which flows through untouched (spec.md §4.3).
func (e *Evaluator) execIfElse(s *parser.IfElse, scope *types.Scope, ctx *types.Context) (Result, error) {
	cond, err := e.Eval(s.Condition, scope, ctx)
	if err != nil {
		return Result{}, err
	}
	if cond.Truthy() {
		return e.Exec(s.Then, scope, ctx)
	}
	if s.Else != nil {
		return e.Exec(s.Else, scope, ctx)
	}
	return normal(types.NewNone()), nil
}

// execClassDecl binds the class's own name to the class handle created
// during parsing. It is the run-time half of spec.md §9's Open Question:
// the class object bound here is pointer-identical to the one the parser's
// registry and any NewInstance/base-class reference already resolved to.
func (e *Evaluator) execClassDecl(s *parser.ClassDecl, scope *types.Scope, ctx *types.Context) (Result, error) {
	scope.Set(s.Name, s.Class)
	return normal(s.Class), nil
}
