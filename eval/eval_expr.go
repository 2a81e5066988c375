package eval

import (
	"mython/parser"
	"mython/types"
)

// Eval evaluates one expression node to a value.
func (e *Evaluator) Eval(expr parser.Expr, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	if err := e.tick(expr.Position(), ctx); err != nil {
		return nil, err
	}

	switch x := expr.(type) {
	case *parser.NumberLiteral:
		return types.NewNumber(x.Val), nil
	case *parser.StringLiteral:
		return types.NewString(x.Val), nil
	case *parser.BoolLiteral:
		return types.NewBool(x.Val), nil
	case *parser.NoneLiteral:
		return types.NewNone(), nil
	case *parser.VariableValue:
		return e.evalVariableValue(x, scope, ctx)
	case *parser.NewInstance:
		return e.evalNewInstance(x, scope, ctx)
	case *parser.MethodCall:
		return e.evalMethodCall(x, scope, ctx)
	case *parser.Stringify:
		return e.evalStringify(x, scope, ctx)
	case *parser.BinaryOp:
		return e.evalBinaryOp(x, scope, ctx)
	case *parser.CompareOp:
		return e.evalCompareOp(x, scope, ctx)
	case *parser.LogicalOp:
		return e.evalLogicalOp(x, scope, ctx)
	case *parser.NotOp:
		return e.evalNotOp(x, scope, ctx)
	default:
		return nil, e.runtimeError(expr.Position(), "unevaluable expression %T", expr)
	}
}

// evalVariableValue resolves a.b.c: the base name in scope, then each
// subsequent name as a field read off the previous ClassInstance.
func (e *Evaluator) evalVariableValue(x *parser.VariableValue, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	value, ok := scope.Get(x.Names[0])
	if !ok {
		return nil, e.runtimeError(x.Pos, "unknown variable: %s", x.Names[0])
	}

	for _, name := range x.Names[1:] {
		instance, ok := value.(*types.ClassInstance)
		if !ok {
			return nil, e.runtimeError(x.Pos, "%s is not an instance", name)
		}
		value, ok = instance.Fields.Get(name)
		if !ok {
			return nil, e.runtimeError(x.Pos, "unknown field: %s", name)
		}
	}
	return value, nil
}

// evalNewInstance creates a fresh instance and, if the class declares
// __init__ at exactly this call's arity, runs it against the new instance
// before returning it.
func (e *Evaluator) evalNewInstance(x *parser.NewInstance, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	args, err := e.evalArgs(x.Args, scope, ctx)
	if err != nil {
		return nil, err
	}

	instance := types.NewInstance(x.Class)
	if x.Class.HasMethod("__init__", len(args)) {
		init, _ := x.Class.GetMethod("__init__")
		if _, err := e.callMethod(x.Class, init, instance, args, x.Pos, ctx); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// evalMethodCall evaluates the receiver, requires it to be a ClassInstance,
// evaluates arguments left to right, and dispatches to the method found at
// this call's exact arity.
func (e *Evaluator) evalMethodCall(x *parser.MethodCall, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	receiver, err := e.Eval(x.Object, scope, ctx)
	if err != nil {
		return nil, err
	}
	instance, ok := receiver.(*types.ClassInstance)
	if !ok {
		return nil, e.runtimeError(x.Pos, "method call on a non-instance value")
	}

	args, err := e.evalArgs(x.Args, scope, ctx)
	if err != nil {
		return nil, err
	}

	if !instance.Class.HasMethod(x.Method, len(args)) {
		return nil, e.runtimeError(x.Pos, "method %s/%d not found on class %s", x.Method, len(args), instance.Class.Name)
	}
	method, _ := instance.Class.GetMethod(x.Method)
	return e.callMethod(instance.Class, method, instance, args, x.Pos, ctx)
}

func (e *Evaluator) evalArgs(exprs []parser.Expr, scope *types.Scope, ctx *types.Context) ([]types.Value, error) {
	args := make([]types.Value, len(exprs))
	for i, arg := range exprs {
		v, err := e.Eval(arg, scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// callMethod is the MethodBody boundary: it builds the fresh scope a method
// executes with (self plus bound parameters, with no lexical access to the
// caller's scope), runs the body, and catches the body's return-unwind. A
// method that completes without hitting return yields None.
func (e *Evaluator) callMethod(class *types.Class, method *types.Method, self *types.ClassInstance, args []types.Value, pos parser.Position, ctx *types.Context) (types.Value, error) {
	methodScope := types.NewScope()
	methodScope.Set("self", self)
	for i, param := range method.Params {
		methodScope.Set(param, args[i])
	}

	body, ok := method.Body.(parser.Stmt)
	if !ok {
		return nil, e.runtimeError(pos, "method %s.%s has no body", class.Name, method.Name)
	}

	e.pushFrame(class.Name, method.Name)
	defer e.popFrame()

	result, err := e.Exec(body, methodScope, ctx)
	if err != nil {
		return nil, err
	}
	if isReturn(result) {
		return result.Value, nil
	}
	return types.NewNone(), nil
}

// evalStringify implements the built-in str(x).
func (e *Evaluator) evalStringify(x *parser.Stringify, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	value, err := e.Eval(x.Arg, scope, ctx)
	if err != nil {
		return nil, err
	}
	text, err := e.stringify(value, ctx)
	if err != nil {
		return nil, err
	}
	return types.NewString(text), nil
}

// stringify renders value the way print and str(x) both do: a ClassInstance
// with a zero-arity __str__ is asked to render itself; anything else (and
// any ClassInstance lacking __str__) uses its own String().
func (e *Evaluator) stringify(value types.Value, ctx *types.Context) (string, error) {
	instance, ok := value.(*types.ClassInstance)
	if !ok {
		return value.String(), nil
	}
	if !instance.Class.HasMethod("__str__", 0) {
		return instance.String(), nil
	}
	method, _ := instance.Class.GetMethod("__str__")
	result, err := e.callMethod(instance.Class, method, instance, nil, parser.Position{}, ctx)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func (e *Evaluator) evalLogicalOp(x *parser.LogicalOp, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	left, err := e.Eval(x.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	if x.And {
		if !left.Truthy() {
			return types.NewBool(false), nil
		}
		right, err := e.Eval(x.Right, scope, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewBool(right.Truthy()), nil
	}
	if left.Truthy() {
		return types.NewBool(true), nil
	}
	right, err := e.Eval(x.Right, scope, ctx)
	if err != nil {
		return nil, err
	}
	return types.NewBool(right.Truthy()), nil
}

func (e *Evaluator) evalNotOp(x *parser.NotOp, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	operand, err := e.Eval(x.Operand, scope, ctx)
	if err != nil {
		return nil, err
	}
	return types.NewBool(!operand.Truthy()), nil
}
