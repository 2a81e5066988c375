package eval

import (
	"mython/parser"
	"mython/types"
)

// evalCompareOp dispatches ==, !=, <, <=, >, >= to Equal/Less and their
// derived forms (spec.md §4.3, §8 law 4). GreaterOrEqual is implemented as
// !Less(a,b), not Greater(a,b)||Equal(a,b) — spec.md §9's Open Question 3,
// resolved in SPEC_FULL.md to follow original_source/runtime.cpp
// GreaterOrEqual exactly.
func (e *Evaluator) evalCompareOp(x *parser.CompareOp, scope *types.Scope, ctx *types.Context) (types.Value, error) {
	left, err := e.Eval(x.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(x.Right, scope, ctx)
	if err != nil {
		return nil, err
	}

	switch x.Operator {
	case parser.LESS:
		less, err := e.less(left, right, x.Pos, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewBool(less), nil
	case parser.GREATER:
		less, err := e.less(left, right, x.Pos, ctx)
		if err != nil {
			return nil, err
		}
		equal, err := e.equal(left, right, x.Pos, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewBool(!less && !equal), nil
	case parser.EQ:
		equal, err := e.equal(left, right, x.Pos, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewBool(equal), nil
	case parser.NOT_EQ:
		equal, err := e.equal(left, right, x.Pos, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewBool(!equal), nil
	case parser.LESS_OR_EQ:
		less, err := e.less(left, right, x.Pos, ctx)
		if err != nil {
			return nil, err
		}
		if less {
			return types.NewBool(true), nil
		}
		equal, err := e.equal(left, right, x.Pos, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewBool(equal), nil
	case parser.GREATER_OR_EQ:
		less, err := e.less(left, right, x.Pos, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewBool(!less), nil
	default:
		return nil, e.runtimeError(x.Pos, "unknown comparison operator %s", x.Operator)
	}
}

// equal implements ==. Two nil handles compare equal, as do two None
// values; same-typed Number, String and Bool compare by value; two
// ClassInstances dispatch to __eq__/1. Any other pairing is unsupported.
func (e *Evaluator) equal(left, right types.Value, pos parser.Position, ctx *types.Context) (bool, error) {
	if left == nil && right == nil {
		return true, nil
	}
	switch l := left.(type) {
	case types.Number:
		if r, ok := right.(types.Number); ok {
			return l.Val == r.Val, nil
		}
	case types.String:
		if r, ok := right.(types.String); ok {
			return l.Val == r.Val, nil
		}
	case types.Bool:
		if r, ok := right.(types.Bool); ok {
			return l.Val == r.Val, nil
		}
	case types.None:
		if _, ok := right.(types.None); ok {
			return true, nil
		}
	case *types.ClassInstance:
		if r, ok := right.(*types.ClassInstance); ok {
			if !l.Class.HasMethod("__eq__", 1) {
				return false, e.runtimeError(pos, "class %s has no __eq__ method", l.Class.Name)
			}
			method, _ := l.Class.GetMethod("__eq__")
			result, err := e.callMethod(l.Class, method, l, []types.Value{r}, pos, ctx)
			if err != nil {
				return false, err
			}
			return result.Truthy(), nil
		}
	}
	return false, e.runtimeError(pos, "unsupported comparison between %s and %s", left.Type(), right.Type())
}

// less implements <. Same-typed Number, String and Bool compare by their
// natural ordering (Bool: false < true); two ClassInstances dispatch to
// __lt__/1.
func (e *Evaluator) less(left, right types.Value, pos parser.Position, ctx *types.Context) (bool, error) {
	switch l := left.(type) {
	case types.Number:
		if r, ok := right.(types.Number); ok {
			return l.Val < r.Val, nil
		}
	case types.String:
		if r, ok := right.(types.String); ok {
			return l.Val < r.Val, nil
		}
	case types.Bool:
		if r, ok := right.(types.Bool); ok {
			return !l.Val && r.Val, nil
		}
	case *types.ClassInstance:
		if r, ok := right.(*types.ClassInstance); ok {
			if !l.Class.HasMethod("__lt__", 1) {
				return false, e.runtimeError(pos, "class %s has no __lt__ method", l.Class.Name)
			}
			method, _ := l.Class.GetMethod("__lt__")
			result, err := e.callMethod(l.Class, method, l, []types.Value{r}, pos, ctx)
			if err != nil {
				return false, err
			}
			return result.Truthy(), nil
		}
	}
	return false, e.runtimeError(pos, "unsupported comparison between %s and %s", left.Type(), right.Type())
}
