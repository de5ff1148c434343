package eval

import (
	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/interperr"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// evalLogical implements And/Or. Both operands are always evaluated,
// left then right — STIMPL has no short-circuit evaluation, so side
// effects on the right (e.g. Print) occur regardless of the left value.
func (e *Evaluator) evalLogical(b ast.BinaryOp, op string, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	lv, lt, next, err := e.Eval(b.Left, environment)
	if err != nil {
		return nil, 0, next, err
	}
	rv, rt, next, err := e.Eval(b.Right, next)
	if err != nil {
		return nil, 0, next, err
	}

	if lt != stimpltypes.Boolean || rt != stimpltypes.Boolean {
		return nil, 0, next, interperr.TypeErr("Cannot perform logical %s on non-boolean operands.", logicVerb(op))
	}

	l, r := lv.(value.BoolV).Val, rv.(value.BoolV).Val
	var result bool
	if op == "And" {
		result = l && r
	} else {
		result = l || r
	}
	return value.BoolV{Val: result}, stimpltypes.Boolean, next, nil
}

func logicVerb(op string) string {
	if op == "And" {
		return "and"
	}
	return "or"
}

// evalNot implements Not: require a Boolean operand and negate it.
func (e *Evaluator) evalNot(n ast.Not, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	v, t, next, err := e.Eval(n.Expr, environment)
	if err != nil {
		return nil, 0, next, err
	}
	if t != stimpltypes.Boolean {
		return nil, 0, next, interperr.TypeErr("Cannot perform logical not on non-boolean operands.")
	}
	return value.BoolV{Val: !v.(value.BoolV).Val}, stimpltypes.Boolean, next, nil
}
