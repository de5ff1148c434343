package eval

import (
	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/interperr"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// evalIf evaluates Condition, then exactly one of TrueBranch/FalseBranch.
// The unchosen branch is never evaluated.
func (e *Evaluator) evalIf(n ast.If, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	cv, ct, next, err := e.Eval(n.Condition, environment)
	if err != nil {
		return nil, 0, next, err
	}
	if ct != stimpltypes.Boolean {
		return nil, 0, next, interperr.TypeErr("Cannot perform logical if on non-boolean operands.")
	}

	if cv.(value.BoolV).Val {
		return e.Eval(n.TrueBranch, next)
	}
	return e.Eval(n.FalseBranch, next)
}

// evalWhile loops iteratively (not recursively, to keep stack depth
// bounded by AST depth rather than iteration count) re-checking Condition
// after every Body evaluation. Termination is not guaranteed; a
// nonterminating program loops forever, as the language allows. The
// result is always (false, Boolean) — the value a Boolean condition
// holds at loop exit.
func (e *Evaluator) evalWhile(n ast.While, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	cv, ct, cur, err := e.Eval(n.Condition, environment)
	if err != nil {
		return nil, 0, cur, err
	}
	if ct != stimpltypes.Boolean {
		return nil, 0, cur, interperr.TypeErr("Cannot perform logical if on non-boolean operands.")
	}

	for cv.(value.BoolV).Val {
		_, _, cur, err = e.Eval(n.Body, cur)
		if err != nil {
			return nil, 0, cur, err
		}

		cv, ct, cur, err = e.Eval(n.Condition, cur)
		if err != nil {
			return nil, 0, cur, err
		}
		if ct != stimpltypes.Boolean {
			return nil, 0, cur, interperr.TypeErr("Cannot perform logical if on non-boolean operands.")
		}
	}

	return value.BoolV{Val: false}, stimpltypes.Boolean, cur, nil
}
