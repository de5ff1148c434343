package eval

import (
	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/interperr"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// evalVariable looks up n.VariableName and fails with a SyntaxError if
// it is unbound. A successful read never changes the environment.
func (e *Evaluator) evalVariable(n ast.Variable, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	v, t, ok := env.Get(environment, n.VariableName)
	if !ok {
		return nil, 0, environment, interperr.Syntax("Cannot read from %s before assignment.", n.VariableName)
	}
	return v, t, environment, nil
}

// evalAssign evaluates the right-hand side, enforces that a rebound
// variable keeps its first-assigned type (monotyped variables), and
// installs the new binding as the environment's head.
func (e *Evaluator) evalAssign(n ast.Assign, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	v, t, next, err := e.Eval(n.Value, environment)
	if err != nil {
		return nil, 0, next, err
	}

	name := n.Variable.VariableName
	if _, prevType, ok := env.Get(next, name); ok {
		if prevType != t {
			return nil, 0, next, interperr.TypeErr(
				"Mismatched types for Assignment: Cannot assign %s to %s", t, prevType)
		}
	}

	return v, t, env.Set(next, name, v, t), nil
}
