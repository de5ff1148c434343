package eval

import (
	"fmt"

	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// evalPrint evaluates the inner expression and writes exactly one line
// to e.Out: the literal text "Unit" for a Unit result, otherwise the
// value's deterministic string form.
func (e *Evaluator) evalPrint(n ast.Print, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	v, t, next, err := e.Eval(n.ToPrint, environment)
	if err != nil {
		return nil, 0, next, err
	}

	if t == stimpltypes.Unit {
		fmt.Fprintln(e.Out, "Unit")
	} else {
		fmt.Fprintln(e.Out, v.String())
	}

	return v, t, next, nil
}
