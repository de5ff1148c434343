// Package eval implements STIMPL's tree-walking evaluator: the
// recursive function mapping an AST node plus an environment to a
// (value, type, environment) triple, with strict monomorphic type
// checking performed during evaluation.
package eval

import (
	"io"
	"os"

	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/interperr"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// Evaluator holds the single piece of ambient state the evaluator
// needs beyond the env/value/type triple it threads explicitly: the
// output sink that Print writes to.
type Evaluator struct {
	Out io.Writer
}

// New returns an Evaluator that writes Print output to os.Stdout.
func New() *Evaluator {
	return &Evaluator{Out: os.Stdout}
}

// NewWithSink returns an Evaluator writing Print output to out, for
// tests and embedders that want to capture it.
func NewWithSink(out io.Writer) *Evaluator {
	return &Evaluator{Out: out}
}

// Eval is the top-level dispatcher. It is a closed match over the AST
// variants defined in internal/ast; any node type outside that set
// fails with a SyntaxError (the producer contract guarantees this can
// only happen if a caller hand-builds an unexpected Go type, since
// ast.Decode already rejects unrecognized wire discriminators).
func (e *Evaluator) Eval(node ast.Node, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	switch n := node.(type) {
	case ast.Ren:
		return value.UnitV{}, stimpltypes.Unit, environment, nil
	case ast.IntLiteral:
		return value.IntV{Val: n.Literal}, stimpltypes.Integer, environment, nil
	case ast.FloatingPointLiteral:
		return value.FloatV{Val: n.Literal}, stimpltypes.FloatingPoint, environment, nil
	case ast.StringLiteral:
		return value.StringV{Val: n.Literal}, stimpltypes.String, environment, nil
	case ast.BooleanLiteral:
		return value.BoolV{Val: n.Literal}, stimpltypes.Boolean, environment, nil

	case ast.Print:
		return e.evalPrint(n, environment)

	case ast.Sequence:
		return e.evalExprList(n.Exprs, environment)
	case ast.Program:
		return e.evalExprList(n.Exprs, environment)

	case ast.Variable:
		return e.evalVariable(n, environment)
	case ast.Assign:
		return e.evalAssign(n, environment)

	case ast.Add:
		return e.evalArith(n.BinaryOp, "Add", environment)
	case ast.Subtract:
		return e.evalArith(n.BinaryOp, "Subtract", environment)
	case ast.Multiply:
		return e.evalArith(n.BinaryOp, "Multiply", environment)
	case ast.Divide:
		return e.evalArith(n.BinaryOp, "Divide", environment)

	case ast.And:
		return e.evalLogical(n.BinaryOp, "And", environment)
	case ast.Or:
		return e.evalLogical(n.BinaryOp, "Or", environment)
	case ast.Not:
		return e.evalNot(n, environment)

	case ast.If:
		return e.evalIf(n, environment)

	case ast.Lt:
		return e.evalCompare(n.BinaryOp, "Lt", environment)
	case ast.Lte:
		return e.evalCompare(n.BinaryOp, "Lte", environment)
	case ast.Gt:
		return e.evalCompare(n.BinaryOp, "Gt", environment)
	case ast.Gte:
		return e.evalCompare(n.BinaryOp, "Gte", environment)
	case ast.Eq:
		return e.evalCompare(n.BinaryOp, "Eq", environment)
	case ast.Ne:
		return e.evalCompare(n.BinaryOp, "Ne", environment)

	case ast.While:
		return e.evalWhile(n, environment)

	default:
		return nil, 0, environment, interperr.Syntax("unhandled AST node %T", node)
	}
}

// evalExprList is the shared Sequence/Program implementation: an
// iterative left-to-right fold over children threading the environment,
// avoiding recursion depth proportional to sibling count (§5: "SHOULD
// convert to an explicit evaluation stack for Sequence, Program, and
// While to avoid overflow on deeply nested programs").
func (e *Evaluator) evalExprList(exprs []ast.Node, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	v, t, cur := value.Value(value.UnitV{}), stimpltypes.Unit, environment
	for _, child := range exprs {
		var err error
		v, t, cur, err = e.Eval(child, cur)
		if err != nil {
			return nil, 0, cur, err
		}
	}
	return v, t, cur, nil
}
