package eval

import (
	"io"

	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// Run is the driver's thin entry point: it seeds an empty environment
// and invokes the evaluator on program, writing Print output to out.
func Run(program ast.Node, out io.Writer) (value.Value, stimpltypes.Type, *env.Env, error) {
	return NewWithSink(out).Eval(program, env.Empty())
}
