package eval

import (
	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/interperr"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// evalArith implements Add/Subtract/Multiply/Divide. Both operands are
// evaluated left then right before any type check, so side effects in
// either side always occur.
func (e *Evaluator) evalArith(b ast.BinaryOp, op string, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	lv, lt, next, err := e.Eval(b.Left, environment)
	if err != nil {
		return nil, 0, next, err
	}
	rv, rt, next, err := e.Eval(b.Right, next)
	if err != nil {
		return nil, 0, next, err
	}

	if lt != rt {
		return nil, 0, next, interperr.TypeErr("Mismatched types for %s: Cannot %s %s to %s", op, opVerb(op), lt, rt)
	}

	result, err := arithOp(op, lt, lv, rv)
	if err != nil {
		return nil, 0, next, err
	}
	return result, lt, next, nil
}

func opVerb(op string) string {
	switch op {
	case "Add":
		return "add"
	case "Subtract":
		return "subtract"
	case "Multiply":
		return "multiply"
	default:
		return "divide"
	}
}

func arithOp(op string, t stimpltypes.Type, lv, rv value.Value) (value.Value, error) {
	switch op {
	case "Add":
		return addOp(t, lv, rv)
	case "Subtract":
		return numericOp(op, t, lv, rv, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case "Multiply":
		return numericOp(op, t, lv, rv, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case "Divide":
		return divideOp(t, lv, rv)
	default:
		return nil, interperr.Syntax("unknown arithmetic op %s", op)
	}
}

func addOp(t stimpltypes.Type, lv, rv value.Value) (value.Value, error) {
	switch t {
	case stimpltypes.Integer:
		return value.IntV{Val: lv.(value.IntV).Val + rv.(value.IntV).Val}, nil
	case stimpltypes.FloatingPoint:
		return value.FloatV{Val: lv.(value.FloatV).Val + rv.(value.FloatV).Val}, nil
	case stimpltypes.String:
		return value.StringV{Val: lv.(value.StringV).Val + rv.(value.StringV).Val}, nil
	default:
		return nil, interperr.TypeErr("Cannot add %ss", t)
	}
}

func numericOp(op string, t stimpltypes.Type, lv, rv value.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (value.Value, error) {
	switch t {
	case stimpltypes.Integer:
		return value.IntV{Val: intOp(lv.(value.IntV).Val, rv.(value.IntV).Val)}, nil
	case stimpltypes.FloatingPoint:
		return value.FloatV{Val: floatOp(lv.(value.FloatV).Val, rv.(value.FloatV).Val)}, nil
	default:
		return nil, interperr.TypeErr("Cannot %s %ss", opVerb(op), t)
	}
}

// divideOp raises a MathError before attempting the division whenever
// the divisor is zero, for both Integer and FloatingPoint. Integer
// division truncates toward negative infinity (floor division), matching
// the source language's quotient operator on signed integers.
func divideOp(t stimpltypes.Type, lv, rv value.Value) (value.Value, error) {
	switch t {
	case stimpltypes.Integer:
		divisor := rv.(value.IntV).Val
		if divisor == 0 {
			return nil, interperr.Math("Cannot Divide by 0")
		}
		return value.IntV{Val: floorDivInt(lv.(value.IntV).Val, divisor)}, nil
	case stimpltypes.FloatingPoint:
		divisor := rv.(value.FloatV).Val
		if divisor == 0.0 {
			return nil, interperr.Math("Cannot Divide by 0")
		}
		return value.FloatV{Val: lv.(value.FloatV).Val / divisor}, nil
	default:
		return nil, interperr.TypeErr("Cannot divide %ss", t)
	}
}

// floorDivInt implements floor-toward-negative-infinity integer division,
// as opposed to Go's native truncate-toward-zero "/".
func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
