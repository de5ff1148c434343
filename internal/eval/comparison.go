package eval

import (
	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/interperr"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// evalCompare implements Lt/Lte/Gt/Gte/Eq/Ne. All six, Ne included,
// require matching operand types and always yield Boolean.
func (e *Evaluator) evalCompare(b ast.BinaryOp, op string, environment *env.Env) (value.Value, stimpltypes.Type, *env.Env, error) {
	lv, lt, next, err := e.Eval(b.Left, environment)
	if err != nil {
		return nil, 0, next, err
	}
	rv, rt, next, err := e.Eval(b.Right, next)
	if err != nil {
		return nil, 0, next, err
	}

	if lt != rt {
		return nil, 0, next, interperr.TypeErr("Mismatched types for %s: Cannot compare %s and %s", op, lt, rt)
	}

	if lt == stimpltypes.Unit {
		return value.BoolV{Val: unitCompare(op)}, stimpltypes.Boolean, next, nil
	}

	ord, err := order(lt, lv, rv)
	if err != nil {
		return nil, 0, next, err
	}

	var result bool
	switch op {
	case "Lt":
		result = ord < 0
	case "Lte":
		result = ord <= 0
	case "Gt":
		result = ord > 0
	case "Gte":
		result = ord >= 0
	case "Eq":
		result = ord == 0
	case "Ne":
		result = ord != 0
	}
	return value.BoolV{Val: result}, stimpltypes.Boolean, next, nil
}

// unitCompare gives Unit vs Unit its degenerate-singleton order: Lt/Gt/Ne
// are false, Lte/Gte/Eq are true.
func unitCompare(op string) bool {
	switch op {
	case "Lte", "Gte", "Eq":
		return true
	default:
		return false
	}
}

// order returns -1, 0, or 1 comparing lv to rv under their shared type's
// natural total order: numeric order for numbers, false < true for
// booleans, byte-wise lexicographic order for strings.
func order(t stimpltypes.Type, lv, rv value.Value) (int, error) {
	switch t {
	case stimpltypes.Integer:
		return cmpInt64(lv.(value.IntV).Val, rv.(value.IntV).Val), nil
	case stimpltypes.FloatingPoint:
		return cmpFloat64(lv.(value.FloatV).Val, rv.(value.FloatV).Val), nil
	case stimpltypes.Boolean:
		return cmpBool(lv.(value.BoolV).Val, rv.(value.BoolV).Val), nil
	case stimpltypes.String:
		return cmpString(lv.(value.StringV).Val, rv.(value.StringV).Val), nil
	default:
		return 0, interperr.TypeErr("Cannot perform comparison on %s type.", t)
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	// false < true
	ai, bi := 0, 0
	if a {
		ai = 1
	}
	if b {
		bi = 1
	}
	return cmpInt64(int64(ai), int64(bi))
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
