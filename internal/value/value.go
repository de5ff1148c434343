// Package value defines STIMPL's runtime values.
package value

import (
	"fmt"

	"github.com/sunholo/stimpl/internal/stimpltypes"
)

// Value is a runtime value tagged with its stimpltypes.Type. Every
// implementation's variant matches the type returned by Type() — this is
// the value/type invariant the evaluator relies on throughout.
type Value interface {
	Type() stimpltypes.Type
	String() string
}

// UnitV is the sole inhabitant of Unit. Its payload carries no data; code
// must not inspect it beyond the Value interface.
type UnitV struct{}

func (UnitV) Type() stimpltypes.Type { return stimpltypes.Unit }
func (UnitV) String() string         { return "Unit" }

// IntV is an Integer value.
type IntV struct{ Val int64 }

func (IntV) Type() stimpltypes.Type { return stimpltypes.Integer }
func (v IntV) String() string       { return fmt.Sprintf("%d", v.Val) }

// FloatV is a FloatingPoint value.
type FloatV struct{ Val float64 }

func (FloatV) Type() stimpltypes.Type { return stimpltypes.FloatingPoint }
func (v FloatV) String() string       { return fmt.Sprintf("%g", v.Val) }

// BoolV is a Boolean value.
type BoolV struct{ Val bool }

func (BoolV) Type() stimpltypes.Type { return stimpltypes.Boolean }
func (v BoolV) String() string {
	if v.Val {
		return "true"
	}
	return "false"
}

// StringV is a String value.
type StringV struct{ Val string }

func (StringV) Type() stimpltypes.Type { return stimpltypes.String }
func (v StringV) String() string       { return v.Val }
