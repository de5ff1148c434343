package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

func TestValueTypeInvariant(t *testing.T) {
	cases := []struct {
		v    value.Value
		want stimpltypes.Type
	}{
		{value.UnitV{}, stimpltypes.Unit},
		{value.IntV{Val: 1}, stimpltypes.Integer},
		{value.FloatV{Val: 1.5}, stimpltypes.FloatingPoint},
		{value.BoolV{Val: true}, stimpltypes.Boolean},
		{value.StringV{Val: "s"}, stimpltypes.String},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.v.Type())
	}
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "Unit", value.UnitV{}.String())
	assert.Equal(t, "42", value.IntV{Val: 42}.String())
	assert.Equal(t, "true", value.BoolV{Val: true}.String())
	assert.Equal(t, "false", value.BoolV{Val: false}.String())
	assert.Equal(t, "hello", value.StringV{Val: "hello"}.String())
}
