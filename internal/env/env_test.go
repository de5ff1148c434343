package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

func TestGetOnEmptyIsAbsent(t *testing.T) {
	_, _, ok := env.Get(env.Empty(), "x")
	assert.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	e := env.Set(env.Empty(), "x", value.IntV{Val: 3}, stimpltypes.Integer)

	v, typ, ok := env.Get(e, "x")
	require.True(t, ok)
	assert.Equal(t, value.IntV{Val: 3}, v)
	assert.Equal(t, stimpltypes.Integer, typ)
}

// Env purity: set never mutates the receiver; the prior environment's
// view of any name is unchanged after a descendant Set (invariant 1).
func TestSetDoesNotMutateReceiver(t *testing.T) {
	e0 := env.Set(env.Empty(), "x", value.IntV{Val: 1}, stimpltypes.Integer)
	_ = env.Set(e0, "y", value.IntV{Val: 2}, stimpltypes.Integer)

	v, typ, ok := env.Get(e0, "x")
	require.True(t, ok)
	assert.Equal(t, value.IntV{Val: 1}, v)
	assert.Equal(t, stimpltypes.Integer, typ)

	_, _, ok = env.Get(e0, "y")
	assert.False(t, ok, "e0 must not see a binding installed on a descendant")
}

// Shadowing: the most recent set wins regardless of prior bindings
// (invariant 2).
func TestShadowing(t *testing.T) {
	e := env.Set(env.Empty(), "x", value.IntV{Val: 1}, stimpltypes.Integer)
	e = env.Set(e, "x", value.StringV{Val: "hi"}, stimpltypes.String)

	v, typ, ok := env.Get(e, "x")
	require.True(t, ok)
	assert.Equal(t, value.StringV{Val: "hi"}, v)
	assert.Equal(t, stimpltypes.String, typ)
}

func TestDumpMostRecentFirst(t *testing.T) {
	e := env.Set(env.Empty(), "x", value.IntV{Val: 1}, stimpltypes.Integer)
	e = env.Set(e, "y", value.IntV{Val: 2}, stimpltypes.Integer)

	dump := env.Dump(e)
	assert.Regexp(t, `(?s)^y: 2 \(Integer\)\nx: 1 \(Integer\)\n$`, dump)
}
