// Package env implements STIMPL's persistent variable environment: an
// immutable, structurally-shared cons-list of (name, value, type)
// bindings. Set never mutates its receiver; it returns a new head node
// linking to the receiver, which remains valid and unchanged.
package env

import (
	"fmt"
	"strings"

	"github.com/sunholo/stimpl/internal/stimpltypes"
	"github.com/sunholo/stimpl/internal/value"
)

// Binding is a single (name, value, type) triple installed by Set.
type Binding struct {
	Name  string
	Value value.Value
	Type  stimpltypes.Type
}

// Env is a node in the persistent binding chain. The terminal empty
// environment is the nil *Env returned by Empty.
type Env struct {
	head *Binding
	next *Env
}

// Empty returns the terminal environment. It holds no bindings.
func Empty() *Env {
	return nil
}

// Set produces a new environment whose head binding is (name, val, typ)
// and whose tail is env. O(1); env is left untouched.
func Set(env *Env, name string, val value.Value, typ stimpltypes.Type) *Env {
	return &Env{
		head: &Binding{Name: name, Value: val, Type: typ},
		next: env,
	}
}

// Get walks from head to tail and returns the first binding matching
// name, most-recent first (LIFO shadowing). ok is false if no binding
// of that name exists in env.
func Get(env *Env, name string) (val value.Value, typ stimpltypes.Type, ok bool) {
	for e := env; e != nil; e = e.next {
		if e.head.Name == name {
			return e.head.Value, e.head.Type, true
		}
	}
	return nil, 0, false
}

// Dump renders env most-recent-binding-first, one "name: value (Type)"
// entry per line — the convention the driver's debug output uses.
func Dump(env *Env) string {
	var b strings.Builder
	for e := env; e != nil; e = e.next {
		fmt.Fprintf(&b, "%s: %s (%s)\n", e.head.Name, e.head.Value.String(), e.head.Type)
	}
	return b.String()
}
