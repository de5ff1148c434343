// Package interperr provides STIMPL's closed error taxonomy: every
// failure the evaluator can raise is one of SyntaxError, TypeError, or
// MathError. All three are fatal to the enclosing run — the evaluator
// never catches or retries.
package interperr

import "fmt"

// Kind identifies which of the three error families an error belongs to.
type Kind string

const (
	KindSyntax Kind = "SyntaxError"
	KindType   Kind = "TypeError"
	KindMath   Kind = "MathError"
)

// Info describes a Kind for diagnostic reporting, mirroring the
// code-registry pattern used elsewhere in this codebase for structured
// error reporting, scaled down to STIMPL's three kinds.
type Info struct {
	Kind        Kind
	Description string
}

// Registry maps each Kind to its description.
var Registry = map[Kind]Info{
	KindSyntax: {KindSyntax, "unbound variable read or unrecognized AST node"},
	KindType:   {KindType, "operand, operator, or assignment type mismatch"},
	KindMath:   {KindMath, "division by zero"},
}

// Error is the error type raised by the evaluator. It carries its Kind
// alongside a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Syntax constructs a SyntaxError with the given message.
func Syntax(format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Message: fmt.Sprintf(format, args...)}
}

// TypeErr constructs a TypeError with the given message.
func TypeErr(format string, args ...any) *Error {
	return &Error{Kind: KindType, Message: fmt.Sprintf(format, args...)}
}

// Math constructs a MathError with the given message.
func Math(format string, args ...any) *Error {
	return &Error{Kind: KindMath, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
