// Package ast defines the closed set of AST node shapes the STIMPL
// evaluator consumes. The parser/frontend that builds these nodes is an
// external collaborator out of scope for this repository (see
// internal/ast/decode.go for the JSON producer contract this package
// accepts in its place).
package ast

import "fmt"

// Node is the base interface every AST variant implements. STIMPL has no
// statement/expression distinction — every node is expression-shaped.
type Node interface {
	fmt.Stringer
	astNode()
}

// base is embedded by every node to satisfy the unexported astNode
// marker method, closing the set to this package.
type base struct{}

func (base) astNode() {}

// Ren is the Unit literal, the language's only inhabitant of Unit.
type Ren struct{ base }

func (Ren) String() string { return "Ren" }

// IntLiteral is an Integer literal.
type IntLiteral struct {
	base
	Literal int64
}

func (n IntLiteral) String() string { return fmt.Sprintf("IntLiteral(%d)", n.Literal) }

// FloatingPointLiteral is a FloatingPoint literal.
type FloatingPointLiteral struct {
	base
	Literal float64
}

func (n FloatingPointLiteral) String() string {
	return fmt.Sprintf("FloatingPointLiteral(%g)", n.Literal)
}

// StringLiteral is a String literal.
type StringLiteral struct {
	base
	Literal string
}

func (n StringLiteral) String() string { return fmt.Sprintf("StringLiteral(%q)", n.Literal) }

// BooleanLiteral is a Boolean literal.
type BooleanLiteral struct {
	base
	Literal bool
}

func (n BooleanLiteral) String() string { return fmt.Sprintf("BooleanLiteral(%t)", n.Literal) }

// Print evaluates ToPrint and writes one line to the output sink.
type Print struct {
	base
	ToPrint Node
}

func (n Print) String() string { return fmt.Sprintf("Print(%s)", n.ToPrint) }

// Sequence evaluates Exprs in order, threading the environment through,
// and yields the last child's (value, type). An empty Sequence yields
// (UnitV, Unit).
type Sequence struct {
	base
	Exprs []Node
}

func (n Sequence) String() string { return fmt.Sprintf("Sequence%v", n.Exprs) }

// Program behaves identically to Sequence; it marks the evaluator's
// top-level entry node.
type Program struct {
	base
	Exprs []Node
}

func (n Program) String() string { return fmt.Sprintf("Program%v", n.Exprs) }

// Variable reads a binding out of the environment by name.
type Variable struct {
	base
	VariableName string
}

func (n Variable) String() string { return fmt.Sprintf("Variable(%s)", n.VariableName) }

// Assign evaluates Value and binds Variable.VariableName to it. A prior
// binding with a different type is a TypeError (monotyped variables).
type Assign struct {
	base
	Variable Variable
	Value    Node
}

func (n Assign) String() string { return fmt.Sprintf("Assign(%s, %s)", n.Variable, n.Value) }

// BinaryOp is the common shape of every two-operand node: arithmetic,
// logical, and comparison operators all embed it.
type BinaryOp struct {
	base
	Left  Node
	Right Node
}

func (b BinaryOp) operands() string { return fmt.Sprintf("%s, %s", b.Left, b.Right) }

// Add, Subtract, Multiply, Divide are the arithmetic operators.
type (
	Add      struct{ BinaryOp }
	Subtract struct{ BinaryOp }
	Multiply struct{ BinaryOp }
	Divide   struct{ BinaryOp }
)

func (n Add) String() string      { return fmt.Sprintf("Add(%s)", n.operands()) }
func (n Subtract) String() string { return fmt.Sprintf("Subtract(%s)", n.operands()) }
func (n Multiply) String() string { return fmt.Sprintf("Multiply(%s)", n.operands()) }
func (n Divide) String() string   { return fmt.Sprintf("Divide(%s)", n.operands()) }

// And, Or are the logical binary operators; both evaluate eagerly.
type (
	And struct{ BinaryOp }
	Or  struct{ BinaryOp }
)

func (n And) String() string { return fmt.Sprintf("And(%s)", n.operands()) }
func (n Or) String() string  { return fmt.Sprintf("Or(%s)", n.operands()) }

// Not negates a Boolean operand.
type Not struct {
	base
	Expr Node
}

func (n Not) String() string { return fmt.Sprintf("Not(%s)", n.Expr) }

// If evaluates Condition then exactly one of TrueBranch/FalseBranch.
type If struct {
	base
	Condition   Node
	TrueBranch  Node
	FalseBranch Node
}

func (n If) String() string {
	return fmt.Sprintf("If(%s, %s, %s)", n.Condition, n.TrueBranch, n.FalseBranch)
}

// Lt, Lte, Gt, Gte, Eq, Ne are the comparison operators. All require
// matching operand types and always yield Boolean.
type (
	Lt  struct{ BinaryOp }
	Lte struct{ BinaryOp }
	Gt  struct{ BinaryOp }
	Gte struct{ BinaryOp }
	Eq  struct{ BinaryOp }
	Ne  struct{ BinaryOp }
)

func (n Lt) String() string  { return fmt.Sprintf("Lt(%s)", n.operands()) }
func (n Lte) String() string { return fmt.Sprintf("Lte(%s)", n.operands()) }
func (n Gt) String() string  { return fmt.Sprintf("Gt(%s)", n.operands()) }
func (n Gte) String() string { return fmt.Sprintf("Gte(%s)", n.operands()) }
func (n Eq) String() string  { return fmt.Sprintf("Eq(%s)", n.operands()) }
func (n Ne) String() string  { return fmt.Sprintf("Ne(%s)", n.operands()) }

// While re-evaluates Condition/Body until Condition evaluates false.
// Termination is not guaranteed.
type While struct {
	base
	Condition Node
	Body      Node
}

func (n While) String() string { return fmt.Sprintf("While(%s, %s)", n.Condition, n.Body) }
