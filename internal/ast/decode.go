package ast

import (
	"encoding/json"

	"github.com/sunholo/stimpl/internal/interperr"
)

// wireNode is the on-the-wire shape of a serialized AST node: a "node"
// discriminator naming one of the closed variants in ast.go, plus
// whichever fields that variant needs. Since the STIMPL parser/frontend
// is out of scope for this repository, external producers hand the
// evaluator a JSON document instead of source text.
type wireNode struct {
	NodeKind string          `json:"node"`
	Literal  json.RawMessage `json:"literal,omitempty"`
	ToPrint  json.RawMessage `json:"to_print,omitempty"`
	Exprs    []json.RawMessage `json:"exprs,omitempty"`
	Name     string          `json:"variable_name,omitempty"`
	Variable json.RawMessage `json:"variable,omitempty"`
	Value    json.RawMessage `json:"value,omitempty"`
	Left     json.RawMessage `json:"left,omitempty"`
	Right    json.RawMessage `json:"right,omitempty"`
	Expr     json.RawMessage `json:"expr,omitempty"`
	Cond     json.RawMessage `json:"condition,omitempty"`
	True     json.RawMessage `json:"true_branch,omitempty"`
	False    json.RawMessage `json:"false_branch,omitempty"`
	Body     json.RawMessage `json:"body,omitempty"`
}

// Decode parses a serialized AST document into a Node tree. Any
// "node" discriminator outside the closed set defined in ast.go fails
// with a SyntaxError, the same family the evaluator itself raises for
// an unrecognized variant.
func Decode(data []byte) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, interperr.Syntax("malformed AST document: %v", err)
	}
	return decodeWire(&w)
}

func decodeRaw(data json.RawMessage) (Node, error) {
	if len(data) == 0 {
		return nil, interperr.Syntax("missing required AST child node")
	}
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, interperr.Syntax("malformed AST document: %v", err)
	}
	return decodeWire(&w)
}

func decodeChildren(raws []json.RawMessage) ([]Node, error) {
	out := make([]Node, 0, len(raws))
	for _, r := range raws {
		n, err := decodeRaw(r)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeBinary(w *wireNode) (BinaryOp, error) {
	left, err := decodeRaw(w.Left)
	if err != nil {
		return BinaryOp{}, err
	}
	right, err := decodeRaw(w.Right)
	if err != nil {
		return BinaryOp{}, err
	}
	return BinaryOp{Left: left, Right: right}, nil
}

func decodeWire(w *wireNode) (Node, error) {
	switch w.NodeKind {
	case "Ren":
		return Ren{}, nil

	case "IntLiteral":
		var lit int64
		if err := json.Unmarshal(w.Literal, &lit); err != nil {
			return nil, interperr.Syntax("IntLiteral: %v", err)
		}
		return IntLiteral{Literal: lit}, nil

	case "FloatingPointLiteral":
		var lit float64
		if err := json.Unmarshal(w.Literal, &lit); err != nil {
			return nil, interperr.Syntax("FloatingPointLiteral: %v", err)
		}
		return FloatingPointLiteral{Literal: lit}, nil

	case "StringLiteral":
		var lit string
		if err := json.Unmarshal(w.Literal, &lit); err != nil {
			return nil, interperr.Syntax("StringLiteral: %v", err)
		}
		return StringLiteral{Literal: lit}, nil

	case "BooleanLiteral":
		var lit bool
		if err := json.Unmarshal(w.Literal, &lit); err != nil {
			return nil, interperr.Syntax("BooleanLiteral: %v", err)
		}
		return BooleanLiteral{Literal: lit}, nil

	case "Print":
		inner, err := decodeRaw(w.ToPrint)
		if err != nil {
			return nil, err
		}
		return Print{ToPrint: inner}, nil

	case "Sequence":
		exprs, err := decodeChildren(w.Exprs)
		if err != nil {
			return nil, err
		}
		return Sequence{Exprs: exprs}, nil

	case "Program":
		exprs, err := decodeChildren(w.Exprs)
		if err != nil {
			return nil, err
		}
		return Program{Exprs: exprs}, nil

	case "Variable":
		return Variable{VariableName: w.Name}, nil

	case "Assign":
		v, err := decodeRaw(w.Variable)
		if err != nil {
			return nil, err
		}
		variable, ok := v.(Variable)
		if !ok {
			return nil, interperr.Syntax("Assign: variable field must be a Variable node")
		}
		rhs, err := decodeRaw(w.Value)
		if err != nil {
			return nil, err
		}
		return Assign{Variable: variable, Value: rhs}, nil

	case "Add", "Subtract", "Multiply", "Divide", "And", "Or", "Lt", "Lte", "Gt", "Gte", "Eq", "Ne":
		b, err := decodeBinary(w)
		if err != nil {
			return nil, err
		}
		switch w.NodeKind {
		case "Add":
			return Add{b}, nil
		case "Subtract":
			return Subtract{b}, nil
		case "Multiply":
			return Multiply{b}, nil
		case "Divide":
			return Divide{b}, nil
		case "And":
			return And{b}, nil
		case "Or":
			return Or{b}, nil
		case "Lt":
			return Lt{b}, nil
		case "Lte":
			return Lte{b}, nil
		case "Gt":
			return Gt{b}, nil
		case "Gte":
			return Gte{b}, nil
		case "Eq":
			return Eq{b}, nil
		default:
			return Ne{b}, nil
		}

	case "Not":
		inner, err := decodeRaw(w.Expr)
		if err != nil {
			return nil, err
		}
		return Not{Expr: inner}, nil

	case "If":
		cond, err := decodeRaw(w.Cond)
		if err != nil {
			return nil, err
		}
		t, err := decodeRaw(w.True)
		if err != nil {
			return nil, err
		}
		f, err := decodeRaw(w.False)
		if err != nil {
			return nil, err
		}
		return If{Condition: cond, TrueBranch: t, FalseBranch: f}, nil

	case "While":
		cond, err := decodeRaw(w.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeRaw(w.Body)
		if err != nil {
			return nil, err
		}
		return While{Condition: cond, Body: body}, nil

	default:
		return nil, interperr.Syntax("unrecognized AST node kind %q", w.NodeKind)
	}
}
