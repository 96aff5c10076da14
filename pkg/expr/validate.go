package expr

import (
	"errors"
	"fmt"
)

// ErrInvalidNode is returned by Validate for trees that Eval cannot
// evaluate.
var ErrInvalidNode = errors.New("invalid node")

// Valid reports whether op is one of the declared unary operations.
func (op UnaryOp) Valid() bool {
	_, ok := unaryOpNames[op]
	return ok
}

// Valid reports whether op is one of the declared binary operations.
func (op BinaryOp) Valid() bool {
	_, ok := binaryOpNames[op]
	return ok
}

// Valid reports whether v is VarX or VarY.
func (v Var) Valid() bool {
	_, ok := varNames[v]
	return ok
}

// Validate walks n and reports the first nil child or undeclared op.
// Trees from the constructors, Parse and the builder are always valid;
// call Validate on trees assembled by hand from the exported fields.
func Validate(n Node) error {
	switch n := n.(type) {
	case nil:
		return fmt.Errorf("expr: nil node: %w", ErrInvalidNode)
	case *VarNode:
		if n == nil {
			return fmt.Errorf("expr: nil node: %w", ErrInvalidNode)
		}
		if !n.Var.Valid() {
			return fmt.Errorf("expr: variable %d: %w", n.Var, ErrInvalidNode)
		}
		return nil
	case *UnaryNode:
		if n == nil {
			return fmt.Errorf("expr: nil node: %w", ErrInvalidNode)
		}
		if !n.Op.Valid() {
			return fmt.Errorf("expr: unary op %d: %w", n.Op, ErrInvalidNode)
		}
		return Validate(n.Child)
	case *BinaryNode:
		if n == nil {
			return fmt.Errorf("expr: nil node: %w", ErrInvalidNode)
		}
		if !n.Op.Valid() {
			return fmt.Errorf("expr: binary op %d: %w", n.Op, ErrInvalidNode)
		}
		if err := Validate(n.Left); err != nil {
			return err
		}
		return Validate(n.Right)
	default:
		return fmt.Errorf("expr: unknown node type %T: %w", n, ErrInvalidNode)
	}
}
