package expr

import "fmt"

var varNames = map[Var]string{
	VarX: "x",
	VarY: "y",
}

var unaryOpNames = map[UnaryOp]string{
	OpCosPi:  "cos_pi",
	OpSinPi:  "sin_pi",
	OpSquare: "square",
}

var binaryOpNames = map[BinaryOp]string{
	OpProduct:    "prod",
	OpAverage:    "avg",
	OpNegProduct: "neg_prod",
}

func (v *VarNode) String() string {
	return v.Var.String()
}

func (u *UnaryNode) String() string {
	return fmt.Sprintf("%s(%s)", u.Op, u.Child.String())
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Op, b.Left.String(), b.Right.String())
}

// Undeclared values print as Type(n) so they never parse back.

func (v Var) String() string {
	if name, ok := varNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Var(%d)", int(v))
}

func (op UnaryOp) String() string {
	if name, ok := unaryOpNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

func (op BinaryOp) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}
