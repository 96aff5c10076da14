package expr

import (
	"fmt"
	"math"
)

// Eval evaluates n at the domain coordinate (x, y).
//
// If x and y both lie in [-1, 1], so does the result: products and
// averages of values in [-1, 1] stay there, sin and cos are bounded by 1,
// and squares land in [0, 1].
func Eval(n Node, x, y float64) float64 {
	return n.Eval(x, y)
}

// Eval for VarNode returns the selected coordinate.
func (v *VarNode) Eval(x, y float64) float64 {
	if v.Var == VarX {
		return x
	}
	return y
}

// Eval for UnaryNode dispatches on op.
func (u *UnaryNode) Eval(x, y float64) float64 {
	a := u.Child.Eval(x, y)

	switch u.Op {
	case OpCosPi:
		return math.Cos(math.Pi * a)
	case OpSinPi:
		return math.Sin(math.Pi * a)
	case OpSquare:
		return a * a
	default:
		panic(fmt.Sprintf("expr: invalid unary op %d", u.Op))
	}
}

// Eval for BinaryNode dispatches on op.
func (b *BinaryNode) Eval(x, y float64) float64 {
	left := b.Left.Eval(x, y)
	right := b.Right.Eval(x, y)

	switch b.Op {
	case OpProduct:
		return left * right
	case OpAverage:
		return 0.5 * (left + right)
	case OpNegProduct:
		return -(left * right)
	default:
		panic(fmt.Sprintf("expr: invalid binary op %d", b.Op))
	}
}
