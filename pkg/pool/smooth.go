package pool

import "github.com/wildfunctions/recursive_art/pkg/expr"

func init() {
	Register("smooth", func() Pool { return &SmoothPool{} })
}

// SmoothPool restricts trees to trig waves blended by avg and prod.
type SmoothPool struct{}

func (p *SmoothPool) Name() string { return "smooth" }

func (p *SmoothPool) Leaves() []expr.Var { return []expr.Var{expr.VarX, expr.VarY} }

var smoothUnary = []expr.UnaryOp{
	expr.OpCosPi,
	expr.OpSinPi,
}

func (p *SmoothPool) Unary() []expr.UnaryOp { return smoothUnary }

var smoothBinary = []expr.BinaryOp{
	expr.OpAverage,
	expr.OpProduct,
}

func (p *SmoothPool) Binary() []expr.BinaryOp { return smoothBinary }
