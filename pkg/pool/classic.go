package pool

import "github.com/wildfunctions/recursive_art/pkg/expr"

func init() {
	Register("classic", func() Pool { return &ClassicPool{} })
}

// ClassicPool offers every operation: cos_pi, sin_pi and square as unary,
// prod, avg and neg_prod as binary.
type ClassicPool struct{}

func (p *ClassicPool) Name() string { return "classic" }

func (p *ClassicPool) Leaves() []expr.Var { return []expr.Var{expr.VarX, expr.VarY} }

func (p *ClassicPool) Unary() []expr.UnaryOp { return expr.UnaryOps }

func (p *ClassicPool) Binary() []expr.BinaryOp { return expr.BinaryOps }
