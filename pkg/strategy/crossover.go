package strategy

import (
	"github.com/wildfunctions/recursive_art/pkg/expr"
	"github.com/wildfunctions/recursive_art/pkg/pool"
)

func init() {
	Register("crossover", func() Strategy { return &CrossoverStrategy{} })
}

// CrossoverStrategy grafts a subtree of the next channel into each channel,
// so red borrows from green, green from blue and blue from red.
type CrossoverStrategy struct{}

func (s *CrossoverStrategy) Name() string { return "crossover" }

func (s *CrossoverStrategy) Vary(trees []expr.Node, p pool.Pool, rng pool.Source) []expr.Node {
	out := make([]expr.Node, len(trees))
	for i, t := range trees {
		out[i] = Crossover(t, trees[(i+1)%len(trees)], rng)
	}
	return out
}

// Crossover returns a copy of a with a random subtree replaced by a copy of
// a random subtree of b. Neither input is modified.
func Crossover(a, b expr.Node, rng pool.Source) expr.Node {
	a = a.Clone()
	nodesA := collectNodes(&a)
	nodesB := collectNodes(&b)

	idxA := rng.Intn(len(nodesA))
	idxB := rng.Intn(len(nodesB))

	*nodesA[idxA] = (*nodesB[idxB]).Clone()
	return a
}
