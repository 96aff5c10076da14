package strategy

import (
	"github.com/wildfunctions/recursive_art/pkg/expr"
	"github.com/wildfunctions/recursive_art/pkg/pool"
)

func init() {
	Register("mutate", func() Strategy { return &MutateStrategy{} })
}

// MutationType identifies a kind of mutation.
type MutationType int

const (
	MutPoint   MutationType = iota // replace a node's op or variable, keeping children
	MutSubtree                     // replace a random subtree with a new random tree
	MutHoist                       // replace tree with one of its subtrees
	MutGrow                        // wrap a node in a new operation
	MutShrink                      // replace a node with one of its children

	numMutations
)

const maxMutationDepth = 4

// MutateStrategy applies one mutation to every tree.
type MutateStrategy struct{}

func (s *MutateStrategy) Name() string { return "mutate" }

func (s *MutateStrategy) Vary(trees []expr.Node, p pool.Pool, rng pool.Source) []expr.Node {
	out := make([]expr.Node, len(trees))
	for i, t := range trees {
		out[i] = Mutate(t, p, rng)
	}
	return out
}

// Mutate returns a mutated copy of root; root itself is left untouched.
func Mutate(root expr.Node, p pool.Pool, rng pool.Source) expr.Node {
	return MutateWith(root, MutationType(rng.Intn(int(numMutations))), p, rng)
}

// MutateWith applies the given kind of mutation to a copy of root.
func MutateWith(root expr.Node, mut MutationType, p pool.Pool, rng pool.Source) expr.Node {
	root = root.Clone()
	switch mut {
	case MutPoint:
		return pointMutate(root, p, rng)
	case MutSubtree:
		return subtreeMutate(root, p, rng)
	case MutHoist:
		return hoistMutate(root, rng)
	case MutGrow:
		return growMutate(root, p, rng)
	case MutShrink:
		return shrinkMutate(root, rng)
	default:
		return root
	}
}

// pointMutate replaces a random node's operation (keeping children).
func pointMutate(root expr.Node, p pool.Pool, rng pool.Source) expr.Node {
	nodes := collectNodes(&root)
	target := nodes[rng.Intn(len(nodes))]

	switch n := (*target).(type) {
	case *expr.VarNode:
		*target = pool.RandomLeaf(p, rng)
	case *expr.UnaryNode:
		n.Op = pool.RandomUnary(p, rng)
	case *expr.BinaryNode:
		n.Op = pool.RandomBinary(p, rng)
	}
	return root
}

// subtreeMutate replaces a random subtree with a new random tree.
func subtreeMutate(root expr.Node, p pool.Pool, rng pool.Source) expr.Node {
	nodes := collectNodes(&root)
	idx := rng.Intn(len(nodes))
	sub, err := pool.Builder{Pool: p, Extend: 0.5}.Build(rng, 0, maxMutationDepth)
	if err != nil {
		return root
	}
	*nodes[idx] = sub
	return root
}

// hoistMutate replaces the tree with one of its subtrees.
func hoistMutate(root expr.Node, rng pool.Source) expr.Node {
	nodes := collectNodes(&root)
	if len(nodes) <= 1 {
		return root
	}
	return *nodes[rng.Intn(len(nodes))]
}

// growMutate wraps a random node in a new unary or binary operation.
func growMutate(root expr.Node, p pool.Pool, rng pool.Source) expr.Node {
	nodes := collectNodes(&root)
	idx := rng.Intn(len(nodes))
	old := *nodes[idx]

	if rng.Float64() < 0.5 {
		*nodes[idx] = &expr.UnaryNode{Op: pool.RandomUnary(p, rng), Child: old}
	} else {
		if rng.Float64() < 0.5 {
			*nodes[idx] = &expr.BinaryNode{Op: pool.RandomBinary(p, rng), Left: old, Right: pool.RandomLeaf(p, rng)}
		} else {
			*nodes[idx] = &expr.BinaryNode{Op: pool.RandomBinary(p, rng), Left: pool.RandomLeaf(p, rng), Right: old}
		}
	}
	return root
}

// shrinkMutate replaces a non-leaf node with one of its children.
func shrinkMutate(root expr.Node, rng pool.Source) expr.Node {
	nodes := collectNodes(&root)
	idx := rng.Intn(len(nodes))
	switch n := (*nodes[idx]).(type) {
	case *expr.UnaryNode:
		*nodes[idx] = n.Child
	case *expr.BinaryNode:
		if rng.Float64() < 0.5 {
			*nodes[idx] = n.Left
		} else {
			*nodes[idx] = n.Right
		}
	}
	return root
}
