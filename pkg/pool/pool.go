package pool

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wildfunctions/recursive_art/pkg/expr"
)

// ErrInvalidDepthRange is returned when depth bounds are negative or inverted.
var ErrInvalidDepthRange = errors.New("invalid depth range")

// Source is the randomness a pool draws from. *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Pool provides the building blocks for constructing expression trees.
// Every operation a pool offers must map [-1, 1] inputs into [-1, 1].
type Pool interface {
	Name() string
	Leaves() []expr.Var
	Unary() []expr.UnaryOp
	Binary() []expr.BinaryOp
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RandomLeaf picks one of the pool's variables with equal probability.
func RandomLeaf(p Pool, rng Source) expr.Node {
	leaves := p.Leaves()
	i := int(rng.Float64() * float64(len(leaves)))
	return &expr.VarNode{Var: leaves[i]}
}

// RandomUnary picks one of the pool's unary operations.
func RandomUnary(p Pool, rng Source) expr.UnaryOp {
	ops := p.Unary()
	return ops[rng.Intn(len(ops))]
}

// RandomBinary picks one of the pool's binary operations.
func RandomBinary(p Pool, rng Source) expr.BinaryOp {
	ops := p.Binary()
	return ops[rng.Intn(len(ops))]
}

// Builder builds random expression trees from a pool.
type Builder struct {
	Pool Pool

	// Extend is the probability of growing a non-terminal once the
	// minimum depth is reached, as long as the maximum allows it.
	// Zero stops every branch at exactly the minimum depth.
	Extend float64
}

// Build returns a random tree from p whose depth lies in
// [minDepth, maxDepth].
func Build(p Pool, rng Source, minDepth, maxDepth int) (expr.Node, error) {
	return Builder{Pool: p}.Build(rng, minDepth, maxDepth)
}

// Build returns a random tree whose depth lies in [minDepth, maxDepth].
func (b Builder) Build(rng Source, minDepth, maxDepth int) (expr.Node, error) {
	if minDepth < 0 || maxDepth < minDepth {
		return nil, fmt.Errorf("pool: depth [%d, %d]: %w", minDepth, maxDepth, ErrInvalidDepthRange)
	}
	return b.randomTree(rng, minDepth, maxDepth), nil
}

// randomTree draws the op index before the family, then recurses with
// both bounds lowered by one.
func (b Builder) randomTree(rng Source, minDepth, maxDepth int) expr.Node {
	if minDepth == 0 {
		if maxDepth == 0 || b.Extend <= 0 || rng.Float64() >= b.Extend {
			return RandomLeaf(b.Pool, rng)
		}
		minDepth = 1
	}

	unary, binary := b.Pool.Unary(), b.Pool.Binary()
	idx := rng.Intn(max(len(unary), len(binary)))
	if rng.Float64() < 0.5 {
		return &expr.UnaryNode{
			Op:    unary[idx%len(unary)],
			Child: b.randomTree(rng, minDepth-1, maxDepth-1),
		}
	}
	return &expr.BinaryNode{
		Op:    binary[idx%len(binary)],
		Left:  b.randomTree(rng, minDepth-1, maxDepth-1),
		Right: b.randomTree(rng, minDepth-1, maxDepth-1),
	}
}
