// Package strategy derives new expression trees from existing ones, so an
// image can be varied without rebuilding its channels from scratch.
package strategy

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/recursive_art/pkg/expr"
	"github.com/wildfunctions/recursive_art/pkg/pool"
)

// Strategy varies a set of channel trees. Implementations must not
// modify the trees they are given.
type Strategy interface {
	Name() string
	Vary(trees []expr.Node, p pool.Pool, rng pool.Source) []expr.Node
}

var registry = map[string]func() Strategy{}

// Register adds a strategy constructor to the registry.
func Register(name string, constructor func() Strategy) {
	registry[name] = constructor
}

// Get returns a strategy by name.
func Get(name string) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// collectNodes returns pointers to all nodes in the tree (for in-place mutation
// of a clone).
func collectNodes(root *expr.Node) []*expr.Node {
	var result []*expr.Node
	collectNodesHelper(root, &result)
	return result
}

func collectNodesHelper(node *expr.Node, result *[]*expr.Node) {
	*result = append(*result, node)
	switch n := (*node).(type) {
	case *expr.UnaryNode:
		collectNodesHelper(&n.Child, result)
	case *expr.BinaryNode:
		collectNodesHelper(&n.Left, result)
		collectNodesHelper(&n.Right, result)
	}
}
