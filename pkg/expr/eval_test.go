package expr

import (
	"math"
	"math/rand"
	"testing"
)

func TestEvalOps(t *testing.T) {
	tests := []struct {
		name string
		node Node
		x, y float64
		want float64
	}{
		{"prod", Product(X(), Y()), 0.2, 0.3, 0.06},
		{"neg_prod", NegProduct(X(), Y()), 0.5, 0.4, -0.2},
		{"avg", Average(X(), Y()), 0.3, 0.5, 0.4},
		{"nested", Product(Average(X(), Y()), Product(X(), Y())), 0.3, 0.5, 0.06},
		{"avg of prods", Average(Product(X(), Y()), Product(X(), Y())), 0.3, 0.5, 0.15},
		{"cos_pi", CosPi(X()), 1, 0, -1},
		{"cos_pi zero", CosPi(Y()), 1, 0, 1},
		{"sin_pi", SinPi(X()), 0.5, 0, 1},
		{"square", Square(Y()), 0, -0.5, 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertEval(t, tc.node, tc.x, tc.y, tc.want, 1e-12)
		})
	}
}

// randomTree builds trees without the pool package to avoid an import cycle.
func randomTree(rng *rand.Rand, depth int) Node {
	if depth == 0 || rng.Float64() < 0.2 {
		if rng.Intn(2) == 0 {
			return X()
		}
		return Y()
	}
	if rng.Float64() < 0.5 {
		return &UnaryNode{Op: UnaryOps[rng.Intn(len(UnaryOps))], Child: randomTree(rng, depth-1)}
	}
	return &BinaryNode{
		Op:    BinaryOps[rng.Intn(len(BinaryOps))],
		Left:  randomTree(rng, depth-1),
		Right: randomTree(rng, depth-1),
	}
}

func TestEvalBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		tree := randomTree(rng, 9)
		for k := 0; k < 50; k++ {
			x, y := rng.Float64()*2-1, rng.Float64()*2-1
			v := Eval(tree, x, y)
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Fatalf("Eval(%s, %v, %v) = %v, outside [-1, 1]", tree, x, y, v)
			}
		}
	}
}

func TestEvalDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tree := randomTree(rng, 8)
	a := Eval(tree, 0.25, -0.75)
	b := Eval(tree.Clone(), 0.25, -0.75)
	if a != b {
		t.Errorf("Eval differs between tree and clone: %v vs %v", a, b)
	}
}
