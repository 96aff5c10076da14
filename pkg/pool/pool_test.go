package pool

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/recursive_art/pkg/expr"
)

// scripted replays fixed draws and counts them.
type scripted struct {
	floats []float64
	ints   []int
	calls  []string
}

func (s *scripted) Float64() float64 {
	s.calls = append(s.calls, "f")
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scripted) Intn(n int) int {
	s.calls = append(s.calls, "i")
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"classic", "smooth"}, Names())
	_, err := Get("nope")
	assert.Error(t, err)
}

func TestBuildScripted(t *testing.T) {
	p, err := Get("classic")
	require.NoError(t, err)

	// depth 1: index 2, binary family, then two terminals (x, y).
	rng := &scripted{
		ints:   []int{2},
		floats: []float64{0.9, 0.1, 0.7},
	}
	tree, err := Build(p, rng, 1, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(expr.NegProduct(expr.X(), expr.Y()), tree); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"i", "f", "f", "f"}, rng.calls)

	// depth 1: index 1, unary family, terminal y.
	rng = &scripted{
		ints:   []int{1},
		floats: []float64{0.2, 0.5},
	}
	tree, err = Build(p, rng, 1, 3)
	require.NoError(t, err)
	if diff := cmp.Diff(expr.SinPi(expr.Y()), tree); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInvalidDepth(t *testing.T) {
	p, _ := Get("classic")
	rng := rand.New(rand.NewSource(1))
	for _, tc := range [][2]int{{-1, 3}, {4, 3}, {0, -1}} {
		_, err := Build(p, rng, tc[0], tc[1])
		if !errors.Is(err, ErrInvalidDepthRange) {
			t.Errorf("Build(%d, %d) error = %v, want ErrInvalidDepthRange", tc[0], tc[1], err)
		}
	}
}

func TestBuildExactDepth(t *testing.T) {
	for _, name := range Names() {
		p, _ := Get(name)
		rng := rand.New(rand.NewSource(42))
		for d := 0; d <= 8; d++ {
			for i := 0; i < 50; i++ {
				tree, err := Build(p, rng, d, d)
				require.NoError(t, err)
				if tree.Depth() != d || expr.MinDepth(tree) != d {
					t.Fatalf("%s: Build(%d, %d) has paths of length %d..%d: %s",
						name, d, d, expr.MinDepth(tree), tree.Depth(), tree)
				}
			}
		}
	}
}

func TestBuildZeroMinDepth(t *testing.T) {
	p, _ := Get("classic")
	rng := rand.New(rand.NewSource(9))
	tree, err := Build(p, rng, 0, 5)
	require.NoError(t, err)
	assert.IsType(t, &expr.VarNode{}, tree)
}

func TestBuildExtend(t *testing.T) {
	p, _ := Get("classic")
	b := Builder{Pool: p, Extend: 0.6}
	rng := rand.New(rand.NewSource(17))

	deeper := 0
	for i := 0; i < 500; i++ {
		tree, err := b.Build(rng, 2, 6)
		require.NoError(t, err)
		if expr.MinDepth(tree) < 2 || tree.Depth() > 6 {
			t.Fatalf("Build(2, 6) depth %d..%d out of bounds: %s", expr.MinDepth(tree), tree.Depth(), tree)
		}
		if tree.Depth() > 2 {
			deeper++
		}
	}
	assert.Greater(t, deeper, 0, "Extend never grew past the minimum depth")
}

func TestBuildBoundedOutput(t *testing.T) {
	for _, name := range Names() {
		p, _ := Get(name)
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 100; i++ {
			tree, err := Builder{Pool: p, Extend: 0.5}.Build(rng, 7, 9)
			require.NoError(t, err)
			for k := 0; k < 20; k++ {
				x, y := rng.Float64()*2-1, rng.Float64()*2-1
				v := expr.Eval(tree, x, y)
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("%s: Eval(%s, %v, %v) = %v", name, tree, x, y, v)
				}
			}
		}
	}
}

func TestSmoothPoolOps(t *testing.T) {
	p, _ := Get("smooth")
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		tree, err := Build(p, rng, 5, 5)
		require.NoError(t, err)
		var walk func(n expr.Node)
		walk = func(n expr.Node) {
			switch n := n.(type) {
			case *expr.UnaryNode:
				assert.NotEqual(t, expr.OpSquare, n.Op)
				walk(n.Child)
			case *expr.BinaryNode:
				assert.NotEqual(t, expr.OpNegProduct, n.Op)
				walk(n.Left)
				walk(n.Right)
			}
		}
		walk(tree)
	}
}

func TestBuildDeterministic(t *testing.T) {
	p, _ := Get("classic")
	a, err := Build(p, rand.New(rand.NewSource(99)), 7, 9)
	require.NoError(t, err)
	b, err := Build(p, rand.New(rand.NewSource(99)), 7, 9)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed built different trees (-a +b):\n%s", diff)
	}
}
