package expr

// Node is the interface for all expression tree nodes. The set of
// implementations is closed: VarNode, UnaryNode and BinaryNode.
type Node interface {
	Eval(x, y float64) float64
	String() string
	Clone() Node
	NodeCount() int
	Depth() int

	node()
}

// Var identifies a coordinate variable.
type Var int

const (
	VarX Var = iota
	VarY
)

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpCosPi UnaryOp = iota // cos(pi*a)
	OpSinPi                // sin(pi*a)
	OpSquare               // a^2
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpProduct    BinaryOp = iota // a*b
	OpAverage                    // (a+b)/2
	OpNegProduct                 // -(a*b)
)

// UnaryOps and BinaryOps list every operation, in the order the
// builder indexes them.
var (
	UnaryOps  = []UnaryOp{OpCosPi, OpSinPi, OpSquare}
	BinaryOps = []BinaryOp{OpProduct, OpAverage, OpNegProduct}
)

// VarNode represents the x or y coordinate.
type VarNode struct {
	Var Var
}

// UnaryNode applies a unary operation to a child expression. Op must be
// one of the declared UnaryOp constants; see Validate.
type UnaryNode struct {
	Op    UnaryOp
	Child Node
}

// BinaryNode applies a binary operation to two child expressions. Op must
// be one of the declared BinaryOp constants; see Validate.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

func (*VarNode) node()    {}
func (*UnaryNode) node()  {}
func (*BinaryNode) node() {}

func X() Node { return &VarNode{Var: VarX} }
func Y() Node { return &VarNode{Var: VarY} }

func CosPi(a Node) Node  { return &UnaryNode{Op: OpCosPi, Child: a} }
func SinPi(a Node) Node  { return &UnaryNode{Op: OpSinPi, Child: a} }
func Square(a Node) Node { return &UnaryNode{Op: OpSquare, Child: a} }

func Product(a, b Node) Node    { return &BinaryNode{Op: OpProduct, Left: a, Right: b} }
func Average(a, b Node) Node    { return &BinaryNode{Op: OpAverage, Left: a, Right: b} }
func NegProduct(a, b Node) Node { return &BinaryNode{Op: OpNegProduct, Left: a, Right: b} }
