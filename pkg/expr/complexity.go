package expr

func (v *VarNode) NodeCount() int  { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

// Depth is measured in edges: a lone variable has depth 0.

func (v *VarNode) Depth() int  { return 0 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// MinDepth returns the length of the shortest root-to-leaf path.
func MinDepth(node Node) int {
	switch n := node.(type) {
	case *UnaryNode:
		return 1 + MinDepth(n.Child)
	case *BinaryNode:
		ld := MinDepth(n.Left)
		rd := MinDepth(n.Right)
		if ld < rd {
			return 1 + ld
		}
		return 1 + rd
	default:
		return 0
	}
}
