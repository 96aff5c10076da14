package expr

func (v *VarNode) Clone() Node {
	return &VarNode{Var: v.Var}
}

func (u *UnaryNode) Clone() Node {
	return &UnaryNode{
		Op:    u.Op,
		Child: u.Child.Clone(),
	}
}

func (b *BinaryNode) Clone() Node {
	return &BinaryNode{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}
