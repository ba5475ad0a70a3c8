package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first pre-order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *If:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *While:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *Assignment:
		Walk(n.Value, v)

	case *Binary:
		Walk(n.X, v)
		Walk(n.Y, v)

	// Leaf nodes: NumberLit, StringLit, Name
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// Equal reports whether a and b are structurally identical trees.
// Positions are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *NumberLit:
		y, ok := b.(*NumberLit)
		return ok && x.Value == y.Value

	case *StringLit:
		y, ok := b.(*StringLit)
		return ok && x.Value == y.Value

	case *Name:
		y, ok := b.(*Name)
		return ok && x.Value == y.Value

	case *Assignment:
		y, ok := b.(*Assignment)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)

	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.X, y.X) && Equal(x.Y, y.Y)

	case *If:
		y, ok := b.(*If)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Then, y.Then) && Equal(x.Else, y.Else)

	case *While:
		y, ok := b.(*While)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Body, y.Body)

	case *Block:
		y, ok := b.(*Block)
		if !ok || len(x.Stmts) != len(y.Stmts) {
			return false
		}
		for i := range x.Stmts {
			if !Equal(x.Stmts[i], y.Stmts[i]) {
				return false
			}
		}
		return true
	}
	return false
}
