package calc

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. Each node owns
// its children; trees never share nodes.
type Node struct {
	Kind NodeKind
	// Value is the canonical number text of a NodeNum or the function name of
	// a NodeCall.
	Value string

	Left  *Node
	Right *Node
	// Items holds the arguments of a NodeCall or the elements of a NodeSet in
	// source order.
	Items []*Node
}

// NodeKind is the kind of an AST node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeRoot // right is the expression, or nil for empty input
	NodeNum  // value is the number

	NodeAdd  // left + right
	NodeSub  // left - right
	NodeNeg  // -left
	NodeMul  // left * right
	NodeDiv  // left / right
	NodeMod  // left % right
	NodePow  // left ^ right
	NodeFact // left!

	NodeCall // value is the function name, items are arguments
	NodeSet  // items are elements
)

var nodeNames = [...]string{
	NodeNone: "None",
	NodeRoot: "Root",
	NodeNum:  "Num",
	NodeAdd:  "Add",
	NodeSub:  "Sub",
	NodeNeg:  "Neg",
	NodeMul:  "Mul",
	NodeDiv:  "Div",
	NodeMod:  "Mod",
	NodePow:  "Pow",
	NodeFact: "Fact",
	NodeCall: "Call",
	NodeSet:  "Set",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeNames) {
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeNames[k]
}

// Order is a tree traversal order.
type Order int8

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

// Walk calls fn on every node of the tree rooted at n in the given order.
// Children are visited left, then items, then right. Walk stops at the first
// error fn returns. fn may replace the children of the node it is given in
// post-order, since they have already been visited.
func (n *Node) Walk(order Order, fn func(*Node) error) error {
	if n == nil {
		return nil
	}
	if order == PreOrder {
		if err := fn(n); err != nil {
			return err
		}
	}
	if err := n.Left.Walk(order, fn); err != nil {
		return err
	}
	if order == InOrder {
		if err := fn(n); err != nil {
			return err
		}
	}
	for _, it := range n.Items {
		if err := it.Walk(order, fn); err != nil {
			return err
		}
	}
	if err := n.Right.Walk(order, fn); err != nil {
		return err
	}
	if order == PostOrder {
		return fn(n)
	}
	return nil
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Kind:  n.Kind,
		Value: n.Value,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
	if n.Items != nil {
		c.Items = make([]*Node, len(n.Items))
		for i, it := range n.Items {
			c.Items[i] = it.Clone()
		}
	}
	return c
}

// reset turns n into a leaf of the given kind.
func (n *Node) reset(kind NodeKind, value string) {
	n.Kind = kind
	n.Value = value
	n.Left = nil
	n.Right = nil
	n.Items = nil
}

// String creates a structural representation of the tree, with alternating
// round and square brackets grouping each node.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	if n == nil {
		return
	}
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	if n.Kind == NodeRoot {
		n.Right.fmt(b, square)
		return
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NodeNum:
		b.WriteString(n.Value)
	case NodeNeg:
		b.WriteByte('-')
		n.Left.fmt(b, !square)
	case NodeFact:
		n.Left.fmt(b, !square)
		b.WriteByte('!')
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodeMod, NodePow:
		n.Left.fmt(b, !square)
		b.WriteString(binops[n.Kind])
		n.Right.fmt(b, !square)
	case NodeCall:
		b.WriteString(n.Value)
		b.WriteByte(':')
		n.fmtitems(b, !square)
	case NodeSet:
		b.WriteByte('#')
		n.fmtitems(b, !square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		b.WriteString(n.Kind.String())
		n.Left.fmt(b, !square)
		n.Right.fmt(b, !square)
		b.WriteByte('$')
	}
}

func (n *Node) fmtitems(b *strings.Builder, square bool) {
	for i, it := range n.Items {
		if i > 0 {
			b.WriteByte(',')
		}
		it.fmt(b, square)
	}
}

var binops = map[NodeKind]string{
	NodeAdd: "+",
	NodeSub: "-",
	NodeMul: "*",
	NodeDiv: "/",
	NodeMod: "%",
	NodePow: "^",
}
