package calc

import "strings"

// Display renders the tree in LaTeX-like math notation. It does not modify
// the tree and may be called before or after execution. The result is meant
// for typesetting; parsing it again is not guaranteed to give the same tree.
func (n *Node) Display() string {
	var b strings.Builder
	n.display(&b)
	return b.String()
}

func (n *Node) display(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case NodeRoot:
		n.Right.display(b)
	case NodeNum:
		b.WriteString(n.Value)
	case NodeAdd:
		n.Left.display(b)
		b.WriteString(" + ")
		n.Right.display(b)
	case NodeSub:
		n.Left.display(b)
		b.WriteString(" - ")
		n.Right.subtrahend(b)
	case NodeNeg:
		b.WriteByte('-')
		n.Left.operand(b)
	case NodeMul:
		n.Left.operand(b)
		b.WriteString(" * ")
		n.Right.operand(b)
	case NodeDiv:
		b.WriteString(`\frac{`)
		n.Left.display(b)
		b.WriteString("}{")
		n.Right.display(b)
		b.WriteByte('}')
	case NodeMod:
		n.Left.operand(b)
		b.WriteString(` \mod `)
		n.Right.operand(b)
	case NodePow:
		n.Left.operand(b)
		b.WriteString("^{")
		n.Right.display(b)
		b.WriteByte('}')
	case NodeFact:
		n.Left.operand(b)
		b.WriteByte('!')
	case NodeCall:
		n.displayCall(b)
	case NodeSet:
		b.WriteByte('[')
		displayList(b, n.Items)
		b.WriteByte(']')
	}
}

// operand renders n, parenthesized unless it is a literal, a negation, or a
// function call.
func (n *Node) operand(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case NodeNum, NodeNeg, NodeCall:
		n.display(b)
	default:
		b.WriteByte('(')
		n.display(b)
		b.WriteByte(')')
	}
}

// subtrahend renders the right side of a subtraction, parenthesized when it
// is itself a sum or difference.
func (n *Node) subtrahend(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case NodeAdd, NodeSub:
		b.WriteByte('(')
		n.display(b)
		b.WriteByte(')')
	default:
		n.display(b)
	}
}

// setOperand renders n, parenthesized unless it is a set literal.
func (n *Node) setOperand(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Kind == NodeSet {
		n.display(b)
		return
	}
	b.WriteByte('(')
	n.display(b)
	b.WriteByte(')')
}

func (n *Node) displayCall(b *strings.Builder) {
	arg := func(i int) *Node {
		if i < len(n.Items) {
			return n.Items[i]
		}
		return nil
	}
	switch n.Value {
	case "sqrt":
		b.WriteString(`\sqrt{`)
		displayList(b, n.Items)
		b.WriteByte('}')
	case "sqrtn":
		b.WriteString(`\sqrt[`)
		arg(1).display(b)
		b.WriteString("]{")
		arg(0).display(b)
		b.WriteByte('}')
	case "abs":
		b.WriteString(`\left|`)
		displayList(b, n.Items)
		b.WriteString(`\right|`)
	case "union", "intersect", "difference", "diff":
		arg(0).setOperand(b)
		b.WriteString(setglyphs[n.Value])
		arg(1).setOperand(b)
	case "mean":
		b.WriteString(`mean(\overline{`)
		displayList(b, n.Items)
		b.WriteString("})")
	case "median":
		b.WriteString("median(")
		displayList(b, n.Items)
		b.WriteString(")_{0.5}")
	default:
		b.WriteString(n.Value)
		b.WriteByte('(')
		displayList(b, n.Items)
		b.WriteByte(')')
	}
}

var setglyphs = map[string]string{
	"union":      ` \cup `,
	"intersect":  ` \cap `,
	"difference": ` \setminus `,
	"diff":       ` \setminus `,
}

func displayList(b *strings.Builder, items []*Node) {
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		it.display(b)
	}
}
