package calc

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func label(n *Node) string {
	if n.Kind == NodeNum {
		return n.Value
	}
	return n.Kind.String()
}

func TestWalk(t *testing.T) {
	cases := []struct {
		src   string
		order Order
		want  []string
	}{
		{"1+2*3", PreOrder, []string{"Root", "Add", "1", "Mul", "2", "3"}},
		{"1+2*3", InOrder, []string{"Root", "1", "Add", "2", "Mul", "3"}},
		{"1+2*3", PostOrder, []string{"1", "2", "3", "Mul", "Add", "Root"}},
		{"f(1, 2) - [3]", PostOrder, []string{"1", "2", "Call", "3", "Set", "Sub", "Root"}},
		{"-4!", PreOrder, []string{"Root", "Neg", "Fact", "4"}},
		{"", PostOrder, []string{"Root"}},
	}
	for _, c := range cases {
		root, err := Parse(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		var got []string
		err = root.Walk(c.order, func(n *Node) error {
			got = append(got, label(n))
			return nil
		})
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.src, err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q order %d: want %v, got %v", c.src, c.order, c.want, got)
		}
	}
}

func TestWalkStops(t *testing.T) {
	root, err := Parse("1+2+3")
	if err != nil {
		t.Fatal(err)
	}
	stop := errors.New("stop")
	var n int
	err = root.Walk(PostOrder, func(*Node) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("wrong error: %v", err)
	}
	if n != 2 {
		t.Errorf("walk continued to %d nodes", n)
	}
}

func TestClone(t *testing.T) {
	root, err := Parse("sum([1, 2]) + -3!")
	if err != nil {
		t.Fatal(err)
	}
	c := root.Clone()
	if c.String() != root.String() {
		t.Fatalf("clone differs: %s vs %s", c, root)
	}
	c.Right.Left.Items[0].Items[0].Value = "9"
	c.Right.Right.reset(NodeNum, "0")
	if want := "([sum:(#[1],[2])]+[-([3]!)])"; root.String() != want {
		t.Errorf("modifying clone changed original: want %s, got %s", want, root)
	}
	var nilnode *Node
	if nilnode.Clone() != nil {
		t.Error("clone of nil is not nil")
	}
}

func TestNodeKindString(t *testing.T) {
	if got := NodeFact.String(); got != "Fact" {
		t.Errorf("wrong name %q", got)
	}
	if got := NodeKind(100).String(); !strings.HasPrefix(got, "NodeKind(") {
		t.Errorf("wrong name for invalid kind %q", got)
	}
}
