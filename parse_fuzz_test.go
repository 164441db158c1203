package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2")
	f.Add("[1, -2, .3]")
	f.Add("f(g(1), [2])!")
	f.Fuzz(func(t *testing.T, s string) {
		root, err := calc.Parse(s)
		if err != nil {
			if root != nil {
				t.Errorf("%q: tree %v returned with error %v", s, root, err)
			}
			return
		}
		again, err := calc.Parse(s)
		if err != nil {
			t.Fatalf("%q: second parse failed: %v", s, err)
		}
		if again.String() != root.String() {
			t.Errorf("%q: parsed to %v then %v", s, root, again)
		}
		if root.Right != nil && root.Display() == "" {
			t.Errorf("%q: empty display of %v", s, root)
		}
		if c := root.Clone(); c.String() != root.String() {
			t.Errorf("%q: clone %v differs from %v", s, c, root)
		}
	})
}
