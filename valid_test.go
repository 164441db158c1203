package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestValidity(t *testing.T) {
	cases := []struct {
		src        string
		syntactic  bool
		computable bool
	}{
		{"", true, false},
		{"1+2", true, true},
		{"sum(1)", true, false},
		{"invalid()", true, false},
		{"1+", false, false},
		{"1 $ 2", false, false},
		{"[1, 2]", true, true},
		{"1/0", true, true},
	}
	for _, c := range cases {
		if got := calc.IsSyntacticallyValid(c.src); got != c.syntactic {
			t.Errorf("IsSyntacticallyValid(%q) = %t", c.src, got)
		}
		if got := calc.IsComputable(c.src); got != c.computable {
			t.Errorf("IsComputable(%q) = %t", c.src, got)
		}
	}
}
