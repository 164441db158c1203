package calc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2")
	f.Add("sum([1, 2, 3]) / count([])")
	f.Add("5!!!")
	f.Add("sqrtn(27, 3) ^ .5")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := calc.EvalString(s)
		if err == nil {
			return
		}
		n := 0
		for _, kind := range []error{calc.ErrLexical, calc.ErrSyntax, calc.ErrExecutor, calc.ErrLimit} {
			if errors.Is(err, kind) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%q: error %v matches %d kinds", s, err, n)
		}
	})
}
