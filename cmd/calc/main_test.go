package main

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestEvalOne(t *testing.T) {
	cases := []struct {
		src     string
		display bool
		want    string
	}{
		{"1+2", false, "3"},
		{"1/2", true, `\frac{1}{2} = 0.5`},
		{"union([1], [2])", true, `[1] \cup [2] = [1, 2]`},
		{"[]", false, "[]"},
	}
	for _, c := range cases {
		got, err := evalOne(c.src, c.display)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
	if _, err := evalOne("sum(1)", false); !errors.Is(err, calc.ErrExecutor) {
		t.Errorf("wrong error %v", err)
	}
}

func TestEvalAll(t *testing.T) {
	var out, errs bytes.Buffer
	n := evalAll(&out, &errs, []string{"1+1", "1+", "2*3"}, false)
	if n != 1 {
		t.Errorf("want 1 failure, got %d", n)
	}
	if got := out.String(); got != "2\n6\n" {
		t.Errorf("wrong output %q", got)
	}
	if !strings.Contains(errs.String(), "expected expression") {
		t.Errorf("wrong errors %q", errs.String())
	}
}

func TestEvalAllSeed(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		evalAll(&out, &out, []string{"randint(1, 100)", "rand()"}, false, calc.WithRand(rand.New(rand.NewSource(7))))
		return out.String()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
}

func TestReadInputs(t *testing.T) {
	src := "1 +\n2\n\n  \n3*4\n"
	got, err := readInputs(strings.NewReader(src), false)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{src}) {
		t.Errorf("whole input: got %q", got)
	}
	got, err = readInputs(strings.NewReader(src), true)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"1 +", "2", "3*4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("lines: want %q, got %q", want, got)
	}
}

func TestRootCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		out  string
		err  bool
	}{
		{"eval", []string{"2^10", "3!"}, "1024\n6\n", false},
		{"display", []string{"-d", "sqrt(4)"}, "\\sqrt{4} = 2\n", false},
		{"failure", []string{"1", "sum(1)"}, "1\n", true},
		{"leading-minus", []string{"--", "-1+2"}, "1\n", false},
		{"leading-minus-flags", []string{"-d", "--", "-2^2"}, "-(2^{2}) = -4\n", false},
		{"check-ok", []string{"check", "1+2"}, "syntax: ok\ncomputable: ok\n", false},
		{"check-exec", []string{"check", "abs([])"}, "syntax: ok\ncomputable: error\n", true},
		{"check-syntax", []string{"check", "1+"}, "syntax: error\ncomputable: error\n", true},
		{"tokens", []string{"tokens", "sqrt(.5)"}, "Name \"sqrt\" 0:0+4\nOpen \"(\" 0:4+1\nNum \"0.5\" 0:5+2\nClose \")\" 0:7+1\n", false},
		{"tokens-error", []string{"tokens", "1 $"}, "Num \"1\" 0:0+1\n", true},
		{"tree", []string{"tree", "1+2*3"}, "([1]+[(2)*(3)])\n", false},
		{"tree-display", []string{"tree", "-d", "1/2"}, "\\frac{1}{2}\n", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out, errs bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&errs)
			cmd.SetArgs(c.args)
			err := cmd.Execute()
			if (err != nil) != c.err {
				t.Errorf("wrong error: %v", err)
			}
			if got := out.String(); got != c.out {
				t.Errorf("want output %q, got %q", c.out, got)
			}
		})
	}
}

func TestRootCmdFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.calc")
	if err := os.WriteFile(name, []byte("1+1\n\nmean([1, 2])\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--in", name, "--lines"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "2\n1.5\n" {
		t.Errorf("wrong output %q", got)
	}
}

func TestReplLine(t *testing.T) {
	cases := []struct {
		line string
		out  string
		quit bool
	}{
		{"", "", false},
		{"   ", "", false},
		{":quit", "", true},
		{":q", "", true},
		{"1 + 1", "1 + 1 = 2", false},
		{"1 +", "error: expected expression on line 0/3:3, got end of input", false},
		{":frob", "unknown command :frob. Type :help for help.", false},
	}
	for _, c := range cases {
		out, quit := replLine(c.line)
		if out != c.out || quit != c.quit {
			t.Errorf("%q: want %q, %t; got %q, %t", c.line, c.out, c.quit, out, quit)
		}
	}
	if out, _ := replLine(":help"); !strings.Contains(out, "sqrtn") {
		t.Errorf("help doesn't list functions: %q", out)
	}
}

func TestComplete(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"1 + sq", []string{"1 + sqrt(", "1 + sqrtn("}},
		{"std", []string{"stddev("}},
		{"1 + ", nil},
		{"zz", nil},
	}
	for _, c := range cases {
		if got := complete(c.line); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q: want %q, got %q", c.line, c.want, got)
		}
	}
}
