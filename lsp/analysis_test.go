package lsp

import (
	"reflect"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestDiagnose(t *testing.T) {
	doc := "1+2\n\n1 +\r\nsum(1)\n1 € 2\n[1, 2]"
	diags := diagnose(doc)
	want := []struct {
		line, start, end int
		code             string
	}{
		{2, 3, 3, "syntax"},
		{3, 0, 6, "executor"},
		{4, 2, 3, "lexical"},
	}
	if len(diags) != len(want) {
		t.Fatalf("want %d diagnostics, got %d: %+v", len(want), len(diags), diags)
	}
	for i, w := range want {
		d := diags[i]
		if int(d.Range.Start.Line) != w.line || int(d.Range.End.Line) != w.line {
			t.Errorf("diagnostic %d on line %d-%d, want %d", i, d.Range.Start.Line, d.Range.End.Line, w.line)
		}
		if int(d.Range.Start.Character) != w.start || int(d.Range.End.Character) != w.end {
			t.Errorf("diagnostic %d spans %d-%d, want %d-%d", i, d.Range.Start.Character, d.Range.End.Character, w.start, w.end)
		}
		if d.Code == nil || d.Code.Value != w.code {
			t.Errorf("diagnostic %d has code %v, want %s", i, d.Code, w.code)
		}
		if d.Message == "" {
			t.Errorf("diagnostic %d has no message", i)
		}
	}
}

func TestDiagnoseClean(t *testing.T) {
	diags := diagnose("1\n2\n")
	if diags == nil || len(diags) != 0 {
		t.Errorf("want empty non-nil diagnostics, got %#v", diags)
	}
}

func TestHover(t *testing.T) {
	doc := "1+2\nsqrt(4)\n\n1 +\nmean([1, 2])"
	cases := []struct {
		line int
		want string
		ok   bool
	}{
		{0, "$1 + 2 = 3$", true},
		{1, `$\sqrt{4} = 2$`, true},
		{2, "", false},
		{3, "", false},
		{4, `$mean(\overline{[1, 2]}) = 1.5$`, true},
		{5, "", false},
		{-1, "", false},
	}
	for _, c := range cases {
		got, ok := hover(doc, c.line)
		if got != c.want || ok != c.ok {
			t.Errorf("line %d: want %q, %t; got %q, %t", c.line, c.want, c.ok, got, ok)
		}
	}
}

func TestCompletions(t *testing.T) {
	cases := []struct {
		line string
		off  int
		want []string
	}{
		{"1 + sq", 6, []string{"sqrt", "sqrtn"}},
		{"me", 2, []string{"mean", "median"}},
		{"variance([1]) + va", 18, []string{"var", "variance"}},
		{"sqrt(1) + x", 4, []string{"sqrt", "sqrtn"}},
		{"1 + zz", 6, nil},
	}
	for _, c := range cases {
		var got []string
		for _, it := range completions(c.line, c.off) {
			got = append(got, it.Label)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q at %d: want %q, got %q", c.line, c.off, c.want, got)
		}
	}
}

func TestSignature(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"sqrtn", "sqrtn(x1, x2)"},
		{"abs", "abs(x)"},
		{"mean", "mean(set)"},
		{"union", "union(set1, set2)"},
		{"rand", "rand()"},
	}
	for _, c := range cases {
		f, ok := calc.LookupFunc(c.name)
		if !ok {
			t.Fatalf("no function %q", c.name)
		}
		if got := signature(c.name, f); got != c.want {
			t.Errorf("%s: want %q, got %q", c.name, c.want, got)
		}
	}
}

func TestUTF16(t *testing.T) {
	line := "a😀b€"
	if got := utf16Col(line, 5); got != 3 {
		t.Errorf("utf16Col: want 3, got %d", got)
	}
	if got := utf16Col(line, 100); got != 5 {
		t.Errorf("utf16Col past end: want 5, got %d", got)
	}
	if got := byteCol(line, 3); got != 5 {
		t.Errorf("byteCol: want 5, got %d", got)
	}
	if got := byteCol(line, 100); got != len(line) {
		t.Errorf("byteCol past end: want %d, got %d", len(line), got)
	}
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath("file:///tmp/a%20b/x.calc"); got != "/tmp/a b/x.calc" {
		t.Errorf("wrong path %q", got)
	}
	if got := displayPath("untitled:1"); got != "untitled:1" {
		t.Errorf("wrong path %q", got)
	}
}
