package lsp

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/zephyrtronium/calc"
)

// Each non-blank line of a document is an independent expression.

// lines splits a document into lines without their terminators.
func lines(text string) []string {
	r := strings.Split(text, "\n")
	for i, l := range r {
		r[i] = strings.TrimSuffix(l, "\r")
	}
	return r
}

// diagnose finds the errors in every line of a document.
func diagnose(text string) []protocol.Diagnostic {
	r := []protocol.Diagnostic{}
	for i, line := range lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if d, ok := diagnoseLine(i, line); ok {
			r = append(r, d)
		}
	}
	return r
}

func diagnoseLine(n int, line string) (protocol.Diagnostic, bool) {
	root, err := calc.Parse(line)
	if err == nil {
		_, err = calc.Evaluate(root)
	}
	if err == nil {
		return protocol.Diagnostic{}, false
	}
	// Executor errors have no position, so they cover the whole line.
	start, end := 0, len(line)
	var ie calc.InputError
	if errors.As(err, &ie) {
		_, col, width := ie.Span()
		start, end = col, col+max(width, 1)
	}
	sev := protocol.DiagnosticSeverityError
	src := lsName
	code := errorCode(err)
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(n), Character: utf16Col(line, start)},
			End:   protocol.Position{Line: protocol.UInteger(n), Character: utf16Col(line, end)},
		},
		Severity: &sev,
		Code:     &protocol.IntegerOrString{Value: code},
		Source:   &src,
		Message:  err.Error(),
	}, true
}

// errorCode names the kind of an engine error.
func errorCode(err error) string {
	switch {
	case errors.Is(err, calc.ErrLexical):
		return "lexical"
	case errors.Is(err, calc.ErrSyntax):
		return "syntax"
	case errors.Is(err, calc.ErrLimit):
		return "limit"
	default:
		return "executor"
	}
}

// utf16Col converts a byte offset in line to a count of UTF-16 code units.
// Offsets past the end of the line are clamped to it.
func utf16Col(line string, off int) protocol.UInteger {
	if off > len(line) {
		off = len(line)
	}
	var n protocol.UInteger
	for _, r := range line[:off] {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// hover describes the expression on line n as "display = result".
func hover(text string, n int) (string, bool) {
	ls := lines(text)
	if n < 0 || n >= len(ls) {
		return "", false
	}
	line := ls[n]
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	root, err := calc.Parse(line)
	if err != nil {
		return "", false
	}
	v, err := calc.Evaluate(root)
	if err != nil {
		return "", false
	}
	return "$" + root.Display() + " = " + v.String() + "$", true
}

// completions lists the functions whose names start with the identifier that
// ends at byte offset off of line.
func completions(line string, off int) []protocol.CompletionItem {
	if off > len(line) {
		off = len(line)
	}
	start := off
	for start > 0 {
		c := line[start-1]
		if c >= utf8.RuneSelf || !(c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			break
		}
		start--
	}
	prefix := line[start:off]
	kind := protocol.CompletionItemKindFunction
	var r []protocol.CompletionItem
	for _, name := range calc.FuncNames() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		f, _ := calc.LookupFunc(name)
		detail := signature(name, f)
		r = append(r, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return r
}

// signature describes the arguments of a function, e.g. "sqrtn(x, y)" or
// "mean(set)".
func signature(name string, f calc.Func) string {
	arg := "x"
	if f.TakesSets() {
		arg = "set"
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i := 0; i < f.Arity(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg)
		if f.Arity() > 1 {
			b.WriteString(strconv.Itoa(i + 1))
		}
	}
	b.WriteByte(')')
	return b.String()
}
