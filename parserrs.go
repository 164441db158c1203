package calc

import (
	"errors"
	"strconv"
)

// Every error produced by this package matches exactly one of these kinds
// under errors.Is.
var (
	// ErrLexical classifies characters that cannot begin a token.
	ErrLexical = errors.New("lexical error")
	// ErrSyntax classifies token sequences that match no production.
	ErrSyntax = errors.New("syntax error")
	// ErrExecutor classifies well-formed expressions that cannot be
	// evaluated.
	ErrExecutor = errors.New("executor error")
	// ErrLimit classifies inputs exceeding a configured parsing limit.
	ErrLimit = errors.New("limit exceeded")
)

// InputError is an error with position information. Every lexical and syntax
// error implements InputError.
type InputError interface {
	error
	// Span returns the number of line breaks preceding the offending token,
	// the byte offset at which it starts, and its width in bytes.
	Span() (line, col, width int)
}

// SyntaxError indicates a token where the grammar requires something else.
// It implements InputError.
type SyntaxError struct {
	// Line, Col, and Width locate the offending token.
	Line, Col, Width int
	// Want describes what the parser required, e.g. "expression" or ")".
	Want string
	// Got is the text of the offending token, empty at the end of input.
	Got string
}

func (err *SyntaxError) Error() string {
	got := "end of input"
	if err.Got != "" {
		got = strconv.Quote(err.Got)
	}
	return errpos(err.Line, err.Col, err.Width, "expected "+err.Want) + ", got " + got
}

func (err *SyntaxError) Span() (line, col, width int) {
	return err.Line, err.Col, err.Width
}

func (err *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// LimitError indicates an input that is too long or nested too deeply to
// parse safely.
type LimitError struct {
	// Limit names the exceeded limit, "depth" or "length".
	Limit string
	// Max is the configured maximum.
	Max int
}

func (err *LimitError) Error() string {
	return "expression exceeds maximum " + err.Limit + " of " + strconv.Itoa(err.Max)
}

func (err *LimitError) Is(target error) bool {
	return target == ErrLimit
}

// errpos is a shortcut to create an error message with a position.
func errpos(line, col, width int, msg string) string {
	return msg + " on line " + strconv.Itoa(line) + "/" + strconv.Itoa(col) + ":" + strconv.Itoa(col+width)
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
