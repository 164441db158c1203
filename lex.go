package calc

import (
	"strconv"
	"unicode/utf8"
)

// Token is a lexical unit scanned from an expression. Line, Col, and Width
// exist only for diagnostics.
type Token struct {
	Kind TokenKind
	Text string
	// Line is the number of line breaks scanned before the token.
	Line int
	// Col is the byte offset in the input at which the token starts.
	Col int
	// Width is the number of input bytes the token spans.
	Width int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Col)
}

// TokenKind is the kind of a lexical token.
type TokenKind int8

const (
	// TokenEOF indicates the end of the input.
	TokenEOF TokenKind = iota
	// TokenNum is a number literal.
	TokenNum
	TokenPlus
	TokenMinus
	// TokenNeg is never produced by the lexer. The parser uses it to look up
	// the binding power of unary minus.
	TokenNeg
	TokenMul
	TokenDiv
	TokenMod
	TokenPow
	TokenFact
	// TokenName is a function name.
	TokenName
	TokenOpen
	TokenClose
	TokenOpenSet
	TokenCloseSet
	TokenComma
)

var tokenNames = [...]string{
	TokenEOF:      "EOF",
	TokenNum:      "Num",
	TokenPlus:     "Plus",
	TokenMinus:    "Minus",
	TokenNeg:      "Neg",
	TokenMul:      "Mul",
	TokenDiv:      "Div",
	TokenMod:      "Mod",
	TokenPow:      "Pow",
	TokenFact:     "Fact",
	TokenName:     "Name",
	TokenOpen:     "Open",
	TokenClose:    "Close",
	TokenOpenSet:  "OpenSet",
	TokenCloseSet: "CloseSet",
	TokenComma:    "Comma",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// symbols maps the single-byte tokens to their kinds.
var symbols = [256]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMul,
	'/': TokenDiv,
	'%': TokenMod,
	'^': TokenPow,
	'!': TokenFact,
	'(': TokenOpen,
	')': TokenClose,
	'[': TokenOpenSet,
	']': TokenCloseSet,
	',': TokenComma,
}

type lexState int8

const (
	stateStart lexState = iota
	stateNumber
	stateName
)

// Lexer scans tokens from an expression one at a time.
type Lexer struct {
	src   string
	pos   int
	line  int
	state lexState
	done  bool
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next scans the next token. Once the input is exhausted, Next returns an EOF
// token on every call.
func (l *Lexer) Next() (Token, error) {
	if l.done {
		return l.eof(), nil
	}
	start := l.pos
	var text []byte
	for {
		if l.pos >= len(l.src) {
			state := l.state
			l.state = stateStart
			switch state {
			case stateNumber:
				return l.emit(TokenNum, text, start), nil
			case stateName:
				return l.emit(TokenName, text, start), nil
			}
			l.done = true
			return l.eof(), nil
		}
		c := l.src[l.pos]
		l.pos++
		switch l.state {
		case stateStart:
			switch {
			case c == ' ', c == '\t':
				start = l.pos
			case c == '\n', c == '\r':
				l.line++
				start = l.pos
			case c == 0:
				l.done = true
				return Token{Kind: TokenEOF, Line: l.line, Col: start, Width: 1}, nil
			case symbols[c] != TokenEOF:
				return l.emit(symbols[c], []byte{c}, start), nil
			case c == '.':
				l.state = stateNumber
				text = append(text, '0', '.')
			case isDigit(c):
				l.state = stateNumber
				text = append(text, c)
			case isLetter(c):
				l.state = stateName
				text = append(text, c)
			default:
				r, sz := utf8.DecodeRuneInString(l.src[l.pos-1:])
				l.pos += sz - 1
				return Token{}, &LexError{Text: string(r), Line: l.line, Col: start, Width: sz}
			}
		case stateNumber:
			if isDigit(c) || c == '.' {
				text = append(text, c)
				continue
			}
			l.pos--
			l.state = stateStart
			return l.emit(TokenNum, text, start), nil
		case stateName:
			if isLetter(c) || isDigit(c) || c == '_' {
				text = append(text, c)
				continue
			}
			l.pos--
			l.state = stateStart
			return l.emit(TokenName, text, start), nil
		}
	}
}

func (l *Lexer) emit(kind TokenKind, text []byte, start int) Token {
	return Token{Kind: kind, Text: string(text), Line: l.line, Col: start, Width: l.pos - start}
}

func (l *Lexer) eof() Token {
	return Token{Kind: TokenEOF, Line: l.line, Col: l.pos}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Tokenize scans all tokens in src, not including the final EOF token.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// LexError indicates a character that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Text is the offending character.
	Text string
	// Line is the number of line breaks before the character.
	Line int
	// Col is the byte offset of the character.
	Col int
	// Width is the encoded length of the character.
	Width int
}

func (err *LexError) Error() string {
	return errpos(err.Line, err.Col, err.Width, "unexpected character "+strconv.Quote(err.Text))
}

func (err *LexError) Span() (line, col, width int) {
	return err.Line, err.Col, err.Width
}

func (err *LexError) Is(target error) bool {
	return target == ErrLexical
}
