package calc

// Query = [ Expr ] EOF
// Expr = Primary { '!' } { BinOp Expr }
// Primary = num | Call | Set | '(' Expr ')' | '+' Expr | '-' Expr
// Call = name '(' [ Expr { ',' Expr } ] ')'
// Set = '[' [ Expr { ',' Expr } ] ']'
// BinOp = '+' | '-' | '*' | '/' | '%' | '^'

// Parser builds an AST from a stream of tokens.
type Parser struct {
	next  func() (Token, error)
	tok   Token
	p     parsectx
	depth int
}

// NewParser creates a parser that pulls tokens from next, usually the Next
// method of a Lexer.
func NewParser(next func() (Token, error), opts ...ParseOption) *Parser {
	p := Parser{next: next, p: defaultParsectx()}
	for _, opt := range opts {
		p.p = opt.parseOption(p.p)
	}
	return &p
}

// Parse parses an expression. The result is a NodeRoot whose right child is
// the expression, or which has no children if src contains only whitespace.
func Parse(src string, opts ...ParseOption) (*Node, error) {
	p := NewParser(NewLexer(src).Next, opts...)
	if p.p.maxlen > 0 && len(src) > p.p.maxlen {
		return nil, &LimitError{Limit: "length", Max: p.p.maxlen}
	}
	return p.ParseQuery()
}

// ParseQuery consumes the entire token stream and returns the root of the
// parsed tree. No partial tree is returned on error.
func (p *Parser) ParseQuery() (*Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	root := &Node{Kind: NodeRoot}
	if p.tok.Kind == TokenEOF {
		return root, nil
	}
	n, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokenEOF {
		return nil, p.unexpected("operator")
	}
	root.Right = n
	return root, nil
}

// parseExpr parses an expression whose binary operators all bind at least as
// tightly as min.
func (p *Parser) parseExpr(min int8) (*Node, error) {
	if p.p.maxdepth > 0 && p.depth >= p.p.maxdepth {
		return nil, &LimitError{Limit: "depth", Max: p.p.maxdepth}
	}
	p.depth++
	defer func() { p.depth-- }()
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		o := opfor(p.tok.Kind)
		switch {
		case o.postfix && o.prec >= min:
			// 5!!! -> ((5!)!)!
			n = &Node{Kind: o.op, Left: n}
			if err := p.advance(); err != nil {
				return nil, err
			}
		case o.binary && o.prec >= min:
			if err := p.advance(); err != nil {
				return nil, err
			}
			q := o.prec
			if !o.right {
				q++
			}
			rhs, err := p.parseExpr(q)
			if err != nil {
				return nil, err
			}
			n = &Node{Kind: o.op, Left: n, Right: rhs}
		default:
			return n, nil
		}
	}
}

// parsePrimary parses a term that can appear where an operand is required.
func (p *Parser) parsePrimary() (*Node, error) {
	switch p.tok.Kind {
	case TokenNum:
		n := &Node{Kind: NodeNum, Value: p.tok.Text}
		return n, p.advance()
	case TokenOpen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		return n, p.expect(TokenClose, ")")
	case TokenOpenSet:
		if err := p.advance(); err != nil {
			return nil, err
		}
		items, err := p.parseList(TokenCloseSet, "]")
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeSet, Items: items}, nil
	case TokenName:
		name := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(TokenOpen, "("); err != nil {
			return nil, err
		}
		args, err := p.parseList(TokenClose, ")")
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeCall, Value: name, Items: args}, nil
	case TokenPlus, TokenMinus:
		neg := p.tok.Kind == TokenMinus
		if err := p.advance(); err != nil {
			return nil, err
		}
		// -2^2 -> -(2^2), -2+3 -> (-2)+3
		n, err := p.parseExpr(opfor(TokenNeg).prec)
		if err != nil {
			return nil, err
		}
		if neg {
			n = &Node{Kind: NodeNeg, Left: n}
		}
		return n, nil
	default:
		return nil, p.unexpected("expression")
	}
}

// parseList parses a comma-separated list of zero or more expressions up to
// and including the close token.
func (p *Parser) parseList(close TokenKind, want string) ([]*Node, error) {
	if p.tok.Kind == close {
		return nil, p.advance()
	}
	var items []*Node
	for {
		n, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
		if p.tok.Kind != TokenComma {
			return items, p.expect(close, want)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) advance() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind TokenKind, want string) error {
	if p.tok.Kind != kind {
		return p.unexpected(want)
	}
	return p.advance()
}

func (p *Parser) unexpected(want string) error {
	return &SyntaxError{
		Line:  p.tok.Line,
		Col:   p.tok.Col,
		Width: p.tok.Width,
		Want:  want,
		Got:   p.tok.Text,
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// binary and postfix indicate how the operator is applied.
	binary, postfix bool
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op NodeKind
}

// operators holds the binding attributes of each token kind. Kinds that are
// not operators have the zero attributes.
var operators = [TokenComma + 1]operator{
	TokenPlus:  {prec: 12, binary: true, op: NodeAdd},
	TokenMinus: {prec: 12, binary: true, op: NodeSub},
	TokenMul:   {prec: 13, binary: true, op: NodeMul},
	TokenDiv:   {prec: 13, binary: true, op: NodeDiv},
	TokenMod:   {prec: 13, binary: true, op: NodeMod},
	TokenNeg:   {prec: 14, op: NodeNeg},
	// Exponentiation is left-associative: 2^3^2 -> (2^3)^2.
	TokenPow:  {prec: 14, binary: true, op: NodePow},
	TokenFact: {prec: 15, postfix: true, op: NodeFact},
}

func opfor(k TokenKind) operator {
	if k < 0 || int(k) >= len(operators) {
		return operator{}
	}
	return operators[k]
}
