package calc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the limits applied while parsing.
type parsectx struct {
	// maxdepth bounds the recursion depth of the parser.
	maxdepth int
	// maxlen bounds the length in bytes of the source given to Parse.
	maxlen int
}

const (
	// DefaultMaxDepth is the nesting depth allowed when no MaxDepth option is
	// given.
	DefaultMaxDepth = 256
	// DefaultMaxLength is the input length allowed when no MaxLength option
	// is given.
	DefaultMaxLength = 64 << 10
)

func defaultParsectx() parsectx {
	return parsectx{maxdepth: DefaultMaxDepth, maxlen: DefaultMaxLength}
}

type (
	depthopt  int
	lengthopt int
)

// MaxDepth limits how deeply sub-expressions may nest: parentheses, sets,
// function arguments, unary minus, and right-hand operands each add a level.
// Values less than 1 mean no limit.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// MaxLength limits the length in bytes of expressions passed to Parse. Values
// less than 1 mean no limit. Parsers created with NewParser ignore it, since
// they never see the source.
func MaxLength(n int) ParseOption {
	return lengthopt(n)
}

func (o lengthopt) parseOption(p parsectx) parsectx {
	p.maxlen = int(o)
	return p
}

// ParsingPreset combines several options into one.
func ParsingPreset(opts ...ParseOption) ParseOption {
	return presetopt(opts)
}

type presetopt []ParseOption

func (o presetopt) parseOption(p parsectx) parsectx {
	for _, opt := range o {
		p = opt.parseOption(p)
	}
	return p
}
