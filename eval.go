package calc

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Executor reduces a parsed tree to its value. Execution happens in place:
// each operator, function call, and negation in the tree is replaced by the
// number or set it produces, so an Executor can run only once. Use Evaluate
// to compute the value of a tree while leaving it intact.
//
// An Executor is not safe for concurrent use.
type Executor struct {
	root *Node
	rng  *rand.Rand
	prec uint
	done bool
}

// ExecOption is an option used when creating an executor.
type ExecOption interface {
	execOption()
}

type (
	precopt uint
	randopt struct{ r *rand.Rand }
)

func (precopt) execOption() {}
func (randopt) execOption() {}

// DefaultPrec is the precision in bits used for fractional powers when no
// Prec option is given.
const DefaultPrec = 128

// Prec sets the working precision in bits of fractional powers and roots,
// which are computed with arbitrary precision before rounding to float64.
// Precisions below 53 use float64 arithmetic directly.
func Prec(prec uint) ExecOption {
	return precopt(prec)
}

// WithRand sets the source of random numbers for rand, randint, and randn.
// By default, the executor uses the global source of math/rand.
func WithRand(r *rand.Rand) ExecOption {
	return randopt{r}
}

// NewExecutor creates an executor for the tree rooted at root, which is
// normally the result of Parse.
func NewExecutor(root *Node, opts ...ExecOption) *Executor {
	ex := Executor{root: root, prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			ex.prec = uint(opt)
		case randopt:
			ex.rng = opt.r
		default:
			panic("calc: unknown option type")
		}
	}
	return &ex
}

// Execute reduces the tree and returns its value. Afterward the tree consists
// of the root and the result. Calling Execute again returns an error.
func (ex *Executor) Execute() (Value, error) {
	if ex.done {
		return Value{}, &ExecError{Msg: "tree already reduced"}
	}
	ex.done = true
	if ex.root == nil {
		return Value{}, &ExecError{Msg: "invalid result"}
	}
	if err := ex.root.Walk(PostOrder, ex.visit); err != nil {
		return Value{}, err
	}
	r := ex.root
	if r.Kind == NodeRoot {
		r = r.Right
	}
	return result(r)
}

// visit reduces a single node whose children are already reduced.
func (ex *Executor) visit(n *Node) error {
	switch n.Kind {
	case NodeRoot, NodeNum, NodeSet:
		// Nothing to do. Set elements are checked where they are used.
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodeMod, NodePow:
		x, err := operand(n, n.Left)
		if err != nil {
			return err
		}
		y, err := operand(n, n.Right)
		if err != nil {
			return err
		}
		n.reset(NodeNum, formatNumber(binary[n.Kind](ex, x, y)))
	case NodeNeg, NodeFact:
		x, err := operand(n, n.Left)
		if err != nil {
			return err
		}
		n.reset(NodeNum, formatNumber(unary[n.Kind](x)))
	case NodeCall:
		return ex.call(n)
	default:
		return &ExecError{Op: n.Kind.String(), Msg: "invalid node"}
	}
	return nil
}

var binary = map[NodeKind]func(ex *Executor, x, y float64) float64{
	NodeAdd: func(ex *Executor, x, y float64) float64 { return x + y },
	NodeSub: func(ex *Executor, x, y float64) float64 { return x - y },
	NodeMul: func(ex *Executor, x, y float64) float64 { return x * y },
	NodeDiv: func(ex *Executor, x, y float64) float64 { return x / y },
	NodeMod: func(ex *Executor, x, y float64) float64 { return math.Mod(x, y) },
	NodePow: (*Executor).pow,
}

var unary = map[NodeKind]func(x float64) float64{
	NodeNeg:  func(x float64) float64 { return -x },
	NodeFact: factorial,
}

// operand gets the number that is the reduced child c of n.
func operand(n, c *Node) (float64, error) {
	if c == nil {
		return 0, &ExecError{Op: n.Kind.String(), Msg: "missing operand"}
	}
	if c.Kind != NodeNum {
		return 0, &ExecError{Op: n.Kind.String(), Msg: "operand must be a number, not " + c.Kind.String()}
	}
	return parseNumber(c.Value)
}

// call applies a built-in function to the reduced arguments of n.
func (ex *Executor) call(n *Node) error {
	f, ok := LookupFunc(n.Value)
	if !ok {
		return &NameError{Name: n.Value}
	}
	info := &funcs[f]
	if info.scalar != nil {
		args := make([]float64, 0, len(n.Items))
		for i, it := range n.Items {
			if it.Kind != NodeNum {
				return &ArgError{Func: n.Value, Arg: i + 1, Want: "number"}
			}
			x, err := parseNumber(it.Value)
			if err != nil {
				return err
			}
			args = append(args, x)
		}
		if len(args) != info.arity {
			return &ArityError{Func: n.Value, Want: info.arity, Got: len(args)}
		}
		n.reset(NodeNum, formatNumber(info.scalar(ex, args)))
		return nil
	}
	sets := make([][]float64, 0, len(n.Items))
	for i, it := range n.Items {
		if it.Kind != NodeSet {
			return &ArgError{Func: n.Value, Arg: i + 1, Want: "set"}
		}
		s, err := elements(it)
		if err != nil {
			return err
		}
		sets = append(sets, s)
	}
	if len(sets) != info.arity {
		return &ArityError{Func: n.Value, Want: info.arity, Got: len(sets)}
	}
	if info.stat != nil {
		n.reset(NodeNum, formatNumber(info.stat(sets[0])))
		return nil
	}
	r := info.seq(sets[0], sets[1])
	n.reset(NodeSet, "")
	n.Items = make([]*Node, len(r))
	for i, x := range r {
		n.Items[i] = &Node{Kind: NodeNum, Value: formatNumber(x)}
	}
	return nil
}

// elements gets the numbers in a reduced set.
func elements(n *Node) ([]float64, error) {
	r := make([]float64, 0, len(n.Items))
	for _, it := range n.Items {
		if it.Kind != NodeNum {
			return nil, &ExecError{Op: "set", Msg: "elements must be numbers, not " + it.Kind.String()}
		}
		x, err := parseNumber(it.Value)
		if err != nil {
			return nil, err
		}
		r = append(r, x)
	}
	return r, nil
}

func result(n *Node) (Value, error) {
	if n == nil {
		return Value{}, &ExecError{Msg: "invalid result"}
	}
	switch n.Kind {
	case NodeNum:
		x, err := parseNumber(n.Value)
		if err != nil {
			return Value{}, err
		}
		return NumberValue(x), nil
	case NodeSet:
		s, err := elements(n)
		if err != nil {
			return Value{}, err
		}
		return SetValue(s...), nil
	default:
		return Value{}, &ExecError{Msg: "invalid result"}
	}
}

// pow computes x^y. Fractional powers of positive numbers are computed at the
// executor's precision so that exact roots like 27^(1/3) come out exact.
func (ex *Executor) pow(x, y float64) (r float64) {
	if ex.prec < 53 || !(x > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(y) || y == math.Trunc(y) {
		return math.Pow(x, y)
	}
	// Keep the result well within float64 range.
	if e := y * math.Log2(x); e > 1000 || e < -1000 {
		return math.Pow(x, y)
	}
	defer func() {
		if recover() != nil {
			r = math.Pow(x, y)
		}
	}()
	bx := new(big.Float).SetPrec(ex.prec).SetFloat64(x)
	by := new(big.Float).SetPrec(ex.prec).SetFloat64(y)
	z := new(big.Float).SetPrec(ex.prec)
	bigfloat.Pow(z, bx, by)
	r, _ = z.Float64()
	return r
}

func (ex *Executor) random() float64 {
	if ex.rng != nil {
		return ex.rng.Float64()
	}
	return rand.Float64()
}

// Evaluate computes the value of the tree rooted at root without modifying
// it.
func Evaluate(root *Node, opts ...ExecOption) (Value, error) {
	return NewExecutor(root.Clone(), opts...).Execute()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ExecOption) (Value, error) {
	root, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return NewExecutor(root, opts...).Execute()
}

// Value is the result of an expression, either a number or a set of numbers.
type Value struct {
	num   float64
	elems []float64
	set   bool
}

// NumberValue creates a number value.
func NumberValue(x float64) Value {
	return Value{num: x}
}

// SetValue creates a set value with the given elements in order.
func SetValue(elems ...float64) Value {
	if elems == nil {
		elems = []float64{}
	}
	return Value{elems: elems, set: true}
}

// IsSet returns whether v is a set.
func (v Value) IsSet() bool {
	return v.set
}

// Float returns the number v holds. It is NaN if v is a set.
func (v Value) Float() float64 {
	if v.set {
		return math.NaN()
	}
	return v.num
}

// Elems returns the elements of a set value, or nil if v is a number. The
// result must not be modified.
func (v Value) Elems() []float64 {
	return v.elems
}

// String formats v the way results are shown: numbers in canonical form and
// sets as "[a, b, c]".
func (v Value) String() string {
	if !v.set {
		return formatNumber(v.num)
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatNumber(x))
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether v and w are the same number or the same sequence of
// elements. NaN equals NaN.
func (v Value) Equal(w Value) bool {
	if v.set != w.set {
		return false
	}
	if !v.set {
		return sameNumber(v.num, w.num)
	}
	if len(v.elems) != len(w.elems) {
		return false
	}
	for i, x := range v.elems {
		if !sameNumber(x, w.elems[i]) {
			return false
		}
	}
	return true
}

// formatNumber gives the canonical text of a number. Integers and moderate
// magnitudes are written positionally; very large and very small magnitudes
// use exponents with no padding, as in 1e-7 and 1.5e+300.
func formatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	case x == 0:
		return "0"
	}
	if a := math.Abs(x); a >= 1e21 || a < 1e-6 {
		s := strconv.FormatFloat(x, 'e', -1, 64)
		i := strings.IndexByte(s, 'e') + 2
		j := i
		for j < len(s)-1 && s[j] == '0' {
			j++
		}
		return s[:i] + s[j:]
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// parseNumber reads number text produced by the lexer or by formatNumber.
// Literals too large for float64 become infinite.
func parseNumber(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return x, nil
		}
		return 0, &ExecError{Op: "number", Msg: "invalid number " + strconv.Quote(s)}
	}
	return x, nil
}

// ExecError is a general error that prevents evaluation.
type ExecError struct {
	// Op is the operation that failed. It may be empty.
	Op  string
	Msg string
}

func (err *ExecError) Error() string {
	if err.Op == "" {
		return err.Msg
	}
	return err.Op + ": " + err.Msg
}

func (err *ExecError) Is(target error) bool {
	return target == ErrExecutor
}

// NameError is an error from a call to a function that does not exist.
type NameError struct {
	// Name is the name that was called.
	Name string
}

func (err *NameError) Error() string {
	return "invalid function name " + strconv.Quote(err.Name)
}

func (err *NameError) Is(target error) bool {
	return target == ErrExecutor
}

// ArityError is an error from a call with the wrong number of arguments.
type ArityError struct {
	Func      string
	Want, Got int
}

func (err *ArityError) Error() string {
	return "wrong number of arguments to " + err.Func + ": expected " + strconv.Itoa(err.Want) + ", got " + strconv.Itoa(err.Got)
}

func (err *ArityError) Is(target error) bool {
	return target == ErrExecutor
}

// ArgError is an error from an argument of the wrong type.
type ArgError struct {
	Func string
	// Arg is the 1-based index of the argument.
	Arg int
	// Want is "number" or "set".
	Want string
}

func (err *ArgError) Error() string {
	return "argument " + strconv.Itoa(err.Arg) + " of " + err.Func + " must be a " + err.Want
}

func (err *ArgError) Is(target error) bool {
	return target == ErrExecutor
}
