package calc

import (
	"math"
	"sort"
	"strconv"
)

// Func identifies a built-in function. The set of functions is closed; names
// in expressions resolve to a Func through LookupFunc.
type Func uint8

const (
	FuncNone Func = iota

	FuncAbs
	FuncCeil
	FuncFloor
	FuncRound

	FuncSin
	FuncCos
	FuncTan
	FuncCot
	FuncAsin
	FuncAcos
	FuncAtan
	FuncAcot
	FuncR2D
	FuncD2R

	FuncSqrt
	FuncSqrtn

	FuncRand
	FuncRandint
	FuncRandn

	FuncUnion
	FuncIntersect
	FuncDifference

	FuncSum
	FuncMin
	FuncMax
	FuncCount
	FuncMean
	FuncMedian
	FuncMode
	FuncRange
	FuncVariance
	FuncStddev
	FuncMAD
	FuncRMS

	funcCount
)

// funcnames maps every accepted spelling to its function.
var funcnames = map[string]Func{
	"abs":   FuncAbs,
	"ceil":  FuncCeil,
	"floor": FuncFloor,
	"round": FuncRound,

	"sin":  FuncSin,
	"cos":  FuncCos,
	"tan":  FuncTan,
	"cot":  FuncCot,
	"ctg":  FuncCot,
	"asin": FuncAsin,
	"acos": FuncAcos,
	"atan": FuncAtan,
	"acot": FuncAcot,
	"actg": FuncAcot,
	"R2D":  FuncR2D,
	"D2R":  FuncD2R,

	"sqrt":  FuncSqrt,
	"sqrtn": FuncSqrtn,

	"rand":    FuncRand,
	"randint": FuncRandint,
	"randn":   FuncRandn,

	"union":      FuncUnion,
	"intersect":  FuncIntersect,
	"difference": FuncDifference,
	"diff":       FuncDifference,

	"sum":      FuncSum,
	"min":      FuncMin,
	"max":      FuncMax,
	"count":    FuncCount,
	"mean":     FuncMean,
	"median":   FuncMedian,
	"mode":     FuncMode,
	"range":    FuncRange,
	"variance": FuncVariance,
	"var":      FuncVariance,
	"stddev":   FuncStddev,
	"MAD":      FuncMAD,
	"mad":      FuncMAD,
	"RMS":      FuncRMS,
	"rms":      FuncRMS,
}

// LookupFunc resolves a function name as written in an expression.
func LookupFunc(name string) (Func, bool) {
	f, ok := funcnames[name]
	return f, ok
}

// FuncNames returns every accepted function name, sorted.
func FuncNames() []string {
	r := make([]string, 0, len(funcnames))
	for k := range funcnames {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

func (f Func) String() string {
	if f == FuncNone || f >= funcCount {
		return "Func(" + strconv.Itoa(int(f)) + ")"
	}
	return funcs[f].name
}

// Arity returns the number of arguments f takes.
func (f Func) Arity() int {
	if f >= funcCount {
		return 0
	}
	return funcs[f].arity
}

// TakesSets returns whether the arguments of f are sets rather than numbers.
func (f Func) TakesSets() bool {
	if f >= funcCount {
		return false
	}
	return funcs[f].scalar == nil
}

type funcinfo struct {
	// name is the canonical spelling.
	name  string
	arity int
	// Exactly one of scalar, seq, and stat is set. scalar functions take
	// numbers; seq and stat functions take sets and produce a set or a number
	// respectively.
	scalar func(ex *Executor, x []float64) float64
	seq    func(a, b []float64) []float64
	stat   func(x []float64) float64
}

var funcs = [funcCount]funcinfo{
	FuncAbs:   monadic("abs", math.Abs),
	FuncCeil:  monadic("ceil", math.Ceil),
	FuncFloor: monadic("floor", math.Floor),
	FuncRound: monadic("round", round),

	FuncSin:  monadic("sin", math.Sin),
	FuncCos:  monadic("cos", math.Cos),
	FuncTan:  monadic("tan", math.Tan),
	FuncCot:  monadic("cot", func(x float64) float64 { return 1 / math.Tan(x) }),
	FuncAsin: monadic("asin", math.Asin),
	FuncAcos: monadic("acos", math.Acos),
	FuncAtan: monadic("atan", math.Atan),
	FuncAcot: monadic("acot", func(x float64) float64 { return math.Pi/2 - math.Atan(x) }),
	FuncR2D:  monadic("R2D", func(x float64) float64 { return x * 180 / math.Pi }),
	FuncD2R:  monadic("D2R", func(x float64) float64 { return x * math.Pi / 180 }),

	FuncSqrt: monadic("sqrt", math.Sqrt),
	FuncSqrtn: {name: "sqrtn", arity: 2, scalar: func(ex *Executor, x []float64) float64 {
		return ex.pow(x[0], 1/x[1])
	}},

	FuncRand: {name: "rand", arity: 0, scalar: func(ex *Executor, x []float64) float64 {
		return ex.random()
	}},
	FuncRandint: {name: "randint", arity: 2, scalar: func(ex *Executor, x []float64) float64 {
		lo, hi := x[0], x[1]
		return math.Floor(ex.random()*(hi-lo+1) + lo)
	}},
	FuncRandn: {name: "randn", arity: 2, scalar: func(ex *Executor, x []float64) float64 {
		mean, sd := x[0], x[1]
		var u, v float64
		for u == 0 {
			u = ex.random()
		}
		for v == 0 {
			v = ex.random()
		}
		return mean + sd*math.Sqrt(-2*math.Log(u))*math.Cos(2*math.Pi*v)
	}},

	FuncUnion:      {name: "union", arity: 2, seq: union},
	FuncIntersect:  {name: "intersect", arity: 2, seq: intersect},
	FuncDifference: {name: "difference", arity: 2, seq: difference},

	FuncSum:      {name: "sum", arity: 1, stat: sum},
	FuncMin:      {name: "min", arity: 1, stat: minimum},
	FuncMax:      {name: "max", arity: 1, stat: maximum},
	FuncCount:    {name: "count", arity: 1, stat: func(x []float64) float64 { return float64(len(x)) }},
	FuncMean:     {name: "mean", arity: 1, stat: mean},
	FuncMedian:   {name: "median", arity: 1, stat: median},
	FuncMode:     {name: "mode", arity: 1, stat: mode},
	FuncRange:    {name: "range", arity: 1, stat: func(x []float64) float64 { return maximum(x) - minimum(x) }},
	FuncVariance: {name: "variance", arity: 1, stat: variance},
	FuncStddev:   {name: "stddev", arity: 1, stat: stddev},
	FuncMAD:      {name: "MAD", arity: 1, stat: mad},
	FuncRMS:      {name: "RMS", arity: 1, stat: rms},
}

// monadic wraps a function of one number.
func monadic(name string, f func(float64) float64) funcinfo {
	return funcinfo{name: name, arity: 1, scalar: func(ex *Executor, x []float64) float64 {
		return f(x[0])
	}}
}

// round rounds half toward positive infinity, so round(-2.5) is -2.
func round(x float64) float64 {
	r := math.Round(x)
	if r-x == -0.5 {
		r++
	}
	return r
}

// factorial is the product of the integers from 2 through x. It stops early
// once the product overflows so that huge operands still terminate.
func factorial(x float64) float64 {
	r := 1.0
	for i := 2.0; i <= x && !math.IsInf(r, 1); i++ {
		r *= i
	}
	return r
}
