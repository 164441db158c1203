package calc

import (
	"math"
	"sort"
)

// sameNumber reports whether x and y are the same set element. Unlike ==,
// NaN is the same as itself.
func sameNumber(x, y float64) bool {
	return x == y || math.IsNaN(x) && math.IsNaN(y)
}

func contains(s []float64, x float64) bool {
	for _, y := range s {
		if sameNumber(x, y) {
			return true
		}
	}
	return false
}

// union returns the elements of a followed by those of b, keeping only the
// first occurrence of each.
func union(a, b []float64) []float64 {
	r := make([]float64, 0, len(a)+len(b))
	for _, s := range [2][]float64{a, b} {
		for _, x := range s {
			if !contains(r, x) {
				r = append(r, x)
			}
		}
	}
	return r
}

// intersect returns the elements of a that are also in b, in the order and
// multiplicity of a.
func intersect(a, b []float64) []float64 {
	r := make([]float64, 0, len(a))
	for _, x := range a {
		if contains(b, x) {
			r = append(r, x)
		}
	}
	return r
}

// difference returns the elements of a that are not in b, in the order and
// multiplicity of a.
func difference(a, b []float64) []float64 {
	r := make([]float64, 0, len(a))
	for _, x := range a {
		if !contains(b, x) {
			r = append(r, x)
		}
	}
	return r
}

func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}

// minimum is +Inf for an empty set.
func minimum(x []float64) float64 {
	m := math.Inf(1)
	for _, v := range x {
		m = math.Min(m, v)
	}
	return m
}

// maximum is -Inf for an empty set.
func maximum(x []float64) float64 {
	m := math.Inf(-1)
	for _, v := range x {
		m = math.Max(m, v)
	}
	return m
}

// mean is 0 for an empty set.
func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return sum(x) / float64(len(x))
}

// median is NaN for an empty set.
func median(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)
	h := len(s) / 2
	if len(s)%2 == 1 {
		return s[h]
	}
	return (s[h-1] + s[h]) / 2
}

// mode is the most frequent element, the least of them on ties, or 0 for an
// empty set. NaNs count as one value which orders before every number.
func mode(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	s := append([]float64(nil), x...)
	// NaNs sort first, so a NaN run wins ties against every number.
	sort.Float64s(s)
	r, n := s[0], 0
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && sameNumber(s[i], s[j]) {
			j++
		}
		if j-i > n {
			r, n = s[i], j-i
		}
		i = j
	}
	return r
}

// sqdev is the sum of squared deviations from the mean.
func sqdev(x []float64) float64 {
	m := mean(x)
	var s float64
	for _, v := range x {
		d := v - m
		s += d * d
	}
	return s
}

// variance is the population variance.
func variance(x []float64) float64 {
	return sqdev(x) / float64(len(x))
}

// stddev is the sample standard deviation.
func stddev(x []float64) float64 {
	return math.Sqrt(sqdev(x) / float64(len(x)-1))
}

// mad is the mean absolute deviation from the mean.
func mad(x []float64) float64 {
	m := mean(x)
	var s float64
	for _, v := range x {
		s += math.Abs(v - m)
	}
	return s / float64(len(x))
}

// rms is the root mean square.
func rms(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return math.Sqrt(s / float64(len(x)))
}
