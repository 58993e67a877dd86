package solver

import (
	"math"
	"slices"

	"github.com/cottand/polyroot/poly"
)

type EquationType int

const (
	Linear EquationType = iota + 1
	Quadratic
	Cubic
	Arbitrary
)

func (e EquationType) String() string {
	switch e {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return "arbitrary"
	}
}

// Classify names the equation p = 0 by its degree. Constants count as linear.
func Classify(p poly.Polynomial) EquationType {
	switch degree := p.HighestDegree(); {
	case degree <= 1:
		return Linear
	case degree == 2:
		return Quadratic
	case degree == 3:
		return Cubic
	default:
		return Arbitrary
	}
}

// SolveClosedForm solves p = 0 with the formula for its degree.
// It returns false for polynomials of degree 4 and above.
func SolveClosedForm(p poly.Polynomial) (Result, bool) {
	c := p.Coefficient
	switch Classify(p) {
	case Linear:
		return SolveLinear(c(1), c(0)), true
	case Quadratic:
		return SolveQuadratic(c(2), c(1), c(0)), true
	case Cubic:
		return SolveCubic(c(3), c(2), c(1), c(0)), true
	default:
		return Result{}, false
	}
}

// SolveLinear solves ax + b = 0
func SolveLinear(a, b float64) Result {
	if a == 0 {
		if b == 0 {
			return Result{Infinite: true}
		}
		return Result{Roots: []float64{}}
	}
	return Result{Roots: []float64{-b / a}}
}

// SolveQuadratic solves ax² + bx + c = 0, roots in ascending order
func SolveQuadratic(a, b, c float64) Result {
	if a == 0 {
		return SolveLinear(b, c)
	}
	delta := b*b - 4*a*c
	switch {
	case delta < 0:
		return Result{Roots: []float64{}}
	case delta == 0:
		return Result{Roots: []float64{-b / (2 * a)}}
	}

	// avoids cancellation between -b and the square root
	q := -0.5 * (b + math.Copysign(math.Sqrt(delta), b))
	roots := []float64{q / a, c / q}
	slices.Sort(roots)
	return Result{Roots: roots}
}

// SolveCubic solves ax³ + bx² + cx + d = 0, roots in ascending order.
// A double root is reported once.
func SolveCubic(a, b, c, d float64) Result {
	if a == 0 {
		return SolveQuadratic(b, c, d)
	}

	// depressed cubic t³ + pt + q = 0 with x = t - b/3a
	shift := b / (3 * a)
	p := (3*a*c - b*b) / (3 * a * a)
	q := (2*b*b*b - 9*a*b*c + 27*a*a*d) / (27 * a * a * a)
	discriminant := -(4*p*p*p + 27*q*q)

	var ts []float64
	switch {
	case p == 0:
		ts = []float64{math.Cbrt(-q)}
	case discriminant > 0:
		m := 2 * math.Sqrt(-p/3)
		theta := math.Acos(clamp(3*q/(2*p)*math.Sqrt(-3/p), -1, 1)) / 3
		for k := range 3 {
			ts = append(ts, m*math.Cos(theta-2*math.Pi*float64(k)/3))
		}
	case discriminant == 0:
		ts = []float64{3 * q / p, -3 * q / (2 * p)}
	case p < 0:
		ts = []float64{-2 * math.Copysign(1, q) * math.Sqrt(-p/3) *
			math.Cosh(math.Acosh(-3*math.Abs(q)/(2*p)*math.Sqrt(-3/p))/3)}
	default:
		ts = []float64{-2 * math.Sqrt(p/3) * math.Sinh(math.Asinh(3*q/(2*p)*math.Sqrt(3/p))/3)}
	}

	roots := make([]float64, 0, len(ts))
	for _, t := range ts {
		roots = append(roots, t-shift)
	}
	slices.Sort(roots)
	return Result{Roots: slices.Compact(roots)}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
