// Package solver finds the real roots of polynomials.
//
// Solve needs no closed-form formulas: it finds the critical points of a polynomial by
// solving its derivative recursively, then looks for one root in each interval between
// consecutive critical points, where the polynomial is monotonic. The two outer
// intervals are unbounded and get a finite bound by exponential expansion before
// bisection.
package solver

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cottand/polyroot/internal/log"
	"github.com/cottand/polyroot/poly"
	"github.com/xtgo/set"
)

var solverLogger = log.DefaultLogger.With("section", "solver")

// InfiniteRoots is how a Result for the zero polynomial renders
const InfiniteRoots = "Infinite roots"

// maxExpansions bounds ExpandLower and ExpandUpper; the step doubles each time,
// so past this many doublings the candidate bound overflows to infinity
const maxExpansions = 1100

// Result holds the real roots of a polynomial, in the order they were found.
// Infinite is set instead when every real number is a root.
type Result struct {
	Roots    []float64
	Infinite bool
}

func (r Result) String() string {
	if r.Infinite {
		return "[" + InfiniteRoots + "]"
	}
	formatted := make([]string, 0, len(r.Roots))
	for _, root := range r.Roots {
		formatted = append(formatted, strconv.FormatFloat(root, 'g', -1, 64))
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// Solve returns the real roots of p to within epsilon.
// The recursion goes one level deep per degree of p.
func Solve(p poly.Polynomial, epsilon float64) Result {
	switch p.HighestDegree() {
	case 0:
		if p.Coefficient(0) != 0 {
			return Result{Roots: []float64{}}
		}
		return Result{Infinite: true}
	case 1:
		return SolveLinear(p.Coefficient(1), p.Coefficient(0))
	}

	derivative := p.Derivative()
	criticalPoints := Solve(derivative, epsilon)
	solverLogger.Debug("solved derivative", "polynomial", p, "derivative", derivative, "criticalPoints", criticalPoints)
	if criticalPoints.Infinite {
		// only the zero polynomial has a zero derivative everywhere, and it has degree 0
		criticalPoints = Result{}
	}
	return Result{Roots: FromCriticalPoints(p, epsilon, criticalPoints.Roots)}
}

// FromCriticalPoints looks for one root of p in each interval delimited by
// criticalPoints, plus the two unbounded outer intervals
func FromCriticalPoints(p poly.Polynomial, epsilon float64, criticalPoints []float64) []float64 {
	checkpoints := make([]float64, 0, len(criticalPoints)+2)
	checkpoints = append(checkpoints, criticalPoints...)
	sort.Float64s(checkpoints)
	checkpoints = checkpoints[:set.Uniq(sort.Float64Slice(checkpoints))]
	checkpoints = append([]float64{math.Inf(-1)}, append(checkpoints, math.Inf(1))...)

	roots := make([]float64, 0, len(checkpoints)-1)
	for i := 0; i < len(checkpoints)-1; i++ {
		lower, upper := checkpoints[i], checkpoints[i+1]
		root, ok := FindRoot(p, epsilon, lower, upper)
		if ok {
			roots = append(roots, root)
		}
		solverLogger.Debug("searched interval", "lower", lower, "upper", upper, "found", ok, "root", root)
	}
	return roots
}

// FindRoot looks for the single root of p in the monotonic interval (lower, upper].
// A root at lower belongs to the previous interval and is not reported again.
// Bisection stops only once both the bracket width and |p(root)| are within epsilon.
func FindRoot(p poly.Polynomial, epsilon, lower, upper float64) (float64, bool) {
	if math.Abs(p.Eval(lower)) <= epsilon {
		return 0, false
	}
	if math.Abs(p.Eval(upper)) <= epsilon {
		return upper, true
	}
	if sameSign(p.Eval(lower), p.Eval(upper)) {
		return 0, false
	}

	var ok bool
	switch {
	case math.IsInf(lower, -1) && math.IsInf(upper, 1):
		if math.Abs(p.Eval(0)) <= epsilon {
			return 0, true
		}
		if lower, ok = ExpandLower(p, 0); !ok {
			return 0, false
		}
		if upper, ok = ExpandUpper(p, 0); !ok {
			return 0, false
		}
	case math.IsInf(lower, -1):
		if lower, ok = ExpandLower(p, upper); !ok {
			return 0, false
		}
	case math.IsInf(upper, 1):
		if upper, ok = ExpandUpper(p, lower); !ok {
			return 0, false
		}
	}
	return Bisect(p, epsilon, lower, upper)
}

// ExpandLower searches below upper for a point where p has the opposite sign of p(upper),
// moving 1, 2, 4, ... further each step
func ExpandLower(p poly.Polynomial, upper float64) (float64, bool) {
	return expand(p, upper, -1)
}

// ExpandUpper searches above lower for a point where p has the opposite sign of p(lower)
func ExpandUpper(p poly.Polynomial, lower float64) (float64, bool) {
	return expand(p, lower, 1)
}

func expand(p poly.Polynomial, known float64, direction float64) (float64, bool) {
	knownValue := p.Eval(known)
	if sameSign(p.Eval(math.Inf(int(direction))), knownValue) {
		return 0, false
	}

	step := 1.0
	candidate := known + direction*step
	for range maxExpansions {
		if math.IsInf(candidate, 0) {
			return 0, false
		}
		if p.Eval(candidate)*knownValue <= 0 {
			return candidate, true
		}
		step *= 2
		candidate += direction * step
	}
	return 0, false
}

// Bisect halves [lower, upper] until it is no wider than epsilon and p is within
// epsilon of zero at its middle. p must change sign between lower and upper.
// The middle is then rounded to EpsilonDigits(epsilon) digits, unless rounding
// moves it further from the root.
func Bisect(p poly.Polynomial, epsilon, lower, upper float64) (float64, bool) {
	if sameSign(p.Eval(lower), p.Eval(upper)) {
		return 0, false
	}

	middle := lower + (upper-lower)/2
	for upper-lower > epsilon || math.Abs(p.Eval(middle)) > epsilon {
		value := p.Eval(middle)
		if value == 0 {
			break
		}
		if sameSign(value, p.Eval(upper)) {
			upper = middle
		} else {
			lower = middle
		}
		next := lower + (upper-lower)/2
		if next == middle {
			// the bracket cannot be split any further in float64
			break
		}
		middle = next
	}

	return roundIfCloser(p, epsilon, middle), true
}

func roundIfCloser(p poly.Polynomial, epsilon, root float64) float64 {
	if !(epsilon > 0) || math.IsInf(epsilon, 0) {
		return root
	}
	rounded, err := Round(root, EpsilonDigits(epsilon))
	if err != nil {
		return root
	}
	if math.Abs(p.Eval(rounded)) <= math.Abs(p.Eval(root)) {
		return rounded
	}
	return root
}

func sameSign(a, b float64) bool {
	return a*b > 0
}
