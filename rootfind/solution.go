package rootfind

import (
	"math"
	"strconv"

	"github.com/cottand/polyroot/poly"
	"github.com/cottand/polyroot/solver"
)

type Solution struct {
	Polynomial poly.Polynomial
	Result     solver.Result
	Epsilon    float64
}

// DisplayDigits is the number of decimal places roots are shown with for a given
// epsilon, which is the decimal position of epsilon itself (4 for 1e-4)
func DisplayDigits(epsilon float64) int {
	return solver.EpsilonDigits(epsilon) + 1
}

// Roots returns the roots rounded to DisplayDigits, or nil when every x is a root
func (s Solution) Roots() []float64 {
	if s.Result.Infinite {
		return nil
	}
	digits := DisplayDigits(s.Epsilon)
	roots := make([]float64, 0, len(s.Result.Roots))
	for _, root := range s.Result.Roots {
		roots = append(roots, roundForDisplay(root, digits))
	}
	return roots
}

func roundForDisplay(root float64, digits int) float64 {
	rounded, err := solver.Round(root, digits)
	if err != nil || math.IsInf(rounded, 0) {
		return root
	}
	if rounded == 0 {
		// drop the sign of -0
		return 0
	}
	return rounded
}

// Render formats the roots for display, or returns solver.InfiniteRoots
// as the only element when every x is a root
func (s Solution) Render() []string {
	if s.Result.Infinite {
		return []string{solver.InfiniteRoots}
	}
	roots := s.Roots()
	rendered := make([]string, 0, len(roots))
	for _, root := range roots {
		rendered = append(rendered, strconv.FormatFloat(root, 'g', -1, 64))
	}
	return rendered
}
