package solver

import (
	"math"

	"github.com/montanaflynn/stats"
)

// EpsilonDigits is the number of decimal digits a tolerance of epsilon justifies:
// round(-log10(epsilon)) - 1, so 1e-4 gives 3
func EpsilonDigits(epsilon float64) int {
	return int(math.Round(-math.Log10(epsilon))) - 1
}

// Round rounds x half away from zero to the given number of decimal places.
// Negative places round to tens, hundreds, and so on.
func Round(x float64, places int) (float64, error) {
	return stats.Round(x, places)
}
