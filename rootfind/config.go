package rootfind

import (
	"math"

	"github.com/cottand/polyroot/eval"
	"github.com/pkg/errors"
)

// DefaultEpsilon is the precision used when none is given
const DefaultEpsilon = 1e-5

// DefaultMaxDegree bounds the degree of the polynomials Solve is asked to handle.
// The solver recurses once per degree.
const DefaultMaxDegree = 64

type Config struct {
	// Epsilon is both the residual tolerance and the bracket width at which bisection stops
	Epsilon float64
	// Variable is the only identifier accepted in expressions
	Variable string
	// StrictBrackets rejects closing brackets of a different kind than the opening one
	StrictBrackets bool
	MaxDegree      int
	// UseScanner parses with the flat monomial scanner instead of the tokenizer.
	// The scanner does not support brackets or a Variable other than x.
	UseScanner bool
}

func DefaultConfig() Config {
	return Config{
		Epsilon:   DefaultEpsilon,
		Variable:  eval.DefaultVariable,
		MaxDegree: DefaultMaxDegree,
	}
}

var ErrInvalidEpsilon = errors.New("epsilon must be positive and finite")

func (c Config) validate() error {
	if c.Epsilon <= 0 || math.IsInf(c.Epsilon, 0) || math.IsNaN(c.Epsilon) {
		return errors.Wrapf(ErrInvalidEpsilon, "got %v", c.Epsilon)
	}
	if c.MaxDegree < 1 {
		return errors.Errorf("max degree must be at least 1, got %d", c.MaxDegree)
	}
	return nil
}
