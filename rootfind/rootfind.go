// Package rootfind ties the parser, evaluator, and solver together: it turns an
// expression or equation string into the real roots of the polynomial it denotes.
package rootfind

import (
	"strings"

	"github.com/cottand/polyroot/eval"
	"github.com/cottand/polyroot/internal/log"
	"github.com/cottand/polyroot/monomial"
	"github.com/cottand/polyroot/parser"
	"github.com/cottand/polyroot/poly"
	"github.com/cottand/polyroot/polyerr"
	"github.com/cottand/polyroot/solver"
	"github.com/pkg/errors"
)

var rootfindLogger = log.DefaultLogger.With("section", "rootfind")

// ParseExpression parses a single polynomial expression, without '='
func ParseExpression(expression string, cfg Config) (poly.Polynomial, error) {
	if cfg.UseScanner {
		return scan(expression, cfg)
	}
	postfix, err := parser.Options{StrictBrackets: cfg.StrictBrackets}.ToPostfix(parser.Prepare(parser.Tokenize(expression)))
	if err != nil {
		return poly.Polynomial{}, err
	}
	rootfindLogger.Debug("converted to postfix", "expression", expression, "postfix", parser.Join(postfix))
	return eval.Options{Variable: cfg.Variable}.Evaluate(postfix)
}

func scan(expression string, cfg Config) (poly.Polynomial, error) {
	if cfg.Variable != "" && cfg.Variable != eval.DefaultVariable {
		return poly.Polynomial{}, polyerr.New(polyerr.NewParse{
			Message: "the monomial scanner only supports the variable " + eval.DefaultVariable,
		})
	}
	if strings.ContainsAny(expression, " \t") {
		expression = strings.Join(strings.Fields(expression), "")
	}
	return monomial.Parse(expression)
}

// ParseEquation parses "left = right" into left - right.
// Without '=' the whole expression is parsed, and "left = 0" is just left.
func ParseEquation(expression string, cfg Config) (poly.Polynomial, error) {
	if strings.Count(expression, "=") > 1 {
		first := strings.Index(expression, "=")
		second := first + 1 + strings.Index(expression[first+1:], "=")
		return poly.Polynomial{}, polyerr.New(polyerr.NewParse{
			Range:   polyerr.Range{PosStart: second, PosEnd: second + 1},
			Message: "an equation can only have one '='",
		})
	}
	left, right, isEquation := strings.Cut(expression, "=")
	if !isEquation {
		return ParseExpression(expression, cfg)
	}

	equals := polyerr.Range{PosStart: len(left), PosEnd: len(left) + 1}
	if strings.TrimSpace(left) == "" {
		return poly.Polynomial{}, polyerr.New(polyerr.NewParse{Range: equals, Message: "missing left side of equation"})
	}
	if strings.TrimSpace(right) == "" {
		return poly.Polynomial{}, polyerr.New(polyerr.NewParse{Range: equals, Message: "missing right side of equation"})
	}

	leftPoly, err := ParseExpression(left, cfg)
	if err != nil {
		return poly.Polynomial{}, err
	}
	if strings.TrimSpace(right) == "0" {
		return leftPoly, nil
	}
	rightPoly, err := ParseExpression(right, cfg)
	if err != nil {
		return poly.Polynomial{}, polyerr.Shift(err, equals.PosEnd)
	}
	return *leftPoly.Minus(rightPoly), nil
}

// ParseAndSolve finds the real roots of expression with the default Config and the given precision
func ParseAndSolve(expression string, epsilon float64) (Solution, error) {
	cfg := DefaultConfig()
	cfg.Epsilon = epsilon
	return ParseAndSolveWith(expression, cfg)
}

// ParseAndSolveWith parses expression as an equation and solves it.
// Errors keep their polyerr code, reachable with errors.As or polyerr.Is.
func ParseAndSolveWith(expression string, cfg Config) (Solution, error) {
	if err := cfg.validate(); err != nil {
		return Solution{}, errors.Wrap(err, "invalid configuration")
	}

	p, err := ParseEquation(expression, cfg)
	if err != nil {
		return Solution{}, errors.Wrapf(err, "could not parse '%s'", expression)
	}
	if degree := p.HighestDegree(); degree > cfg.MaxDegree {
		return Solution{}, errors.WithStack(polyerr.New(polyerr.NewDegreeTooHigh{Degree: degree, Max: cfg.MaxDegree}))
	}

	rootfindLogger.Debug("solving", "polynomial", p.String(), "epsilon", cfg.Epsilon)
	result := solver.Solve(p, cfg.Epsilon)
	rootfindLogger.Debug("solved", "polynomial", p.String(), "result", result.String())
	return Solution{Polynomial: p, Result: result, Epsilon: cfg.Epsilon}, nil
}
