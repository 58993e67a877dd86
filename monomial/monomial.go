// Package monomial is a flat scanner for sums of monomials such as "3x^2-x/2+1".
//
// It is a simpler alternative to the parser and eval packages: there are no brackets
// and no nested operators, only monomials joined by '+' and '-', each a product or
// quotient of atoms like "-2.5x^3".
package monomial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cottand/polyroot/poly"
	"github.com/cottand/polyroot/polyerr"
)

const variable = 'x'

// Atom is a single signed term with no '*' or '/', like "-3x^2"
type Atom struct {
	Coefficient float64
	Degree      int
}

func invalidAtom(expression string, at polyerr.Range) error {
	return polyerr.New(polyerr.NewParse{Range: at, Message: fmt.Sprintf("invalid atom '%s'", expression)})
}

// ParseAtom parses a run of signs, an optional coefficient, and an optional x or x^n
func ParseAtom(expression string) (Atom, error) {
	return parseAtom(expression, 0)
}

func parseAtom(expression string, offset int) (Atom, error) {
	at := polyerr.Range{PosStart: offset, PosEnd: offset + len(expression)}
	if expression == "" || strings.ContainsAny(expression, "*/") {
		return Atom{}, invalidAtom(expression, at)
	}

	sign := 1.0
	rest := strings.TrimLeftFunc(expression, func(r rune) bool {
		if r == '-' {
			sign = -sign
		}
		return r == '-' || r == '+'
	})

	indexOfX := strings.IndexRune(rest, variable)
	if indexOfX < 0 {
		coefficient, err := parseCoefficient(rest)
		if err != nil {
			return Atom{}, invalidAtom(expression, at)
		}
		return Atom{Coefficient: sign * coefficient, Degree: 0}, nil
	}

	coefficient := 1.0
	if indexOfX > 0 {
		var err error
		if coefficient, err = parseCoefficient(rest[:indexOfX]); err != nil {
			return Atom{}, invalidAtom(expression, at)
		}
	}

	afterX := rest[indexOfX+1:]
	if afterX == "" {
		return Atom{Coefficient: sign * coefficient, Degree: 1}, nil
	}
	if afterX[0] != '^' {
		return Atom{}, invalidAtom(expression, at)
	}
	degree, err := strconv.Atoi(afterX[1:])
	if err != nil || degree < 0 {
		return Atom{}, invalidAtom(expression, at)
	}
	return Atom{Coefficient: sign * coefficient, Degree: degree}, nil
}

func parseCoefficient(text string) (float64, error) {
	coefficient, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(coefficient, 0) || math.IsNaN(coefficient) {
		return 0, fmt.Errorf("coefficient %v is not finite", coefficient)
	}
	return coefficient, nil
}

func (a Atom) Multiply(other Atom) Atom {
	return Atom{Coefficient: a.Coefficient * other.Coefficient, Degree: a.Degree + other.Degree}
}

func (a Atom) Divide(other Atom) (Atom, error) {
	if other.Coefficient == 0 {
		return Atom{}, polyerr.New(polyerr.NewDivisionByZero{})
	}
	return Atom{Coefficient: a.Coefficient / other.Coefficient, Degree: a.Degree - other.Degree}, nil
}

// ParseMonomial parses atoms joined by '*' and '/', evaluated left to right
func ParseMonomial(expression string) (Atom, error) {
	return parseMonomial(expression, 0)
}

func parseMonomial(expression string, offset int) (Atom, error) {
	end := nextAtomEnd(expression, 0)
	result, err := parseAtom(expression[:end], offset)
	if err != nil {
		return Atom{}, err
	}

	for end < len(expression) {
		operator := expression[end]
		start := end + 1
		end = nextAtomEnd(expression, start)
		next, err := parseAtom(expression[start:end], offset+start)
		if err != nil {
			return Atom{}, err
		}
		if operator == '*' {
			result = result.Multiply(next)
			continue
		}
		if result, err = result.Divide(next); err != nil {
			return Atom{}, polyerr.At(err.(polyerr.PolyError), polyerr.Range{PosStart: offset + start - 1, PosEnd: offset + end})
		}
	}

	if result.Degree < 0 {
		return Atom{}, polyerr.New(polyerr.NewParse{
			Range:   polyerr.Range{PosStart: offset, PosEnd: offset + len(expression)},
			Message: fmt.Sprintf("monomial '%s' has negative degree %d", expression, result.Degree),
		})
	}
	return result, nil
}

func nextAtomEnd(expression string, start int) int {
	for i := start + 1; i < len(expression); i++ {
		if expression[i] == '*' || expression[i] == '/' {
			return i
		}
	}
	return len(expression)
}

// nextMonomialEnd finds the '+' or '-' that starts the next monomial. A sign right
// after another operator belongs to the atom that follows it.
func nextMonomialEnd(expression string, start int) int {
	for i := start + 1; i < len(expression); i++ {
		if (expression[i] == '+' || expression[i] == '-') && !strings.ContainsRune("*/+-^", rune(expression[i-1])) {
			return i
		}
	}
	return len(expression)
}

// Parse scans a sum of monomials into a polynomial.
// Spaces are not allowed; callers should strip them first.
func Parse(expression string) (poly.Polynomial, error) {
	if expression == "" {
		return poly.Polynomial{}, polyerr.New(polyerr.NewParse{Message: "empty expression"})
	}

	result := poly.Zero()
	for start := 0; start < len(expression); {
		end := nextMonomialEnd(expression, start)
		m, err := parseMonomial(expression[start:end], start)
		if err != nil {
			return poly.Polynomial{}, err
		}
		result.Plus(poly.New(map[int]float64{m.Degree: m.Coefficient}))
		start = end
	}
	return result, nil
}
