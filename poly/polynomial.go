// Package poly implements sparse single-variable polynomials with real coefficients.
//
// A Polynomial maps each degree to its coefficient. Degrees whose coefficient is exactly
// zero are never stored, so the zero polynomial has no terms at all and is treated as the
// constant 0. The backing map is persistent, which makes copies cheap and independent.
package poly

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/polyroot/polyerr"
)

// MaxDegree bounds the degree Power may produce
const MaxDegree = 1024

type Polynomial struct {
	coeffs *immutable.SortedMap[int, float64]
}

func emptyCoeffs() *immutable.SortedMap[int, float64] {
	return immutable.NewSortedMap[int, float64](nil)
}

// New builds a Polynomial from a degree to coefficient mapping.
// Zero coefficients are dropped and negative degrees are ignored.
func New(terms map[int]float64) Polynomial {
	m := emptyCoeffs()
	for degree, coeff := range terms {
		if degree < 0 || coeff == 0 {
			continue
		}
		m = m.Set(degree, coeff)
	}
	return Polynomial{coeffs: m}
}

func FromConstant(c float64) Polynomial {
	return New(map[int]float64{0: c})
}

// Variable is the polynomial x
func Variable() Polynomial {
	return New(map[int]float64{1: 1})
}

func Zero() Polynomial {
	return Polynomial{coeffs: emptyCoeffs()}
}

func (p Polynomial) m() *immutable.SortedMap[int, float64] {
	if p.coeffs == nil {
		return emptyCoeffs()
	}
	return p.coeffs
}

// Terms iterates over the stored (degree, coefficient) pairs in ascending degree order
func (p Polynomial) Terms() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		itr := p.m().Iterator()
		for !itr.Done() {
			degree, coeff, ok := itr.Next()
			if !ok || !yield(degree, coeff) {
				return
			}
		}
	}
}

func (p Polynomial) Len() int {
	return p.m().Len()
}

func (p *Polynomial) Plus(other Polynomial) *Polynomial {
	return p.accumulate(other, 1)
}

func (p *Polynomial) Minus(other Polynomial) *Polynomial {
	return p.accumulate(other, -1)
}

func (p *Polynomial) accumulate(other Polynomial, sign float64) *Polynomial {
	m := p.m()
	for degree, coeff := range other.Terms() {
		current, _ := m.Get(degree)
		m = m.Set(degree, current+sign*coeff)
	}
	p.coeffs = m
	p.Simplify()
	return p
}

// Simplify removes every degree whose coefficient is exactly zero
func (p *Polynomial) Simplify() *Polynomial {
	m := p.m()
	for degree, coeff := range p.Terms() {
		if coeff == 0 {
			m = m.Delete(degree)
		}
	}
	p.coeffs = m
	return p
}

func (p Polynomial) Multiply(other Polynomial) Polynomial {
	product := make(map[int]float64, p.Len()+other.Len())
	for d1, c1 := range p.Terms() {
		for d2, c2 := range other.Terms() {
			product[d1+d2] += c1 * c2
		}
	}
	return New(product)
}

// Negate returns -p
func (p Polynomial) Negate() Polynomial {
	negated := Zero()
	negated.Minus(p)
	return negated
}

// Divide divides every coefficient of p by divisor, which must be a constant
func (p Polynomial) Divide(divisor Polynomial) (Polynomial, error) {
	if !divisor.IsConstant() {
		return Polynomial{}, polyerr.New(polyerr.NewUnsupportedOperand{Operator: "/", Operand: divisor.String()})
	}
	d := divisor.Coefficient(0)
	if d == 0 {
		return Polynomial{}, polyerr.New(polyerr.NewDivisionByZero{})
	}
	m := emptyCoeffs()
	for degree, coeff := range p.Terms() {
		m = m.Set(degree, coeff/d)
	}
	quotient := Polynomial{coeffs: m}
	quotient.Simplify()
	return quotient, nil
}

// Power raises p to a constant, non-negative, integral exponent by repeated multiplication
func (p Polynomial) Power(exponent Polynomial) (Polynomial, error) {
	if !exponent.IsConstant() {
		return Polynomial{}, polyerr.New(polyerr.NewUnsupportedOperand{Operator: "^", Operand: exponent.String()})
	}
	e := exponent.Coefficient(0)
	if e < 0 {
		return Polynomial{}, polyerr.New(polyerr.NewNegativeExponent{Exponent: e})
	}
	if math.Trunc(e) != e || math.IsNaN(e) || math.IsInf(e, 0) {
		return Polynomial{}, polyerr.New(polyerr.NewNonIntegerExponent{Exponent: e})
	}
	if p.IsConstant() {
		return FromConstant(math.Pow(p.Coefficient(0), e)), nil
	}
	if resulting := e * float64(p.HighestDegree()); resulting > MaxDegree {
		return Polynomial{}, polyerr.New(polyerr.NewDegreeTooHigh{Degree: int(math.Min(resulting, math.MaxInt32)), Max: MaxDegree})
	}

	result := FromConstant(1)
	for range int(e) {
		result = result.Multiply(p)
	}
	return result, nil
}

// Derivative returns dp/dx
func (p Polynomial) Derivative() Polynomial {
	derivative := make(map[int]float64, p.Len())
	for degree, coeff := range p.Terms() {
		if degree >= 1 {
			derivative[degree-1] = coeff * float64(degree)
		}
	}
	return New(derivative)
}

// Eval returns p(x). For x = ±Inf it returns the limit of p at that infinity.
func (p Polynomial) Eval(x float64) float64 {
	if math.IsInf(x, 1) {
		return p.LimitAtInf()
	}
	if math.IsInf(x, -1) {
		return p.LimitAtMinusInf()
	}

	result := 0.0
	for degree, coeff := range p.Terms() {
		result += coeff * math.Pow(x, float64(degree))
	}
	return result
}

func (p Polynomial) LimitAtInf() float64 {
	if p.IsConstant() {
		return p.Coefficient(0)
	}
	return math.Inf(sign(p.LeadingCoefficient()))
}

func (p Polynomial) LimitAtMinusInf() float64 {
	if p.IsConstant() {
		return p.Coefficient(0)
	}
	s := sign(p.LeadingCoefficient())
	if p.HighestDegree()%2 == 1 {
		s = -s
	}
	return math.Inf(s)
}

func sign(f float64) int {
	if f < 0 {
		return -1
	}
	return 1
}

// HighestDegree is the largest stored degree, or 0 for the zero polynomial
func (p Polynomial) HighestDegree() int {
	itr := p.m().Iterator()
	itr.Last()
	degree, _, ok := itr.Prev()
	if !ok {
		return 0
	}
	return degree
}

func (p Polynomial) LeadingCoefficient() float64 {
	return p.Coefficient(p.HighestDegree())
}

func (p Polynomial) Coefficient(degree int) float64 {
	coeff, _ := p.m().Get(degree)
	return coeff
}

// FullCoefficients lists the coefficients from the highest degree down to 0, gaps included
func (p Polynomial) FullCoefficients() []float64 {
	highest := p.HighestDegree()
	coefficients := make([]float64, 0, highest+1)
	for degree := highest; degree >= 0; degree-- {
		coefficients = append(coefficients, p.Coefficient(degree))
	}
	return coefficients
}

// Degrees returns the stored degrees in ascending order
func (p Polynomial) Degrees() []int {
	degrees := make([]int, 0, p.Len())
	for degree := range p.Terms() {
		degrees = append(degrees, degree)
	}
	return degrees
}

func (p Polynomial) IsConstant() bool {
	return p.HighestDegree() == 0
}

func (p Polynomial) IsZero() bool {
	return p.Len() == 0
}

func (p Polynomial) Equal(other Polynomial) bool {
	if p.Len() != other.Len() {
		return false
	}
	for degree, coeff := range p.Terms() {
		otherCoeff, ok := other.m().Get(degree)
		if !ok || otherCoeff != coeff {
			return false
		}
	}
	return true
}

// String renders p from the highest degree down, e.g. "3x^2 - x + 1"
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	sb := strings.Builder{}
	degrees := p.Degrees()
	for i := len(degrees) - 1; i >= 0; i-- {
		degree := degrees[i]
		coeff := p.Coefficient(degree)
		switch {
		case i == len(degrees)-1 && coeff < 0:
			sb.WriteString("-")
		case i != len(degrees)-1 && coeff < 0:
			sb.WriteString(" - ")
		case i != len(degrees)-1:
			sb.WriteString(" + ")
		}
		abs := math.Abs(coeff)
		if abs != 1 || degree == 0 {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		if degree >= 1 {
			sb.WriteString("x")
		}
		if degree >= 2 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(degree))
		}
	}
	return sb.String()
}
