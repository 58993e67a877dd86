package monomial_test

import (
	"testing"

	"github.com/cottand/polyroot/monomial"
	"github.com/cottand/polyroot/poly"
	"github.com/cottand/polyroot/polyerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtom(t *testing.T) {
	tests := map[string]monomial.Atom{
		"x":       {Coefficient: 1, Degree: 1},
		"-x":      {Coefficient: -1, Degree: 1},
		"3":       {Coefficient: 3, Degree: 0},
		"-2.5":    {Coefficient: -2.5, Degree: 0},
		"2x":      {Coefficient: 2, Degree: 1},
		"2.x":     {Coefficient: 2, Degree: 1},
		"4x^3":    {Coefficient: 4, Degree: 3},
		"x^0":     {Coefficient: 1, Degree: 0},
		"++2":     {Coefficient: 2, Degree: 0},
		"--2x":    {Coefficient: 2, Degree: 1},
		"-+20x^2": {Coefficient: -20, Degree: 2},
		"+-x^12":  {Coefficient: -1, Degree: 12},
	}
	for expression, expected := range tests {
		actual, err := monomial.ParseAtom(expression)
		require.NoError(t, err, "atom: %s", expression)
		assert.Equal(t, expected, actual, "atom: %s", expression)
	}
}

func TestParseInvalidAtom(t *testing.T) {
	for _, expression := range []string{
		"", "2x2", "xx", "2.1.x", "x^2.1", "x^-2", "x^", "2*x", "x/2", "a", "2a^2", "2xa^2", "10-1", "+2+2", "-", "inf", "NaN",
	} {
		_, err := monomial.ParseAtom(expression)
		assert.True(t, polyerr.Is(err, polyerr.Parse), "atom %q should not parse, got %v", expression, err)
	}
}

func TestParseMonomial(t *testing.T) {
	tests := map[string]monomial.Atom{
		"3*20x":     {Coefficient: 60, Degree: 1},
		"x*-x":      {Coefficient: -1, Degree: 2},
		"3*2x*x*2":  {Coefficient: 12, Degree: 2},
		"x^3/x":     {Coefficient: 1, Degree: 2},
		"6x^2/2x":   {Coefficient: 3, Degree: 1},
		"1/4*x":     {Coefficient: 0.25, Degree: 1},
		"-x^2/-x^2": {Coefficient: 1, Degree: 0},
	}
	for expression, expected := range tests {
		actual, err := monomial.ParseMonomial(expression)
		require.NoError(t, err, "monomial: %s", expression)
		assert.Equal(t, expected, actual, "monomial: %s", expression)
	}
}

func TestParseMonomialErrors(t *testing.T) {
	_, err := monomial.ParseMonomial("x/x^2")
	assert.True(t, polyerr.Is(err, polyerr.Parse))

	_, err = monomial.ParseMonomial("x*")
	assert.True(t, polyerr.Is(err, polyerr.Parse))

	_, err = monomial.ParseMonomial("x/0")
	require.True(t, polyerr.Is(err, polyerr.DivisionByZero))
	var polyErr polyerr.PolyError
	require.ErrorAs(t, err, &polyErr)
	assert.Equal(t, "1-3", polyerr.Range{PosStart: polyErr.Pos(), PosEnd: polyErr.End()}.String())
}

func TestParse(t *testing.T) {
	tests := map[string]map[int]float64{
		"1/3*x^3-x":  {3: 1.0 / 3, 1: -1},
		"x^3/3-x":    {3: 1.0 / 3, 1: -1},
		"3*2x+-5x":   {1: 1},
		"-x+3x^2+1":  {2: 3, 1: -1, 0: 1},
		"x-x":        {},
		"0x+0":       {},
		"11x+6":      {1: 11, 0: 6},
		"x^2*x-x^3":  {},
		"-+20x^2":    {2: -20},
		"2x^2-x^2+5": {2: 1, 0: 5},
		"x^3+6x^2+11x+6": {
			3: 1, 2: 6, 1: 11, 0: 6,
		},
	}
	for expression, expected := range tests {
		actual, err := monomial.Parse(expression)
		require.NoError(t, err, "expression: %s", expression)
		assert.Truef(t, poly.New(expected).Equal(actual), "expression %s: expected %v, got %v", expression, poly.New(expected), actual)
	}
}

func TestParseReportsAtomPosition(t *testing.T) {
	_, err := monomial.Parse("3x^2+2xx")
	var polyErr polyerr.PolyError
	require.ErrorAs(t, err, &polyErr)
	assert.Equal(t, polyerr.Parse, polyErr.Code())
	assert.Equal(t, 4, polyErr.Pos())
	assert.Equal(t, 8, polyErr.End())
	assert.Equal(t, "(E001) invalid atom '+2xx'\n  3x^2+2xx\n      ^^^^", polyerr.FormatWithSource(polyErr, "3x^2+2xx"))
}

func TestParseEmpty(t *testing.T) {
	_, err := monomial.Parse("")
	assert.True(t, polyerr.Is(err, polyerr.Parse))

	_, err = monomial.Parse("x^2+")
	assert.True(t, polyerr.Is(err, polyerr.Parse))
}
