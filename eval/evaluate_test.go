package eval_test

import (
	"testing"

	"github.com/cottand/polyroot/eval"
	"github.com/cottand/polyroot/parser"
	"github.com/cottand/polyroot/poly"
	"github.com/cottand/polyroot/polyerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type terms = map[int]float64

func evaluate(expression string, opts eval.Options) (poly.Polynomial, error) {
	postfix, err := parser.Parse(expression, parser.Options{})
	if err != nil {
		return poly.Polynomial{}, err
	}
	return opts.Evaluate(postfix)
}

func testEvaluate(t *testing.T, expression string, expected poly.Polynomial) {
	t.Helper()
	actual, err := evaluate(expression, eval.Options{})
	require.NoError(t, err, "expression: %s", expression)
	assert.Truef(t, expected.Equal(actual), "expression %s: expected %v, got %v", expression, expected, actual)
}

func TestConstants(t *testing.T) {
	testEvaluate(t, "3+4*5", poly.FromConstant(23))
	testEvaluate(t, "3+4*5^2", poly.FromConstant(103))
	testEvaluate(t, "1+2^2^3", poly.FromConstant(257))
	testEvaluate(t, "8/4/2", poly.FromConstant(1))
	testEvaluate(t, "-2^2", poly.FromConstant(-4))
	testEvaluate(t, "(-2)^2", poly.FromConstant(4))
}

func TestPolynomials(t *testing.T) {
	tests := map[string]terms{
		"2*x-5+3*x":    {1: 5, 0: -5},
		"10-2*(x+1)":   {1: -2, 0: 8},
		"(x+2)^2-4":    {2: 1, 1: 4},
		"2*(x+2)^2-4":  {2: 2, 1: 8, 0: 4},
		"10-3*(x+1)^2": {2: -3, 1: -6, 0: 7},
		"(x+1)^3":      {3: 1, 2: 3, 1: 3, 0: 1},
		"x^3/3-x":      {3: 1.0 / 3, 1: -1},
		"11x+6":        {1: 11, 0: 6},
		"[x+1]*{x-1}":  {2: 1, 0: -1},
		"0x+0":         {},
		"x-x":          {},
	}
	for expression, expected := range tests {
		testEvaluate(t, expression, poly.New(expected))
	}
}

func TestCustomVariable(t *testing.T) {
	p, err := evaluate("t^2-1", eval.Options{Variable: "t"})
	require.NoError(t, err)
	assert.True(t, poly.New(terms{2: 1, 0: -1}).Equal(p))

	_, err = evaluate("x^2-1", eval.Options{Variable: "t"})
	assert.True(t, polyerr.Is(err, polyerr.Parse))
}

func TestEvaluationErrors(t *testing.T) {
	tests := map[string]polyerr.ErrCode{
		"x/0":      polyerr.DivisionByZero,
		"x/(1-1)":  polyerr.DivisionByZero,
		"1/x":      polyerr.UnsupportedOperand,
		"x^x":      polyerr.UnsupportedOperand,
		"x^-1":     polyerr.NegativeExponent,
		"x^0.5":    polyerr.NonIntegerExponent,
		"x%2":      polyerr.UnknownOperator,
		"x+":       polyerr.StackUnderflow,
		"*x":       polyerr.StackUnderflow,
		"-":        polyerr.StackUnderflow,
		"1.2.3":    polyerr.Parse,
		".":        polyerr.Parse,
		"y+1":      polyerr.Parse,
		"":         polyerr.Parse,
		"x^100000": polyerr.DegreeTooHigh,
	}
	for expression, code := range tests {
		_, err := evaluate(expression, eval.Options{})
		require.Error(t, err, "expression: %s", expression)
		assert.True(t, polyerr.Is(err, code), "expression %s: expected %v, got %v", expression, code, err)
	}
}

func TestErrorsCarryOperatorRange(t *testing.T) {
	_, err := evaluate("x+1/0", eval.Options{})
	var polyErr polyerr.PolyError
	require.ErrorAs(t, err, &polyErr)
	assert.Equal(t, polyerr.Range{PosStart: 3, PosEnd: 4}, polyerr.Range{PosStart: polyErr.Pos(), PosEnd: polyErr.End()})
}

func TestLeftoverOperands(t *testing.T) {
	postfix := []parser.Token{
		{Kind: parser.Number, Text: "1"},
		{Kind: parser.Number, Text: "2"},
	}
	_, err := eval.Evaluate(postfix)
	assert.True(t, polyerr.Is(err, polyerr.Parse))
}
