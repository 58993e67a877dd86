package eval_test

import (
	"strings"
	"testing"

	"github.com/cottand/polyroot/eval"
	"github.com/cottand/polyroot/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traefik/yaegi/interp"
)

// goSource turns an expression using only + - * / and parentheses into Go source,
// making every literal a float so that division is not truncated
func goSource(expression string) string {
	sb := strings.Builder{}
	for _, tok := range parser.Tokenize(expression) {
		sb.WriteString(tok.Text)
		if tok.Kind == parser.Number && !strings.Contains(tok.Text, ".") {
			sb.WriteString(".0")
		}
	}
	return sb.String()
}

// interpret compiles expression as a Go function of x with yaegi
func interpret(t *testing.T, expression string) func(float64) float64 {
	t.Helper()
	i := interp.New(interp.Options{})
	_, err := i.Eval("package expr\nfunc Eval(x float64) float64 { return " + goSource(expression) + " }")
	require.NoError(t, err, "expression: %s", expression)

	v, err := i.Eval("expr.Eval")
	require.NoError(t, err)
	fn, ok := v.Interface().(func(float64) float64)
	require.True(t, ok)
	return fn
}

func TestAgainstGoInterpreter(t *testing.T) {
	expressions := []string{
		"3+4*5",
		"(1+2)*3-4/8",
		"x*x-1",
		"-(x-2)*3",
		"(x+1)*(x-1)*(x+2)/4",
		"10-2*(x+1)",
		"x-(x+1)*(x+2)-10",
		"2.5*x*x*x-x/3+0.125",
		"-x*-x",
	}
	points := []float64{-2, -0.5, 0, 1.5, 3}

	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			expected := interpret(t, expression)
			postfix, err := parser.Parse(expression, parser.Options{})
			require.NoError(t, err)
			p, err := eval.Evaluate(postfix)
			require.NoError(t, err)

			for _, x := range points {
				assert.InDelta(t, expected(x), p.Eval(x), 1e-9, "x = %v", x)
			}
		})
	}
}
