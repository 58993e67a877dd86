// Package eval turns postfix token sequences into polynomials.
package eval

import (
	"fmt"
	"strconv"

	"github.com/cottand/polyroot/internal/log"
	"github.com/cottand/polyroot/parser"
	"github.com/cottand/polyroot/poly"
	"github.com/cottand/polyroot/polyerr"
	"github.com/cottand/polyroot/util"
)

var evalLogger = log.DefaultLogger.With("section", "eval")

// DefaultVariable is the variable symbol used when Options.Variable is empty
const DefaultVariable = "x"

type Options struct {
	// Variable is the only identifier accepted in expressions
	Variable string
}

func (o Options) variable() string {
	if o.Variable == "" {
		return DefaultVariable
	}
	return o.Variable
}

// Evaluate evaluates postfix with the default Options
func Evaluate(postfix []parser.Token) (poly.Polynomial, error) {
	return Options{}.Evaluate(postfix)
}

// Evaluate walks postfix with a stack of polynomial operands and returns the single
// polynomial left at the end. Binary operators pop their right operand first.
func (o Options) Evaluate(postfix []parser.Token) (poly.Polynomial, error) {
	operands := &util.Stack[poly.Polynomial]{}

	for _, tok := range postfix {
		switch tok.Kind {
		case parser.Number:
			value, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return poly.Polynomial{}, polyerr.New(polyerr.NewParse{
					Range:   tok.Range,
					Message: fmt.Sprintf("malformed numeric literal '%s'", tok.Text),
				})
			}
			operands.Push(poly.FromConstant(value))
		case parser.Ident:
			if tok.Text != o.variable() {
				return poly.Polynomial{}, polyerr.New(polyerr.NewParse{
					Range:   tok.Range,
					Message: fmt.Sprintf("unsupported token '%s', the variable is '%s'", tok.Text, o.variable()),
				})
			}
			operands.Push(poly.Variable())
		case parser.Neg:
			operand, ok := operands.Pop()
			if !ok {
				return poly.Polynomial{}, polyerr.New(polyerr.NewStackUnderflow{Range: tok.Range, Operator: tok.Text})
			}
			operands.Push(operand.Negate())
		case parser.Operator:
			result, err := applyBinary(operands, tok)
			if err != nil {
				return poly.Polynomial{}, err
			}
			operands.Push(result)
		default:
			return poly.Polynomial{}, polyerr.New(polyerr.NewParse{
				Range:   tok.Range,
				Message: fmt.Sprintf("unexpected %v '%s' in postfix expression", tok.Kind, tok.Text),
			})
		}
	}

	result, ok := operands.Pop()
	if !ok {
		return poly.Polynomial{}, polyerr.New(polyerr.NewParse{Message: "empty expression"})
	}
	if operands.Len() > 0 {
		return poly.Polynomial{}, polyerr.New(polyerr.NewParse{
			Message: fmt.Sprintf("malformed expression: %d operands are missing an operator", operands.Len()),
		})
	}
	evalLogger.Debug("evaluated postfix", "postfix", parser.Join(postfix), "result", result)
	return result, nil
}

func applyBinary(operands *util.Stack[poly.Polynomial], tok parser.Token) (poly.Polynomial, error) {
	if !parser.IsSupportedOperator(tok.Text) {
		return poly.Polynomial{}, polyerr.New(polyerr.NewUnknownOperator{Range: tok.Range, Operator: tok.Text})
	}
	op2, ok2 := operands.Pop()
	op1, ok1 := operands.Pop()
	if !ok1 || !ok2 {
		return poly.Polynomial{}, polyerr.New(polyerr.NewStackUnderflow{Range: tok.Range, Operator: tok.Text})
	}

	var result poly.Polynomial
	var err error
	switch tok.Text {
	case "+":
		result = *op1.Plus(op2)
	case "-":
		result = *op1.Minus(op2)
	case "*":
		result = op1.Multiply(op2)
	case "/":
		result, err = op1.Divide(op2)
	case "^":
		result, err = op1.Power(op2)
	}
	if polyErr, ok := err.(polyerr.PolyError); ok {
		return poly.Polynomial{}, polyerr.At(polyErr, tok.Range)
	}
	return result, err
}
