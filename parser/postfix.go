package parser

import (
	"fmt"

	"github.com/cottand/polyroot/polyerr"
	"github.com/cottand/polyroot/util"
)

// Options tune the infix to postfix conversion
type Options struct {
	// StrictBrackets rejects a closing bracket whose kind differs from the
	// opening bracket it closes, as in "(x]". By default brackets are matched
	// by position only.
	StrictBrackets bool
}

func precedence(tok Token) int {
	if tok.Kind == Neg {
		return 3
	}
	switch tok.Text {
	case "^":
		return 3
	case "*", "/":
		return 2
	case "+", "-":
		return 1
	default:
		return 0
	}
}

func isRightAssociative(tok Token) bool {
	return tok.Kind == Neg || tok.Text == "^"
}

// shouldPop reports whether top must be moved to the output before incoming is pushed
func shouldPop(incoming, top Token) bool {
	if top.Kind != Operator && top.Kind != Neg {
		return false
	}
	if isRightAssociative(incoming) {
		return precedence(incoming) < precedence(top)
	}
	return precedence(incoming) <= precedence(top)
}

// ToPostfix converts infix tokens to postfix order with the default Options
func ToPostfix(tokens []Token) ([]Token, error) {
	return Options{}.ToPostfix(tokens)
}

// ToPostfix converts infix tokens to postfix (reverse Polish) order using the
// shunting-yard algorithm. '^' binds tightest and is right-associative, then '*' '/',
// then '+' '-'. A Neg token is a prefix operator binding like '^', so "-x^2" is -(x^2).
func (o Options) ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	operators := &util.Stack[Token]{}

	for _, tok := range tokens {
		switch tok.Kind {
		case Number, Ident:
			output = append(output, tok)
		case Open, Neg:
			operators.Push(tok)
		case Close:
			for {
				top, ok := operators.Pop()
				if !ok {
					return nil, polyerr.New(polyerr.NewParse{
						Range:   tok.Range,
						Message: fmt.Sprintf("closing bracket '%s' has no matching opening bracket", tok.Text),
					})
				}
				if top.Kind != Open {
					output = append(output, top)
					continue
				}
				if o.StrictBrackets && top.Text != matchingOpening(tok.Text) {
					return nil, polyerr.New(polyerr.NewParse{
						Range:   polyerr.RangeBetween(top, tok),
						Message: fmt.Sprintf("closing bracket '%s' does not match opening bracket '%s'", tok.Text, top.Text),
					})
				}
				break
			}
		default:
			for {
				top, ok := operators.Peek()
				if !ok || !shouldPop(tok, top) {
					break
				}
				_, _ = operators.Pop()
				output = append(output, top)
			}
			operators.Push(tok)
		}
	}

	for _, top := range operators.PopAll() {
		if top.Kind == Open {
			return nil, polyerr.New(polyerr.NewParse{
				Range:   top.Range,
				Message: fmt.Sprintf("opening bracket '%s' is never closed", top.Text),
			})
		}
		output = append(output, top)
	}

	parserLogger.Debug("converted to postfix", "postfix", Join(output))
	return output, nil
}
