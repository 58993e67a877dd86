package parser

import (
	"slices"
	"strings"

	"github.com/cottand/polyroot/polyerr"
	"github.com/cottand/polyroot/util"
	"github.com/hashicorp/go-set/v3"
)

type Kind int

const (
	Number Kind = iota
	Ident
	Operator
	// Neg is a unary minus, produced by Prepare
	Neg
	Open
	Close
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Ident:
		return "ident"
	case Operator:
		return "operator"
	case Neg:
		return "neg"
	case Open:
		return "open"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// Token is a lexical unit of an expression, along with where it was found
type Token struct {
	Kind Kind
	Text string
	polyerr.Range
}

func (t Token) String() string {
	if t.Kind == Neg {
		return "neg"
	}
	return t.Text
}

// IsOperand reports whether t is a number literal or a variable
func (t Token) IsOperand() bool {
	return t.Kind == Number || t.Kind == Ident
}

var (
	supportedOperators = set.From([]string{"+", "-", "*", "/", "^"})
	openingBrackets    = set.From([]string{"(", "[", "{"})
	closingBrackets    = set.From([]string{")", "]", "}"})
)

// IsSupportedOperator reports whether op is one of + - * / ^
func IsSupportedOperator(op string) bool {
	return supportedOperators.Contains(op)
}

func matchingOpening(closing string) string {
	switch closing {
	case ")":
		return "("
	case "]":
		return "["
	default:
		return "{"
	}
}

// Join renders tokens separated by spaces, e.g. "3 4 5 * +"
func Join(tokens []Token) string {
	return strings.Join(slices.Collect(util.MapIter(slices.Values(tokens), Token.String)), " ")
}
