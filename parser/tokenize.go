package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/cottand/polyroot/polyerr"
)

// Tokenize splits expression into tokens, left to right.
//
// Consecutive digits and decimal points are merged into a single Number token; no
// validation happens here, so "1.2.3" is one token and is rejected when evaluated.
// Letters become Ident tokens and brackets Open or Close tokens. Any other
// non-space character becomes its own Operator token.
func Tokenize(expression string) []Token {
	var tokens []Token
	for i, r := range expression {
		_, width := utf8.DecodeRuneInString(expression[i:])
		at := polyerr.Range{PosStart: i, PosEnd: i + width}
		text := expression[i : i+width]
		switch {
		case unicode.IsSpace(r):
			continue
		case isPartOfNumber(r):
			if last := len(tokens) - 1; last >= 0 && tokens[last].Kind == Number && tokens[last].PosEnd == i {
				tokens[last].Text += text
				tokens[last].PosEnd = at.PosEnd
				continue
			}
			tokens = append(tokens, Token{Kind: Number, Text: text, Range: at})
		case unicode.IsLetter(r):
			tokens = append(tokens, Token{Kind: Ident, Text: text, Range: at})
		case openingBrackets.Contains(text):
			tokens = append(tokens, Token{Kind: Open, Text: text, Range: at})
		case closingBrackets.Contains(text):
			tokens = append(tokens, Token{Kind: Close, Text: text, Range: at})
		default:
			tokens = append(tokens, Token{Kind: Operator, Text: text, Range: at})
		}
	}
	return tokens
}

func isPartOfNumber(r rune) bool {
	return r == '.' || ('0' <= r && r <= '9')
}

// Prepare resolves the two shorthands of written maths that a plain shunting-yard
// cannot see:
//   - a '+' or '-' with no left operand is a sign: '-' becomes a Neg token, '+' is dropped
//   - an operand or closing bracket directly followed by an operand or opening bracket
//     is a multiplication, so "11x" and "(x+1)(x-1)" get an explicit '*'
func Prepare(tokens []Token) []Token {
	prepared := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		var prev *Token
		if len(prepared) > 0 {
			prev = &prepared[len(prepared)-1]
		}

		if tok.Kind == Operator && (tok.Text == "-" || tok.Text == "+") && expectsOperand(prev) {
			if tok.Text == "-" {
				tok.Kind = Neg
				prepared = append(prepared, tok)
			}
			continue
		}

		if prev != nil && endsOperand(*prev) && startsOperand(tok) {
			prepared = append(prepared, Token{
				Kind:  Operator,
				Text:  "*",
				Range: polyerr.Range{PosStart: prev.PosEnd, PosEnd: tok.PosStart},
			})
		}
		prepared = append(prepared, tok)
	}
	return prepared
}

func expectsOperand(prev *Token) bool {
	return prev == nil || prev.Kind == Operator || prev.Kind == Neg || prev.Kind == Open
}

func endsOperand(tok Token) bool {
	return tok.IsOperand() || tok.Kind == Close
}

func startsOperand(tok Token) bool {
	return tok.IsOperand() || tok.Kind == Open
}
