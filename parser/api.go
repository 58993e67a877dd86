package parser

import (
	"github.com/cottand/polyroot/internal/log"
)

var parserLogger = log.DefaultLogger.With("section", "parser")

// Parse tokenizes expression, resolves signs and implicit multiplication,
// and returns the tokens in postfix order
func Parse(expression string, opts Options) ([]Token, error) {
	tokens := Prepare(Tokenize(expression))
	parserLogger.Debug("tokenized", "expression", expression, "tokens", Join(tokens))
	return opts.ToPostfix(tokens)
}
