//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/polyroot/rootfind"
)

func main() {
	js.Global().Set("SolveExpression", js.FuncOf(rootfind.SolveExpression))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
