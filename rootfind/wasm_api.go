//go:build js && wasm

package rootfind

import (
	"fmt"
	"syscall/js"

	"github.com/cottand/polyroot/polyerr"
	"github.com/pkg/errors"
)

// SolveExpression takes an expression and an optional epsilon and returns
//
//	{ roots: string[], polynomial: string } | { error: string }
func SolveExpression(_ js.Value, args []js.Value) (ret any) {
	errorObj := func(err string) any {
		return js.ValueOf(map[string]any{
			"error": err,
		})
	}
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("solver panicked: " + fmt.Sprint(r))
		}
	}()

	if len(args) < 1 {
		return errorObj(fmt.Sprintf("expected at least 1 argument, got %d", len(args)))
	}
	expression := args[0].String()
	cfg := DefaultConfig()
	if len(args) > 1 && args[1].Type() == js.TypeNumber {
		cfg.Epsilon = args[1].Float()
	}

	solution, err := ParseAndSolveWith(expression, cfg)
	if err != nil {
		var polyErr polyerr.PolyError
		if errors.As(err, &polyErr) {
			return errorObj(polyerr.FormatWithSource(polyErr, expression))
		}
		return errorObj(err.Error())
	}

	rendered := solution.Render()
	roots := make([]any, 0, len(rendered))
	for _, root := range rendered {
		roots = append(roots, root)
	}
	return js.ValueOf(map[string]any{
		"roots":      roots,
		"polynomial": solution.Polynomial.String(),
	})
}
