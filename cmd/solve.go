package cmd

import (
	"fmt"
	"strings"

	"github.com/cottand/polyroot/rootfind"
	"github.com/spf13/cobra"
)

var SolveCmd = &cobra.Command{
	Use:          "solve expression...",
	Short:        "Find the real roots of polynomial expressions or equations",
	Example:      "  polyroot solve 'x^3+6x^2+11x+6'\n  polyroot solve -e 1e-4 'x^2-1=-2x+2'",
	RunE:         runSolve,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var solveFlags *configFlags

func init() {
	solveFlags = bindConfigFlags(SolveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := solveFlags.config()
	for _, expression := range args {
		solution, err := rootfind.ParseAndSolveWith(expression, cfg)
		if err != nil {
			return fmt.Errorf("could not solve '%s':\n%s", expression, formatError(err, expression))
		}
		roots := "[" + strings.Join(solution.Render(), ", ") + "]"
		if len(args) > 1 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", expression, roots)
			continue
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), roots)
	}
	return nil
}
