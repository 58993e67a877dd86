package cmd

import (
	"fmt"
	"strings"

	"github.com/cottand/polyroot/rootfind"
	"github.com/cottand/polyroot/solver"
	"github.com/spf13/cobra"
)

var ClassifyCmd = &cobra.Command{
	Use:          "classify expression",
	Short:        "Show the simplified polynomial, its kind, and its closed-form roots when there is a formula for them",
	RunE:         runClassify,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var classifyFlags *configFlags

func init() {
	classifyFlags = bindConfigFlags(ClassifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := classifyFlags.config()
	expression := args[0]
	p, err := rootfind.ParseEquation(expression, cfg)
	if err != nil {
		return fmt.Errorf("could not parse '%s':\n%s", expression, formatError(err, expression))
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "polynomial: %s\n", p)
	_, _ = fmt.Fprintf(out, "type: %s\n", solver.Classify(p))
	if result, ok := solver.SolveClosedForm(p); ok {
		solution := rootfind.Solution{Polynomial: p, Result: result, Epsilon: cfg.Epsilon}
		_, _ = fmt.Fprintf(out, "roots: [%s]\n", strings.Join(solution.Render(), ", "))
	}
	return nil
}
