//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/cottand/polyroot/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "polyroot [subcommand]",
	Short:        "polyroot\n parses polynomial expressions and finds their real roots",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.SolveCmd)
	rootCmd.AddCommand(cmd.ClassifyCmd)
	rootCmd.AddCommand(cmd.PostfixCmd)
}
