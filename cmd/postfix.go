package cmd

import (
	"fmt"
	"log/slog"

	"github.com/cottand/polyroot/internal/log"
	"github.com/cottand/polyroot/parser"
	"github.com/spf13/cobra"
)

var PostfixCmd = &cobra.Command{
	Use:          "postfix expression",
	Short:        "Print the postfix form of an expression",
	RunE:         runPostfix,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	postfixStrict   *bool
	postfixLogLevel *int
)

func init() {
	postfixStrict = PostfixCmd.Flags().Bool("strict-brackets", false, "reject brackets closed by a different kind")
	postfixLogLevel = PostfixCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runPostfix(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*postfixLogLevel))

	expression := args[0]
	postfix, err := parser.Parse(expression, parser.Options{StrictBrackets: *postfixStrict})
	if err != nil {
		return fmt.Errorf("could not convert '%s':\n%s", expression, formatError(err, expression))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), parser.Join(postfix))
	return nil
}
