package cmd

import (
	"errors"
	"log/slog"

	"github.com/cottand/polyroot/internal/log"
	"github.com/cottand/polyroot/polyerr"
	"github.com/cottand/polyroot/rootfind"
	"github.com/spf13/cobra"
)

type configFlags struct {
	cfg         rootfind.Config
	logLevel    int
	logSections []string
}

func bindConfigFlags(c *cobra.Command) *configFlags {
	f := &configFlags{cfg: rootfind.DefaultConfig()}
	c.Flags().Float64VarP(&f.cfg.Epsilon, "epsilon", "e", f.cfg.Epsilon, "precision of the roots")
	c.Flags().StringVar(&f.cfg.Variable, "var", f.cfg.Variable, "name of the variable")
	c.Flags().BoolVar(&f.cfg.StrictBrackets, "strict-brackets", false, "reject brackets closed by a different kind")
	c.Flags().IntVar(&f.cfg.MaxDegree, "max-degree", f.cfg.MaxDegree, "highest degree accepted")
	c.Flags().BoolVar(&f.cfg.UseScanner, "scanner", false, "parse with the flat monomial scanner (no brackets)")
	c.Flags().IntVarP(&f.logLevel, "log-level", "l", int(slog.LevelError), "log level")
	c.Flags().StringSliceVar(&f.logSections, "log-sections", nil, "only log debug output of these sections (parser, eval, solver, rootfind)")
	return f
}

func (f *configFlags) config() rootfind.Config {
	log.SetLevel(slog.Level(f.logLevel))
	if len(f.logSections) > 0 {
		log.EnableSections(f.logSections...)
	}
	return f.cfg
}

// formatError shows where in expression err happened, when it is known
func formatError(err error, expression string) string {
	var polyErr polyerr.PolyError
	if errors.As(err, &polyErr) {
		return polyerr.FormatWithSource(polyErr, expression)
	}
	return err.Error()
}
