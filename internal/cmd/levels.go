package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xdg/tracelog/internal/tracelog"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List level names, ranks and message kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			_, _ = fmt.Fprintln(w, "LEVEL\tRANK")
			for _, name := range tracelog.LevelNames() {
				_, _ = fmt.Fprintf(w, "%s\t%d\n", name, int(tracelog.ParseLevel(name)))
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "KIND\tLEVEL\tPREFIX")
			for _, kind := range []tracelog.Kind{
				tracelog.KindConstructor,
				tracelog.KindOperator,
				tracelog.KindMethod,
				tracelog.KindDebug,
			} {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%q\n", kind, strings.ToLower(tracelog.LevelFor(kind).String()), kind.Prefix())
			}
			return w.Flush()
		},
	}
}
