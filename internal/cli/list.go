package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Stewinjo/AnyLetters/internal/lexicon"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the languages with an index.aff/index.dic dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			langs, err := lexicon.AvailableLanguages(a.cfg.Paths.Dictionaries)
			if err != nil {
				return err
			}
			sorted := lexicon.SortedLanguages(langs)
			return a.print(cmd.OutOrStdout(), map[string]any{"languages": sorted}, func(w io.Writer) {
				if len(sorted) == 0 {
					fmt.Fprintf(w, "no dictionaries under %s\n", a.cfg.Paths.Dictionaries)
					return
				}
				for _, l := range sorted {
					fmt.Fprintln(w, l)
				}
			})
		},
	}
}
