package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *app) clearCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache [LANG]",
		Short: "Delete cached validator and filtered-solution lists",
		Long:  "Deletes the cached word lists of LANG, or of every language when LANG is omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lang string
			if len(args) == 1 {
				lang = args[0]
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			res, err := e.ClearCaches(lang)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res, func(w io.Writer) {
				scope := "all languages"
				if lang != "" {
					scope = lang
				}
				fmt.Fprintf(w, "cleared %d validator and %d filtered-solution lists (%s)\n", res.Validators, res.Solutions, scope)
			})
		},
	}
}
