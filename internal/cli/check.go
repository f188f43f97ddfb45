package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Stewinjo/AnyLetters/internal/filter"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

type checkResult struct {
	Word     string `json:"word"`
	Lang     string `json:"lang"`
	Valid    bool   `json:"valid"`
	Backend  string `json:"backend"`
	FilterBy string `json:"filterBy,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check LANG WORD...",
		Short: "Check whether words are accepted guesses and whether filters drop them as secrets",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(nil)
			if err != nil {
				return err
			}
			var results []checkResult
			for _, raw := range args[1:] {
				word := words.Normalize(strings.TrimSpace(raw))
				setup, err := sess.Setup(args[0], words.Len(word))
				if err != nil {
					return fmt.Errorf("%s: %w", raw, err)
				}
				res := checkResult{
					Word:    word,
					Lang:    setup.Lang,
					Valid:   setup.Validator.IsValid(word),
					Backend: setup.Validator.Backend(),
				}
				if arch, reason := sess.Engine().Filters().Explain(word, setup.Lang); reason != filter.ReasonNone {
					res.FilterBy, res.Reason = arch, string(reason)
				}
				results = append(results, res)
			}
			return a.print(cmd.OutOrStdout(), results, func(w io.Writer) {
				for _, r := range results {
					verdict := "valid"
					if !r.Valid {
						verdict = "invalid"
					}
					line := fmt.Sprintf("%s\t%s", r.Word, verdict)
					if r.Reason != "" {
						line += fmt.Sprintf("\tfiltered (%s: %s)", r.FilterBy, r.Reason)
					}
					fmt.Fprintln(w, line)
				}
			})
		},
	}
}
