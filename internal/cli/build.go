package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Stewinjo/AnyLetters/internal/game"
)

type buildResult struct {
	Lang       string   `json:"lang"`
	Length     int      `json:"length"`
	Backend    string   `json:"backend"`
	Allowed    int      `json:"allowed"`
	Difficulty string   `json:"difficulty"`
	Source     string   `json:"source"`
	Pool       int      `json:"pool"`
	Words      []string `json:"words,omitempty"`
}

func (a *app) buildCmd() *cobra.Command {
	var (
		noFilters  bool
		difficulty string
		printWords bool
	)
	cmd := &cobra.Command{
		Use:   "build LANG LENGTH",
		Short: "Build (or load) the validator and secret pool of a language and length",
		Long: "Expands the dictionary of LANG to words of LENGTH letters, writes the validator and " +
			"filtered-solution caches and reports the secret pool a game would draw from.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("length %q: %w", args[1], err)
			}
			diff, err := game.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			sess, err := a.session(nil)
			if err != nil {
				return err
			}
			setup, err := sess.Setup(args[0], length)
			if err != nil {
				return err
			}
			pool, err := sess.Pool(setup, diff, !noFilters)
			if err != nil {
				return err
			}

			res := buildResult{
				Lang:       setup.Lang,
				Length:     setup.Length,
				Backend:    setup.Validator.Backend(),
				Allowed:    setup.Validator.Len(),
				Difficulty: diff.String(),
				Source:     pool.Source,
				Pool:       len(pool.Words),
			}
			if printWords {
				res.Words = pool.Words
			}
			return a.print(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "%s/%d: %d allowed words (%s), %d secrets from %s (%s)\n",
					res.Lang, res.Length, res.Allowed, res.Backend, res.Pool, res.Source, res.Difficulty)
				for _, word := range res.Words {
					fmt.Fprintln(w, word)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&noFilters, "no-filters", false, "Skip the language filter pipeline")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy, medium, hard or chaos")
	cmd.Flags().BoolVar(&printWords, "print", false, "Print the secret pool")
	return cmd
}
