package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Stewinjo/AnyLetters/internal/game"
	"github.com/Stewinjo/AnyLetters/internal/words"
)

func (a *app) scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score GUESS TARGET",
		Short: "Print the G/Y/B feedback of a guess against a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, target := words.Normalize(args[0]), words.Normalize(args[1])
			if words.Len(guess) != words.Len(target) {
				return fmt.Errorf("%q and %q differ in length: %w", guess, target, game.ErrInvalidGuess)
			}
			marks := game.Score(guess, target)
			pattern := game.Codes(marks)
			return a.print(cmd.OutOrStdout(), map[string]any{"guess": guess, "target": target, "marks": marks, "pattern": pattern},
				func(w io.Writer) { fmt.Fprintln(w, pattern) })
		},
	}
}
