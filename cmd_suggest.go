// apps/solver/cmd_suggest.go
//
// `suggest` applies --guess GUESS=PATTERN pairs in order and prints the
// remaining pool size and the best next guesses.
//
// Notes:
//   - Pairs after the one that solves (or contradicts) the pool are ignored
//     with a warning; the session refuses them.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/session"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func newSuggestCmd(rf *rootFlags) *cobra.Command {
	var (
		guesses []string
		top     int
		show    int
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Apply guess=pattern pairs in order and print the best next guesses",
		Example: `  wordle-solver suggest --guess slate=GXXXG
  wordle-solver suggest -g crane=XYXXG -g shore=GGXXG --top 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			wl, err := loadWords(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if top <= 0 {
				top = cfg.Solver.Display
			}

			out := cmd.OutOrStdout()
			sess := session.New("cli", wl.Words())
			if len(guesses) == 0 {
				fmt.Fprintf(out, "Starter suggestion: %s\n", session.Starter)
			}

			for i, g := range guesses {
				guess, pattern, ok := strings.Cut(g, "=")
				if !ok {
					return fmt.Errorf("--guess %q: want GUESS=PATTERN", g)
				}
				step, err := sess.Apply(guess, pattern)
				if errors.Is(err, session.ErrSessionOver) {
					log.Warn().Strs("ignored", guesses[i:]).Msg("word already solved, ignoring remaining guesses")
					break
				}
				if errors.Is(err, solver.ErrEmptyPool) {
					fmt.Fprintf(out, "%s %s: no words match, a pattern was probably mistyped\n", step.Guess, step.Pattern)
					return err
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s: %d -> %d words\n", step.Guess, step.Pattern, step.Before, step.After)
			}

			st := sess.Snapshot()
			if st.Status == session.StatusSolved {
				fmt.Fprintf(out, "The word is: %s\n", strings.ToUpper(st.Answer))
				return nil
			}

			fmt.Fprintf(out, "Words left: %d\n", st.Size)
			fmt.Fprintln(out, "Best next guesses:")
			for i, sug := range sess.Recommend(top) {
				fmt.Fprintf(out, "%2d. %s (%d)\n", i+1, sug.Word, sug.Score)
			}
			if show > 0 {
				fmt.Fprintf(out, "Candidates: %s\n", strings.Join(sess.Candidates(show), " "))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&guesses, "guess", "g", nil, "GUESS=PATTERN with pattern letters G (correct), Y (present), X (absent); repeatable")
	cmd.Flags().IntVar(&top, "top", 0, "number of suggestions (default solver.display)")
	cmd.Flags().IntVar(&show, "candidates", 0, "also list up to N remaining candidates")
	return cmd
}
