// apps/solver/cmd_simulate.go
//
// `simulate` plays the solver against a known secret and prints each turn.
// Exits non-zero when the secret is not found within --turns.

package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func newSimulateCmd(rf *rootFlags) *cobra.Command {
	var (
		secret string
		opener string
		turns  int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play the solver against a known secret word",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			wl, err := loadWords(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			secret = strings.ToLower(strings.TrimSpace(secret))
			if !wl.Contains(secret) {
				log.Warn().Str("secret", secret).Msg("secret is not in the word list; the solver cannot find it")
			}

			played, solved, err := solver.Simulate(wl.Words(), secret, strings.ToLower(opener), turns)
			out := cmd.OutOrStdout()
			for i, t := range played {
				fmt.Fprintf(out, "%d. %s %s  %d left\n", i+1, t.Guess, t.Pattern, t.Remaining)
			}
			if err != nil {
				return err
			}
			if !solved {
				return fmt.Errorf("not solved in %d turns", turns)
			}
			fmt.Fprintf(out, "Solved in %d\n", len(played))
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "secret word to play against")
	cmd.Flags().StringVar(&opener, "opener", "", "first guess (default: top recommendation)")
	cmd.Flags().IntVar(&turns, "turns", 6, "maximum number of guesses")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}
