// apps/solver/main.go
//
// Entry point for the wordle-solver binary.
// Commands:
//   - serve:    HTTP API over solving sessions
//   - suggest:  one-shot filtering + recommendations from --guess flags
//   - simulate: self-play against a known secret
//   - import:   load a word file into the SQLite catalog

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	pretty     bool
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Filter Wordle candidates from feedback and suggest the next guess",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "path to solver.toml (default $SOLVER_CONFIG or ./solver.toml)")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "override log level (debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&rf.pretty, "pretty", false, "human-readable console logs")

	root.AddCommand(
		newServeCmd(&rf),
		newSuggestCmd(&rf),
		newSimulateCmd(&rf),
		newImportCmd(&rf),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

// loadConfig reads config and applies logging settings from it.
func loadConfig(rf *rootFlags) (*config.Config, error) {
	cfg, path, err := config.Load(rf.configPath)
	if err != nil {
		return nil, err
	}
	if rf.logLevel != "" {
		cfg.Log.Level = rf.logLevel
	}
	if rf.pretty {
		cfg.Log.Pretty = true
	}
	setupLogging(cfg.Log)
	if path != "" {
		log.Debug().Str("path", path).Msg("config file loaded")
	}
	return cfg, nil
}

func setupLogging(lc config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(lc.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", lc.Level).Msg("unknown log level, keeping info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if lc.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// loadWords resolves the configured word-list source.
func loadWords(ctx context.Context, cfg *config.Config) (*words.List, error) {
	wl, err := words.Load(ctx, words.Options{
		DBPath: cfg.Words.DB,
		List:   cfg.Words.List,
		File:   cfg.Words.File,
		Length: cfg.Words.Length,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", wl.Source()).Int("words", wl.Len()).Int("length", wl.Length()).Msg("word list ready")
	return wl, nil
}
