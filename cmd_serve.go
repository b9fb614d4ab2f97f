// apps/solver/cmd_serve.go
//
// `serve` runs the HTTP API until SIGINT/SIGTERM.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

func newServeCmd(rf *rootFlags) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}
			wl, err := loadWords(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if cfg.Server.JWTSecret == "dev_secret_change_me" {
				log.Warn().Msg("JWT_SECRET not set, using development secret")
			}

			srv := httpserver.New(store.NewMemoryStore(), wl, httpserver.Options{
				ClientOrigin: cfg.Server.ClientOrigin,
				JWTSecret:    cfg.Server.JWTSecret,
				SessionTTL:   cfg.Server.SessionTTL.Duration,
				TopK:         cfg.Solver.TopK,
			})
			log.Info().Str("port", cfg.Server.Port).Msg("starting solver server")
			return srv.Start(cmd.Context(), ":"+cfg.Server.Port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}
