package cli

import (
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edgewave/hlsgate/config"
	"github.com/edgewave/hlsgate/logging"
	"github.com/edgewave/hlsgate/metrics"
	"github.com/edgewave/hlsgate/server"
	"github.com/edgewave/hlsgate/token"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HLS edge server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; the environment may be set directly.
			_ = godotenv.Load()

			cfg := config.Load()
			if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			auth := token.NewAuthorizer([]byte(cfg.SigningSecret))
			srv := server.New(cfg, auth, metrics.New())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info().Str("hls_root", cfg.HLSRoot).Msgf("Starting server on %s", cfg.Address)
			return srv.Run(ctx)
		},
	}
}
