package cli

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/storefront-backend/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		log.Info("Loading environment variables...")
		cfg := app.LoadConfig(log)
		if cfg.Version == "dev" {
			cfg.Version = version
			cfg.Otel.Version = version
		}

		ctx, cancel := withSignals(cmd.Context())
		defer cancel()

		a, err := app.New(ctx, log, cfg)
		if err != nil {
			log.Error("Failed to initialize app", "error", err)
			return err
		}
		defer a.Close()

		return a.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
