package cli

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/storefront-backend/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()
		return app.Migrate(log, app.LoadConfig(log))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
