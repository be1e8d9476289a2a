package cli

import (
	"newsdesk-service/internal/platform/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and indexes if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := st.cfg.RequireDSN(); err != nil {
				return err
			}
			db, err := postgres.Open(ctx, st.cfg.Postgres)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			st.log.Info().Msg("schema applied")
			return nil
		},
	}
}
