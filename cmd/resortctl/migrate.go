package main

import (
	"fmt"

	"resort-engine/internal/handler/middleware"
	"resort-engine/internal/infra/db"
	"resort-engine/internal/pkg/config"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations with atlas",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.DB.MigrationsDir = dir
			}
			logger := middleware.NewLogger(cfg.Log)

			applied, err := db.Migrate(cmd.Context(), cfg.DB, logger)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(map[string]int{"applied": applied})
			}
			fmt.Printf("applied %d migration(s)\n", applied)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Migration directory URL (defaults to DB_MIGRATIONS_DIR)")
	return cmd
}
