// Package migrate implements the schema migration commands.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"curator/internal/infrastructure/config"
	"curator/internal/infrastructure/database"
	"curator/internal/infrastructure/migration"
	"curator/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	var scriptsPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	cmd.PersistentFlags().StringVar(&scriptsPath, "scripts", migration.DefaultScriptsPath, "path to migration scripts")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(runner *migration.Runner) error {
					return runner.Up(database.Get())
				}, scriptsPath)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(runner *migration.Runner) error {
					return runner.Down(database.Get())
				}, scriptsPath)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the current schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(runner *migration.Runner) error {
					version, dirty, err := runner.Version(database.Get())
					if err != nil {
						return err
					}
					fmt.Printf("version: %d dirty: %t\n", version, dirty)
					return nil
				}, scriptsPath)
			},
		},
	)

	return cmd
}

func withDatabase(fn func(*migration.Runner) error, scriptsPath string) error {
	cfg, err := config.Load("default")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer database.Close()

	return fn(migration.NewRunner(scriptsPath))
}
