// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command fyyurctl manages the Fyyur database schema.
//
//	fyyurctl migrate up
//	fyyurctl migrate down 1
//	fyyurctl migrate version
//
// DATABASE_URL and MIGRATION_PATH are read from the environment and may be
// overridden with --database-url and --path.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/taibuivan/fyyur/internal/platform/migration"
)

type migrateConfig struct {
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", "fyyurctl"))

	root := newRootCmd(logger)
	root.SilenceErrors = true
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "fyyurctl",
		Short: "Fyyur administration tool",
	}
	root.AddCommand(newMigrateCmd(logger))
	return root
}

func newMigrateCmd(logger *slog.Logger) *cobra.Command {
	cfg := &migrateConfig{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			databaseURL, path := cfg.DatabaseURL, cfg.MigrationPath
			if err := env.Parse(cfg); err != nil {
				return fmt.Errorf("parse environment: %w", err)
			}
			// Flags win over the environment.
			if cmd.Flags().Changed("database-url") {
				cfg.DatabaseURL = databaseURL
			}
			if cmd.Flags().Changed("path") {
				cfg.MigrationPath = path
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("no database: set DATABASE_URL or --database-url")
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.DatabaseURL, "database-url", "", "PostgreSQL connection string")
	cmd.PersistentFlags().StringVar(&cfg.MigrationPath, "path", "", "Directory holding the SQL migrations")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger)
			},
		},
		&cobra.Command{
			Use:   "down STEPS",
			Short: "Roll back the given number of migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps, err := parseSteps(args[0])
				if err != nil {
					return err
				}
				return migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, steps, logger)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				version, dirty, err := migration.Version(cfg.DatabaseURL, cfg.MigrationPath, logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
				return nil
			},
		},
	)

	return cmd
}

func parseSteps(raw string) (int, error) {
	steps, err := strconv.Atoi(raw)
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("steps must be a positive integer, got %q", raw)
	}
	return steps, nil
}
