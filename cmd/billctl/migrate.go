package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"worksbill/internal/config"
)

func migrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert database migrations",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "db/migrations", "migrations directory")

	open := func() (*migrate.Migrate, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		m, err := migrate.New("file://"+dir, cfg.DB.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return m, nil
	}

	run := func(name string, step func(m *migrate.Migrate) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, _ []string) error {
			m, err := open()
			if err != nil {
				return err
			}
			defer m.Close()
			if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration %s failed: %w", name, err)
			}
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: run("up", func(m *migrate.Migrate) error {
				if err := m.Up(); err != nil {
					return err
				}
				log.Println("migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert all migrations",
			RunE: run("down", func(m *migrate.Migrate) error {
				if err := m.Down(); err != nil {
					return err
				}
				log.Println("migrations reverted successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Apply (N > 0) or revert (N < 0) N migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid steps argument: %w", err)
				}
				return run("steps", func(m *migrate.Migrate) error {
					if err := m.Steps(n); err != nil {
						return err
					}
					log.Printf("applied %d migration steps", n)
					return nil
				})(cmd, args)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: run("version", func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Printf("version: %d, dirty: %v\n", version, dirty)
				return nil
			}),
		},
	)
	return cmd
}
