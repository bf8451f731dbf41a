package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"worksbill/internal/config"
	"worksbill/internal/repository/postgres"
	"worksbill/internal/service"
	s3storage "worksbill/internal/storage/s3"
)

func backupCmd() *cobra.Command {
	newService := func(cmd *cobra.Command) (service.BackupService, func(), error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.S3.Bucket == "" {
			return nil, nil, errors.New("WORKSBILL_S3_BUCKET is not set")
		}
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store, err := s3storage.NewBackupStore(cmd.Context(), &cfg.S3)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		svc := service.NewBackupService(postgres.NewSnapshotRepo(db), store, cfg.S3.Bucket, cfg.Backup.Prefix)
		return svc, func() { db.Close() }, nil
	}

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot contractors, works, budgets and bills to S3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, done, err := newService(cmd)
			if err != nil {
				return err
			}
			defer done()

			res, err := svc.Create(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("backup written to %s\n", res.Location)
			fmt.Printf("contractors: %d, works: %d, budgets: %d, bills: %d\n",
				res.Contractors, res.Works, res.Budgets, res.Bills)
			if res.DownloadURL != "" {
				fmt.Printf("download (1h): %s\n", res.DownloadURL)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <key>",
		Short: "Delete a backup object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := newService(cmd)
			if err != nil {
				return err
			}
			defer done()

			if err := svc.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	})
	return cmd
}
