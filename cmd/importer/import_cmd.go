package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"assignment-admin-backend/internal/config"
	"assignment-admin-backend/internal/database"
	"assignment-admin-backend/internal/ingest"
	"assignment-admin-backend/internal/logger"
	"assignment-admin-backend/internal/repository"
	"assignment-admin-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

type importOutput struct {
	Command    string `json:"command"`
	File       string `json:"file"`
	DurationMS int64  `json:"duration_ms"`
	Imported   int    `json:"imported"`
	Message    string `json:"message"`
}

func newImportCmd(use, short string, kind ingest.Kind) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Setup(cfg.LogLevel)

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open --file: %w", err)
			}
			defer f.Close()

			db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: gormlogger.Silent})
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}

			svc := service.NewImportService(
				repository.NewEmployeeRepository(db),
				repository.NewUserRepository(db),
				repository.NewOrganizationDetailRepository(db),
				service.ImportOptions{
					MaxUploadBytes: cfg.ImportMaxUploadBytes,
					BcryptCost:     cfg.BcryptCost,
				},
			)

			// Runs from the CLI are tagged like HTTP requests so log lines can be correlated.
			ctx := context.WithValue(cmd.Context(), logger.RequestIDKey, uuid.NewString())

			start := time.Now()
			res, err := svc.Import(ctx, kind, filepath.Base(file), f)
			if err != nil {
				return err
			}

			return writeJSON(importOutput{
				Command:    "import " + use,
				File:       file,
				DurationMS: time.Since(start).Milliseconds(),
				Imported:   res.Imported,
				Message:    res.Message,
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the CSV file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
