package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"worksbill/internal/config"
	"worksbill/internal/handler"
	"worksbill/internal/repository/postgres"
	"worksbill/internal/router"
	"worksbill/internal/service"
	s3storage "worksbill/internal/storage/s3"
	"worksbill/internal/validator"
)

// @title Works Bill API
// @version 1.0
// @description Contractor bills, deductions, budget ceilings and reports for public works payments.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	contractorRepo := postgres.NewContractorRepo(db)
	workRepo := postgres.NewWorkRepo(db)
	budgetRepo := postgres.NewBudgetRepo(db)
	billRepo := postgres.NewBillRepo(db)
	reportRepo := postgres.NewReportRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize services
	contractorSvc := service.NewContractorService(contractorRepo)
	workSvc := service.NewWorkService(workRepo)
	budgetSvc := service.NewBudgetService(budgetRepo)
	billSvc := service.NewBillService(billRepo, contractorRepo, workRepo, budgetRepo, validator.NewBillEngine(), &cfg.Bill)
	reportSvc := service.NewReportService(reportRepo)
	statsSvc := service.NewStatsService(statsRepo)

	// Initialize handlers
	h := router.Handlers{
		Health:     handler.NewHealthHandler(db),
		Contractor: handler.NewContractorHandler(contractorSvc),
		Work:       handler.NewWorkHandler(workSvc),
		Budget:     handler.NewBudgetHandler(budgetSvc),
		Bill:       handler.NewBillHandler(billSvc),
		Report:     handler.NewReportHandler(reportSvc),
		Stats:      handler.NewStatsHandler(statsSvc),
	}

	if cfg.S3.Bucket != "" {
		store, err := s3storage.NewBackupStore(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize backup storage: %w", err)
		}
		backupSvc := service.NewBackupService(postgres.NewSnapshotRepo(db), store, cfg.S3.Bucket, cfg.Backup.Prefix)
		h.Backup = handler.NewBackupHandler(backupSvc)
	} else {
		log.Println("WORKSBILL_S3_BUCKET is empty, backup routes disabled")
	}

	r, err := router.Setup(h, cfg.CORS.AllowedOrigins)
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Println("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
	}
	return nil
}
