package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"docreview/internal/config"
	"docreview/internal/handler"
	"docreview/internal/port"
	"docreview/internal/review"
	"docreview/internal/router"
	"docreview/internal/service"
	s3storage "docreview/internal/storage/s3"
)

func main() {
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

	// Initialize storage. Uploads are optional; without a bucket the
	// export endpoints still serve downloads.
	var storage port.ObjectStorage
	if cfg.S3.Enabled() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	} else {
		log.Print("no S3 bucket configured, uploads disabled")
	}

	// Initialize services
	sessions := review.NewManager()
	reviewSvc := service.NewReviewService(sessions)
	exportSvc := service.NewExportService(sessions, storage, cfg)

	// Initialize handlers
	sessionH := handler.NewSessionHandler(reviewSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(sessionH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
