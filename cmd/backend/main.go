// cmd/backend/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront/internal/backend"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg)
	logger.Infof("Starting %s backend v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	server := backend.NewServer(cfg, logger)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logger.Info("Server shutdown completed")
}
