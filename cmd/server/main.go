package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alkime/paramctl/internal/config"
	"github.com/alkime/paramctl/internal/logger"
	"github.com/alkime/paramctl/internal/param"
	"github.com/alkime/paramctl/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logger := logger.SetupLogger(cfg, os.Stdout)

	bank := param.DemoBank(param.NopHost{})
	if cfg.BankPath != "" {
		bank, err = param.LoadBank(cfg.BankPath, param.NopHost{})
		if err != nil {
			logger.Error("Failed to load bank", "path", cfg.BankPath, "error", err)
			log.Fatalf("Fatal: %v", err)
		}
	}

	// Log startup information
	logger.Info("Starting paramctl server",
		"env", cfg.Env,
		"port", cfg.Port,
		"params", bank.Len(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, server.New(cfg, logger, bank)); err != nil {
		logger.Error("Server error", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
