package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"tool-rental-checkout/internal/cli"
	"tool-rental-checkout/internal/config"
	"tool-rental-checkout/internal/domain"
	"tool-rental-checkout/internal/logger"
	"tool-rental-checkout/internal/pricing"
	"tool-rental-checkout/internal/report"
	"tool-rental-checkout/internal/repository/memory"
	"tool-rental-checkout/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	envPath := flag.String("env", ".env", "Path to dotenv file, ignored when missing")
	toolCode := flag.String("tool", "", "Tool code; when set, check out once and exit")
	rentalDays := flag.String("days", "", "Rental days (one-shot mode)")
	checkoutDate := flag.String("date", "", "Checkout date, MM/DD/YYYY or YYYY-MM-DD (one-shot mode)")
	discount := flag.String("discount", "0", "Discount percent (one-shot mode)")
	flag.Parse()

	if err := config.LoadEnvFile(*envPath); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Debug("Starting tool rental checkout", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)

	// Initialize catalog
	store := memory.NewDefaultStore()
	if cfg.Catalog.IsSet() {
		store, err = memory.NewStore(cfg.Catalog.Tools, cfg.Catalog.Categories)
		if err != nil {
			logger.Error("Invalid catalog configuration", "error", err)
			log.Fatalf("Invalid catalog configuration: %v", err)
		}
		logger.Info("Using configured catalog", "tools", len(cfg.Catalog.Tools), "categories", len(cfg.Catalog.Categories))
	}

	formatter, err := report.NewFormatter(cfg.Report.Locale, cfg.Report.CurrencySymbol, cfg.Report.DateLayout)
	if err != nil {
		log.Fatalf("Failed to initialize report formatter: %v", err)
	}

	checkoutSvc := service.NewCheckoutService(
		store.ToolRepository,
		store.CategoryPolicyRepository,
		pricing.DefaultCalendar(),
	)

	ctx := context.Background()

	session := cli.NewSession(checkoutSvc, formatter, os.Stdin, os.Stdout)

	if *toolCode != "" {
		req, err := cli.ParseRequest(*toolCode, *rentalDays, *checkoutDate, *discount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if err := session.RunOnce(ctx, req); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if errors.Is(err, domain.ErrInvalidArgument) {
				os.Exit(2)
			}
			os.Exit(1)
		}
		return
	}

	if err := session.Run(ctx); err != nil {
		logger.Error("Session ended with error", "error", err)
		os.Exit(1)
	}
}
