package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"splitnab/internal/config"
	"splitnab/internal/gateway"
	"splitnab/internal/usecase"
	"splitnab/pkg/logging"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "appsettings.json", "Path to the configuration file")
	dryRun := flag.Bool("dry-run", false, "Compute and log transactions without saving them")
	flag.Parse()

	logging.Setup()
	logger := slog.Default()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// The checkpoint is advanced to the run start time, not the finish time,
	// so expenses created while the run is in flight are picked up next time.
	runStart := time.Now()

	// --- Dependency Injection (wiring the application) ---
	// Gateways are the outermost layer; authentication is configured here so
	// the resolvers only ever see ready-to-use clients.
	splitwiseGateway := gateway.NewSplitwiseGateway()
	if err := splitwiseGateway.Authenticate(ctx, cfg.Splitwise.ConsumerKey, cfg.Splitwise.ConsumerSecret); err != nil {
		logger.Error("failed to authenticate with Splitwise", "error", err)
		os.Exit(1)
	}
	ynabGateway := gateway.NewYnabGateway(cfg.Ynab.PersonalAccessToken)

	runner := usecase.NewRunner(
		logger,
		usecase.NewSplitwiseResolver(logger, splitwiseGateway),
		usecase.NewYnabResolver(logger, ynabGateway),
		ynabGateway,
	)

	if _, err := runner.Run(ctx, cfg, *dryRun); err != nil {
		logger.Error("reconciliation run failed", "error", err)
		os.Exit(1)
	}

	// Persist the new checkpoint only after a committed run; a dry run must
	// leave the configuration untouched.
	if !*dryRun {
		cfg.Splitwise.TransactionsDatedAfter = runStart
		if err := cfg.Save(*configFile); err != nil {
			logger.Error("failed to persist the new checkpoint date", "error", err)
			os.Exit(1)
		}
		logger.Info("advanced checkpoint date", "transactionsDatedAfter", runStart)
	}
}
