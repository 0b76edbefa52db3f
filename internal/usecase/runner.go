package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"splitnab/internal/config"
	"splitnab/internal/domain"
)

// Runner orchestrates one reconciliation run: resolve Splitwise, resolve
// YNAB, map expenses to transactions, then either log them (dry run) or post
// them as a single batch.
type Runner struct {
	logger     *slog.Logger
	splitwise  SplitwiseInfoResolver
	ynab       YnabInfoResolver
	ynabClient YnabClient
	mapper     *ExpenseMapper
}

// NewRunner creates a new runner with its collaborators injected.
func NewRunner(logger *slog.Logger, splitwise SplitwiseInfoResolver, ynab YnabInfoResolver, ynabClient YnabClient) *Runner {
	return &Runner{
		logger:     logger,
		splitwise:  splitwise,
		ynab:       ynab,
		ynabClient: ynabClient,
		mapper:     NewExpenseMapper(logger),
	}
}

// Run executes the pipeline and returns the mapped transactions. Any
// resolution failure is fatal for the run: YNAB is never touched when
// Splitwise resolution fails, and no partial batch is ever posted. The
// commit call happens at most once per run.
func (r *Runner) Run(ctx context.Context, cfg *config.Config, dryRun bool) ([]domain.Transaction, error) {
	swInfo, err := r.splitwise.Resolve(ctx, cfg)
	if err != nil {
		r.logger.Error("unable to fetch required Splitwise information")
		r.logger.Info("verify that the splitwise section of the config file is configured correctly")
		return nil, fmt.Errorf("splitwise resolution failed: %w", err)
	}

	ynabInfo, err := r.ynab.Resolve(ctx, cfg)
	if err != nil {
		r.logger.Error("unable to fetch required YNAB information")
		r.logger.Info("verify that the ynab section of the config file is configured correctly")
		return nil, fmt.Errorf("ynab resolution failed: %w", err)
	}

	transactions := r.mapper.Map(swInfo, ynabInfo.Account.ID)

	if dryRun {
		for _, tx := range transactions {
			r.logger.Info("would save transaction",
				"date", tx.Date,
				"amount", tx.Amount,
				"payee", tx.PayeeName,
				"memo", tx.Memo)
		}
		r.logger.Info("dry run completed successfully, no transactions have been imported; " +
			"to save transactions run without the -dry-run flag")
		return transactions, nil
	}

	saved, err := r.ynabClient.PostTransactions(ctx, ynabInfo.Budget.ID, transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to save transactions to YNAB: %w", err)
	}
	r.logger.Info("successfully saved transactions from Splitwise to YNAB",
		"saved", saved,
		"budget", cfg.Ynab.BudgetName,
		"account", cfg.Ynab.SplitwiseAccountName)

	return transactions, nil
}
