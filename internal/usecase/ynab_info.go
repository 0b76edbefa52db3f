package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"splitnab/internal/config"
	"splitnab/internal/domain"
)

// YnabResolver resolves the configured budget and the Splitwise account
// within it from YNAB.
type YnabResolver struct {
	logger *slog.Logger
	client YnabClient
}

// NewYnabResolver creates a new resolver instance.
func NewYnabResolver(logger *slog.Logger, client YnabClient) *YnabResolver {
	return &YnabResolver{logger: logger, client: client}
}

// Resolve fetches {budget, account}. Budget selection takes the first name
// match; account selection must be unambiguous, so zero matches and multiple
// matches both fail (distinguishable via errors.Is against the wrapped tag).
func (r *YnabResolver) Resolve(ctx context.Context, cfg *config.Config) (*domain.YnabInfo, error) {
	budgets, err := r.client.GetBudgets(ctx, true)
	if err != nil {
		return nil, err
	}
	if budgets == nil {
		r.logger.Warn("unable to fetch YNAB budgets")
		return nil, ErrNoBudgets
	}

	budget, ok := findFirst(budgets, func(b domain.Budget) bool {
		return b.Name == cfg.Ynab.BudgetName
	})
	if !ok {
		r.logger.Warn("unable to find YNAB budget", "budgetName", cfg.Ynab.BudgetName)
		return nil, ErrBudgetNotFound
	}

	accounts, err := r.client.GetBudgetAccounts(ctx, budget.ID)
	if err != nil {
		return nil, err
	}

	account, err := findUnique(accounts, func(a domain.Account) bool {
		return a.Name == cfg.Ynab.SplitwiseAccountName
	})
	if err != nil {
		r.logger.Warn("unable to find YNAB splitwise account",
			"splitwiseAccountName", cfg.Ynab.SplitwiseAccountName,
			"budgetName", cfg.Ynab.BudgetName,
			"reason", err)
		return nil, fmt.Errorf("%w %q in budget %q: %w",
			ErrAccountNotFound, cfg.Ynab.SplitwiseAccountName, cfg.Ynab.BudgetName, err)
	}

	return &domain.YnabInfo{Budget: budget, Account: account}, nil
}
