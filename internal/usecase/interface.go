package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"splitnab/internal/config"
	"splitnab/internal/domain"
)

// SplitwiseClient defines the Splitwise API surface the usecase layer depends
// on. Authentication is configured on the concrete client by the caller before
// any of these methods are invoked.
//
// List-returning methods distinguish a missing list (nil, the response had no
// such key) from a present-but-empty one; resolution treats only the former
// as a failure.
//
//go:generate mockgen -destination=mocks/mock_clients.go -source=interface.go -package=mock_usecase
type SplitwiseClient interface {
	GetCurrentUser(ctx context.Context) (*domain.User, error)
	GetFriends(ctx context.Context) ([]domain.Friend, error)
	// GetExpenses returns the friend's expenses dated after datedAfter in
	// reverse chronological order. limit 0 requests all expenses.
	GetExpenses(ctx context.Context, friendID int64, datedAfter time.Time, limit int) ([]domain.Expense, error)
}

// YnabClient defines the YNAB API surface the usecase layer depends on.
type YnabClient interface {
	GetBudgets(ctx context.Context, includeAccounts bool) ([]domain.Budget, error)
	GetBudgetAccounts(ctx context.Context, budgetID uuid.UUID) ([]domain.Account, error)
	// PostTransactions creates the whole batch in a single call and returns
	// the number of transactions saved.
	PostTransactions(ctx context.Context, budgetID uuid.UUID, transactions []domain.Transaction) (int, error)
}

// SplitwiseInfoResolver resolves the Splitwise entities required for a run.
type SplitwiseInfoResolver interface {
	Resolve(ctx context.Context, cfg *config.Config) (*domain.SplitwiseInfo, error)
}

// YnabInfoResolver resolves the YNAB entities required for a run.
type YnabInfoResolver interface {
	Resolve(ctx context.Context, cfg *config.Config) (*domain.YnabInfo, error)
}
