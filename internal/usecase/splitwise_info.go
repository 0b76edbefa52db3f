package usecase

import (
	"context"
	"log/slog"

	"splitnab/internal/config"
	"splitnab/internal/domain"
)

// SplitwiseResolver resolves the current user, the configured friend and that
// friend's expenses from Splitwise. Each step is a potential terminal failure
// for the run; later steps are never attempted after an earlier one fails.
type SplitwiseResolver struct {
	logger *slog.Logger
	client SplitwiseClient
}

// NewSplitwiseResolver creates a new resolver instance.
func NewSplitwiseResolver(logger *slog.Logger, client SplitwiseClient) *SplitwiseResolver {
	return &SplitwiseResolver{logger: logger, client: client}
}

// Resolve fetches {current user, friend, expenses} for the configured friend
// email and checkpoint date. An empty (but present) expense list is a valid
// outcome and yields a run with zero transactions.
func (r *SplitwiseResolver) Resolve(ctx context.Context, cfg *config.Config) (*domain.SplitwiseInfo, error) {
	currentUser, err := r.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if currentUser == nil {
		r.logger.Warn("unable to fetch the current Splitwise user")
		return nil, ErrNoCurrentUser
	}

	friends, err := r.client.GetFriends(ctx)
	if err != nil {
		return nil, err
	}
	if friends == nil {
		r.logger.Warn("unable to fetch current user's Splitwise friends list")
		return nil, ErrNoFriendsList
	}

	// Email match is case-sensitive; first match wins on duplicates.
	friend, ok := findFirst(friends, func(f domain.Friend) bool {
		return f.Email == cfg.Splitwise.FriendEmail
	})
	if !ok {
		r.logger.Warn("unable to find the specified Splitwise friend",
			"friendEmail", cfg.Splitwise.FriendEmail)
		return nil, ErrFriendNotFound
	}

	expenses, err := r.client.GetExpenses(ctx, friend.ID, cfg.Splitwise.TransactionsDatedAfter, 0)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		r.logger.Warn("no Splitwise expenses found for the specified user and date range",
			"friendEmail", cfg.Splitwise.FriendEmail,
			"datedAfter", cfg.Splitwise.TransactionsDatedAfter)
		return nil, ErrNoExpensesFound
	}

	return &domain.SplitwiseInfo{
		CurrentUser: *currentUser,
		Friend:      friend,
		Expenses:    expenses,
	}, nil
}
