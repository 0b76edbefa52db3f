package usecase

import "errors"

// Resolution failures. Each one aborts the run; none of them crash the
// process. The diagnostic logged alongside names the configuration section
// to check.
var (
	ErrNoCurrentUser   = errors.New("unable to fetch the current Splitwise user")
	ErrNoFriendsList   = errors.New("unable to fetch current user's Splitwise friends list")
	ErrFriendNotFound  = errors.New("unable to find the specified Splitwise friend")
	ErrNoExpensesFound = errors.New("no Splitwise expenses found for the specified user and date range")
	ErrNoBudgets       = errors.New("unable to fetch YNAB budgets")
	ErrBudgetNotFound  = errors.New("unable to find YNAB budget")
	ErrAccountNotFound = errors.New("unable to find YNAB splitwise account")
)
