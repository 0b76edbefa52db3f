package domain

import "github.com/google/uuid"

// Budget is a YNAB budget summary. Accounts is only populated when budgets
// were fetched with include_accounts=true.
type Budget struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Accounts []Account `json:"accounts"`
}

// Account is a single account within a YNAB budget.
type Account struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	OnBudget bool      `json:"on_budget"`
	Closed   bool      `json:"closed"`
	Deleted  bool      `json:"deleted"`
}

// Transaction is a YNAB transaction to be created. Amount is in milli-units
// (1/1000 of a currency unit); Date is an ISO date (YYYY-MM-DD).
type Transaction struct {
	AccountID uuid.UUID `json:"account_id"`
	Date      string    `json:"date"`
	Amount    int64     `json:"amount"`
	PayeeName string    `json:"payee_name"`
	Memo      string    `json:"memo"`
	Approved  bool      `json:"approved"`
}

// YnabInfo bundles everything resolved from YNAB for one run.
type YnabInfo struct {
	Budget  Budget
	Account Account
}
