package domain

import "time"

// User is the authenticated Splitwise user.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Friend is one entry of the current user's Splitwise friends list.
type Friend struct {
	ID                 int64     `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Email              string    `json:"email"`
	RegistrationStatus string    `json:"registration_status"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Repayment records who owes whom within an expense.
type Repayment struct {
	From   int64  `json:"from"`
	To     int64  `json:"to"`
	Amount string `json:"amount"`
}

// Expense is a shared Splitwise expense. Cost is a decimal string as returned
// by the API. Repayments may be empty on malformed or historical records.
type Expense struct {
	ID             int64       `json:"id"`
	Description    string      `json:"description"`
	Payment        bool        `json:"payment"`
	CreationMethod string      `json:"creation_method"`
	Cost           string      `json:"cost"`
	CurrencyCode   string      `json:"currency_code"`
	Repayments     []Repayment `json:"repayments"`
	Date           time.Time   `json:"date"`
	CreatedAt      time.Time   `json:"created_at"`
}

// SplitwiseInfo bundles everything resolved from Splitwise for one run.
type SplitwiseInfo struct {
	CurrentUser User
	Friend      Friend
	Expenses    []Expense
}
