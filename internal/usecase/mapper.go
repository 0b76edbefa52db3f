package usecase

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitnab/internal/domain"
)

// creationMethodPayment marks a Splitwise settlement between two parties
// rather than a shared cost split.
const creationMethodPayment = "payment"

var (
	two      = decimal.NewFromInt(2)
	thousand = decimal.NewFromInt(1000)
)

// ExpenseMapper converts resolved Splitwise expenses into YNAB transactions.
type ExpenseMapper struct {
	logger *slog.Logger
}

// NewExpenseMapper creates a new mapper instance.
func NewExpenseMapper(logger *slog.Logger) *ExpenseMapper {
	return &ExpenseMapper{logger: logger}
}

// Map produces one transaction per expense, preserving the input order.
func (m *ExpenseMapper) Map(info *domain.SplitwiseInfo, accountID uuid.UUID) []domain.Transaction {
	transactions := make([]domain.Transaction, 0, len(info.Expenses))
	for _, expense := range info.Expenses {
		transactions = append(transactions, domain.Transaction{
			AccountID: accountID,
			Date:      expense.Date.Format(time.DateOnly),
			Amount:    m.Amount(expense, info.CurrentUser.ID),
			PayeeName: payeeName(info.Friend),
			Memo:      expense.Description,
			Approved:  false,
		})
	}
	return transactions
}

// Amount computes the signed transaction amount in milli-units.
//
// Settlement payments carry the full cost; anything else is assumed to be an
// equal two-way split and halved. The sign follows who is charged: positive
// when the current user owes, negative when the current user is owed (the
// first repayment's "from" party is the one owing).
//
// An expense with no repayments is malformed historical data; it maps to
// amount 0 with a warning instead of failing the whole run.
func (m *ExpenseMapper) Amount(expense domain.Expense, currentUserID int64) int64 {
	if len(expense.Repayments) == 0 {
		m.logger.Warn("malformed Splitwise expense, setting cost to 0",
			"description", expense.Description, "date", expense.Date)
		return 0
	}

	cost, err := decimal.NewFromString(expense.Cost)
	if err != nil {
		m.logger.Warn("unparseable Splitwise expense cost, setting cost to 0",
			"cost", expense.Cost, "description", expense.Description, "date", expense.Date)
		return 0
	}

	if expense.CreationMethod != creationMethodPayment {
		cost = cost.Div(two)
	}

	if expense.Repayments[0].From == currentUserID {
		cost = cost.Neg()
	}

	return cost.Mul(thousand).Round(0).IntPart()
}

// payeeName joins the friend's first and last names, skipping blank parts.
func payeeName(friend domain.Friend) string {
	var parts []string
	for _, part := range []string{friend.FirstName, friend.LastName} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
