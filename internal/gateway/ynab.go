package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"splitnab/internal/domain"
)

const ynabBaseURL = "https://api.youneedabudget.com/v1"

// YnabGateway implements the usecase.YnabClient interface against the YNAB
// REST API using a personal access token.
type YnabGateway struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewYnabGateway creates a gateway pointed at the public YNAB API.
func NewYnabGateway(personalAccessToken string) *YnabGateway {
	return &YnabGateway{
		baseURL:    ynabBaseURL,
		httpClient: http.DefaultClient,
		token:      personalAccessToken,
	}
}

type budgetsResponse struct {
	Data *struct {
		Budgets []domain.Budget `json:"budgets"`
	} `json:"data"`
}

type accountsResponse struct {
	Data *struct {
		Accounts []domain.Account `json:"accounts"`
	} `json:"data"`
}

type saveTransactionsRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type saveTransactionsResponse struct {
	Data struct {
		TransactionIDs []string `json:"transaction_ids"`
	} `json:"data"`
}

// GetBudgets returns the user's budgets. With includeAccounts each budget
// carries its nested account list. A response without a budgets list yields
// nil, which resolution treats as a failure.
func (g *YnabGateway) GetBudgets(ctx context.Context, includeAccounts bool) ([]domain.Budget, error) {
	query := url.Values{}
	query.Set("include_accounts", strconv.FormatBool(includeAccounts))

	var out budgetsResponse
	if err := g.do(ctx, http.MethodGet, "/budgets", query, nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, nil
	}
	return out.Data.Budgets, nil
}

// GetBudgetAccounts returns all accounts of the given budget.
func (g *YnabGateway) GetBudgetAccounts(ctx context.Context, budgetID uuid.UUID) ([]domain.Account, error) {
	var out accountsResponse
	if err := g.do(ctx, http.MethodGet, "/budgets/"+budgetID.String()+"/accounts", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, nil
	}
	return out.Data.Accounts, nil
}

// PostTransactions creates the whole batch in one call and returns the number
// of transactions YNAB reports as saved.
func (g *YnabGateway) PostTransactions(ctx context.Context, budgetID uuid.UUID, transactions []domain.Transaction) (int, error) {
	body := saveTransactionsRequest{Transactions: transactions}

	var out saveTransactionsResponse
	if err := g.do(ctx, http.MethodPost, "/budgets/"+budgetID.String()+"/transactions", nil, &body, &out); err != nil {
		return 0, err
	}
	return len(out.Data.TransactionIDs), nil
}

func (g *YnabGateway) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := g.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to serialize ynab request body for %s: %w", path, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build ynab request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ynab request for %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ynab request for %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode ynab response for %s: %w", path, err)
	}
	return nil
}
