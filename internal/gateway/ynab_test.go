package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"splitnab/internal/domain"
)

func newTestYnabGateway(srv *httptest.Server) *YnabGateway {
	return &YnabGateway{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
		token:      "test-token",
	}
}

func TestYnabGateway_GetBudgets(t *testing.T) {
	budgetID := uuid.New()
	accountID := uuid.New()

	tests := []struct {
		name     string
		response string
		want     []domain.Budget
	}{
		{
			name: "budgets with nested accounts",
			response: `{"data":{"budgets":[
				{"id":"` + budgetID.String() + `","name":"budgetName",
				 "accounts":[{"id":"` + accountID.String() + `","name":"Splitwise","type":"checking","on_budget":true}]}
			]}}`,
			want: []domain.Budget{
				{
					ID:   budgetID,
					Name: "budgetName",
					Accounts: []domain.Account{
						{ID: accountID, Name: "Splitwise", Type: "checking", OnBudget: true},
					},
				},
			},
		},
		{
			name:     "budgets key missing",
			response: `{"data":{}}`,
			want:     nil,
		},
		{
			name:     "data key missing",
			response: `{}`,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/budgets", r.URL.Path)
				assert.Equal(t, "true", r.URL.Query().Get("include_accounts"))
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			got, err := newTestYnabGateway(srv).GetBudgets(context.Background(), true)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYnabGateway_GetBudgetAccounts(t *testing.T) {
	budgetID := uuid.New()
	accountID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/budgets/"+budgetID.String()+"/accounts", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"accounts":[
			{"id":"` + accountID.String() + `","name":"Splitwise","type":"checking","on_budget":true,"closed":false}
		]}}`))
	}))
	defer srv.Close()

	got, err := newTestYnabGateway(srv).GetBudgetAccounts(context.Background(), budgetID)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Account{
		{ID: accountID, Name: "Splitwise", Type: "checking", OnBudget: true},
	}, got)
}

func TestYnabGateway_PostTransactions(t *testing.T) {
	budgetID := uuid.New()
	accountID := uuid.New()
	transactions := []domain.Transaction{
		{
			AccountID: accountID,
			Date:      "2025-03-02",
			Amount:    61725000,
			PayeeName: "friendName",
			Memo:      "expensive",
			Approved:  false,
		},
		{
			AccountID: accountID,
			Date:      "2025-02-14",
			Amount:    -25000,
			PayeeName: "friendName",
			Memo:      "groceries",
			Approved:  false,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/budgets/"+budgetID.String()+"/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Transactions []domain.Transaction `json:"transactions"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, transactions, body.Transactions)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"transaction_ids":["t1","t2"]}}`))
	}))
	defer srv.Close()

	saved, err := newTestYnabGateway(srv).PostTransactions(context.Background(), budgetID, transactions)

	assert.NoError(t, err)
	assert.Equal(t, 2, saved)
}

func TestYnabGateway_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	g := newTestYnabGateway(srv)

	_, err := g.GetBudgets(context.Background(), true)
	assert.ErrorContains(t, err, "status 403")

	_, err = g.PostTransactions(context.Background(), uuid.New(), nil)
	assert.ErrorContains(t, err, "status 403")
}
