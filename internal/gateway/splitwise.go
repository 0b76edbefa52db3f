package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"splitnab/internal/domain"
)

const (
	splitwiseBaseURL = "https://secure.splitwise.com"
	splitwiseAPIPath = "/api/v3.0"
)

// SplitwiseGateway implements the usecase.SplitwiseClient interface against
// the Splitwise REST API.
type SplitwiseGateway struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewSplitwiseGateway creates a gateway pointed at the public Splitwise API.
// Authenticate must be called before any other method.
func NewSplitwiseGateway() *SplitwiseGateway {
	return &SplitwiseGateway{
		baseURL:    splitwiseBaseURL,
		httpClient: http.DefaultClient,
	}
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type currentUserResponse struct {
	User *domain.User `json:"user"`
}

type friendsResponse struct {
	Friends []domain.Friend `json:"friends"`
}

type expensesResponse struct {
	Expenses []domain.Expense `json:"expenses"`
}

// Authenticate obtains an OAuth access token via the client_credentials grant
// and stores it for subsequent requests.
func (g *SplitwiseGateway) Authenticate(ctx context.Context, consumerKey, consumerSecret string) error {
	form := url.Values{}
	form.Set("client_id", consumerKey)
	form.Set("client_secret", consumerSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build splitwise token request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("splitwise token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("splitwise token request returned status %d", resp.StatusCode)
	}

	var token accessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return fmt.Errorf("failed to decode splitwise token response: %w", err)
	}

	g.token = token.AccessToken
	return nil
}

// GetCurrentUser returns the authenticated user, or nil when the response
// carries no user.
func (g *SplitwiseGateway) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	var out currentUserResponse
	if err := g.get(ctx, "/get_current_user", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// GetFriends returns the current user's friends list. A response without a
// friends key yields nil, which resolution treats as a failure.
func (g *SplitwiseGateway) GetFriends(ctx context.Context) ([]domain.Friend, error) {
	var out friendsResponse
	if err := g.get(ctx, "/get_friends", nil, &out); err != nil {
		return nil, err
	}
	return out.Friends, nil
}

// GetExpenses returns expenses shared with friendID dated after datedAfter,
// in reverse chronological order. limit 0 requests all expenses rather than
// the server's default page size. A response without an expenses key yields
// nil; a present-but-empty list yields an empty non-nil slice.
func (g *SplitwiseGateway) GetExpenses(ctx context.Context, friendID int64, datedAfter time.Time, limit int) ([]domain.Expense, error) {
	query := url.Values{}
	query.Set("friend_id", strconv.FormatInt(friendID, 10))
	query.Set("dated_after", datedAfter.Format(time.RFC3339))
	query.Set("limit", strconv.Itoa(limit))

	var out expensesResponse
	if err := g.get(ctx, "/get_expenses", query, &out); err != nil {
		return nil, err
	}
	return out.Expenses, nil
}

func (g *SplitwiseGateway) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := g.baseURL + splitwiseAPIPath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build splitwise request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("splitwise request for %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("splitwise request for %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode splitwise response for %s: %w", path, err)
	}
	return nil
}
