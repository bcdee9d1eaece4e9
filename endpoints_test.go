package splitwise

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointTable(t *testing.T) {
	client := New("consumer-key", "consumer-secret")

	testCases := []struct {
		endpoint endpoint
		id       []int64
		wantURL  string
		method   string
	}{
		{requestTokenEndpoint, nil, "https://secure.splitwise.com/api/v3.0/get_request_token", http.MethodPost},
		{accessTokenEndpoint, nil, "https://secure.splitwise.com/api/v3.0/get_access_token", http.MethodPost},
		{currentUserEndpoint, nil, "https://secure.splitwise.com/api/v3.0/get_current_user", http.MethodGet},
		{userEndpoint, []int64{7}, "https://secure.splitwise.com/api/v3.0/get_user/7", http.MethodGet},
		{friendsEndpoint, nil, "https://secure.splitwise.com/api/v3.0/get_friends", http.MethodGet},
		{groupsEndpoint, nil, "https://secure.splitwise.com/api/v3.0/get_groups", http.MethodGet},
		{groupEndpoint, []int64{3}, "https://secure.splitwise.com/api/v3.0/get_group/3", http.MethodGet},
		{currenciesEndpoint, nil, "https://secure.splitwise.com/api/v3.0/get_currencies", http.MethodGet},
		{categoriesEndpoint, nil, "https://secure.splitwise.com/api/v3.0/get_categories", http.MethodGet},
		{expensesEndpoint, nil, "https://secure.splitwise.com/api/v3.0/get_expenses", http.MethodGet},
		{expenseEndpoint, []int64{42}, "https://secure.splitwise.com/api/v3.0/get_expense/42", http.MethodGet},
		{createExpenseEndpoint, nil, "https://secure.splitwise.com/api/v3.0/create_expense", http.MethodPost},
		{createGroupEndpoint, nil, "https://secure.splitwise.com/api/v3.0/create_group", http.MethodPost},
		{deleteGroupEndpoint, []int64{3}, "https://secure.splitwise.com/api/v3.0/delete_group/3", http.MethodGet},
	}
	for _, tc := range testCases {
		t.Run(tc.endpoint.Path, func(t *testing.T) {
			assert.Equal(t, tc.wantURL, client.endpointURL(tc.endpoint, tc.id...))
			assert.Equal(t, tc.method, tc.endpoint.Method)
		})
	}
}
