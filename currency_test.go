package splitwise

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masa-finance/go-splitwise/types"
)

func TestGetCurrencies(t *testing.T) {
	_, client := mockSplitwiseServer(t, respondJSON(http.StatusOK, `{"currencies": [{"currency_code": "USD", "unit": "$"}, {"currency_code": "EUR", "unit": "€"}]}`))

	currencies, err := client.GetCurrencies(context.Background())
	require.NoError(t, err)

	want := []types.Currency{{CurrencyCode: "USD", Unit: "$"}, {CurrencyCode: "EUR", Unit: "€"}}
	if diff := cmp.Diff(want, currencies); diff != "" {
		t.Error("unexpected currencies", diff)
	}
}

func TestGetCategories(t *testing.T) {
	_, client := mockSplitwiseServer(t, respondJSON(http.StatusOK, `{"categories": [
		{"id": 1, "name": "Utilities", "subcategories": [{"id": 48, "name": "Cleaning"}, {"id": 5, "name": "Electricity"}]}
	]}`))

	categories, err := client.GetCategories(context.Background())
	require.NoError(t, err)

	want := []types.Category{{
		ID:   1,
		Name: "Utilities",
		Subcategories: []types.Category{
			{ID: 48, Name: "Cleaning"},
			{ID: 5, Name: "Electricity"},
		},
	}}
	if diff := cmp.Diff(want, categories); diff != "" {
		t.Error("unexpected categories", diff)
	}
}

func TestCollectionsTolerateMissingKeys(t *testing.T) {
	_, client := mockSplitwiseServer(t, respondJSON(http.StatusOK, `{}`))
	ctx := context.Background()

	currencies, err := client.GetCurrencies(ctx)
	require.NoError(t, err)
	assert.Empty(t, currencies)

	categories, err := client.GetCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	groups, err := client.GetGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
