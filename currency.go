package splitwise

import (
	"context"

	"github.com/masa-finance/go-splitwise/types"
)

// GetCurrencies returns the currencies the service supports.
func (c *Client) GetCurrencies(ctx context.Context) ([]types.Currency, error) {
	currencies := []types.Currency{}
	if err := c.list(ctx, currenciesEndpoint, "", "currencies", &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// GetCategories returns the expense categories with their subcategories.
func (c *Client) GetCategories(ctx context.Context) ([]types.Category, error) {
	categories := []types.Category{}
	if err := c.list(ctx, categoriesEndpoint, "", "categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// list calls a collection endpoint and decodes the payload under key into
// target. A missing key leaves target untouched.
func (c *Client) list(ctx context.Context, e endpoint, rawQuery, key string, target any) error {
	rawURL := c.endpointURL(e)
	if rawQuery != "" {
		rawURL += "?" + rawQuery
	}
	envelope, err := c.Execute(ctx, rawURL, e.Method, nil)
	if err != nil {
		return err
	}
	_, err = envelope.Decode(key, target)
	return err
}
