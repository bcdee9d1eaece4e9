package splitwise

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/masa-finance/go-splitwise/types"
)

// ExpenseFilter narrows GetExpenses. Every field is optional and only set
// fields are sent.
type ExpenseFilter struct {
	Offset        *int
	Limit         *int
	GroupID       *int64
	FriendshipID  *int64
	DatedAfter    *time.Time
	DatedBefore   *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
}

// Ref returns a pointer to v, for filling optional fields.
func Ref[T any](v T) *T {
	return types.Ref(v)
}

// Values returns the query parameters for the set fields.
func (f ExpenseFilter) Values() url.Values {
	query := url.Values{}
	if f.Offset != nil {
		query.Set("offset", strconv.Itoa(*f.Offset))
	}
	if f.Limit != nil {
		query.Set("limit", strconv.Itoa(*f.Limit))
	}
	if f.GroupID != nil {
		query.Set("group_id", strconv.FormatInt(*f.GroupID, 10))
	}
	if f.FriendshipID != nil {
		query.Set("friendship_id", strconv.FormatInt(*f.FriendshipID, 10))
	}
	setTime(query, "dated_after", f.DatedAfter)
	setTime(query, "dated_before", f.DatedBefore)
	setTime(query, "updated_after", f.UpdatedAfter)
	setTime(query, "updated_before", f.UpdatedBefore)
	return query
}

func setTime(query url.Values, key string, t *time.Time) {
	if t != nil {
		query.Set(key, t.UTC().Format(time.RFC3339))
	}
}

// GetExpenses returns the expenses matching filter, newest first.
func (c *Client) GetExpenses(ctx context.Context, filter ExpenseFilter) ([]types.Expense, error) {
	expenses := []types.Expense{}
	if err := c.list(ctx, expensesEndpoint, filter.Values().Encode(), "expenses", &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetExpense returns one expense. A response without an expense yields nil
// and no error.
func (c *Client) GetExpense(ctx context.Context, id int64) (*types.Expense, error) {
	envelope, err := c.Execute(ctx, c.endpointURL(expenseEndpoint, id), expenseEndpoint.Method, nil)
	if err != nil {
		return nil, err
	}
	var expense types.Expense
	if found, err := envelope.Decode("expense", &expense); err != nil || !found {
		return nil, err
	}
	return &expense, nil
}

// CreateExpense creates an expense and returns it as the service stored it.
// The participants in expense.Users are sent as a flattened user list.
func (c *Client) CreateExpense(ctx context.Context, expense types.NewExpense) (*types.Expense, error) {
	form := formValues(expense.FieldMap())
	Flatten(expense.Users, form)

	envelope, err := c.Execute(ctx, c.endpointURL(createExpenseEndpoint), createExpenseEndpoint.Method, form)
	if err != nil {
		return nil, err
	}
	var created []types.Expense
	if found, err := envelope.Decode("expenses", &created); err != nil || !found || len(created) == 0 {
		return nil, err
	}
	return &created[0], nil
}
