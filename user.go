package splitwise

import (
	"context"

	"github.com/masa-finance/go-splitwise/types"
)

// GetCurrentUser returns the user the access token belongs to.
func (c *Client) GetCurrentUser(ctx context.Context) (*types.CurrentUser, error) {
	envelope, err := c.Execute(ctx, c.endpointURL(currentUserEndpoint), currentUserEndpoint.Method, nil)
	if err != nil {
		return nil, err
	}
	var user types.CurrentUser
	if found, err := envelope.Decode("user", &user); err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetUser returns another user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (*types.User, error) {
	envelope, err := c.Execute(ctx, c.endpointURL(userEndpoint, id), userEndpoint.Method, nil)
	if err != nil {
		return nil, err
	}
	var user types.User
	if found, err := envelope.Decode("user", &user); err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetFriends returns the current user's friends with their balances.
func (c *Client) GetFriends(ctx context.Context) ([]types.Friend, error) {
	friends := []types.Friend{}
	if err := c.list(ctx, friendsEndpoint, "", "friends", &friends); err != nil {
		return nil, err
	}
	return friends, nil
}
