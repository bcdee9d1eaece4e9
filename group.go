package splitwise

import (
	"context"

	"github.com/masa-finance/go-splitwise/types"
)

// GetGroups returns the groups the current user belongs to.
func (c *Client) GetGroups(ctx context.Context) ([]types.Group, error) {
	groups := []types.Group{}
	if err := c.list(ctx, groupsEndpoint, "", "groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup returns one group. Id 0 addresses the pseudo-group of expenses
// outside any group. A response without a group yields nil and no error.
func (c *Client) GetGroup(ctx context.Context, id int64) (*types.Group, error) {
	envelope, err := c.Execute(ctx, c.endpointURL(groupEndpoint, id), groupEndpoint.Method, nil)
	if err != nil {
		return nil, err
	}
	var group types.Group
	if found, err := envelope.Decode("group", &group); err != nil || !found {
		return nil, err
	}
	return &group, nil
}

// CreateGroup creates a group and returns it as the service stored it.
// Members, when given, are sent as a flattened user list.
func (c *Client) CreateGroup(ctx context.Context, group types.NewGroup) (*types.Group, error) {
	form := formValues(group.FieldMap())
	if len(group.Members) > 0 {
		Flatten(group.Members, form)
	}

	envelope, err := c.Execute(ctx, c.endpointURL(createGroupEndpoint), createGroupEndpoint.Method, form)
	if err != nil {
		return nil, err
	}
	var created types.Group
	if found, err := envelope.Decode("group", &created); err != nil || !found {
		return nil, err
	}
	return &created, nil
}

// DeleteGroup deletes a group.
func (c *Client) DeleteGroup(ctx context.Context, id int64) error {
	_, err := c.Execute(ctx, c.endpointURL(deleteGroupEndpoint, id), deleteGroupEndpoint.Method, nil)
	return err
}
