package splitwise

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masa-finance/go-splitwise/types"
)

func TestGetCurrentUser(t *testing.T) {
	_, client := mockSplitwiseServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3.0/get_current_user", r.URL.Path)
		respondJSON(http.StatusOK, `{"user": {
			"id": 1,
			"first_name": "Ada",
			"last_name": "Lovelace",
			"email": "ada@example.com",
			"registration_status": "confirmed",
			"picture": {"small": "s.png", "medium": "m.png", "large": "l.png"},
			"notifications_read": "2024-02-01T08:00:00Z",
			"notifications_count": 3,
			"default_currency": "GBP",
			"locale": "en"
		}}`)(w, r)
	}))

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)

	read := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	sample := &types.CurrentUser{
		User: types.User{
			ID:                 1,
			FirstName:          "Ada",
			LastName:           "Lovelace",
			Email:              "ada@example.com",
			RegistrationStatus: "confirmed",
			Picture:            types.Picture{Small: "s.png", Medium: "m.png", Large: "l.png"},
		},
		DefaultCurrency:   "GBP",
		Locale:            "en",
		NotificationsRead: &read,
	}
	cmpOptions := cmp.Options{
		cmpopts.IgnoreFields(types.CurrentUser{}, "NotificationsCount"),
	}
	if diff := cmp.Diff(sample, user, cmpOptions...); diff != "" {
		t.Error("Resulting user does not match the sample", diff)
	}
	assert.Equal(t, 3, user.NotificationsCount)
}

func TestGetUser(t *testing.T) {
	_, client := mockSplitwiseServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3.0/get_user/42", r.URL.Path)
		respondJSON(http.StatusOK, `{"user": {"id": 42, "first_name": "Bob"}}`)(w, r)
	}))

	user, err := client.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, &types.User{ID: 42, FirstName: "Bob"}, user)
}

func TestGetUserUnauthorized(t *testing.T) {
	_, client := mockSplitwiseServer(t, respondJSON(http.StatusUnauthorized, `{}`))

	user, err := client.GetUser(context.Background(), 42)
	assert.Nil(t, user)
	var unauthorized *UnauthorizedError
	assert.ErrorAs(t, err, &unauthorized)
}

func TestGetFriends(t *testing.T) {
	_, client := mockSplitwiseServer(t, respondJSON(http.StatusOK, `{"friends": [
		{"id": 2, "first_name": "Bob", "balance": [{"currency_code": "USD", "amount": "12.5"}], "groups": [{"group_id": 3, "balance": []}]}
	]}`))

	friends, err := client.GetFriends(context.Background())
	require.NoError(t, err)

	require.Len(t, friends, 1)
	assert.Equal(t, "Bob", friends[0].FirstName)
	require.Len(t, friends[0].Balance, 1)
	assert.Equal(t, "12.5", friends[0].Balance[0].Amount.String())
	assert.Equal(t, int64(3), friends[0].Groups[0].GroupID)
}

func TestGetFriendsMissingKey(t *testing.T) {
	_, client := mockSplitwiseServer(t, respondJSON(http.StatusOK, `{"errors": {}}`))

	friends, err := client.GetFriends(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, friends)
	assert.Empty(t, friends)
}
