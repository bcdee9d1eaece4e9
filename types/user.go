package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Picture holds avatar URLs in the sizes the service provides.
type Picture struct {
	Small  string `json:"small,omitempty"`
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
}

// User is a Splitwise account as seen by other users.
type User struct {
	ID                 int64   `json:"id"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	RegistrationStatus string  `json:"registration_status"`
	Picture            Picture `json:"picture"`
	CustomPicture      bool    `json:"custom_picture"`
}

// CurrentUser is the authenticated account, with its preferences.
type CurrentUser struct {
	User
	DefaultCurrency    string     `json:"default_currency"`
	Locale             string     `json:"locale"`
	DateFormat         string     `json:"date_format"`
	DefaultGroupID     int64      `json:"default_group_id"`
	NotificationsRead  *time.Time `json:"notifications_read"`
	NotificationsCount int        `json:"notifications_count"`
}

// Balance is an amount owed in one currency. Positive means the other party
// owes the current user.
type Balance struct {
	CurrencyCode string          `json:"currency_code"`
	Amount       decimal.Decimal `json:"amount"`
}

// GroupBalance is a friend's balance inside one group.
type GroupBalance struct {
	GroupID int64     `json:"group_id"`
	Balance []Balance `json:"balance"`
}

// Friend is a user the current user shares expenses with.
type Friend struct {
	User
	Balance   []Balance      `json:"balance"`
	Groups    []GroupBalance `json:"groups"`
	UpdatedAt *time.Time     `json:"updated_at"`
}
