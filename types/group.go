package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is an amount one user owes another.
type Debt struct {
	From         int64           `json:"from"`
	To           int64           `json:"to"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code,omitempty"`
}

// Member is a group member together with their balance in the group.
type Member struct {
	User
	Balance []Balance `json:"balance"`
}

// Group is a set of users sharing expenses.
type Group struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	GroupType         string     `json:"group_type"`
	UpdatedAt         *time.Time `json:"updated_at"`
	SimplifyByDefault bool       `json:"simplify_by_default"`
	Whiteboard        string     `json:"whiteboard"`
	InviteLink        string     `json:"invite_link"`
	Members           []Member   `json:"members"`
	OriginalDebts     []Debt     `json:"original_debts"`
	SimplifiedDebts   []Debt     `json:"simplified_debts"`
}

// GroupMember is a member to add when creating a group. Either ID or Email
// identifies the user; names are used to invite unknown emails.
type GroupMember struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
}

// FieldMap implements the flattening contract.
func (m GroupMember) FieldMap() FieldMap {
	return FieldMap{}.
		AddID("id", m.ID).
		AddString("email", m.Email).
		AddString("first_name", m.FirstName).
		AddString("last_name", m.LastName)
}

// NewGroup describes a group to create.
type NewGroup struct {
	Name              string
	GroupType         string
	Whiteboard        string
	SimplifyByDefault *bool
	Members           []GroupMember
}

// FieldMap returns the scalar fields of the group. Members are excluded.
func (g NewGroup) FieldMap() FieldMap {
	return FieldMap{}.
		Add("name", g.Name).
		AddString("group_type", g.GroupType).
		AddString("whiteboard", g.Whiteboard).
		AddBool("simplify_by_default", g.SimplifyByDefault)
}
