package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt holds the URLs of an uploaded receipt image.
type Receipt struct {
	Large    string `json:"large"`
	Original string `json:"original"`
}

// ExpenseUser is one participant's share of an expense.
type ExpenseUser struct {
	User       User            `json:"user"`
	UserID     int64           `json:"user_id"`
	PaidShare  decimal.Decimal `json:"paid_share"`
	OwedShare  decimal.Decimal `json:"owed_share"`
	NetBalance decimal.Decimal `json:"net_balance"`
}

// Expense is a recorded expense or payment.
type Expense struct {
	ID                     int64           `json:"id"`
	GroupID                int64           `json:"group_id"`
	FriendshipID           int64           `json:"friendship_id"`
	ExpenseBundleID        int64           `json:"expense_bundle_id"`
	Description            string          `json:"description"`
	Details                string          `json:"details"`
	Repeats                bool            `json:"repeats"`
	RepeatInterval         string          `json:"repeat_interval"`
	EmailReminder          bool            `json:"email_reminder"`
	EmailReminderInAdvance int             `json:"email_reminder_in_advance"`
	NextRepeat             *time.Time      `json:"next_repeat"`
	CommentsCount          int             `json:"comments_count"`
	Payment                bool            `json:"payment"`
	CreationMethod         string          `json:"creation_method"`
	TransactionMethod      string          `json:"transaction_method"`
	TransactionConfirmed   bool            `json:"transaction_confirmed"`
	Cost                   decimal.Decimal `json:"cost"`
	CurrencyCode           string          `json:"currency_code"`
	Repayments             []Debt          `json:"repayments"`
	Date                   *time.Time      `json:"date"`
	CreatedAt              *time.Time      `json:"created_at"`
	CreatedBy              *User           `json:"created_by"`
	UpdatedAt              *time.Time      `json:"updated_at"`
	UpdatedBy              *User           `json:"updated_by"`
	DeletedAt              *time.Time      `json:"deleted_at"`
	DeletedBy              *User           `json:"deleted_by"`
	Category               Category        `json:"category"`
	Receipt                Receipt         `json:"receipt"`
	Users                  []ExpenseUser   `json:"users"`
}

// ExpenseShare is one participant of an expense to create.
type ExpenseShare struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	PaidShare *decimal.Decimal
	OwedShare *decimal.Decimal
}

// FieldMap implements the flattening contract.
func (s ExpenseShare) FieldMap() FieldMap {
	return FieldMap{}.
		AddID("id", s.ID).
		AddString("email", s.Email).
		AddString("first_name", s.FirstName).
		AddString("last_name", s.LastName).
		AddDecimal("paid_share", s.PaidShare).
		AddDecimal("owed_share", s.OwedShare)
}

// NewExpense describes an expense to create.
type NewExpense struct {
	Cost           decimal.Decimal
	Description    string
	Details        string
	CurrencyCode   string
	GroupID        int64
	CategoryID     int64
	Date           time.Time
	RepeatInterval string
	Payment        *bool
	SplitEqually   *bool
	Users          []ExpenseShare
}

// FieldMap returns the scalar fields of the expense. Users are excluded.
func (e NewExpense) FieldMap() FieldMap {
	return FieldMap{}.
		Add("cost", e.Cost.StringFixed(2)).
		Add("description", e.Description).
		AddString("details", e.Details).
		AddString("currency_code", e.CurrencyCode).
		Add("group_id", itoa(e.GroupID)).
		AddID("category_id", e.CategoryID).
		AddTime("date", e.Date).
		AddString("repeat_interval", e.RepeatInterval).
		AddBool("payment", e.Payment).
		AddBool("split_equally", e.SplitEqually)
}
