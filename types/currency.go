package types

// Currency is a currency supported by the service.
type Currency struct {
	CurrencyCode string `json:"currency_code"`
	Unit         string `json:"unit"`
}

// Category classifies an expense. Top-level categories carry their
// subcategories.
type Category struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Icon          string     `json:"icon,omitempty"`
	Subcategories []Category `json:"subcategories,omitempty"`
}
