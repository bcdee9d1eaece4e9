package types

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Field is one scalar form field of a write request.
type Field struct {
	Name  string
	Value string
}

// FieldMap is an ordered list of scalar fields. Nested collections are never
// part of a FieldMap; they are flattened separately.
type FieldMap []Field

// Add appends a field.
func (m FieldMap) Add(name, value string) FieldMap {
	return append(m, Field{Name: name, Value: value})
}

// AddString appends the field only when value is non-empty.
func (m FieldMap) AddString(name, value string) FieldMap {
	if value == "" {
		return m
	}
	return m.Add(name, value)
}

// AddID appends the field only when id is set.
func (m FieldMap) AddID(name string, id int64) FieldMap {
	if id == 0 {
		return m
	}
	return m.Add(name, strconv.FormatInt(id, 10))
}

// AddDecimal appends the field only when d is non-nil.
func (m FieldMap) AddDecimal(name string, d *decimal.Decimal) FieldMap {
	if d == nil {
		return m
	}
	return m.Add(name, d.StringFixed(2))
}

// AddBool appends the field only when b is non-nil.
func (m FieldMap) AddBool(name string, b *bool) FieldMap {
	if b == nil {
		return m
	}
	return m.Add(name, strconv.FormatBool(*b))
}

// AddTime appends the field in RFC 3339 form only when t is non-zero.
func (m FieldMap) AddTime(name string, t time.Time) FieldMap {
	if t.IsZero() {
		return m
	}
	return m.Add(name, t.UTC().Format(time.RFC3339))
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Ref returns a pointer to v, for filling optional fields.
func Ref[T any](v T) *T {
	return &v
}
