package splitwise

import (
	"net/url"
	"strconv"

	"github.com/masa-finance/go-splitwise/types"
)

// Flattenable is a flat record that can be sent as part of a user list.
type Flattenable interface {
	FieldMap() types.FieldMap
}

// Flatten writes entities into form as the indexed keys the write endpoints
// expect: field f of the entity at position i becomes users__<i>__<f>. The
// index is the position in entities, so order matters. The id field is sent
// as user_id; no other field is renamed.
func Flatten[T Flattenable](entities []T, into url.Values) {
	for i, entity := range entities {
		prefix := "users__" + strconv.Itoa(i) + "__"
		for _, field := range entity.FieldMap() {
			name := field.Name
			if name == "id" {
				name = "user_id"
			}
			into.Set(prefix+name, field.Value)
		}
	}
}

func formValues(fields types.FieldMap) url.Values {
	form := url.Values{}
	for _, field := range fields {
		form.Set(field.Name, field.Value)
	}
	return form
}
