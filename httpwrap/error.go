package httpwrap

import (
	"fmt"
	"net/http"
)

// HTTPError describes a response whose status was not the expected one.
type HTTPError struct {
	Status     string
	StatusCode int
	Body       []byte
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Reason())
}

// Reason returns the reason phrase of the status line, falling back to the
// standard text for the code when the server sent none.
func (e HTTPError) Reason() string {
	prefix := fmt.Sprintf("%d ", e.StatusCode)
	if len(e.Status) > len(prefix) && e.Status[:len(prefix)] == prefix {
		return e.Status[len(prefix):]
	}
	return http.StatusText(e.StatusCode)
}
