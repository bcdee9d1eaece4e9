package splitwise

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/masa-finance/go-splitwise/auth"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// mockSplitwiseServer serves handler and returns a client pointed at it with
// an access token already set.
func mockSplitwiseServer(t *testing.T, handler http.Handler) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New("consumer-key", "consumer-secret").
		WithBaseURL(server.URL).
		WithObserver(NopObserver{}).
		WithAccessToken(auth.Token{Token: "access-token", Secret: "access-secret"})
	client.nonce = func() string { return "nonce" }
	client.now = func() time.Time { return time.Unix(1700000000, 0) }
	return server, client
}

// respondJSON returns a handler that answers every request with body.
func respondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func jsonUnmarshal(body string, v any) error {
	return json.Unmarshal([]byte(body), v)
}
