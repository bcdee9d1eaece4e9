package splitwise

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/masa-finance/go-splitwise/auth"
	"github.com/masa-finance/go-splitwise/httpwrap"
)

// Envelope is the top-level JSON object of a response, keyed by payload
// name ("user", "expenses", "errors", ...).
type Envelope map[string]json.RawMessage

// Decode unmarshals the payload under key into v. It reports false when the
// key is absent or null, which callers treat as an empty result.
func (e Envelope) Decode(key string, v any) (bool, error) {
	raw, ok := e[key]
	if !ok || isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: decode %q: %v", ErrMalformedResponse, key, err)
	}
	return true, nil
}

// Errors returns the error messages the body declares and whether it
// declares any. Only the "base" category is read; a non-empty errors object
// without it yields "unknown".
func (e Envelope) Errors() ([]string, bool) {
	raw, ok := e["errors"]
	if !ok || isNull(raw) {
		return nil, false
	}

	var categories map[string]json.RawMessage
	if err := json.Unmarshal(raw, &categories); err == nil {
		if len(categories) == 0 {
			return nil, false
		}
		base, ok := categories["base"]
		if !ok || isNull(base) {
			return []string{"unknown"}, true
		}
		return messages(base), true
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return nil, false
		}
		return messages(raw), true
	}

	var message string
	if err := json.Unmarshal(raw, &message); err == nil && message != "" {
		return []string{message}, true
	}
	return nil, false
}

// messages reads a message or list of messages; entries that are not strings
// are kept in their JSON form.
func messages(raw json.RawMessage) []string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return []string{"unknown"}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(item))
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// Execute performs one authenticated call and returns the parsed envelope.
//
// form, when non-empty, is sent URL-encoded as the request body and covered
// by the signature. An empty method means GET. The call is never retried:
//   - a 401 yields *UnauthorizedError,
//   - any other non-200 status yields *APIError,
//   - a 200 whose body declares errors yields *APIError,
//   - a 200 whose body is not a JSON object wraps ErrMalformedResponse,
//   - transport failures, including ctx cancellation, are returned as is.
func (c *Client) Execute(ctx context.Context, rawURL, method string, form url.Values) (envelope Envelope, err error) {
	token := c.token.Load()
	if token == nil {
		return nil, ErrNoAccessToken
	}
	if method == "" {
		method = http.MethodGet
	}

	event := c.startEvent(method, rawURL)
	defer func() { c.finishEvent(ctx, event, err) }()

	resp, err := c.roundTrip(ctx, c.signer(token), method, rawURL, form)
	if err != nil {
		return nil, err
	}
	event.record(resp)

	if resp.StatusCode != http.StatusOK {
		httpErr := resp.Err()
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, &UnauthorizedError{URL: rawURL, Err: httpErr}
		}
		return nil, &APIError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Reason:     httpErr.Reason(),
			Err:        httpErr,
		}
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, rawURL, err)
	}
	if declared, failed := envelope.Errors(); failed {
		return nil, &APIError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Reason:     resp.Err().Reason(),
			Messages:   declared,
		}
	}
	return envelope, nil
}

// roundTrip signs and dispatches one request. It is the only place the
// client touches the network.
func (c *Client) roundTrip(ctx context.Context, signer *auth.Signer, method, rawURL string, form url.Values) (*httpwrap.Response, error) {
	signed, err := signer.Sign(method, rawURL, form)
	if err != nil {
		return nil, err
	}
	var body io.Reader
	if signed.Body != "" {
		body = strings.NewReader(signed.Body)
	}
	return c.client.Send(ctx, signed.Method, signed.URL, body, signed.Headers())
}

type pendingEvent struct {
	RequestEvent
	started time.Time
}

func (c *Client) startEvent(method, rawURL string) *pendingEvent {
	return &pendingEvent{
		RequestEvent: RequestEvent{
			ID:     uuid.NewString(),
			Method: method,
			URL:    rawURL,
		},
		started: time.Now(),
	}
}

func (e *pendingEvent) record(resp *httpwrap.Response) {
	e.StatusCode = resp.StatusCode
	e.Body = resp.Body
}

func (c *Client) finishEvent(ctx context.Context, e *pendingEvent, err error) {
	e.Duration = time.Since(e.started)
	e.Err = err
	c.observer.ObserveRequest(ctx, e.RequestEvent)
}
