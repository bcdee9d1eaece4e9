package splitwise

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoAccessToken is returned by every authenticated call made before an
	// access token was set.
	ErrNoAccessToken = errors.New("splitwise: access token not set")
	// ErrMalformedResponse marks a response body that is not the JSON the
	// service promises. It is a protocol violation, never a valid result.
	ErrMalformedResponse = errors.New("splitwise: malformed response")
)

// AuthSetupError reports a failed OAuth handshake step: the service refused
// the consumer credentials or returned an unusable token.
type AuthSetupError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *AuthSetupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Invalid response %d. Please check your consumer key and secret.", e.StatusCode)
	}
	return fmt.Sprintf("token request %s failed: %v", e.URL, e.Err)
}

func (e *AuthSetupError) Unwrap() error {
	return e.Err
}

// UnauthorizedError reports a 401: the access token was rejected or has
// expired and the user has to authorize the application again.
type UnauthorizedError struct {
	URL string
	Err error
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("Unauthorized request to %s", e.URL)
}

func (e *UnauthorizedError) Unwrap() error {
	return e.Err
}

// APIError reports any other failure: a non-200 status other than 401, or a
// 200 response whose body declares errors.
type APIError struct {
	URL        string
	StatusCode int
	Reason     string
	// Messages are the service's error messages when the body declared
	// errors; nil for status failures.
	Messages []string
	Err      error
}

func (e *APIError) Error() string {
	if e.Messages != nil {
		return fmt.Sprintf("Exception in %s: %s", e.URL, strings.Join(e.Messages, ", "))
	}
	return fmt.Sprintf("Error response %d. %s", e.StatusCode, e.Reason)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
