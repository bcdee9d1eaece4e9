package auth

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrIncompleteToken is returned when a token response lacks either half of
// the token pair.
var ErrIncompleteToken = errors.New("token response missing oauth_token or oauth_token_secret")

// Credentials are the consumer key and secret issued to the application.
type Credentials struct {
	Key    string
	Secret string
}

// Token is an OAuth token pair. Request tokens and access tokens share this
// shape; the JSON form is the one callers persist between runs.
type Token struct {
	Token  string `json:"oauth_token"`
	Secret string `json:"oauth_token_secret"`
}

// ParseToken reads a token pair from a URL-encoded token endpoint body such
// as "oauth_token=abc&oauth_token_secret=xyz".
func ParseToken(body []byte) (*Token, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse token response: %w", err)
	}
	token := &Token{
		Token:  values.Get("oauth_token"),
		Secret: values.Get("oauth_token_secret"),
	}
	if token.Token == "" || token.Secret == "" {
		return nil, ErrIncompleteToken
	}
	return token, nil
}
