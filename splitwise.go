package splitwise

import (
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/masa-finance/go-splitwise/auth"
	"github.com/masa-finance/go-splitwise/httpwrap"
)

// Client talks to the Splitwise API on behalf of one application and, once
// an access token is set, one user.
//
// A Client is safe for concurrent use after construction. The access token
// is the only state that changes afterwards; SetAccessToken publishes a new
// token for subsequent calls and never alters the token an in-flight call
// already loaded.
type Client struct {
	credentials auth.Credentials
	callbackURL string
	baseURL     string
	client      *httpwrap.Client
	observer    Observer
	token       atomic.Pointer[auth.Token]

	nonce func() string
	now   func() time.Time
}

// New creates a Client for the given consumer credentials.
func New(consumerKey, consumerSecret string) *Client {
	c := &Client{
		credentials: auth.Credentials{Key: consumerKey, Secret: consumerSecret},
		baseURL:     DefaultBaseURL,
		client:      httpwrap.NewClient(),
		observer:    LogrusObserver{},
	}
	c.client.WithHeader("Accept", "application/json")
	c.SetUserAgent(DefaultUserAgent)
	return c
}

// SetUserAgent sets the user agent for every request.
func (c *Client) SetUserAgent(userAgent string) *Client {
	c.client.WithHeader("User-Agent", userAgent)
	return c
}

// WithAccessToken sets the access token; see SetAccessToken.
func (c *Client) WithAccessToken(token auth.Token) *Client {
	c.SetAccessToken(token)
	return c
}

// SetAccessToken publishes the access token used by every authenticated call.
func (c *Client) SetAccessToken(token auth.Token) {
	c.token.Store(&token)
}

// AccessToken returns a copy of the current access token, or nil.
func (c *Client) AccessToken() *auth.Token {
	token := c.token.Load()
	if token == nil {
		return nil
	}
	tokenCopy := *token
	return &tokenCopy
}

// WithBaseURL points the client at another deployment of the API.
func (c *Client) WithBaseURL(baseURL string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c.baseURL = baseURL
	return c
}

// WithCallbackURL sets the URL the service redirects to after the user
// authorized the application.
func (c *Client) WithCallbackURL(callbackURL string) *Client {
	c.callbackURL = callbackURL
	return c
}

// WithObserver replaces the request observer. A nil observer disables it.
func (c *Client) WithObserver(observer Observer) *Client {
	if observer == nil {
		observer = NopObserver{}
	}
	c.observer = observer
	return c
}

// client timeout
func (c *Client) WithClientTimeout(timeout time.Duration) *Client {
	c.client.SetTimeout(timeout)
	return c
}

// WithTransport replaces the HTTP round tripper.
func (c *Client) WithTransport(transport http.RoundTripper) *Client {
	c.client.WithTransport(transport)
	return c
}

// SetProxy
// set http proxy in the format `http://HOST:PORT`
// set socket proxy in the format `socks5://HOST:PORT`
func (c *Client) SetProxy(proxyAddr string) error {
	return c.client.SetProxy(proxyAddr)
}

func (c *Client) signer(token *auth.Token) *auth.Signer {
	return &auth.Signer{
		Credentials: c.credentials,
		Token:       token,
		Nonce:       c.nonce,
		Now:         c.now,
	}
}
