package splitwise

import (
	"context"
	"net/http"
	"net/url"

	"github.com/masa-finance/go-splitwise/auth"
)

// AuthorizeURL returns the page the user visits to authorize a request token.
func (c *Client) AuthorizeURL(requestToken string) string {
	return c.baseURL + authorizeURL + "?oauth_token=" + url.QueryEscape(requestToken)
}

// GetAuthorizeURL starts the three-legged handshake. It obtains a request
// token and returns the URL the user must visit together with the request
// token secret. The client keeps no handshake state: the caller holds the
// secret until the service redirects back with a verifier and then calls
// GetAccessToken.
func (c *Client) GetAuthorizeURL(ctx context.Context) (string, string, error) {
	signer := c.signer(nil)
	signer.Callback = c.callbackURL

	requestToken, err := c.exchangeToken(ctx, signer, requestTokenEndpoint)
	if err != nil {
		return "", "", err
	}
	return c.AuthorizeURL(requestToken.Token), requestToken.Secret, nil
}

// GetAccessToken completes the handshake, exchanging the authorized request
// token and the verifier for an access token. The token is returned, not
// installed; pass it to SetAccessToken and persist it as needed.
func (c *Client) GetAccessToken(ctx context.Context, oauthToken, oauthTokenSecret, verifier string) (*auth.Token, error) {
	signer := c.signer(&auth.Token{Token: oauthToken, Secret: oauthTokenSecret})
	signer.Verifier = verifier

	return c.exchangeToken(ctx, signer, accessTokenEndpoint)
}

func (c *Client) exchangeToken(ctx context.Context, signer *auth.Signer, e endpoint) (token *auth.Token, err error) {
	rawURL := c.endpointURL(e)

	event := c.startEvent(e.Method, rawURL)
	defer func() { c.finishEvent(ctx, event, err) }()

	resp, err := c.roundTrip(ctx, signer, e.Method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	// Token bodies carry secrets; only the status is observed.
	event.StatusCode = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		return nil, &AuthSetupError{URL: rawURL, StatusCode: resp.StatusCode, Err: resp.Err()}
	}

	token, err = auth.ParseToken(resp.Body)
	if err != nil {
		return nil, &AuthSetupError{URL: rawURL, Err: err}
	}
	return token, nil
}
