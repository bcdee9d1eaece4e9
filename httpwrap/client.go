package httpwrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
)

const DefaultClientTimeout = 10 * time.Second

// Client is a wrapper around http.Client that provides simplified HTTP methods.
type Client struct {
	httpClient *http.Client
	proxy      string
	headers    Header
}

// Response is a fully read HTTP response.
type Response struct {
	Status     string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Err returns the response as an HTTPError.
func (r *Response) Err() HTTPError {
	return HTTPError{
		Status:     r.Status,
		StatusCode: r.StatusCode,
		Body:       r.Body,
	}
}

// NewClient creates a new Client with the default timeout.
func NewClient() *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultClientTimeout},
		headers:    NewHeader(),
	}
	c.setTransport(&http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 10,
		TLSHandshakeTimeout: 5 * time.Second,
	})
	return c
}

func (c *Client) setTransport(base http.RoundTripper) {
	c.httpClient.Transport = &HeaderTransport{
		Transport: base,
		Header:    c.headers,
	}
}

// Send performs one HTTP round trip and reads the whole response body.
// Transport failures are returned exactly as net/http reports them; the
// response status is left for the caller to interpret.
func (c *Client) Send(ctx context.Context, method, rawURL string, body io.Reader, headers Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logrus.Errorf("error closing response body: %v\n", err)
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	return &Response{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// SetTimeout sets the timeout applied to every round trip.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// SetProxy routes requests through a proxy.
// Accepted forms are `http://HOST:PORT`, `https://HOST:PORT` and
// `socks5://[USER:PASS@]HOST:PORT`. An empty address connects directly.
func (c *Client) SetProxy(proxyAddr string) error {
	if proxyAddr == "" {
		c.setTransport(&http.Transport{
			DialContext: (&net.Dialer{
				Timeout: c.httpClient.Timeout,
			}).DialContext,
		})
		c.proxy = ""
	} else if strings.HasPrefix(proxyAddr, "http") {
		urlproxy, err := url.Parse(proxyAddr)
		if err != nil {
			return err
		}
		c.setTransport(&http.Transport{
			Proxy: http.ProxyURL(urlproxy),
			DialContext: (&net.Dialer{
				Timeout: c.httpClient.Timeout,
			}).DialContext,
		})
		c.proxy = proxyAddr
	} else if strings.HasPrefix(proxyAddr, "socks5") {
		baseDialer := &net.Dialer{
			Timeout:   c.httpClient.Timeout,
			KeepAlive: c.httpClient.Timeout,
		}
		proxyURL, err := url.Parse(proxyAddr)
		if err != nil {
			return err
		}

		var auth *proxy.Auth
		if proxyURL.User != nil {
			password, _ := proxyURL.User.Password()
			auth = &proxy.Auth{User: proxyURL.User.Username(), Password: password}
		}

		dialSocksProxy, err := proxy.SOCKS5("tcp", proxyURL.Host, auth, baseDialer)
		if err != nil {
			return errors.New("error creating socks5 proxy :" + err.Error())
		}
		contextDialer, ok := dialSocksProxy.(proxy.ContextDialer)
		if !ok {
			return errors.New("failed type assertion to DialContext")
		}
		c.setTransport(&http.Transport{
			DialContext: contextDialer.DialContext,
		})
		c.proxy = proxyAddr
	} else {
		return errors.New("only support http(s) or socks5 protocol")
	}
	return nil
}

// Proxy returns the proxy address in use, if any.
func (c *Client) Proxy() string {
	return c.proxy
}

// WithHeader stamps key: value on every request that does not already set it.
func (c *Client) WithHeader(key, value string) *Client {
	c.headers.Add(key, value)
	return c
}

// WithTransport replaces the underlying round tripper, keeping the fixed
// headers.
func (c *Client) WithTransport(transport http.RoundTripper) *Client {
	c.setTransport(transport)
	return c
}
