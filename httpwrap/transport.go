package httpwrap

import "net/http"

// HeaderTransport is a RoundTripper that stamps fixed headers on every request.
type HeaderTransport struct {
	Transport http.RoundTripper
	Header    Header
}

// RoundTrip executes a single HTTP transaction with the fixed headers set.
func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	reqClone := req.Clone(req.Context())
	for key, value := range t.Header {
		if reqClone.Header.Get(key) == "" {
			reqClone.Header.Set(key, value)
		}
	}

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return transport.RoundTrip(reqClone)
}
