package auth

import (
	"bytes"
	"crypto/hmac"
	cryptorand "crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"github.com/masa-finance/go-splitwise/httpwrap"
)

const (
	SignatureMethod = "HMAC-SHA1"
	Version         = "1.0"

	nonceAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	nonceLength   = 32
)

// Signer produces OAuth 1.0a signed requests for one set of consumer
// credentials and, optionally, one token.
//
// A Signer is a value that is never mutated after construction, so one
// instance may be shared by concurrent callers. Nonce and Now default to a
// random nonce and time.Now; tests replace them to make signatures
// reproducible.
type Signer struct {
	Credentials Credentials
	// Token is nil only while acquiring a request token.
	Token    *Token
	Verifier string
	Callback string

	Nonce func() string
	Now   func() time.Time
}

// SignedRequest describes a request ready to be dispatched: the caller must
// send exactly this method, URL and body with the Authorization header set.
type SignedRequest struct {
	Method        string
	URL           string
	Body          string
	Authorization string
}

// Headers returns the headers a transport must attach to the request.
func (r *SignedRequest) Headers() httpwrap.Header {
	headers := httpwrap.NewHeader()
	headers.AddAuthorization(r.Authorization)
	if r.Body != "" {
		headers.AddContentType("application/x-www-form-urlencoded")
	}
	return headers
}

// Sign builds the OAuth 1.0a Authorization header for a request.
//
// The signature base string covers the upper-cased method, the URL without
// query or fragment, and the normalized union of query parameters, form
// parameters and oauth_* parameters. Form values are sent as the request body
// and must therefore be passed here rather than appended to the URL.
func (s *Signer) Sign(method, rawURL string, form url.Values) (*SignedRequest, error) {
	requestURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse request url: %w", err)
	}
	method = strings.ToUpper(method)

	oauthParams := s.oauthParams()

	params := url.Values{}
	for key, values := range requestURL.Query() {
		params[key] = append(params[key], values...)
	}
	for key, values := range form {
		params[key] = append(params[key], values...)
	}
	for key, value := range oauthParams {
		params.Set(key, value)
	}

	tokenSecret := ""
	if s.Token != nil {
		tokenSecret = s.Token.Secret
	}
	signingKey := []byte(Escape(s.Credentials.Secret) + "&" + Escape(tokenSecret))
	hmacHasher := hmac.New(sha1.New, signingKey)
	hmacHasher.Write([]byte(SignatureBase(method, requestURL, params)))

	oauthParams["oauth_signature"] = base64.StdEncoding.EncodeToString(hmacHasher.Sum(nil))

	return &SignedRequest{
		Method:        method,
		URL:           requestURL.String(),
		Body:          form.Encode(),
		Authorization: authorizationHeader(oauthParams),
	}, nil
}

func (s *Signer) oauthParams() map[string]string {
	nonce := s.Nonce
	if nonce == nil {
		nonce = NewNonce
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	oauthParams := map[string]string{
		"oauth_consumer_key":     s.Credentials.Key,
		"oauth_nonce":            nonce(),
		"oauth_signature_method": SignatureMethod,
		"oauth_timestamp":        strconv.FormatInt(now().Unix(), 10),
		"oauth_version":          Version,
	}
	if s.Token != nil {
		oauthParams["oauth_token"] = s.Token.Token
	}
	if s.Verifier != "" {
		oauthParams["oauth_verifier"] = s.Verifier
	}
	if s.Callback != "" {
		oauthParams["oauth_callback"] = s.Callback
	}
	return oauthParams
}

// SignatureBase returns the OAuth 1.0a signature base string.
func SignatureBase(method string, requestURL *url.URL, params url.Values) string {
	baseURL := strings.ToLower(requestURL.Scheme) + "://" + strings.ToLower(requestURL.Host) + requestURL.EscapedPath()

	type pair struct{ key, value string }
	pairs := make([]pair, 0, len(params))
	for key, values := range params {
		for _, value := range values {
			pairs = append(pairs, pair{key: Escape(key), value: Escape(value)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].key != pairs[j].key {
			return pairs[i].key < pairs[j].key
		}
		return pairs[i].value < pairs[j].value
	})
	normalized := make([]string, len(pairs))
	for i, p := range pairs {
		normalized[i] = p.key + "=" + p.value
	}

	components := []string{method, baseURL, strings.Join(normalized, "&")}
	var signatureBaseBuffer bytes.Buffer
	for _, component := range components {
		if signatureBaseBuffer.Len() > 0 {
			signatureBaseBuffer.WriteByte('&')
		}
		signatureBaseBuffer.WriteString(Escape(component))
	}
	return signatureBaseBuffer.String()
}

func authorizationHeader(oauthParams map[string]string) string {
	keys := make([]string, 0, len(oauthParams))
	for key := range oauthParams {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var authorizationHeaderBuffer bytes.Buffer
	for _, key := range keys {
		if authorizationHeaderBuffer.Len() > 0 {
			authorizationHeaderBuffer.WriteString(", ")
		}
		authorizationHeaderBuffer.WriteString(key)
		authorizationHeaderBuffer.WriteString(`="`)
		authorizationHeaderBuffer.WriteString(Escape(oauthParams[key]))
		authorizationHeaderBuffer.WriteByte('"')
	}
	return "OAuth " + authorizationHeaderBuffer.String()
}

// Escape percent-encodes s as RFC 3986 requires for OAuth: unreserved
// characters stay literal and a space becomes %20, never '+'.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// nonceRand is seeded from crypto/rand so that separate processes never
// share a nonce sequence. The package-level x/exp/rand source starts from a
// constant seed.
var nonceRand = newNonceRand()

func newNonceRand() *rand.Rand {
	var seed [8]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("auth: seeding nonce source: %v", err))
	}
	r := rand.New(new(rand.LockedSource))
	r.Seed(binary.LittleEndian.Uint64(seed[:]))
	return r
}

// NewNonce returns a random alphanumeric nonce.
func NewNonce() string {
	return nonceFrom(nonceRand)
}

func nonceFrom(r *rand.Rand) string {
	b := make([]byte, nonceLength)
	for i := range b {
		b[i] = nonceAlphabet[r.Intn(len(nonceAlphabet))]
	}
	return string(b)
}
