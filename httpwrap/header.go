package httpwrap

// A Header represents the key-value pairs in an HTTP header.
// It is not an array of strings, so it won't work if you have multiple headers with the same key and order matters.
type Header map[string]string

func NewHeader() Header {
	return Header{}
}

// AddAuthorization sets the Authorization header to a precomputed value.
func (h Header) AddAuthorization(value string) {
	h["Authorization"] = value
}

// AddContentType add the content type to the header.
func (h Header) AddContentType(contentType string) {
	h["Content-Type"] = contentType
}

// Add adds a key-value pair to the header.
func (h Header) Add(key, value string) {
	h[key] = value
}
