package splitwise

// DefaultUserAgent identifies this library to the service.
const DefaultUserAgent = "go-splitwise/" + APIVersion
