package constant

const (
	// HeaderID is the request identifier header key.
	HeaderID = "X-Request-Id"
)
