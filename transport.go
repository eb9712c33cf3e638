package esdex

import "context"

// Transport performs one synchronous round trip against the engine and
// returns the raw JSON response body. Implementations decide their own
// connection handling; the client never inspects transport-level concerns
// such as headers, TLS or retries.
type Transport interface {
	Perform(ctx context.Context, method, path string, body []byte) ([]byte, error)
}
