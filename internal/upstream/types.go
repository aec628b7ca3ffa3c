package upstream

import (
	"errors"
	"time"
)

// Errors
var (
	// ErrTimeout means no frame arrived within the wait window. It is not
	// fatal; the caller typically sends a keepalive and waits again.
	ErrTimeout = errors.New("no frame within timeout")

	// ErrClosed means the session was closed, locally or by the provider.
	ErrClosed = errors.New("session closed")

	// ErrAuthFailed means the provider rejected or did not acknowledge the
	// auth request.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrStaleConnection means the provider stopped answering pings.
	ErrStaleConnection = errors.New("connection stale (no pong)")
)

// Config configures an upstream session. Credentials are held here and are
// written only to the provider's auth frame, never logged.
type Config struct {
	URL          string        // WebSocket feed endpoint
	Key          string        // API key ID
	Secret       string        // API secret
	PingInterval time.Duration // Outbound ping cadence
	PingTimeout  time.Duration // Max silence before the connection is stale
	BufferSize   int           // Inbound frame queue capacity
}

// authRequest is the provider's auth frame.
type authRequest struct {
	Action string `json:"action"`
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

// subscribeRequest is the provider's subscribe frame. One symbol, both
// channels: the route exposes a single symbol per connection.
type subscribeRequest struct {
	Action string   `json:"action"`
	Trades []string `json:"trades"`
	Quotes []string `json:"quotes"`
}
