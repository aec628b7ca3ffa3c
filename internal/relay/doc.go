// Package relay drives one downstream websocket client through the
// streaming lifecycle: greet, open an upstream session for the requested
// symbol, and forward translated ticks until either side goes away.
//
// Each connection is owned by exactly one goroutine; there is no shared
// state across connections and no upstream reconnect. A failed or dropped
// upstream session ends the connection, and the client retries by
// reconnecting.
package relay
