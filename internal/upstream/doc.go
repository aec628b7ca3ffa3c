// Package upstream owns one authenticated, subscribed websocket session to
// the market-data feed for a single symbol.
//
// The bootstrap (dial, authenticate, subscribe) is one ordered sequence; a
// session that fails any step is unusable and must be discarded. There is no
// reconnect logic here: a dropped session terminates the owning relay and
// the downstream client retries by reconnecting.
package upstream
