package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8000
	DefaultStreamURL    = "wss://stream.data.alpaca.markets/v2/iex"
	DefaultDataURL      = "https://data.alpaca.markets"
	DefaultAPITimeout   = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultPingInterval = 20 * time.Second
	DefaultPingTimeout  = 30 * time.Second
	DefaultReadTimeout  = 30 * time.Second
	DefaultBufferSize   = 1024
)

func (c *RelayConfig) applyDefaults() {
	// Server defaults
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}

	// Provider defaults
	if c.Provider.StreamURL == "" {
		c.Provider.StreamURL = DefaultStreamURL
	}
	if c.Provider.DataURL == "" {
		c.Provider.DataURL = DefaultDataURL
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = DefaultAPITimeout
	}
	if c.Provider.MaxRetries == 0 {
		c.Provider.MaxRetries = DefaultMaxRetries
	}

	// Stream defaults
	if c.Stream.PingInterval == 0 {
		c.Stream.PingInterval = DefaultPingInterval
	}
	if c.Stream.PingTimeout == 0 {
		c.Stream.PingTimeout = DefaultPingTimeout
	}
	if c.Stream.ReadTimeout == 0 {
		c.Stream.ReadTimeout = DefaultReadTimeout
	}
	if c.Stream.BufferSize == 0 {
		c.Stream.BufferSize = DefaultBufferSize
	}
}
