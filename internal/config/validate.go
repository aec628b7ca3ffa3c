package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *RelayConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if !strings.HasPrefix(c.Provider.StreamURL, "ws") {
		return fmt.Errorf("provider.stream_url must be a ws:// or wss:// URL, got %q", c.Provider.StreamURL)
	}
	if c.Provider.Key == "" {
		return errors.New("provider.key is required")
	}
	if c.Provider.Secret == "" {
		return errors.New("provider.secret is required")
	}

	if c.Stream.PingInterval <= 0 {
		return errors.New("stream.ping_interval must be positive")
	}
	if c.Stream.PingTimeout <= 0 {
		return errors.New("stream.ping_timeout must be positive")
	}
	if c.Stream.ReadTimeout <= 0 {
		return errors.New("stream.read_timeout must be positive")
	}
	if c.Stream.BufferSize < 1 {
		return errors.New("stream.buffer_size must be >= 1")
	}

	return nil
}
