package config

import "time"

// RelayConfig is the root configuration for a relay instance.
type RelayConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Stream   StreamConfig   `yaml:"stream"`
}

// ServerConfig holds the HTTP/WebSocket listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ProviderConfig holds market-data provider settings.
type ProviderConfig struct {
	StreamURL  string        `yaml:"stream_url"` // WebSocket feed endpoint
	DataURL    string        `yaml:"data_url"`   // REST data API base URL
	Key        string        `yaml:"key"`        // API key ID (never logged)
	Secret     string        `yaml:"secret"`     // API secret (never logged)
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// StreamConfig holds per-connection streaming parameters.
type StreamConfig struct {
	PingInterval time.Duration `yaml:"ping_interval"` // upstream websocket ping cadence
	PingTimeout  time.Duration `yaml:"ping_timeout"`  // max silence before the connection is stale
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // keepalive window for downstream clients
	BufferSize   int           `yaml:"buffer_size"`   // inbound frame queue capacity
}
