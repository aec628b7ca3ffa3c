// Package config loads and validates the relay configuration.
//
// Configuration is YAML with ${VAR} environment expansion, so provider
// credentials can stay out of the file:
//
//	provider:
//	  key: ${PROVIDER_API_KEY}
//	  secret: ${PROVIDER_API_SECRET}
package config
