// Package provider is the REST client for the market-data provider's data
// API: latest trades, latest quotes, and option-contract listings.
//
// Authentication uses the provider's key/secret header pair. All calls take
// a context and retry transient failures with exponential backoff.
package provider
