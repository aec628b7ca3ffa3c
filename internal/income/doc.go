// Package income computes cash-secured put income metrics.
//
// Everything here is fixed closed-form arithmetic on caller-supplied
// numbers; no market data is fetched and no state is kept.
package income
