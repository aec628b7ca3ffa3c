package relay

import "strings"

// subscriptionPrefix marks a symbol as an options-trade-channel
// subscription in the provider's canonical form.
const subscriptionPrefix = "T."

// CanonicalSymbol applies the subscription prefix exactly once.
// "FOO" and "T.FOO" both canonicalize to "T.FOO".
func CanonicalSymbol(symbol string) string {
	if strings.HasPrefix(symbol, subscriptionPrefix) {
		return symbol
	}
	return subscriptionPrefix + symbol
}
