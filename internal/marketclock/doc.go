// Package marketclock reports whether the US equity market is open.
//
// The regular session is 09:30-16:00 America/New_York, Monday through
// Friday, inclusive on both ends. Holidays are not modeled; the status
// string is informational, not a trading gate.
package marketclock
