package marketclock

import "time"

// Status values reported to clients.
const (
	StatusOpen          = "open"
	StatusClosed        = "closed"
	StatusClosedWeekend = "closed (weekend)"
)

// Session bounds in exchange-local minutes from midnight.
const (
	openMinute  = 9*60 + 30 // 09:30
	closeMinute = 16 * 60   // 16:00
)

// eastern is the exchange time zone. All session math happens here
// regardless of the caller's zone.
var eastern = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("marketclock: load location " + name + ": " + err.Error())
	}
	return loc
}

// Status returns the market status for the given instant.
func Status(now time.Time) string {
	local := now.In(eastern)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return StatusClosedWeekend
	}

	minute := local.Hour()*60 + local.Minute()
	if minute < openMinute {
		return StatusClosed
	}
	// 16:00:00 exactly is still open; one second later is not.
	if minute > closeMinute || (minute == closeMinute && local.Second() > 0) {
		return StatusClosed
	}
	return StatusOpen
}

// ServerTime formats an instant as an exchange-local timestamp for
// client-facing control messages.
func ServerTime(now time.Time) string {
	return now.In(eastern).Format("2006-01-02 15:04:05.000000-07:00")
}

// Now is a convenience wrapper over Status(time.Now()).
func Now() string {
	return Status(time.Now())
}
