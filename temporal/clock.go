package temporal

import "time"

// nowFunc is the seam tests override to make "current time" deterministic.
var nowFunc = time.Now

// Now returns the current instant as a naive DateTime in UTC.
func Now() DateTime {
	return DateTimeFromNative(nowFunc().UTC())
}

// Today returns the current date in UTC.
func Today() Date {
	return DateFromNative(nowFunc().UTC())
}
