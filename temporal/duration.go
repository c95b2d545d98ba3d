package temporal

import "time"

// Duration carries four signed components that are never normalised against
// one another: month and day lengths are variable, so they are preserved
// independently. Only Nanoseconds is bounded, to [0, 1e9).
type Duration struct {
	Months      int64
	Days        int64
	Seconds     int64
	Nanoseconds int32
}

// NewDuration constructs a Duration, validating only that Nanoseconds is in
// its bounded range; the other three components are intentionally
// unconstrained and never normalised against each other.
func NewDuration(months, days, seconds int64, nanoseconds int32) (Duration, error) {
	if nanoseconds < 0 || nanoseconds >= 1_000_000_000 {
		return Duration{}, fieldError("nanoseconds", int(nanoseconds))
	}

	return Duration{Months: months, Days: days, Seconds: seconds, Nanoseconds: nanoseconds}, nil
}

// DurationFromNative builds a Duration from a time.Duration: months=0,
// days=0, with the whole magnitude landing in seconds+nanoseconds, since
// time.Duration has no separate month or day field to draw from.
func DurationFromNative(d time.Duration) Duration {
	seconds := int64(d / time.Second)
	nanos := int32(d % time.Second)
	if nanos < 0 {
		nanos += 1_000_000_000
		seconds--
	}

	return Duration{Seconds: seconds, Nanoseconds: nanos}
}

// ToDuration best-effort converts to a time.Duration, approximating a month
// as 30 days (documented as lossy; never used internally by the wire codec,
// which transports months/days verbatim).
func (d Duration) ToDuration() time.Duration {
	totalSeconds := d.Months*30*86400 + d.Days*86400 + d.Seconds
	return time.Duration(totalSeconds)*time.Second + time.Duration(d.Nanoseconds)*time.Nanosecond
}

// Equal reports whether d and other carry identical components. Equal does
// not normalise: Duration{Days: 30} and Duration{Months: 1} are not equal.
func (d Duration) Equal(other Duration) bool {
	return d.Months == other.Months && d.Days == other.Days &&
		d.Seconds == other.Seconds && d.Nanoseconds == other.Nanoseconds
}
