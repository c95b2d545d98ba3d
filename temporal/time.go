package temporal

// Time is a nanosecond-of-day value with an optional UTC-offset carrier.
// Time has no named-zone carrier on the wire (only DateTime does); an
// offset-aware Time is the only "aware" Time variant.
type Time struct {
	NanosecondOfDay int64
	HasOffset       bool
	OffsetSeconds   int32
}

// NewTime constructs a naive Time from hour/minute/second fields. second may
// carry a fractional nanosecond component, decomposed immediately.
func NewTime(hour, minute int, second float64) (Time, error) {
	ns, err := timeOfDayNanos(hour, minute, second)
	if err != nil {
		return Time{}, err
	}

	return Time{NanosecondOfDay: ns}, nil
}

// NewOffsetTime constructs an offset-aware Time. offsetSeconds is the zone's
// UTC offset in seconds (east-of-UTC positive).
func NewOffsetTime(hour, minute int, second float64, offsetSeconds int32) (Time, error) {
	ns, err := timeOfDayNanos(hour, minute, second)
	if err != nil {
		return Time{}, err
	}

	return Time{NanosecondOfDay: ns, HasOffset: true, OffsetSeconds: offsetSeconds}, nil
}

func timeOfDayNanos(hour, minute int, second float64) (int64, error) {
	if hour < 0 || hour > 23 {
		return 0, fieldError("hour", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fieldError("minute", minute)
	}
	if second < 0 || second >= 60 {
		return 0, fieldError("second", int(second))
	}

	wholeSec, nanos := splitSeconds(second)
	total := int64(hour)*3600_000_000_000 + int64(minute)*60_000_000_000 + wholeSec*1_000_000_000 + int64(nanos)
	if total < 0 || total >= nanosPerDay {
		return 0, fieldError("nanosecond_of_day", int(total))
	}

	return total, nil
}

// Hour, Minute and Second decompose the Time back into its clock fields.
// Second carries the fractional nanosecond component as in the constructor.
func (t Time) Hour() int {
	return int(t.NanosecondOfDay / 3600_000_000_000)
}

func (t Time) Minute() int {
	return int((t.NanosecondOfDay / 60_000_000_000) % 60)
}

func (t Time) Second() float64 {
	secOfMinute := (t.NanosecondOfDay / 1_000_000_000) % 60
	nanos := t.NanosecondOfDay % 1_000_000_000

	return nanoAdd(secOfMinute, int32(nanos))
}

// Equal reports whether t and other denote the same nanosecond-of-day and
// carry the same offset state.
func (t Time) Equal(other Time) bool {
	return t.NanosecondOfDay == other.NanosecondOfDay &&
		t.HasOffset == other.HasOffset &&
		(!t.HasOffset || t.OffsetSeconds == other.OffsetSeconds)
}
