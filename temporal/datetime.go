package temporal

import (
	"time"
)

// zoneCarrier distinguishes the three DateTime wire shapes: naive, fixed
// UTC-offset, or named IANA zone.
type zoneCarrier uint8

const (
	carrierNaive zoneCarrier = iota
	carrierOffset
	carrierZone
)

// DateTime is seconds-since-epoch plus a nanosecond-of-second remainder, with
// an optional timezone carrier. For an aware DateTime, EpochSecond holds the
// *local* epoch second — the wall-clock fields interpreted as if they were
// UTC — exactly as the wire carries it; the true UTC instant is EpochSecond
// minus the zone's offset.
type DateTime struct {
	EpochSecond int64
	Nanosecond  int32 // always in [0, 1e9)

	carrier       zoneCarrier
	offsetSeconds int32
	zoneName      string
	loc           *time.Location
}

// NewDateTime constructs a naive DateTime. Negative day indexes from the end
// of the month, as Date does.
func NewDateTime(year, month, day, hour, minute int, second float64) (DateTime, error) {
	return newDateTime(year, month, day, hour, minute, second, carrierNaive, 0, "", nil)
}

// NewOffsetDateTime constructs a DateTime carrying a fixed UTC-offset. The
// epoch-second field is computed from the local wall-clock fields.
func NewOffsetDateTime(year, month, day, hour, minute int, second float64, offsetSeconds int32) (DateTime, error) {
	return newDateTime(year, month, day, hour, minute, second, carrierOffset, offsetSeconds, "", nil)
}

// NewZonedDateTime constructs a DateTime carrying a named IANA zone. loc, if
// non-nil, is retained for Native()/arithmetic convenience; it is never
// required for a correct round trip through Pack/Unpack, which transport the
// zone name as an opaque string.
func NewZonedDateTime(year, month, day, hour, minute int, second float64, zoneName string, loc *time.Location) (DateTime, error) {
	return newDateTime(year, month, day, hour, minute, second, carrierZone, 0, zoneName, loc)
}

// FromEpoch constructs a naive DateTime directly from an epoch-second and
// nanosecond-of-second pair, the shape every wire DateTime structure variant
// carries as its first two fields. Unlike NewDateTime, this bypasses
// calendar-field validation since epochSecond is already a valid instant by
// construction.
func FromEpoch(epochSecond int64, nanosecond int32) DateTime {
	return DateTime{EpochSecond: epochSecond, Nanosecond: nanosecond}
}

// FromEpochOffset is FromEpoch plus a fixed UTC-offset carrier, matching the
// wire's offset-aware DateTime structure variant.
func FromEpochOffset(epochSecond int64, nanosecond, offsetSeconds int32) DateTime {
	return DateTime{
		EpochSecond:   epochSecond,
		Nanosecond:    nanosecond,
		carrier:       carrierOffset,
		offsetSeconds: offsetSeconds,
	}
}

// FromEpochZone is FromEpoch plus a named-zone carrier, matching the wire's
// zone-aware DateTime structure variant. loc may be nil; it is resolved
// later via WithLocation once the caller looks the zone name up.
func FromEpochZone(epochSecond int64, nanosecond int32, zoneName string, loc *time.Location) DateTime {
	return DateTime{
		EpochSecond: epochSecond,
		Nanosecond:  nanosecond,
		carrier:     carrierZone,
		zoneName:    zoneName,
		loc:         loc,
	}
}

func newDateTime(year, month, day, hour, minute int, second float64, carrier zoneCarrier, offsetSeconds int32, zoneName string, loc *time.Location) (DateTime, error) {
	days, err := dayOffset(year, month, day)
	if err != nil {
		return DateTime{}, err
	}

	nanosOfDay, err := timeOfDayNanos(hour, minute, second)
	if err != nil {
		return DateTime{}, err
	}

	epochSecond := days*86400 + nanosOfDay/1_000_000_000
	nanosecond := int32(nanosOfDay % 1_000_000_000)

	return DateTime{
		EpochSecond:   epochSecond,
		Nanosecond:    nanosecond,
		carrier:       carrier,
		offsetSeconds: offsetSeconds,
		zoneName:      zoneName,
		loc:           loc,
	}, nil
}

// IsNaive reports whether the DateTime carries no timezone information.
func (dt DateTime) IsNaive() bool { return dt.carrier == carrierNaive }

// HasOffset reports whether the DateTime carries a fixed UTC offset.
func (dt DateTime) HasOffset() bool { return dt.carrier == carrierOffset }

// HasZone reports whether the DateTime carries a named IANA zone.
func (dt DateTime) HasZone() bool { return dt.carrier == carrierZone }

// OffsetSeconds returns the carried UTC offset. Only meaningful when
// HasOffset() is true.
func (dt DateTime) OffsetSeconds() int32 { return dt.offsetSeconds }

// ZoneName returns the carried IANA zone name. Only meaningful when
// HasZone() is true.
func (dt DateTime) ZoneName() string { return dt.zoneName }

func (dt DateTime) civilUTC() time.Time {
	return time.Unix(dt.EpochSecond, int64(dt.Nanosecond)).UTC()
}

func (dt DateTime) Year() int     { return dt.civilUTC().Year() }
func (dt DateTime) Month() int    { return int(dt.civilUTC().Month()) }
func (dt DateTime) Day() int      { return dt.civilUTC().Day() }
func (dt DateTime) Hour() int     { return dt.civilUTC().Hour() }
func (dt DateTime) Minute() int   { return dt.civilUTC().Minute() }
func (dt DateTime) Second() float64 {
	return nanoAdd(int64(dt.civilUTC().Second()), dt.Nanosecond)
}

// Native converts the DateTime to a time.Time. Naive values are returned in
// UTC with no location attached semantics beyond that; offset-aware values
// shift the local epoch back to the true instant and attach a fixed zone;
// zone-aware values reinterpret the wall-clock fields in the carried
// Location if one was supplied (via NewZonedDateTime or WithLocation), else
// fall back to UTC.
func (dt DateTime) Native() time.Time {
	switch dt.carrier {
	case carrierOffset:
		loc := time.FixedZone("", int(dt.offsetSeconds))
		return time.Unix(dt.EpochSecond-int64(dt.offsetSeconds), int64(dt.Nanosecond)).In(loc)
	case carrierZone:
		loc := dt.loc
		if loc == nil {
			loc = time.UTC
		}
		c := dt.civilUTC()

		return time.Date(c.Year(), c.Month(), c.Day(), c.Hour(), c.Minute(), c.Second(), int(dt.Nanosecond), loc)
	default:
		return dt.civilUTC()
	}
}

// DateTimeFromNative constructs a DateTime from a time.Time, classifying it
// naive, offset-aware, or zone-aware by its Location. A time.Time in
// time.UTC or time.Local is treated as naive.
func DateTimeFromNative(t time.Time) DateTime {
	dt := DateTime{
		EpochSecond: t.Unix(),
		Nanosecond:  int32(t.Nanosecond()),
	}

	loc := t.Location()
	if loc == nil || loc == time.UTC || loc == time.Local {
		return dt
	}

	// Aware values store the local epoch second (wall clock as if UTC).
	name, offset := t.Zone()
	dt.EpochSecond += int64(offset)

	if name == "" || name == "UTC" {
		dt.carrier = carrierOffset
		dt.offsetSeconds = int32(offset)
		return dt
	}

	dt.carrier = carrierZone
	dt.zoneName = loc.String()
	dt.loc = loc

	return dt
}

// WithLocation attaches a resolved *time.Location to a zone-aware DateTime,
// for Native() to use. It has no effect on a naive or offset-aware DateTime,
// and no effect on wire round-tripping: the wire carries only the zone
// name, and both peers are trusted to resolve it themselves.
func (dt DateTime) WithLocation(loc *time.Location) DateTime {
	if dt.carrier != carrierZone {
		return dt
	}

	dt.loc = loc

	return dt
}

// Equal reports whether dt and other denote the same instant with the same
// carried timezone representation.
func (dt DateTime) Equal(other DateTime) bool {
	if dt.EpochSecond != other.EpochSecond || dt.Nanosecond != other.Nanosecond {
		return false
	}
	if dt.carrier != other.carrier {
		return false
	}

	switch dt.carrier {
	case carrierOffset:
		return dt.offsetSeconds == other.offsetSeconds
	case carrierZone:
		return dt.zoneName == other.zoneName
	default:
		return true
	}
}
