package temporal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nascanti/interchange/errs"
)

// ISOFormat renders dt in extended ISO-8601 form with a full 9-digit
// nanosecond fraction, so that ParseISO(dt.ISOFormat()) reproduces dt
// exactly for any canonical dt.
func (dt DateTime) ISOFormat() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d:%02d.%09d",
		dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(),
		int(dt.civilUTC().Second()), dt.Nanosecond)

	switch dt.carrier {
	case carrierOffset:
		b.WriteString(formatOffset(dt.offsetSeconds))
	case carrierZone:
		// Named-zone values format with their resolved offset when a
		// Location is attached and with no offset suffix otherwise; the wire
		// form carries the zone name separately and losslessly either way.
		if dt.loc != nil {
			_, offset := dt.Native().Zone()
			b.WriteString(formatOffset(int32(offset)))
		}
	}

	return b.String()
}

func formatOffset(offsetSeconds int32) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}

	return fmt.Sprintf("%s%02d:%02d", sign, offsetSeconds/3600, (offsetSeconds/60)%60)
}

// ParseISO parses an ISO-8601 datetime string of the form
// "YYYY-MM-DDTHH[:MM[:SS[.ffffff...]]][(+|-)HH:MM[:SS[.ffffff...]]]".
// Hour, minute and second are all independently optional (defaulting to 0);
// an offset suffix beyond whole minutes is accepted but discarded, matching
// the original's pytz-backed FixedOffset(minutes) behavior.
func ParseISO(s string) (DateTime, error) {
	datePart, timePart, ok := strings.Cut(s, "T")
	if !ok {
		return DateTime{}, fmt.Errorf("%w: missing 'T' separator in %q", errs.ErrFieldOutOfRange, s)
	}

	year, month, day, err := parseISODate(datePart)
	if err != nil {
		return DateTime{}, err
	}

	hour, minute, second, offsetSeconds, hasOffset, err := parseISOTime(timePart)
	if err != nil {
		return DateTime{}, err
	}

	if hasOffset {
		return NewOffsetDateTime(year, month, day, hour, minute, second, offsetSeconds)
	}

	return NewDateTime(year, month, day, hour, minute, second)
}

func parseISODate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: malformed date %q", errs.ErrFieldOutOfRange, s)
	}

	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("%w: malformed date %q", errs.ErrFieldOutOfRange, s)
	}

	return y, m, d, nil
}

// parseISOTime splits the time-of-day portion of an ISO string from its
// optional offset suffix and parses both.
func parseISOTime(s string) (hour, minute int, second float64, offsetSeconds int32, hasOffset bool, err error) {
	sign := 0
	splitAt := -1
	for i := 1; i < len(s); i++ { // start at 1: a leading '-' belongs to nothing here, offsets never lead
		switch s[i] {
		case '+':
			sign, splitAt = 1, i
		case '-':
			sign, splitAt = -1, i
		}
		if splitAt >= 0 {
			break
		}
	}

	clockPart := s
	if splitAt >= 0 {
		clockPart = s[:splitAt]
		offsetSeconds, err = parseISOOffset(sign, s[splitAt+1:])
		if err != nil {
			return 0, 0, 0, 0, false, err
		}
		hasOffset = true
	}

	hour, minute, second, err = parseISOClock(clockPart)

	return hour, minute, second, offsetSeconds, hasOffset, err
}

func parseISOClock(s string) (hour, minute int, second float64, err error) {
	fields := strings.SplitN(s, ":", 3)

	hour, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: malformed hour in %q", errs.ErrFieldOutOfRange, s)
	}

	if len(fields) >= 2 {
		minute, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: malformed minute in %q", errs.ErrFieldOutOfRange, s)
		}
	}

	if len(fields) == 3 {
		second, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: malformed second in %q", errs.ErrFieldOutOfRange, s)
		}
	}

	return hour, minute, second, nil
}

// parseISOOffset parses only the hour:minute portion of an offset suffix;
// any trailing ":SS.ffffff" is accepted and discarded (the original's
// pytz.FixedOffset carries only whole minutes, so test_from_iso_format_with_
// positive_long_tz expects "+12:34:56.123456" to resolve to the same offset
// as "+12:34").
func parseISOOffset(sign int, s string) (int32, error) {
	fields := strings.SplitN(s, ":", 3)

	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed offset hour in %q", errs.ErrFieldOutOfRange, s)
	}

	minute := 0
	if len(fields) >= 2 {
		minute, err = strconv.Atoi(strings.SplitN(fields[1], ".", 2)[0])
		if err != nil {
			return 0, fmt.Errorf("%w: malformed offset minute in %q", errs.ErrFieldOutOfRange, s)
		}
	}

	return int32(sign * (hour*3600 + minute*60)), nil
}
